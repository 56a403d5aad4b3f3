//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mrmeaow/erp-iam-secureid/internal/config"
	"github.com/mrmeaow/erp-iam-secureid/internal/logger"
	"github.com/mrmeaow/erp-iam-secureid/models"
)

func startPostgres(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("erpiam"),
		tcpostgres.WithUsername("erpiam"),
		tcpostgres.WithPassword("erpiam"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := NewConnectPostgres(ctx, config.DB{DSN: dsn, MaxOpenConns: 4}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestUserRepository_Postgres(t *testing.T) {
	db := startPostgres(t)
	repo := NewUserRepository(db, logger.Nop())
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	jane := models.User{
		ID:           uuid.Must(uuid.NewV7()),
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := repo.CreateUser(ctx, jane)
	require.NoError(t, err)
	assert.Equal(t, jane.ID, created.ID)
	assert.True(t, jane.CreatedAt.Equal(created.CreatedAt))

	_, err = repo.CreateUser(ctx, models.User{ID: uuid.New(), FullName: "Copy", Email: jane.Email, CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	noLogin := models.User{ID: uuid.Must(uuid.NewV7()), FullName: "No Login", CreatedAt: now.Add(time.Second), UpdatedAt: now}
	_, err = repo.CreateUser(ctx, noLogin)
	require.NoError(t, err)

	byID, err := repo.FindUserByID(ctx, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", byID.FullName)

	byEmail, err := repo.FindUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, jane.ID, byEmail.ID)

	_, err = repo.FindUserByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)

	users, err := repo.ListUsers(ctx, models.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, jane.ID, users[0].ID)
	assert.Equal(t, noLogin.ID, users[1].ID)

	require.NoError(t, db.Ping(ctx))
}
