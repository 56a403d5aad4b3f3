// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmeaow/erp-iam-secureid/models"
)

func Test_buildInsertUserQuery(t *testing.T) {
	now := time.Now()
	user := models.User{ID: uuid.New(), FullName: "Jane", CreatedAt: now, UpdatedAt: now}

	query, args, err := buildInsertUserQuery(user)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO users"))
	assert.Contains(t, query, "$6")
	assert.Contains(t, query, returningUserColumns)
	require.Len(t, args, 6)
	assert.Equal(t, user.ID, args[0])
	assert.Equal(t, sql.NullString{}, args[2])
}

func Test_buildSelectUserQueries(t *testing.T) {
	id := uuid.New()

	query, args, err := buildSelectUserByIDQuery(id)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, full_name, email, password_hash, created_at, updated_at FROM users WHERE id = $1 LIMIT 1", query)
	assert.Equal(t, []any{id}, args)

	query, args, err = buildSelectUserByEmailQuery("a@b.c")
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE email = $1")
	assert.Equal(t, []any{"a@b.c"}, args)
}

func Test_buildListUsersQuery(t *testing.T) {
	query, args, err := buildListUsersQuery(models.Page{Limit: 20, Offset: 40})
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, full_name, email, password_hash, created_at, updated_at FROM users ORDER BY created_at ASC, id ASC LIMIT 20 OFFSET 40", query)
	assert.Empty(t, args)
}

func Test_nullString(t *testing.T) {
	assert.False(t, nullString("").Valid)
	assert.True(t, nullString("x").Valid)
	assert.Equal(t, "x", nullString("x").String)
}
