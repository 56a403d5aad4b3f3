package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mrmeaow/erp-iam-secureid/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"id", "full_name", "email", "password_hash", "created_at", "updated_at"}

const returningUserColumns = "RETURNING id, full_name, email, password_hash, created_at, updated_at"

func buildInsertUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.FullName, nullString(user.Email), nullString(user.PasswordHash), user.CreatedAt, user.UpdatedAt).
		Suffix(returningUserColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserQuery(where sq.Sqlizer) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserByIDQuery(id uuid.UUID) (string, []any, error) {
	return buildSelectUserQuery(sq.Eq{"id": id})
}

func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return buildSelectUserQuery(sq.Eq{"email": email})
}

func buildListUsersQuery(page models.Page) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user         models.User
		email        sql.NullString
		passwordHash sql.NullString
	)

	if err := row.Scan(&user.ID, &user.FullName, &email, &passwordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return models.User{}, err
	}
	user.Email = email.String
	user.PasswordHash = passwordHash.String

	return user, nil
}
