package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an IAM account.
//
// PasswordHash is serialized on purpose: the response interceptor redacts the
// "password_hash" key before anything reaches the client or the access log.
type User struct {
	// ID is the server-assigned UUID primary key.
	ID uuid.UUID `json:"id"`

	// FullName is the display name of the account holder.
	FullName string `json:"full_name"`

	// Email is the optional login identifier. Empty for accounts that
	// cannot log in.
	Email string `json:"email,omitempty"`

	// PasswordHash is the PHC-encoded argon2id hash of the password.
	PasswordHash string `json:"password_hash,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// CreateUserRequest is the inbound DTO of POST /v1/users.
type CreateUserRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// LoginRequest is the inbound DTO of POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
