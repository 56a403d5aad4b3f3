// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, RSA key handling,
// JWT token generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier
// in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, userID)
var UserIDCtxKey = contextKey("userID")

// ResponseSlotCtxKey is the key under which the per-request ResponseSlot is stored.
var ResponseSlotCtxKey = contextKey("responseSlot")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true : value is found and has the uuid.UUID type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(uuid.UUID)
	return userID, ok
}

// ResponseSlot holds the in-flight status code and the final response body
// of a single request. The handler chain writes it; the access log reads it
// once the handler has returned.
//
// A slot belongs to exactly one request and is not safe for concurrent use.
type ResponseSlot struct {
	// Status is the status the handler asked for. Zero means "not set".
	Status int

	// Body is the envelope (or raw value) that was sent to the client.
	Body any
}

// WithResponseSlot stores a fresh ResponseSlot in ctx.
func WithResponseSlot(ctx context.Context) (context.Context, *ResponseSlot) {
	slot := &ResponseSlot{}
	return context.WithValue(ctx, ResponseSlotCtxKey, slot), slot
}

// ResponseSlotFromContext returns the slot stored by WithResponseSlot.
func ResponseSlotFromContext(ctx context.Context) (*ResponseSlot, bool) {
	slot, ok := ctx.Value(ResponseSlotCtxKey).(*ResponseSlot)
	return slot, ok && slot != nil
}

// EnsureResponseSlot returns the slot already stored in ctx, or stores a new one.
func EnsureResponseSlot(ctx context.Context) (context.Context, *ResponseSlot) {
	if slot, ok := ResponseSlotFromContext(ctx); ok {
		return ctx, slot
	}
	return WithResponseSlot(ctx)
}
