// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. They are mapped to client errors
// by [mapError].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidUserID is returned when the {id} path parameter is not a UUID.
	ErrInvalidUserID = errors.New("user id must be a UUID")

	// ErrInvalidPage is returned when limit or offset are not integers.
	ErrInvalidPage = errors.New("limit and offset must be integers")

	// ErrNoUserInContext is returned by protected endpoints reached without
	// the auth middleware having stored a user ID.
	ErrNoUserInContext = errors.New("no authenticated user")
)
