// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// APIMeta is the per-response metadata block of the envelope.
// It is created fresh for every response and never persisted.
type APIMeta struct {
	// Timestamp is the ISO-8601 (UTC, millisecond precision) moment the
	// envelope was built.
	Timestamp string `json:"timestamp"`

	// Path is the request URI (path and query) the envelope answers.
	Path string `json:"path,omitempty"`

	// RequestID echoes the inbound X-Request-ID header when the caller sent one.
	RequestID string `json:"requestId,omitempty"`
}

// APIErrorPayload is the machine-readable part of a failed response.
type APIErrorPayload struct {
	// Code is an upper-snake machine code such as "VALIDATION_ERROR".
	Code string `json:"code"`

	// Details carries validation feedback for 400 and 422 responses only.
	Details any `json:"details,omitempty"`
}

// APIResponse is the uniform envelope returned for every HTTP response,
// success or failure.
//
// When Success is true Error is nil; when Success is false Data is nil and
// Error is set.
type APIResponse struct {
	Success    bool             `json:"success"`
	StatusCode int              `json:"statusCode"`
	Message    string           `json:"message"`
	Data       any              `json:"data"`
	Meta       APIMeta          `json:"meta"`
	Error      *APIErrorPayload `json:"error,omitempty"`
}
