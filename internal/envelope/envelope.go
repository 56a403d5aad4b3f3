// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope builds the uniform response object returned by every API
// endpoint, for both successful and failed requests.
package envelope

import (
	"net/http"
	"time"

	"github.com/mrmeaow/erp-iam-secureid/models"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// DefaultSuccessMessage is used by BuildSuccess unless overridden.
const DefaultSuccessMessage = "OK"

// now is the clock used for meta timestamps. Tests replace it.
var now = time.Now

type options struct {
	message string
	status  int
	meta    models.APIMeta
}

// Option customizes an envelope built by BuildSuccess or BuildError.
type Option func(*options)

// WithMessage overrides the default success message.
func WithMessage(message string) Option {
	return func(o *options) {
		o.message = message
	}
}

// WithStatus overrides the default success status code.
func WithStatus(status int) Option {
	return func(o *options) {
		o.status = status
	}
}

// WithMeta merges meta over the default meta. Only non-empty fields override.
func WithMeta(meta models.APIMeta) Option {
	return func(o *options) {
		if meta.Timestamp != "" {
			o.meta.Timestamp = meta.Timestamp
		}
		if meta.Path != "" {
			o.meta.Path = meta.Path
		}
		if meta.RequestID != "" {
			o.meta.RequestID = meta.RequestID
		}
	}
}

// WithRequest fills meta.path and meta.requestId from r.
func WithRequest(r *http.Request) Option {
	return WithMeta(MetaFromRequest(r))
}

// MetaFromRequest returns the meta fields carried by r: the request URI
// (path and query) and the optional X-Request-ID header.
func MetaFromRequest(r *http.Request) models.APIMeta {
	if r == nil {
		return models.APIMeta{}
	}

	meta := models.APIMeta{RequestID: r.Header.Get(RequestIDHeader)}
	if r.URL != nil {
		meta.Path = r.URL.RequestURI()
	}
	return meta
}

// RequestIDHeader is the optional correlation header echoed into meta.requestId.
const RequestIDHeader = "X-Request-ID"

// Timestamp returns the current time formatted for meta.timestamp.
func Timestamp() string {
	return now().UTC().Format(TimestampLayout)
}

func apply(defaults options, opts []Option) options {
	for _, opt := range opts {
		if opt != nil {
			opt(&defaults)
		}
	}
	return defaults
}

// BuildSuccess wraps data into a successful envelope. Message defaults to
// "OK" and status to 200.
func BuildSuccess(data any, opts ...Option) models.APIResponse {
	o := apply(options{
		message: DefaultSuccessMessage,
		status:  http.StatusOK,
		meta:    models.APIMeta{Timestamp: Timestamp()},
	}, opts)

	return models.APIResponse{
		Success:    true,
		StatusCode: o.status,
		Message:    o.message,
		Data:       data,
		Meta:       o.meta,
	}
}

// BuildError returns a failed envelope. status and code are taken as given;
// keeping them consistent is up to the caller. WithStatus and WithMessage
// have no effect here.
func BuildError(message string, status int, code string, details any, opts ...Option) models.APIResponse {
	o := apply(options{
		meta: models.APIMeta{Timestamp: Timestamp()},
	}, opts)

	return models.APIResponse{
		Success:    false,
		StatusCode: status,
		Message:    message,
		Data:       nil,
		Meta:       o.meta,
		Error: &models.APIErrorPayload{
			Code:    code,
			Details: details,
		},
	}
}
