// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// MessageSeparator joins a list of messages into a single client message.
const MessageSeparator = "; "

// Body is the structured payload of an HTTPError. On the wire "message" is
// an array when Messages is set and a string otherwise.
type Body struct {
	Message    string
	Messages   []string
	Error      string
	StatusCode int
}

type bodyJSON struct {
	Message    any    `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (b Body) MarshalJSON() ([]byte, error) {
	out := bodyJSON{Error: b.Error, StatusCode: b.StatusCode}
	switch {
	case b.Messages != nil:
		out.Message = b.Messages
	case b.Message != "":
		out.Message = b.Message
	}
	return json.Marshal(out)
}

// Text returns the messages joined with MessageSeparator, or Message when
// no list is set.
func (b Body) Text() string {
	if b.Messages != nil {
		return strings.Join(b.Messages, MessageSeparator)
	}
	return b.Message
}

// HTTPError is an error that carries an explicit status code and a response
// payload. Payload is either a plain string or a Body.
type HTTPError struct {
	Status  int
	Payload any
	Err     error
}

// NewHTTPError returns an HTTPError whose payload is the plain message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Payload: message}
}

// NewHTTPErrorWithBody returns an HTTPError with a structured payload.
func NewHTTPErrorWithBody(status int, body Body) *HTTPError {
	return &HTTPError{Status: status, Payload: body}
}

// Wrap attaches the underlying cause. The cause is never shown to clients.
func (e *HTTPError) Wrap(err error) *HTTPError {
	e.Err = err
	return e
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch p := e.Payload.(type) {
	case string:
		return p
	case Body:
		if text := p.Text(); text != "" {
			return text
		}
	case *Body:
		if p != nil && p.Text() != "" {
			return p.Text()
		}
	}

	if text := http.StatusText(e.Status); text != "" {
		return text
	}
	return fmt.Sprintf("http error %d", e.Status)
}

func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BadRequest returns a 400 error with a structured body so the payload is
// echoed back as details.
func BadRequest(message string) *HTTPError {
	return NewHTTPErrorWithBody(http.StatusBadRequest, Body{
		Message:    message,
		Error:      http.StatusText(http.StatusBadRequest),
		StatusCode: http.StatusBadRequest,
	})
}

// Validation returns a 422 error listing every failed constraint.
func Validation(messages ...string) *HTTPError {
	if messages == nil {
		messages = []string{}
	}
	return NewHTTPErrorWithBody(http.StatusUnprocessableEntity, Body{
		Messages:   messages,
		Error:      http.StatusText(http.StatusUnprocessableEntity),
		StatusCode: http.StatusUnprocessableEntity,
	})
}

func Unauthorized(message string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, message)
}

func Forbidden(message string) *HTTPError {
	return NewHTTPError(http.StatusForbidden, message)
}

func NotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

func Conflict(message string) *HTTPError {
	return NewHTTPError(http.StatusConflict, message)
}

func TooManyRequests(message string) *HTTPError {
	return NewHTTPError(http.StatusTooManyRequests, message)
}

func ServiceUnavailable(message string) *HTTPError {
	return NewHTTPError(http.StatusServiceUnavailable, message)
}
