// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/mrmeaow/erp-iam-secureid/internal/envelope"
	"github.com/mrmeaow/erp-iam-secureid/internal/redact"
	"github.com/mrmeaow/erp-iam-secureid/internal/utils"
	"github.com/mrmeaow/erp-iam-secureid/models"
)

// Endpoint is a request handler that returns its response value instead of
// writing it. A nil error sends the value through the response interceptor;
// a non-nil error goes to the exception normalizer.
type Endpoint func(r *http.Request) (any, error)

// excludedPaths are operational endpoints whose consumers expect raw bodies.
var excludedPaths = []string{
	"/health",
	"/metrics",
	"/docs",
	"/openapi.json",
	"/openapi.yaml",
	"/v1/health",
	"/v1/metrics",
	"/v1/docs",
}

// isExcluded reports whether uri (path plus query) is an excluded path,
// either exactly or followed by a query string.
func isExcluded(uri string) bool {
	for _, p := range excludedPaths {
		if uri == p || strings.HasPrefix(uri, p+"?") {
			return true
		}
	}
	return false
}

// SetStatus sets the in-flight status code of the response an Endpoint is
// about to return. Without it the interceptor answers 200.
func SetStatus(r *http.Request, status int) {
	if slot, ok := utils.ResponseSlotFromContext(r.Context()); ok {
		slot.Status = status
	}
}

// wrap adapts an Endpoint to an http.HandlerFunc.
func (h *Handler) wrap(endpoint Endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, slot := utils.EnsureResponseSlot(r.Context())
		r = r.WithContext(ctx)

		value, err := endpoint(r)
		if err != nil {
			h.writeError(w, r, mapError(err))
			return
		}

		h.intercept(w, r, slot, value)
	}
}

// intercept writes value as the response body:
//   - on an excluded path as raw JSON;
//   - as is when it already is an envelope;
//   - otherwise censored and wrapped by envelope.BuildSuccess.
//
// Every body but the raw one is recorded in slot.
func (h *Handler) intercept(w http.ResponseWriter, r *http.Request, slot *utils.ResponseSlot, value any) {
	status := slot.Status
	if status == 0 {
		status = http.StatusOK
	}

	var body any
	switch {
	case isExcluded(r.URL.RequestURI()):
		if _, err := utils.WriteJSON(w, value, status); err != nil {
			h.writeError(w, r, err)
		}
		return

	case isEnvelope(value):
		body = value

	default:
		data := value
		if value != nil {
			data = h.keys.Censor(value)
		}
		body = envelope.BuildSuccess(data, envelope.WithStatus(status), envelope.WithRequest(r))
	}

	if _, err := utils.WriteJSON(w, body, status); err != nil {
		h.writeError(w, r, err)
		return
	}

	slot.Status = status
	slot.Body = body
}

// isEnvelope reports whether v already is a response envelope: an
// APIResponse or any value whose JSON form is an object carrying a boolean
// "success" key.
func isEnvelope(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case models.APIResponse:
		return true
	case *models.APIResponse:
		return value != nil
	}

	object, ok := redact.Project(v).(map[string]any)
	if !ok {
		return false
	}
	_, ok = object["success"].(bool)
	return ok
}
