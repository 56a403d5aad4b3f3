package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrmeaow/erp-iam-secureid/internal/apperr"
	"github.com/mrmeaow/erp-iam-secureid/internal/redact"
	"github.com/mrmeaow/erp-iam-secureid/internal/utils"
)

// makeRequest creates a test request whose context carries a logger
// writing to buf, the way withTraceID does it.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry), "log: %s", buf.String())
	return entry
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		path            string
		handlerStatus   int
		handlerResponse string
		wantLevel       string
		wantStatus      float64
		wantSize        float64
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/test?x=1",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			wantLevel:       "info",
			wantStatus:      200,
			wantSize:        2,
		},
		{
			name:            "POST 201",
			method:          http.MethodPost,
			path:            "/v1/users",
			handlerStatus:   http.StatusCreated,
			handlerResponse: "Created",
			wantLevel:       "info",
			wantStatus:      201,
			wantSize:        7,
		},
		{
			name:          "404 logs a warning",
			method:        http.MethodGet,
			path:          "/missing",
			handlerStatus: http.StatusNotFound,
			wantLevel:     "warn",
			wantStatus:    404,
		},
		{
			name:          "500 logs an error",
			method:        http.MethodGet,
			path:          "/broken",
			handlerStatus: http.StatusInternalServerError,
			wantLevel:     "error",
			wantStatus:    500,
		},
		{
			name:       "no explicit status",
			method:     http.MethodGet,
			path:       "/silent",
			wantLevel:  "info",
			wantStatus: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, makeRequest(tt.method, tt.path, &buf))

			entry := lastEntry(t, &buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["uri"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
			assert.NotContains(t, entry, "body", "nothing was recorded in the slot")
		})
	}
}

func TestWithLogging_BodyIsRedacted(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()

	endpoint := h.wrap(func(r *http.Request) (any, error) {
		return map[string]any{"full_name": "Jane", "token": "secret-token"}, nil
	})

	rec := httptest.NewRecorder()
	h.withLogging(endpoint).ServeHTTP(rec, makeRequest(http.MethodGet, "/v1/users/1", &buf))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, buf.String(), "secret-token")

	body, ok := lastEntry(t, &buf)["body"].(map[string]any)
	require.True(t, ok, "body must be embedded as JSON")
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"full_name": "Jane", "token": redact.Redacted}, body["data"])
}

func TestWithLogging_PrebuiltEnvelopeIsRedactedInLog(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()

	endpoint := h.wrap(func(r *http.Request) (any, error) {
		return map[string]any{
			"success": true,
			"data":    map[string]any{"access_token": "signed.jwt"},
		}, nil
	})

	rec := httptest.NewRecorder()
	h.withLogging(endpoint).ServeHTTP(rec, makeRequest(http.MethodPost, "/v1/auth/login", &buf))

	assert.Contains(t, rec.Body.String(), "signed.jwt", "client receives the token")
	assert.NotContains(t, buf.String(), "signed.jwt", "log never does")
}

func TestWithLogging_ErrorEnvelopeIsLogged(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()

	endpoint := h.wrap(func(r *http.Request) (any, error) {
		return nil, apperr.Conflict("email already exists")
	})

	rec := httptest.NewRecorder()
	h.withLogging(endpoint).ServeHTTP(rec, makeRequest(http.MethodPost, "/v1/users", &buf))

	require.Equal(t, http.StatusConflict, rec.Code)

	entry := lastEntry(t, &buf)
	body := entry["body"].(map[string]any)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, apperr.CodeConflict, body["error"].(map[string]any)["code"])
}

func TestWithLogging_ReusesExistingSlot(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()

	req := makeRequest(http.MethodGet, "/v1", &buf)
	ctx, outer := utils.WithResponseSlot(req.Context())

	var inner *utils.ResponseSlot
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner, _ = utils.ResponseSlotFromContext(r.Context())
	})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))

	assert.Same(t, outer, inner)
}
