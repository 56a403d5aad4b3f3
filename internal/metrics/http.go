package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mrmeaow/erp-iam-secureid/internal/utils"
	"github.com/mrmeaow/erp-iam-secureid/models"
)

// unmatchedRoute labels requests no route pattern matched, keeping raw
// paths out of the label set.
const unmatchedRoute = "unmatched"

// responseWriter wraps http.ResponseWriter to capture status code and response size
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

// HTTPMiddleware records request metrics and counts the error code of every
// error envelope left in the request's response slot.
func (m *Metrics) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		start := time.Now()

		ctx, slot := utils.EnsureResponseSlot(r.Context())
		r = r.WithContext(ctx)

		wrapped := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(wrapped, r)

		if wrapped.statusCode == 0 {
			wrapped.statusCode = http.StatusOK
		}

		route := routePattern(r)
		method := r.Method

		m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(wrapped.statusCode)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		m.HTTPResponseSize.WithLabelValues(method, route).Observe(float64(wrapped.bytesWritten))

		if code, ok := errorCode(slot.Body); ok {
			m.APIErrorsTotal.WithLabelValues(code).Inc()
		}
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}

func errorCode(body any) (string, bool) {
	var response *models.APIResponse
	switch v := body.(type) {
	case models.APIResponse:
		response = &v
	case *models.APIResponse:
		response = v
	}

	if response == nil || response.Error == nil {
		return "", false
	}
	return response.Error.Code, true
}
