package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrmeaow/erp-iam-secureid/internal/logger"
	"github.com/mrmeaow/erp-iam-secureid/internal/utils"
)

// withLogging writes one access log entry per request. The entry carries
// the body recorded in the request's response slot, censored by the key set
// and embedded as raw JSON under "body".
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		ctx, slot := utils.EnsureResponseSlot(r.Context())

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r.WithContext(ctx))

		duration := time.Since(start)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		event := levelForStatus(log, status)
		event.
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size)

		if slot.Body != nil {
			body, err := h.keys.SafeSerialize(slot.Body)
			if err != nil {
				event.AnErr("body_error", err)
			} else {
				event.RawJSON("body", body)
			}
		}

		event.Send()
	})
}

func levelForStatus(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
