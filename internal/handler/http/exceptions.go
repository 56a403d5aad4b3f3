package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/mrmeaow/erp-iam-secureid/internal/apperr"
	"github.com/mrmeaow/erp-iam-secureid/internal/envelope"
	"github.com/mrmeaow/erp-iam-secureid/internal/logger"
	"github.com/mrmeaow/erp-iam-secureid/internal/utils"
)

// writeError is the single terminal handler for failures. v may be an
// error, an *apperr.HTTPError or any recovered panic value; it is
// classified, normalized and written as an error envelope, which is also
// recorded in the request's response slot.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, v any) {
	failure := apperr.Classify(v)
	if generic, ok := failure.(apperr.GenericError); ok {
		logger.FromRequest(r).Error().
			Err(generic.Err).
			Str("uri", r.URL.RequestURI()).
			Msg("unhandled error")
	}

	n := apperr.Normalize(failure)
	body := envelope.BuildError(n.Message, n.Status, n.Code, n.Details, envelope.WithRequest(r))

	if _, err := utils.WriteJSON(w, body, n.Status); err != nil {
		// details could not be encoded
		logger.FromRequest(r).Err(err).Msg("error envelope is not serializable")
		n = apperr.Internal()
		body = envelope.BuildError(n.Message, n.Status, n.Code, nil, envelope.WithRequest(r))
		_, _ = utils.WriteJSON(w, body, n.Status)
	}

	if slot, ok := utils.ResponseSlotFromContext(r.Context()); ok {
		slot.Status = n.Status
		slot.Body = body
	}
}

// withRecovery turns a panic anywhere below it into an error envelope and
// logs the panic value with the goroutine stack.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Str("stack", string(debug.Stack())).
				Str("uri", r.URL.RequestURI()).
				Msg("recovered from panic")

			h.writeError(w, r, rec)
		}()

		next.ServeHTTP(w, r)
	})
}

// notFound answers unknown routes the way unsupported methods are answered.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, apperr.NotFound(fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path)))
}
