package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mrmeaow/erp-iam-secureid/internal/logger"
	"github.com/mrmeaow/erp-iam-secureid/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It reads the "Authorization" header, extracts the bearer token, verifies
// it via [service.AuthService.ParseToken] and stores the authenticated
// user's ID in the request context under [utils.UserIDCtxKey].
//
// Every rejection is answered with a 401 UNAUTHORIZED envelope:
//   - the header is absent ([ErrEmptyAuthorizationHeader]);
//   - the header is not "Bearer <token>" ([ErrInvalidAuthorizationHeader]);
//   - the token is expired, has a bad signature or wrong claims.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.writeError(w, r, mapError(ErrEmptyAuthorizationHeader))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.writeError(w, r, mapError(fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			h.writeError(w, r, mapError(err))
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
