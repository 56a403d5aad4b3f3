package http

import (
	"net/http"

	"github.com/mrmeaow/erp-iam-secureid/internal/envelope"
	"github.com/mrmeaow/erp-iam-secureid/models"
)

// login handles POST /v1/auth/login.
//
// The envelope is built here rather than by the interceptor: the access
// token must reach the client, and pre-built envelopes are not censored.
// The access log still censors it.
func (h *Handler) login(r *http.Request) (any, error) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return envelope.BuildSuccess(token,
		envelope.WithMessage("Login successful"),
		envelope.WithRequest(r),
	), nil
}
