package http

import (
	"errors"
	"net/http"

	"github.com/mrmeaow/erp-iam-secureid/internal/apperr"
	"github.com/mrmeaow/erp-iam-secureid/internal/service"
	"github.com/mrmeaow/erp-iam-secureid/internal/store"
	"github.com/mrmeaow/erp-iam-secureid/internal/validators"
)

// errorStatusMap lists the domain errors a client may see. Anything else
// stays a generic error and ends up as a 500.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNoSigningKey:            http.StatusServiceUnavailable,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidUserID:              http.StatusBadRequest,
	ErrInvalidPage:                http.StatusBadRequest,
	ErrNoUserInContext:            http.StatusUnauthorized,
}

// mapError converts err into an *apperr.HTTPError when it is a known domain
// error, keeping err as the cause. Unknown errors are returned unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *apperr.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return apperr.Validation(validationErr.Messages...).Wrap(err)
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if status == http.StatusBadRequest {
				return apperr.BadRequest(target.Error()).Wrap(err)
			}
			return apperr.NewHTTPError(status, target.Error()).Wrap(err)
		}
	}

	return err
}
