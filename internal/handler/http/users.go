package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mrmeaow/erp-iam-secureid/internal/utils"
	"github.com/mrmeaow/erp-iam-secureid/models"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// createUser handles POST /v1/users and answers 201 with the stored user.
// The password hash is removed from the response by the interceptor.
func (h *Handler) createUser(r *http.Request) (any, error) {
	var req models.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	user, err := h.services.UserService.CreateUser(r.Context(), req)
	if err != nil {
		return nil, err
	}

	SetStatus(r, http.StatusCreated)
	return user, nil
}

// listUsers handles GET /v1/users?limit=&offset=.
func (h *Handler) listUsers(r *http.Request) (any, error) {
	page, err := pageFromQuery(r)
	if err != nil {
		return nil, err
	}

	return h.services.UserService.ListUsers(r.Context(), page)
}

func (h *Handler) getUser(r *http.Request) (any, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUserID, err)
	}

	return h.services.UserService.GetUser(r.Context(), id)
}

// me returns the user the bearer token was issued to.
func (h *Handler) me(r *http.Request) (any, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return nil, ErrNoUserInContext
	}

	return h.services.UserService.GetUser(r.Context(), userID)
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return ErrInvalidJSON
	}
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrInvalidJSON
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func pageFromQuery(r *http.Request) (models.Page, error) {
	var page models.Page
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return page, fmt.Errorf("%w: limit must be a non-negative integer", ErrInvalidPage)
		}
		page.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return page, fmt.Errorf("%w: offset must be a non-negative integer", ErrInvalidPage)
		}
		page.Offset = offset
	}

	return page, nil
}
