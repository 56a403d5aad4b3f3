package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mrmeaow/erp-iam-secureid/internal/validators"
	"github.com/mrmeaow/erp-iam-secureid/models"
)

// UserValidationService checks inbound DTOs before they reach the wrapped
// UserService. Failures carry a *validators.ValidationError.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before saving: %w", err)
	}

	return v.inner.CreateUser(ctx, req)
}

func (v *UserValidationService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	if id == uuid.Nil {
		return models.User{}, fmt.Errorf("%w: empty user id", ErrInvalidDataProvided)
	}

	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	return v.inner.ListUsers(ctx, page)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
