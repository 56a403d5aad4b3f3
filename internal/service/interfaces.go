package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mrmeaow/erp-iam-secureid/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type UserService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)
	ListUsers(ctx context.Context, page models.Page) ([]models.User, error)
}

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.AccessToken, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Hello(ctx context.Context) string
	Health(ctx context.Context) models.Health
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
