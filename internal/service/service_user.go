package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrmeaow/erp-iam-secureid/internal/logger"
	"github.com/mrmeaow/erp-iam-secureid/internal/store"
	"github.com/mrmeaow/erp-iam-secureid/internal/utils"
	"github.com/mrmeaow/erp-iam-secureid/models"
)

var now = time.Now

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	uuidGenerator  *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewUserService returns a UserService that trusts its input. Wrap it with
// NewUserValidationService for anything reachable from the network.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateUser assigns a UUIDv7, hashes the password with argon2id when one
// is given and persists the account.
//
// Returns the stored user or a wrapped error; store.ErrEmailAlreadyExists
// survives the wrapping.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	createdAt := now().UTC()
	user := models.User{
		ID:        s.uuidGenerator.Generate(),
		FullName:  strings.TrimSpace(req.FullName),
		Email:     normalizeEmail(req.Email),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
		}
		user.PasswordHash = hash
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID.String()).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", created.ID.String()).Msg("user created")
	return created, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, page models.Page) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}
	return users, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
