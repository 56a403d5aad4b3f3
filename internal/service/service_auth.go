package service

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/mrmeaow/erp-iam-secureid/internal/config"
	"github.com/mrmeaow/erp-iam-secureid/internal/logger"
	"github.com/mrmeaow/erp-iam-secureid/internal/store"
	"github.com/mrmeaow/erp-iam-secureid/internal/utils"
	"github.com/mrmeaow/erp-iam-secureid/internal/validators"
	"github.com/mrmeaow/erp-iam-secureid/models"
)

const TokenTypeBearer = "Bearer"

// authService is the concrete implementation of AuthService.
// It verifies argon2id password hashes stored by the UserRepository and
// issues RS256 access tokens.
type authService struct {
	// userRepository is used to look users up by email.
	userRepository store.UserRepository

	validator validators.Validator

	// signKey signs new tokens. Nil disables login.
	signKey *rsa.PrivateKey

	// verifyKey checks inbound tokens. Nil rejects every token.
	verifyKey *rsa.PublicKey

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenAudience is the "aud" claim. Empty skips the audience check.
	tokenAudience string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.JWT, signKey *rsa.PrivateKey, verifyKey *rsa.PublicKey, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewStructValidator(),
		signKey:        signKey,
		verifyKey:      verifyKey,
		tokenIssuer:    cfg.Issuer,
		tokenAudience:  cfg.Audience,
		tokenDuration:  cfg.AccessExpiry,
		logger:         logger,
	}
}

// Login authenticates a user by email and password and issues an access token.
//
// Returns:
//   - a *validators.ValidationError when the request is malformed.
//   - ErrInvalidCredentials for an unknown email, an account without a
//     password or a wrong password.
//   - ErrNoSigningKey when no private key is loaded.
//   - ErrTokenCreationFailed when signing fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AccessToken, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AccessToken{}, fmt.Errorf("error during login validation: %w", err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Msg("login attempt for unknown email")
		return models.AccessToken{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.AccessToken{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.PasswordHash == "" {
		log.Info().Str("user_id", user.ID.String()).Msg("login attempt for account without password")
		return models.AccessToken{}, ErrInvalidCredentials
	}

	ok, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", user.ID.String()).Msg("stored password hash is unreadable")
		return models.AccessToken{}, ErrInvalidCredentials
	}
	if !ok {
		log.Info().Str("user_id", user.ID.String()).Msg("wrong password")
		return models.AccessToken{}, ErrInvalidCredentials
	}

	if a.signKey == nil {
		return models.AccessToken{}, ErrNoSigningKey
	}

	token, err := utils.GenerateJWTToken(utils.JWTParams{
		Issuer:   a.tokenIssuer,
		Audience: a.tokenAudience,
		UserID:   user.ID,
		Duration: a.tokenDuration,
	}, a.signKey)
	if err != nil {
		log.Err(err).Str("user_id", user.ID.String()).Msg("creation of token failed")
		return models.AccessToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AccessToken{
		AccessToken: token.SignedString,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   int64(a.tokenDuration / time.Second),
	}, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer or audience, malformed,
// missing key) is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.verifyKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
