package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mrmeaow/erp-iam-secureid/models"
)

var (
	ErrInvalidJWTParams  = errors.New("invalid params for generating JWT Token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header")
	ErrEmptyTokenSubject = errors.New("empty subject error")
	ErrNoVerificationKey = errors.New("no public key configured for token verification")
)

// JWTParams describes an access token to issue.
type JWTParams struct {
	Issuer   string
	Audience string
	UserID   uuid.UUID
	Duration time.Duration
}

// GenerateJWTToken creates an RS256-signed JWT for the given user.
//
// The token includes the following standard claims:
//   - Issuer    (iss)
//   - Audience  (aud)
//   - Subject   (sub): the user ID
//   - ID        (jti): a random UUID
//   - IssuedAt  (iat) and ExpiresAt (exp)
//
// Issuer, a non-zero duration and the signing key are required.
func GenerateJWTToken(params JWTParams, signKey *rsa.PrivateKey) (models.Token, error) {
	if params.Issuer == "" || params.Duration <= 0 || signKey == nil {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    params.Issuer,
		Subject:   params.UserID.String(),
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	if params.Audience != "" {
		claims.Audience = jwt.ClaimStrings{params.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tokenString, err := token.SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		UserID:           params.UserID,
	}, nil
}

// ValidateAndParseJWTToken verifies the RS256 signature, expiry, issuer
// and (when non-empty) audience of tokenString, then extracts the user ID
// from the subject claim.
func ValidateAndParseJWTToken(tokenString string, verifyKey *rsa.PublicKey, issuer, audience string) (models.Token, error) {
	if verifyKey == nil {
		return models.Token{}, ErrNoVerificationKey
	}

	opts := []jwt.ParserOption{
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return verifyKey, nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if parsed.Subject == "" {
		return models.Token{}, ErrEmptyTokenSubject
	}

	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	parsed.UserID = userID

	return *parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>" header.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthHeader
	}
	return parts[1], nil
}
