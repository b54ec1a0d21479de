package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating the access
// tokens the mobile app presents on authenticated API calls.
type TokenService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks a token string against the given secret and
	// returns the parsed token.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
