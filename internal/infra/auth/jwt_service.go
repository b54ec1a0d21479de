// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"lifelog/config"
	"lifelog/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// The app holds a long-lived token because there is no password login flow;
// the token is bound to the device at registration time.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    time.Hour * 24 * 90,
	}, nil
}

// GenerateToken creates a signed access token for a given user.
func (s *jwtService) GenerateToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,                             // Subject (who the token is for)
		"iat": time.Now().Unix(),                  // Issued At
		"exp": time.Now().Add(s.accessTTL).Unix(), // Expiration Time
		"typ": "access",                           // Token type
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}

// ValidateToken checks the validity of a token string against a secret.
func (s *jwtService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
}

// AccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}
