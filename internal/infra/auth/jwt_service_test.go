package auth

import (
	"testing"
	"time"

	"lifelog/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	secret := "test-access-secret"
	svc, err := NewJWTService(newTestJWTConfig(secret))
	require.NoError(t, err)

	userID := uuid.New()
	tokenString, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.ValidateToken(tokenString, secret)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "access", claims["typ"])
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("correct-secret"))
	require.NoError(t, err)

	tokenString, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString, "wrong-secret")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsUnsignedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-access-secret"))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString, "test-access-secret")
	assert.Error(t, err)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-access-secret"))
	require.NoError(t, err)

	assert.Equal(t, 90*24*time.Hour, svc.AccessTokenDuration())
}
