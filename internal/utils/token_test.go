package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lighty7/Finances-backend/config"
)

func tokenTestConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := tokenTestConfig()

	token, err := GenerateToken(cfg, 7, "user@example.com", "dev-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken(cfg, token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "user@example.com", claims.EmailID)
	assert.Equal(t, "dev-1", claims.DeviceID)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateTokenIsUnique(t *testing.T) {
	cfg := tokenTestConfig()

	first, err := GenerateToken(cfg, 7, "user@example.com", "dev-1")
	assert.NoError(t, err)
	second, err := GenerateToken(cfg, 7, "user@example.com", "dev-1")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := tokenTestConfig()
	cfg.JWTExpiry = -time.Minute

	token, err := GenerateToken(cfg, 7, "user@example.com", "dev-1")
	assert.NoError(t, err)

	_, err = ValidateToken(cfg, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := tokenTestConfig()

	token, err := GenerateToken(cfg, 7, "user@example.com", "dev-1")
	assert.NoError(t, err)

	other := tokenTestConfig()
	other.JWTSecret = "different-secret"
	_, err = ValidateToken(other, token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken(tokenTestConfig(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
