package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:            "test-secret",
		AccessExpiration:  60,
		RefreshExpiration: 60 * 24,
		Issuer:            "socialclub-test",
	}
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	cfg := testConfig()

	token, expiresAt, err := GenerateAccessToken("c-1", "buyer@example.com", cfg)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "c-1", claims.CustomerID)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.False(t, claims.Refresh)
}

func TestGenerateRefreshToken(t *testing.T) {
	cfg := testConfig()

	token, expiresAt, err := GenerateRefreshToken("c-1", "buyer@example.com", cfg)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.True(t, claims.Refresh)
}

func TestValidateToken_Invalid(t *testing.T) {
	cfg := testConfig()
	valid, _, err := GenerateAccessToken("c-1", "buyer@example.com", cfg)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "c-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	expiredString, err := expired.SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	noID := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "buyer@example.com",
		"exp":   time.Now().Add(time.Minute).Unix(),
	})
	noIDString, err := noID.SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other-secret"},
		{"malformed", "not.a.token", cfg.Secret},
		{"expired", expiredString, cfg.Secret},
		{"missing id", noIDString, cfg.Secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}
