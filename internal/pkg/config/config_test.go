package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SC_STRING", "value")
	t.Setenv("SC_INT", "42")
	t.Setenv("SC_BAD_INT", "forty-two")
	t.Setenv("SC_BOOL", "true")
	t.Setenv("SC_FLOAT", "1.5")

	assert.Equal(t, "value", GetEnv("SC_STRING", "default"))
	assert.Equal(t, "default", GetEnv("SC_MISSING", "default"))
	assert.Equal(t, 42, GetEnvAsInt("SC_INT", 0))
	assert.Equal(t, 7, GetEnvAsInt("SC_BAD_INT", 7))
	assert.True(t, GetEnvAsBool("SC_BOOL", false))
	assert.Equal(t, 1.5, GetEnvAsFloat("SC_FLOAT", 0))
	assert.Equal(t, 2.5, GetEnvAsFloat("SC_MISSING", 2.5))
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("GATEWAY_FEE_PERCENT", "2")
	t.Setenv("QPAY_CALLBACK_BASE_URL", "https://api.example.com")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, 2.0, cfg.Commerce.GatewayFeePercent)
	assert.Equal(t, "https://api.example.com", cfg.QPay.CallbackBaseURL)
	assert.Equal(t, 15, cfg.Commerce.InvoiceExpiryMinutes)
	assert.Equal(t, "Asia/Ulaanbaatar", cfg.Commerce.ReportTimezone)
	assert.Equal(t, 24*60, cfg.JWT.AccessExpiration)
	assert.Equal(t, 120, cfg.Commerce.OTPExpirationSeconds)
	assert.Equal(t, 300, cfg.Commerce.PasswordResetExpirationSeconds)
	assert.Equal(t, 72, cfg.Commerce.SignupTokenTTLHours)
}
