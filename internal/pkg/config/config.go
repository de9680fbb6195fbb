package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/piresc/socialclub/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "socialclub")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 30)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")
	configs.NATS.QueueGroup = GetEnv("NATS_QUEUE_GROUP", "notifier")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.AccessExpiration = GetEnvAsInt("JWT_ACCESS_EXPIRATION", 24*60)
	configs.JWT.RefreshExpiration = GetEnvAsInt("JWT_REFRESH_EXPIRATION", 30*24*60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "socialclub")

	// Basic auth config
	configs.BasicAuth.Username = GetEnv("BASIC_AUTH_USERNAME", "")
	configs.BasicAuth.Password = GetEnv("BASIC_AUTH_PASSWORD", "")

	// QPay config
	configs.QPay.BaseURL = GetEnv("QPAY_BASE_URL", "https://merchant.qpay.mn")
	configs.QPay.Username = GetEnv("QPAY_USERNAME", "")
	configs.QPay.Password = GetEnv("QPAY_PASSWORD", "")
	configs.QPay.InvoiceCode = GetEnv("QPAY_INVOICE_CODE", "")
	configs.QPay.CallbackBaseURL = GetEnv("QPAY_CALLBACK_BASE_URL", "")
	configs.QPay.Timeout = GetEnvAsInt("QPAY_TIMEOUT", 15)
	configs.QPay.MaxRetries = GetEnvAsInt("QPAY_MAX_RETRIES", 3)

	// Commerce config
	configs.Commerce.BaseURL = GetEnv("BASE_URL", "")
	configs.Commerce.GatewayFeePercent = GetEnvAsFloat("GATEWAY_FEE_PERCENT", 1.0)
	configs.Commerce.InvoiceExpiryMinutes = GetEnvAsInt("INVOICE_EXPIRY_MINUTES", 15)
	configs.Commerce.ReportTimezone = GetEnv("REPORT_TIMEZONE", "Asia/Ulaanbaatar")
	configs.Commerce.OTPExpirationSeconds = GetEnvAsInt("OTP_EXPIRATION_SECONDS", 120)
	configs.Commerce.PasswordResetExpirationSeconds = GetEnvAsInt("PASSWORD_RESET_EXPIRATION_SECONDS", 300)
	configs.Commerce.SignupTokenTTLHours = GetEnvAsInt("SIGNUP_TOKEN_TTL_HOURS", 72)

	// Notification config
	configs.Notification.Region = GetEnv("AWS_REGION", "ap-southeast-1")
	configs.Notification.SenderEmail = GetEnv("MAIL_SENDER", "")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LogsEnabled = GetEnvAsBool("NEW_RELIC_LOGS_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/socialclub.log")
	configs.Logger.Type = GetEnv("LOG_TYPE", "stdout")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
