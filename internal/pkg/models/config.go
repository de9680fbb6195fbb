package models

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NATS         NATSConfig
	JWT          JWTConfig
	BasicAuth    BasicAuthConfig
	QPay         QPayConfig
	Commerce     CommerceConfig
	Notification NotificationConfig
	NewRelic     NewRelicConfig
	Logger       LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL        string
	QueueGroup string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  int // in minutes
	RefreshExpiration int // in minutes
	Issuer            string
}

// BasicAuthConfig guards the server-to-server endpoints
type BasicAuthConfig struct {
	Username string
	Password string
}

// QPayConfig contains payment gateway configuration
type QPayConfig struct {
	BaseURL         string
	Username        string
	Password        string
	InvoiceCode     string
	CallbackBaseURL string
	Timeout         int // in seconds
	MaxRetries      int
}

// CommerceConfig holds the business rules of the shop
type CommerceConfig struct {
	BaseURL              string
	GatewayFeePercent    float64
	InvoiceExpiryMinutes int
	ReportTimezone       string
	OTPExpirationSeconds int

	PasswordResetExpirationSeconds int
	SignupTokenTTLHours            int
}

// NotificationConfig contains the mail sender configuration
type NotificationConfig struct {
	Region      string
	SenderEmail string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string // stdout, file or both
}
