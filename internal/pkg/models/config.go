package models

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Rates    RatesConfig
	Limits   LimitsConfig
	SMS      SMSConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// RatesConfig holds exchange-rate provider configuration
type RatesConfig struct {
	// SourceURL is the market-rate API endpoint; the base currency is appended.
	SourceURL string
	// Spread is the absolute margin subtracted from the market rate to form
	// the sell rate.
	Spread float64
	// FeePercentage is reported to clients alongside quotes.
	FeePercentage float64
	// DefaultRate is used for transaction creation when no rate has ever been
	// persisted for the pair. Availability over precision.
	DefaultRate float64
	// MarketCacheTTLSeconds bounds the Redis market-rate cache.
	MarketCacheTTLSeconds int
	// AlertIntervalMinutes is the rate-alert sweep interval.
	AlertIntervalMinutes int
}

// LimitsConfig holds daily spend-limit configuration
type LimitsConfig struct {
	// GHSDivisor converts GHS amounts to reference units for limit checks.
	// This is a static approximation, intentionally distinct from the live
	// rate used for conversion.
	GHSDivisor float64
}

// SMSConfig holds the outbound SMS gateway configuration
type SMSConfig struct {
	GatewayURL string
	SenderID   string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
