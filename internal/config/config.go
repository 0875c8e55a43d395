// Package config defines the application configuration and its loader.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Payment  PaymentConfig  `mapstructure:"payment"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs session tokens; it must be long enough for HMAC-SHA256.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the session token lifetime (default 60).
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// BcryptCost is the cost factor for password hashing.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"required,gte=4,lte=31"`
}

// PaymentConfig contains the external payment provider settings.
type PaymentConfig struct {
	KeyID     string `mapstructure:"key_id"     validate:"required"`
	KeySecret string `mapstructure:"key_secret" validate:"required"`

	// PlanID is the plan every subscription is created against.
	PlanID string `mapstructure:"plan_id" validate:"required"`

	// TotalCount is the number of billing cycles per subscription.
	TotalCount int `mapstructure:"total_count" validate:"required,gt=0"`

	// StartDelaySeconds offsets a new subscription's start time into the
	// future so the create request settles before the first charge attempt.
	StartDelaySeconds int `mapstructure:"start_delay_seconds" validate:"gte=0"`

	// RequestTimeoutSeconds bounds each provider API call.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gt=0"`
}
