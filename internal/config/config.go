package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DevSecretKey is used to sign sessions when SECRET_KEY is not set.
const DevSecretKey = "a_very_secret_key_for_dev"

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the runtime settings of the service.
type Config struct {
	AppPort       string
	SecretKey     string
	SessionTTL    time.Duration
	SessionCookie string
	SecureCookies bool
	StoreDriver   string
	DatabaseDSN   string
	RabbitMQURL   string
	LogLevel      string
	LogFormat     string
}

// UsesDevSecret reports whether sessions are signed with the built-in development secret.
func (c Config) UsesDevSecret() bool {
	return c.SecretKey == DevSecretKey
}

// Load reads the configuration from the environment of v, applying defaults.
func Load(v *viper.Viper) (Config, error) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("SECRET_KEY", DevSecretKey)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_COOKIE", "session")
	v.SetDefault("SECURE_COOKIES", false)
	v.SetDefault("STORE_DRIVER", DriverMemory)
	v.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.AutomaticEnv()

	cfg := Config{
		AppPort:       v.GetString("APP_PORT"),
		SecretKey:     v.GetString("SECRET_KEY"),
		SessionTTL:    v.GetDuration("SESSION_TTL"),
		SessionCookie: v.GetString("SESSION_COOKIE"),
		SecureCookies: v.GetBool("SECURE_COOKIES"),
		StoreDriver:   v.GetString("STORE_DRIVER"),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = DevSecretKey
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.SessionCookie == "" {
		return Config{}, fmt.Errorf("SESSION_COOKIE must not be empty")
	}
	return cfg, nil
}
