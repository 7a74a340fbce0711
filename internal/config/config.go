// Package config manages environment variables.
//
// It reads variables from the process environment (optionally loaded
// from a `.env` file), maps them into structured Go types, and
// validates that required values are present so the app fails fast on
// bad or missing config.
//
// Env vars use the STUDENTAPI_ prefix; nesting is expressed with a
// double underscore:
//
//	STUDENTAPI_SERVER__PORT          -> server.port
//	STUDENTAPI_DATABASE__MAX_OPEN_CONNS -> database.max_open_conns
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a .env file into the process env before
	// anything reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from; the
// `validate:"required"` tags enforce presence via go-playground/validator.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Redis    RedisConfig    `koanf:"redis" validate:"required"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch behavior (e.g. SQL query logging in "local").
type Primary struct {
	Env      string `koanf:"env" validate:"required"`
	LogLevel string `koanf:"log_level"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimitPerMinute caps requests per client IP per minute.
	// Zero disables rate limiting.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details; Address is "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// envPrefix is stripped from env var names before mapping into koanf keys.
const envPrefix = "STUDENTAPI_"

// Load reads configuration from environment variables, unmarshals it
// into Config, and validates it.
//
// Key mapping: the prefix is stripped, the name is lowercased, and each
// double underscore becomes the koanf nesting delimiter, so leaf keys
// may still contain single underscores.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
