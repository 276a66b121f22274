package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values for local development, mirroring the documented fallbacks:
// the service listens on 5000, talks to a local database and allows the
// local frontend dev server origin.
const (
	defaultPort           = 5000
	defaultLogLevel       = "info"
	defaultDatabaseURL    = "postgres://localhost:5432/ami?sslmode=disable"
	defaultFrontendOrigin = "http://localhost:5173"
)

// Load reads configuration from environment variables and an optional
// config file. Environment variables (prefixed with AMI_) take precedence
// over values from the config file, which take precedence over defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("database.url", defaultDatabaseURL)
	v.SetDefault("cors.frontend_origin", defaultFrontendOrigin)

	// Optional config file in the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment variables: AMI_SERVER_PORT, AMI_DATABASE_URL, ...
	v.SetEnvPrefix("AMI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
