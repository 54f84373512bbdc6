package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// envPrefix namespaces every environment variable read by the loader,
// e.g. NEWSHUB_SERVER_PORT, NEWSHUB_DATABASE_URL.
const envPrefix = "NEWSHUB"

// Load reads configuration from an optional .env file, an optional
// config.yaml in the working directory, and the environment. Environment
// variables take precedence over file values. The result is validated
// before being returned.
func Load() (*Config, error) {
	// A local .env is a development convenience; absence is not an error.
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.port", 9090)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	// The empty default registers the key so AutomaticEnv can fill it
	// during Unmarshal; validation rejects it if it stays empty.
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.migrate_on_start", false)
	v.SetDefault("database.migrations_dir", "migrations")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
