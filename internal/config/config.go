// Package config defines the application's configuration surface and its
// loader. Settings come from an optional config file, a local .env file,
// and NEWSHUB_-prefixed environment variables, with the environment taking
// precedence.
package config

// Config holds all application configuration, organized into logical
// groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`
}

// DatabaseConfig contains all database-related configuration settings.
// The connection pool is sized here; stores only borrow connections per
// query and never manage lifecycles themselves.
type DatabaseConfig struct {
	URL            string `mapstructure:"url" validate:"required"`
	MaxOpenConns   int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns   int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	MigrateOnStart bool   `mapstructure:"migrate_on_start"`
	MigrationsDir  string `mapstructure:"migrations_dir"`
}
