// Package main implements the entry point for the NewsHub API server,
// a forum-style backend serving topics, articles, comments and users.
package main

import (
	"fmt"
	"log"

	"github.com/newshub/newshub/internal/config"
	"github.com/newshub/newshub/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.serve(); err != nil {
		app.logger.Error("Server exited with error", "error", err)
		app.cleanup()
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to the
// database, optionally runs migrations, and wires the application's
// stores, resolvers and handlers.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_format", cfg.Server.LogFormat)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if cfg.Database.MigrateOnStart {
		if err := runMigrations(db, cfg.Database.MigrationsDir); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return newApplication(cfg, appLogger, db)
}
