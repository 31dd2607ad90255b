package main

import (
	"fmt"
	"os"

	"github.com/gigboard/gigboard-api/config"
	"github.com/gigboard/gigboard-api/pkg/db"
	"github.com/gigboard/gigboard-api/pkg/logger"
	"go.uber.org/zap"
)

const migrationsPath = "file://migrations"

// Schema migration runner. Usage:
//
//	migrate          apply all pending migrations
//	migrate up       same as above
//	migrate down     revert the most recent migration
//	migrate version  print the current schema version
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		Environment: cfg.Server.AppEnv,
		ServiceName: "gigboard-migrate",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Database.URL == "" {
		logger.Error("DATABASE_URL is not set")
		os.Exit(1)
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	logger.Info("Running migration command",
		zap.String("command", command),
		zap.String("database", maskDatabaseURL(cfg.Database.URL)))

	switch command {
	case "up":
		if err := db.RunMigrations(cfg.Database.URL, migrationsPath); err != nil {
			logger.Error("Failed to run migrations", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("Database migrations completed successfully")

	case "down":
		if err := db.RollbackMigration(cfg.Database.URL, migrationsPath); err != nil {
			logger.Error("Failed to rollback migration", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("Rolled back one migration")

	case "version":
		version, dirty, err := db.MigrationVersion(cfg.Database.URL, migrationsPath)
		if err != nil {
			logger.Error("Failed to read migration version", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("Current schema version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty))

	default:
		logger.Error("Unknown command, expected up, down or version",
			zap.String("command", command))
		os.Exit(1)
	}
}

// maskDatabaseURL masks the password in database URL for logging
func maskDatabaseURL(url string) string {
	// Simple masking - just show we're connecting without revealing password
	if len(url) > 20 {
		return url[:20] + "***"
	}
	return "***"
}
