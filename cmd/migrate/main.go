package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/geovannedomonte/vaiart/internal/config"
	"github.com/geovannedomonte/vaiart/internal/infrastructure/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	flag.Parse()
	args := flag.Args()

	if len(args) < 1 {
		zapLogger.Fatal("usage: migrate <up|down|version>")
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "file://migrations"
	}

	databaseURL := fmt.Sprintf("mysql://%s:%s@tcp(%s:%d)/%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
	)

	m, err := migrate.New(migrationsPath, databaseURL)
	if err != nil {
		zapLogger.Fatal("failed to create migrate instance", zap.Error(err))
	}
	defer func() { _, _ = m.Close() }()

	switch command := args[0]; command {
	case "up":
		err = m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			zapLogger.Info("no pending migrations")
			return
		}
		if err != nil {
			zapLogger.Fatal("migration up failed", zap.Error(err))
		}
		zapLogger.Info("migrations applied successfully")

	case "down":
		err = m.Steps(-1)
		if errors.Is(err, migrate.ErrNoChange) {
			zapLogger.Info("no migrations to rollback")
			return
		}
		if err != nil {
			zapLogger.Fatal("migration down failed", zap.Error(err))
		}
		zapLogger.Info("migration rolled back successfully")

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			zapLogger.Info("no migrations applied yet")
			return
		}
		if err != nil {
			zapLogger.Fatal("failed to get version", zap.Error(err))
		}
		zapLogger.Info("current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)

	default:
		zapLogger.Fatal("unknown command", zap.String("command", command))
	}
}
