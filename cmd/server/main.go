package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/geovannedomonte/vaiart/internal/auth"
	"github.com/geovannedomonte/vaiart/internal/catalog"
	"github.com/geovannedomonte/vaiart/internal/commons"
	"github.com/geovannedomonte/vaiart/internal/config"
	"github.com/geovannedomonte/vaiart/internal/infrastructure/logger"
	"github.com/geovannedomonte/vaiart/internal/infrastructure/mysql"
	"github.com/geovannedomonte/vaiart/internal/order"
	"github.com/geovannedomonte/vaiart/internal/scheduling"
	"github.com/geovannedomonte/vaiart/internal/server"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	authModule := auth.NewModule(db, cfg.Auth, zapLogger)
	catalogCtrl := catalog.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, zapLogger)
	schedulingCtrl := scheduling.NewModule(db, zapLogger)

	bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authModule.Service.EnsureAdmin(bootstrapCtx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		zapLogger.Fatal("ensuring admin user", zap.Error(err))
	}
	cancelBootstrap()

	router := server.NewRouter(server.Controllers{
		Auth:         authModule,
		Catalog:      catalogCtrl,
		Orders:       orderCtrl,
		Appointments: schedulingCtrl,
	}, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

// loadConfig prefers a yaml file when CONFIG_FILE is set and falls back
// to environment variables.
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
