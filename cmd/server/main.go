package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventflow/config"
	"eventflow/internal/artifact"
	"eventflow/internal/auth"
	"eventflow/internal/cache"
	"eventflow/internal/database"
	"eventflow/internal/handler"
	"eventflow/internal/notify"
	"eventflow/internal/repository"
	"eventflow/internal/service"
	"eventflow/internal/storage"
	"eventflow/pkg/logger"
	"eventflow/pkg/validator"

	"go.uber.org/zap"
)

func main() {
	log := logger.WithComponent("main")
	defer logger.L.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}
	if err := validator.Register(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.Migrate(migrateCtx, pool)
	cancelMigrate()
	if err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	blobs, err := storage.NewOSBlobStore(cfg.Storage.Root)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	tx := database.NewTransactor(pool)
	eventRepo := repository.NewEventRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)

	services := handler.Services{
		Events: service.NewEventService(tx, eventRepo, blobs, artifact.NewQRGenerator(cfg.Server.PublicBaseURL)),
		Registrations: service.NewRegistrationService(
			tx,
			eventRepo,
			blobs,
			artifact.NewTicketRenderer(),
			notify.NewNotifier(cfg.Mail),
			cfg.Mail.From,
		),
		Accounts: service.NewAccountService(
			tx,
			userRepo,
			profileRepo,
			auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
			cache.NewRedisSessionStore(rdb),
		),
		Profiles: service.NewProfileService(profileRepo, eventRepo),
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler.NewRouter(cfg.Server, services),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-signals:
		log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("Server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down server", zap.Error(err))
	}
	log.Info("Shutdown complete")
}
