package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stoykov15/lifeos/internal/api"
	"github.com/stoykov15/lifeos/internal/infrastructure/config"
	"github.com/stoykov15/lifeos/internal/infrastructure/db/postgres"
	"github.com/stoykov15/lifeos/pkg/logger"
)

const (
	shutdownTimeout = 10 * time.Second

	// insecureDevSecret keeps local development working without a .env file.
	// Startup refuses it outside development.
	insecureDevSecret = "secret"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})
	log := logger.Get()

	if cfg.SecretKey == "" {
		if cfg.IsProduction() {
			log.Fatal().Msg("SECRET_KEY must be set in production")
		}
		log.Warn().Msg("SECRET_KEY not set, using insecure development default")
		cfg.SecretKey = insecureDevSecret
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.Migrate(ctx, cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("running migrations")
	}

	pool, err := postgres.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to postgres")
	}
	defer pool.Close()

	e := api.NewRouter(pool, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
