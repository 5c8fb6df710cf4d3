package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/parvezislam45/inventory/internal/config"
	"github.com/parvezislam45/inventory/internal/infra"
	"github.com/parvezislam45/inventory/internal/router"
	"github.com/parvezislam45/inventory/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger — dev: pretty, prod: JSON
	log.Logger = infra.NewLogger(cfg.Env, os.Stderr)

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r, stockSvc := router.New(cfg, db, rdb)

	// Start goroutine worker pool for async tasks (daily summary rebuilds).
	// Handlers are wired here, the composition root, so the pool never has to
	// import the service layer.
	worker.StartWorkerPool(ctx, rdb, worker.Handlers{Summary: stockSvc}, cfg.WorkerPoolSize)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("inventory backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
