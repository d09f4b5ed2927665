package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api"
	"notekeeper/internal/app/server/config"
	"notekeeper/internal/infrastructure/storage/postgres"
	"notekeeper/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

// Run поднимает хранилище и HTTP-сервер и блокируется до SIGINT/SIGTERM.
func Run(cfg *config.Config, log *slog.Logger) error {
	metrics.Init()

	storage, err := postgres.New(cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer storage.Close()

	mux, err := api.New(cfg, storage, log)
	if err != nil {
		return fmt.Errorf("init api: %w", err)
	}

	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: mux,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("http server started", "address", cfg.Server.RunAddress)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("shutdown started", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}

		log.Info("shutdown complete")
	}

	return nil
}
