package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ashish-Code-01/internshp-project/internal"
	"github.com/Ashish-Code-01/internshp-project/internal/api"
	"github.com/Ashish-Code-01/internshp-project/internal/auth"
	"github.com/Ashish-Code-01/internshp-project/internal/config"
	"github.com/Ashish-Code-01/internshp-project/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interns, achievements, closer, err := storage.NewRepositories(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.StorageBackend, err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warnf("close storage: %v", err)
		}
	}()

	authority, err := auth.NewAuthority(cfg.JWTSecret, cfg.CurrentInternID, logger)
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}

	app := api.NewApplication(cfg, logger, interns, achievements, authority)
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: api.NewRouter(app),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Server running on %s (storage=%s)", cfg.Addr(), cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
