// Command chefbazaar runs the browser gateway for the ChefBazaar
// home-meal marketplace: it terminates browser sessions, attaches
// backend credentials, and shapes backend data for the dashboard UI.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SowvikSuvo/chefbazaar-gateway/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting chefbazaar gateway",
		"addr", cfg.HTTP.Addr,
		"backend", cfg.Backend.BaseURL,
		"auth_mode", cfg.Auth.Mode,
		"session_store", cfg.Sessions.Kind,
		"dev", cfg.IsDev)

	if err = bootstrap.ValidateServices(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions, err := bootstrap.BuildSessionStore(ctx, &cfg, logger)
	if err != nil {
		return err
	}
	defer sessions.Close()

	auth, err := bootstrap.BuildAuthComponents(cfg.Auth, logger)
	if err != nil {
		return err
	}

	services := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config:   &cfg,
		Sessions: sessions.Store,
		Auth:     auth,
		Logger:   logger,
	})

	return bootstrap.RunHTTPServer(ctx, &bootstrap.HTTPServerConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})
}
