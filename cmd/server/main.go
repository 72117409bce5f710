package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirasaad/bankdash/infra/initializer"
	"github.com/amirasaad/bankdash/pkg/app"
	"github.com/amirasaad/bankdash/pkg/config"
	"github.com/amirasaad/bankdash/webapi"
	log "github.com/charmbracelet/log"
)

//go:generate swag init -g main.go -d .,../../webapi,../../pkg -o swagger --outputTypes go

// @title Banking Analytics API
// @version 1.0.0
// @description Banking analytics dashboard API documentation
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies; the dataset is in place once this returns
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	a := app.New(deps, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		_ = a.Shutdown(context.Background())
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serve(ctx, a, ln, cfg.Server.ShutdownTimeout, logger)
}

// serve runs the HTTP server on ln until ctx is cancelled, then drains
// in-flight requests and stops the application within timeout.
func serve(ctx context.Context, a *app.App, ln net.Listener, timeout time.Duration, logger *slog.Logger) error {
	fiberApp := webapi.SetupApp(a)

	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listener(ln)
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-ctx.Done():
		logger.Info("Shutting down server")
		serveErr = fiberApp.ShutdownWithTimeout(timeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return errors.Join(serveErr, a.Shutdown(shutdownCtx))
}
