package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/angeloszaimis/client-greeter/config"
	"github.com/angeloszaimis/client-greeter/internal/httpserver"
	"github.com/angeloszaimis/client-greeter/internal/identity"
	"github.com/angeloszaimis/client-greeter/internal/metrics"
	"github.com/angeloszaimis/client-greeter/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, true, cfg.Server.Environment)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Server stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	collector := metrics.NewCollector(cfg.Metrics.BufferSize, log)
	collector.Start(ctx)

	// identity.Stub performs no authorization; swap it for a real extractor.
	r := setupRouter(log, identity.Stub, collector)

	srv, err := httpserver.New(cfg.Server.Address, r)
	if err != nil {
		return err
	}

	if err := srv.Listen(); err != nil {
		return err
	}

	log.Debug("listening", slog.String("addr", srv.Addr()))

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Serve()
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", slog.Any("err", err))
			return err
		}
		return <-srvErrCh
	case err := <-srvErrCh:
		return err
	}
}
