// Command app runs the Bitrix24 bot webhook bridge: it receives bot
// events from a portal, reports message details, and echoes replies back
// through the Bitrix24 REST API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cultiv-ai/b24bridge/internal/bitrix"
	"github.com/cultiv-ai/b24bridge/internal/bootstrap"
	"github.com/cultiv-ai/b24bridge/internal/config"
	"github.com/cultiv-ai/b24bridge/internal/dispatch"
	"github.com/cultiv-ai/b24bridge/internal/handler"
	"github.com/cultiv-ai/b24bridge/internal/report"
	"github.com/cultiv-ai/b24bridge/internal/server"
	"github.com/cultiv-ai/b24bridge/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// @title b24bridge API
// @version 1.0
// @description Bitrix24 bot webhook bridge
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	client := bitrix.NewClient(bitrix.Config{
		Domain:             cfg.BitrixDomain,
		Timeout:            cfg.DispatchTimeout,
		InsecureSkipVerify: cfg.TLSInsecureSkipVerify,
	})

	pool := worker.NewPool(cfg.DispatchWorkers, cfg.DispatchQueueSize)
	pool.Start()

	dispatcher := dispatch.NewAsync(client, pool, cfg.DispatchTimeout)
	reporter := report.New(os.Stdout)
	guard := handler.NewDeliveryGuard(0, 0)

	srv := server.NewServer(cfg.Port, reporter, dispatcher, guard)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			pool.Stop()
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:       srv,
			DispatchPool: pool,
		})
	}
}
