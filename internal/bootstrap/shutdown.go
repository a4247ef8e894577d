package bootstrap

import (
	"context"
	"log/slog"

	"github.com/cultiv-ai/b24bridge/internal/server"
	"github.com/cultiv-ai/b24bridge/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server       *server.Server
	DispatchPool *worker.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// The HTTP server stops accepting deliveries first; the dispatch pool then
// drains so already accepted replies still reach the portal.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.DispatchPool != nil {
		slog.Info(LogMsgStoppingDispatchPool)
		components.DispatchPool.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
