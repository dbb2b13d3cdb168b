package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/middleearth/internal/server"
	"github.com/osse101/middleearth/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Events *sse.Hub
}

// GracefulShutdown stops the components that outlive the game loop.
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	// open streams never go idle, so the hub closes them before the server drains
	if components.Events != nil {
		slog.Info(LogMsgStoppingEventStream)
		components.Events.Stop()
	}

	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		} else {
			slog.Info(LogMsgServerStopped)
		}
	}

	slog.Info(LogMsgShutdownComplete)
}
