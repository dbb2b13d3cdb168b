package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/middleearth/internal/event"
	"github.com/osse101/middleearth/internal/metrics"
	"github.com/osse101/middleearth/internal/server"
	"github.com/osse101/middleearth/internal/sse"
)

// InitializeEventSystem creates the in-process event bus battles publish to
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus  event.Bus
	BattleLog *server.BattleLog
	Events    *sse.Hub
}

// RegisterEventHandlers sets up all event subscribers: the metrics collector
// always, the battle log and live event stream when the status server runs.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.BattleLog != nil {
		deps.BattleLog.Register(deps.EventBus)
		slog.Info(LogMsgBattleLogRegistered)
	}

	if deps.Events != nil {
		sse.NewSubscriber(deps.Events, deps.EventBus).Subscribe()
	}

	return nil
}
