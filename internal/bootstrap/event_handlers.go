package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/CharacterForge_Go/internal/event"
	"github.com/osse101/CharacterForge_Go/internal/eventlog"
	"github.com/osse101/CharacterForge_Go/internal/metrics"
)

// RegisterEventHandlers subscribes the event consumers to the bus: the metrics
// collector, which turns profile events into business metrics, and the
// activity log when one is given.
func RegisterEventHandlers(bus event.Bus, activity eventlog.Service) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if activity != nil {
		if err := activity.Subscribe(bus); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedRegisterEventLog, err)
		}
		slog.Info(LogMsgEventLogRegistered)
	}

	return nil
}
