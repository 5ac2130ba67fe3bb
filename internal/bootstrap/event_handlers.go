package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/mossvale/farmstead/internal/event"
	"github.com/mossvale/farmstead/internal/metrics"
)

// RegisterEventHandlers sets up all event subscribers. Currently this is
// the metrics collector, which turns published game events into
// Prometheus counters.
func RegisterEventHandlers(eventBus event.Bus) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(eventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	return nil
}
