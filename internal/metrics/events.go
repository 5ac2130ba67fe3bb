package metrics

import (
	"context"

	"github.com/mossvale/farmstead/internal/event"
	"github.com/mossvale/farmstead/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.PlayerLevelUp,
		event.CropHarvested,
		event.AnimalCollected,
		event.MarketSold,
		event.MarketPurchased,
		event.ToolUpgraded,
		event.DayEnded,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.PlayerLevelUp:
		LevelUps.Inc()

	case event.CropHarvested:
		payload, err := event.DecodePayload[event.HarvestPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		CropsHarvested.WithLabelValues(payload.Kind).Inc()

	case event.AnimalCollected:
		payload, err := event.DecodePayload[event.CollectPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ProductsCollected.WithLabelValues(payload.Kind).Inc()

	case event.MarketSold:
		payload, err := event.DecodePayload[event.TradePayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ItemsSold.WithLabelValues(payload.ItemName).Add(float64(payload.Quantity))
		MoneyEarned.Add(float64(payload.Total))

	case event.MarketPurchased:
		payload, err := event.DecodePayload[event.TradePayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ItemsBought.WithLabelValues(payload.ItemName).Add(float64(payload.Quantity))
		MoneySpent.Add(float64(payload.Total))

	case event.ToolUpgraded:
		payload, err := event.DecodePayload[event.TradePayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ToolsUpgraded.WithLabelValues(payload.ItemName).Inc()
		MoneySpent.Add(float64(payload.Total))

	case event.DayEnded:
		DaysEnded.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
