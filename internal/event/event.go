package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	PlayerCreated   Type = "player.created"
	PlayerLevelUp   Type = "player.level_up"
	FarmTilled      Type = "farm.tilled"
	CropPlanted     Type = "crop.planted"
	CropWatered     Type = "crop.watered"
	CropHarvested   Type = "crop.harvested"
	AnimalFed       Type = "animal.fed"
	AnimalCollected Type = "animal.product_collected"
	MarketPurchased Type = "market.purchased"
	MarketSold      Type = "market.sold"
	ToolUpgraded    Type = "tool.upgraded"
	DayEnded        Type = "day.ended"
	WeatherChanged  Type = "weather.changed"
)

// Typed event payloads for type safety

// PlayerCreatedPayloadV1 is the typed payload for player creation events
type PlayerCreatedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
}

// PlayerLevelUpPayloadV1 is the typed payload for level up events
type PlayerLevelUpPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Timestamp int64  `json:"timestamp"`
}

// TilePayloadV1 is the typed payload for tile work events (tilling and
// watering)
type TilePayloadV1 struct {
	PlayerID  string `json:"player_id"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Timestamp int64  `json:"timestamp"`
}

// PlantPayloadV1 is the typed payload for crop planting events
type PlantPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Kind      string `json:"kind"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Timestamp int64  `json:"timestamp"`
}

// HarvestPayloadV1 is the typed payload for crop harvest events
type HarvestPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Kind      string `json:"kind"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Exp       int    `json:"exp"`
	Timestamp int64  `json:"timestamp"`
}

// FeedPayloadV1 is the typed payload for animal feeding events
type FeedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	AnimalID  int64  `json:"animal_id"`
	Kind      string `json:"kind"`
	Feed      string `json:"feed"`
	Timestamp int64  `json:"timestamp"`
}

// CollectPayloadV1 is the typed payload for animal product collection events
type CollectPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	AnimalID  int64  `json:"animal_id"`
	Kind      string `json:"kind"`
	Product   string `json:"product"`
	Exp       int    `json:"exp"`
	Timestamp int64  `json:"timestamp"`
}

// TradePayloadV1 is the typed payload for market purchase and sale events
type TradePayloadV1 struct {
	PlayerID  string `json:"player_id"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	Total     int    `json:"total"`
	Timestamp int64  `json:"timestamp"`
}

// DayEndedPayloadV1 is the typed payload for end-of-day events
type DayEndedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Day       int    `json:"day"`
	Weather   string `json:"weather"`
	Timestamp int64  `json:"timestamp"`
}

// WeatherChangedPayloadV1 is the typed payload for weather change events
type WeatherChangedPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	OldWeather string `json:"old_weather"`
	NewWeather string `json:"new_weather"`
	Day        int    `json:"day"`
	Timestamp  int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewPlayerCreatedEvent creates a new player creation event
func NewPlayerCreatedEvent(playerID, name string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerCreated,
		Payload: PlayerCreatedPayloadV1{
			PlayerID:  playerID,
			Name:      name,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPlayerLevelUpEvent creates a new level up event
func NewPlayerLevelUpEvent(playerID string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerLevelUp,
		Payload: PlayerLevelUpPayloadV1{
			PlayerID:  playerID,
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewFarmTilledEvent creates a new tilling event
func NewFarmTilledEvent(playerID string, x, y int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FarmTilled,
		Payload: TilePayloadV1{
			PlayerID:  playerID,
			X:         x,
			Y:         y,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCropWateredEvent creates a new watering event
func NewCropWateredEvent(playerID string, x, y int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CropWatered,
		Payload: TilePayloadV1{
			PlayerID:  playerID,
			X:         x,
			Y:         y,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCropPlantedEvent creates a new planting event
func NewCropPlantedEvent(playerID, kind string, x, y int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CropPlanted,
		Payload: PlantPayloadV1{
			PlayerID:  playerID,
			Kind:      kind,
			X:         x,
			Y:         y,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCropHarvestedEvent creates a new harvest event
func NewCropHarvestedEvent(playerID, kind string, x, y, exp int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CropHarvested,
		Payload: HarvestPayloadV1{
			PlayerID:  playerID,
			Kind:      kind,
			X:         x,
			Y:         y,
			Exp:       exp,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewAnimalFedEvent creates a new feeding event
func NewAnimalFedEvent(playerID string, animalID int64, kind, feed string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AnimalFed,
		Payload: FeedPayloadV1{
			PlayerID:  playerID,
			AnimalID:  animalID,
			Kind:      kind,
			Feed:      feed,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewAnimalCollectedEvent creates a new product collection event
func NewAnimalCollectedEvent(playerID string, animalID int64, kind, product string, exp int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AnimalCollected,
		Payload: CollectPayloadV1{
			PlayerID:  playerID,
			AnimalID:  animalID,
			Kind:      kind,
			Product:   product,
			Exp:       exp,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewMarketPurchasedEvent creates a new purchase event
func NewMarketPurchasedEvent(playerID, itemName string, quantity, total int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MarketPurchased,
		Payload: TradePayloadV1{
			PlayerID:  playerID,
			ItemName:  itemName,
			Quantity:  quantity,
			Total:     total,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewMarketSoldEvent creates a new sale event
func NewMarketSoldEvent(playerID, itemName string, quantity, total int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MarketSold,
		Payload: TradePayloadV1{
			PlayerID:  playerID,
			ItemName:  itemName,
			Quantity:  quantity,
			Total:     total,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewToolUpgradedEvent creates a new tool upgrade event. Upgrades are
// purchases, so they share the trade payload.
func NewToolUpgradedEvent(playerID, kind string, cost int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ToolUpgraded,
		Payload: TradePayloadV1{
			PlayerID:  playerID,
			ItemName:  kind,
			Quantity:  1,
			Total:     cost,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewDayEndedEvent creates a new end-of-day event
func NewDayEndedEvent(playerID string, day int, weather string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DayEnded,
		Payload: DayEndedPayloadV1{
			PlayerID:  playerID,
			Day:       day,
			Weather:   weather,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewWeatherChangedEvent creates a new weather change event
func NewWeatherChangedEvent(playerID, oldWeather, newWeather string, day int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    WeatherChanged,
		Payload: WeatherChangedPayloadV1{
			PlayerID:   playerID,
			OldWeather: oldWeather,
			NewWeather: newWeather,
			Day:        day,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// For now, we execute handlers synchronously.
	// In the future, or with configuration, we could dispatch these to a worker pool
	// or run them in goroutines.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
