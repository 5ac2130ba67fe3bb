// Package player manages player accounts, inventory, experience and
// energy.
package player

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mossvale/farmstead/internal/catalog"
	"github.com/mossvale/farmstead/internal/concurrency"
	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/event"
	"github.com/mossvale/farmstead/internal/logger"
	"github.com/mossvale/farmstead/internal/repository"
)

// StartingMoney is the bankroll of a freshly created player.
const StartingMoney = 1000

// startingSeeds is the inventory every new player begins with.
var startingSeeds = map[string]int{
	"小麦种子": 5,
	"番茄种子": 3,
	"胡萝卜种子": 3,
}

// EatResult contains the result of eating a food item
type EatResult struct {
	Food   string `json:"food"`
	Energy int    `json:"energy"`
}

// Service defines the interface for player operations
type Service interface {
	CreatePlayer(ctx context.Context, name string) (*domain.Player, error)
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	DeletePlayer(ctx context.Context, playerID string) error
	AddExp(ctx context.Context, playerID string, exp int) error
	EatFood(ctx context.Context, playerID, foodName string) (*EatResult, error)
	GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error)
	GetTools(ctx context.Context, playerID string) ([]domain.Tool, error)
}

type service struct {
	repo  repository.Player
	bus   event.Bus
	locks *concurrency.LockManager
	cache *expirable.LRU[string, *domain.Player]
}

// NewService creates a new player service
func NewService(repo repository.Player, bus event.Bus, locks *concurrency.LockManager, cacheSize int, cacheTTL time.Duration) Service {
	s := &service{
		repo:  repo,
		bus:   bus,
		locks: locks,
		cache: expirable.NewLRU[string, *domain.Player](cacheSize, nil, cacheTTL),
	}
	s.subscribeInvalidations()
	return s
}

// invalidationEvents covers every operation elsewhere in the game that
// writes player rows (energy, money, day, weather, exp).
var invalidationEvents = []event.Type{
	event.PlayerLevelUp,
	event.FarmTilled,
	event.CropPlanted,
	event.CropWatered,
	event.CropHarvested,
	event.AnimalFed,
	event.AnimalCollected,
	event.MarketPurchased,
	event.MarketSold,
	event.ToolUpgraded,
	event.DayEnded,
	event.WeatherChanged,
}

type playerRef struct {
	PlayerID string `json:"player_id"`
}

// subscribeInvalidations drops the cached row whenever another service
// publishes a mutation touching that player, so GetPlayer never serves
// pre-mutation money, energy or day values for the cache TTL.
func (s *service) subscribeInvalidations() {
	for _, t := range invalidationEvents {
		s.bus.Subscribe(t, func(ctx context.Context, evt event.Event) error {
			ref, err := event.DecodePayload[playerRef](evt.Payload)
			if err != nil || ref.PlayerID == "" {
				return nil
			}
			s.cache.Remove(ref.PlayerID)
			return nil
		})
	}
}

// CreatePlayer registers a new player with the starting bankroll, a
// handful of seeds and one tool of each kind.
func (s *service) CreatePlayer(ctx context.Context, name string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", domain.ErrInvalidInput)
	}

	player := &domain.Player{
		ID:        uuid.NewString(),
		Name:      name,
		Level:     1,
		Money:     StartingMoney,
		Day:       1,
		Weather:   domain.WeatherSunny,
		Energy:    domain.MaxEnergy,
		MaxEnergy: domain.MaxEnergy,
		LastLogin: time.Now(),
	}

	if err := s.repo.CreatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	for seed, quantity := range startingSeeds {
		if err := s.repo.AddItem(ctx, player.ID, seed, quantity, domain.CategorySeed); err != nil {
			return nil, fmt.Errorf("failed to seed inventory: %w", err)
		}
	}
	for _, kind := range catalog.Tools() {
		tool := &domain.Tool{
			PlayerID:   player.ID,
			Kind:       kind.Name,
			Durability: kind.MaxDurability,
			Level:      1,
		}
		if err := s.repo.CreateTool(ctx, tool); err != nil {
			return nil, fmt.Errorf("failed to create starting tool: %w", err)
		}
	}

	if err := s.bus.Publish(ctx, event.NewPlayerCreatedEvent(player.ID, name)); err != nil {
		log.Warn("Failed to publish player created event", "error", err)
	}

	log.Info("Created player", "player_id", player.ID, "name", name)
	return player, nil
}

func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	if player, ok := s.cache.Get(playerID); ok {
		return player, nil
	}
	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	s.cache.Add(playerID, player)
	return player, nil
}

func (s *service) DeletePlayer(ctx context.Context, playerID string) error {
	if err := s.repo.DeletePlayer(ctx, playerID); err != nil {
		return err
	}
	s.cache.Remove(playerID)
	logger.FromContext(ctx).Info("Deleted player", "player_id", playerID)
	return nil
}

// AddExp grants experience and applies any pending level ups. Leveling
// up restores energy to the maximum.
func (s *service) AddExp(ctx context.Context, playerID string, exp int) error {
	log := logger.FromContext(ctx)

	if exp <= 0 {
		return fmt.Errorf("%w: exp must be positive", domain.ErrInvalidInput)
	}

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return err
	}

	oldLevel := player.Level
	newExp := player.Exp + exp
	newLevel := player.Level
	for catalog.CanLevelUp(newLevel, newExp) {
		newLevel++
	}

	patch := domain.PlayerPatch{Exp: &newExp}
	if newLevel > oldLevel {
		patch.Level = &newLevel
		energy := player.MaxEnergy
		patch.Energy = &energy
	}
	if err := tx.UpdatePlayer(ctx, playerID, patch); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	s.cache.Remove(playerID)

	if newLevel > oldLevel {
		if err := s.bus.Publish(ctx, event.NewPlayerLevelUpEvent(playerID, oldLevel, newLevel)); err != nil {
			log.Warn("Failed to publish level up event", "error", err)
		}
		log.Info("Player leveled up", "player_id", playerID, "old_level", oldLevel, "new_level", newLevel)
	}
	return nil
}

// EatFood consumes one food item and restores energy, capped at the
// player's maximum.
func (s *service) EatFood(ctx context.Context, playerID, foodName string) (*EatResult, error) {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	item, err := tx.GetItem(ctx, playerID, foodName, domain.CategoryFood)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Quantity < 1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientQuantity, foodName)
	}

	energy := player.Energy + domain.FoodEnergyRestore
	if energy > player.MaxEnergy {
		energy = player.MaxEnergy
	}

	if err := tx.RemoveItem(ctx, playerID, foodName, 1, domain.CategoryFood); err != nil {
		return nil, err
	}
	if err := tx.UpdatePlayer(ctx, playerID, domain.PlayerPatch{Energy: &energy}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	s.cache.Remove(playerID)

	log.Info("Ate food", "player_id", playerID, "food", foodName, "energy", energy)
	return &EatResult{Food: foodName, Energy: energy}, nil
}

func (s *service) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	if _, err := s.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}
	return s.repo.GetInventory(ctx, playerID)
}

func (s *service) GetTools(ctx context.Context, playerID string) ([]domain.Tool, error) {
	if _, err := s.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}
	return s.repo.GetTools(ctx, playerID)
}
