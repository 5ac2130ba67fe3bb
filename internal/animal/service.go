// Package animal implements livestock care: feeding, product collection
// and movement inside the breeding zone.
package animal

import (
	"context"
	"fmt"
	"time"

	"github.com/mossvale/farmstead/internal/catalog"
	"github.com/mossvale/farmstead/internal/concurrency"
	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/event"
	"github.com/mossvale/farmstead/internal/farm"
	"github.com/mossvale/farmstead/internal/logger"
	"github.com/mossvale/farmstead/internal/repository"
)

// GameDay converts counted game days into the duration the produce
// timer runs on.
const GameDay = 24 * time.Hour

// CanProduce reports whether the animal has a product ready at the given
// time. An animal that never started producing has nothing to collect.
func CanProduce(a domain.Animal, kind catalog.AnimalKind, now time.Time) bool {
	if a.ProduceTime.IsZero() {
		return false
	}
	return now.Sub(a.ProduceTime) >= time.Duration(kind.DaysToProduce)*GameDay
}

// FeedResult contains the result of a feed operation
type FeedResult struct {
	AnimalID int64  `json:"animal_id"`
	Kind     string `json:"kind"`
	Energy   int    `json:"energy"`
}

// CollectResult contains the result of a product collection
type CollectResult struct {
	AnimalID int64  `json:"animal_id"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Exp      int    `json:"exp"`
}

// MoveResult contains the animal's position after a move
type MoveResult struct {
	AnimalID int64 `json:"animal_id"`
	X        int   `json:"x"`
	Y        int   `json:"y"`
}

// PlayerProgress awards experience after collecting products. Implemented
// by the player service.
type PlayerProgress interface {
	AddExp(ctx context.Context, playerID string, exp int) error
}

// Service defines the interface for livestock operations
type Service interface {
	GetAnimals(ctx context.Context, playerID string) ([]domain.Animal, error)
	Feed(ctx context.Context, playerID string, animalID int64, feedName string) (*FeedResult, error)
	Collect(ctx context.Context, playerID string, animalID int64) (*CollectResult, error)
	Move(ctx context.Context, playerID string, animalID int64, dx, dy int) (*MoveResult, error)
}

type service struct {
	repo     repository.Animal
	progress PlayerProgress
	bus      event.Bus
	locks    *concurrency.LockManager
	now      func() time.Time
}

// NewService creates a new animal service
func NewService(repo repository.Animal, progress PlayerProgress, bus event.Bus, locks *concurrency.LockManager) Service {
	return &service{
		repo:     repo,
		progress: progress,
		bus:      bus,
		locks:    locks,
		now:      time.Now,
	}
}

func (s *service) GetAnimals(ctx context.Context, playerID string) ([]domain.Animal, error) {
	if _, err := s.repo.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}
	return s.repo.GetAnimals(ctx, playerID)
}

// Feed gives an animal its daily feed. The feed must match the animal's
// kind and is consumed from the inventory.
func (s *service) Feed(ctx context.Context, playerID string, animalID int64, feedName string) (*FeedResult, error) {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	animal, err := s.ownedAnimal(ctx, playerID, animalID)
	if err != nil {
		return nil, err
	}
	if animal.IsFed {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyFed, animal.Name)
	}

	kind, err := catalog.Animal(animal.Kind)
	if err != nil {
		return nil, err
	}
	if feedName != kind.FeedName {
		return nil, fmt.Errorf("%w: %s does not eat %s", domain.ErrWrongFeed, animal.Kind, feedName)
	}

	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.Energy < domain.EnergyCostFeed {
		return nil, fmt.Errorf("%w: need %d have %d", domain.ErrInsufficientEnergy, domain.EnergyCostFeed, player.Energy)
	}

	energy := player.Energy - domain.EnergyCostFeed
	fed := true
	patch := domain.AnimalPatch{IsFed: &fed}
	if animal.ProduceTime.IsZero() {
		start := s.now()
		patch.ProduceTime = &start
	}

	tx, err := s.repo.BeginAnimalTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.RemoveItem(ctx, playerID, feedName, 1, domain.CategoryFeed); err != nil {
		return nil, err
	}
	if err := tx.UpdateAnimal(ctx, animalID, patch); err != nil {
		return nil, err
	}
	if err := tx.UpdatePlayer(ctx, playerID, domain.PlayerPatch{Energy: &energy}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.bus.Publish(ctx, event.NewAnimalFedEvent(playerID, animalID, animal.Kind, feedName)); err != nil {
		log.Warn("Failed to publish feed event", "error", err)
	}

	log.Info("Fed animal", "player_id", playerID, "animal_id", animalID, "kind", animal.Kind)
	return &FeedResult{AnimalID: animalID, Kind: animal.Kind, Energy: energy}, nil
}

// Collect takes the ready product from an animal and restarts its
// production cycle.
func (s *service) Collect(ctx context.Context, playerID string, animalID int64) (*CollectResult, error) {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	animal, err := s.ownedAnimal(ctx, playerID, animalID)
	if err != nil {
		return nil, err
	}

	kind, err := catalog.Animal(animal.Kind)
	if err != nil {
		return nil, err
	}
	if !CanProduce(*animal, kind, s.now()) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotProducible, animal.Name)
	}

	restart := s.now()

	tx, err := s.repo.BeginAnimalTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.AddItem(ctx, playerID, kind.Product, 1, domain.CategoryProduct); err != nil {
		return nil, err
	}
	if err := tx.UpdateAnimal(ctx, animalID, domain.AnimalPatch{ProduceTime: &restart}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.progress.AddExp(ctx, playerID, kind.ExpReward); err != nil {
		log.Error("Failed to award collection exp", "error", err, "player_id", playerID)
	}

	if err := s.bus.Publish(ctx, event.NewAnimalCollectedEvent(playerID, animalID, animal.Kind, kind.Product, kind.ExpReward)); err != nil {
		log.Warn("Failed to publish collect event", "error", err)
	}

	log.Info("Collected product", "player_id", playerID, "animal_id", animalID, "product", kind.Product)
	return &CollectResult{
		AnimalID: animalID,
		Product:  kind.Product,
		Quantity: 1,
		Exp:      kind.ExpReward,
	}, nil
}

// Move shifts an animal by a tile delta. The destination must lie inside
// the breeding zone and be free of crops and other animals.
func (s *service) Move(ctx context.Context, playerID string, animalID int64, dx, dy int) (*MoveResult, error) {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	animal, err := s.ownedAnimal(ctx, playerID, animalID)
	if err != nil {
		return nil, err
	}

	x, y := animal.X+dx, animal.Y+dy
	pos := domain.TilePosition{X: x, Y: y}
	if !pos.InBounds() {
		return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrOutOfBounds, x, y)
	}

	areas, err := s.repo.GetAreas(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if len(areas) == 0 {
		areas = farm.DefaultAreas(playerID)
	}
	if err := farm.CheckZone(areas, domain.AreaBreeding, x, y); err != nil {
		return nil, err
	}

	crop, err := s.repo.GetCropAt(ctx, playerID, x, y)
	if err != nil {
		return nil, err
	}
	if crop != nil {
		return nil, fmt.Errorf("%w: crop at (%d,%d)", domain.ErrBlocked, x, y)
	}

	herd, err := s.repo.GetAnimals(ctx, playerID)
	if err != nil {
		return nil, err
	}
	for _, other := range herd {
		if other.ID != animalID && other.X == x && other.Y == y {
			return nil, fmt.Errorf("%w: %s at (%d,%d)", domain.ErrBlocked, other.Name, x, y)
		}
	}

	if err := s.repo.UpdateAnimal(ctx, animalID, domain.AnimalPatch{X: &x, Y: &y}); err != nil {
		return nil, err
	}

	log.Info("Moved animal", "player_id", playerID, "animal_id", animalID, "x", x, "y", y)
	return &MoveResult{AnimalID: animalID, X: x, Y: y}, nil
}

func (s *service) ownedAnimal(ctx context.Context, playerID string, animalID int64) (*domain.Animal, error) {
	if _, err := s.repo.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}
	animal, err := s.repo.GetAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}
	if animal == nil || animal.PlayerID != playerID {
		return nil, fmt.Errorf("%w: id %d", domain.ErrAnimalNotFound, animalID)
	}
	return animal, nil
}
