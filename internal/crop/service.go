// Package crop implements planting, watering and harvesting.
package crop

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

// IsMature reports whether the crop has reached its final growth stage.
func IsMature(c domain.Crop, kind catalog.CropKind) bool {
	return c.GrowthStage >= kind.GrowthTime
}

// PlantResult contains the result of a plant operation
type PlantResult struct {
	CropID int64  `json:"crop_id"`
	Kind   string `json:"kind"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// WaterResult contains the result of a water operation
type WaterResult struct {
	X          int   `json:"x"`
	Y          int   `json:"y"`
	CropID     int64 `json:"crop_id,omitempty"`
	Energy     int   `json:"energy"`
	Durability int   `json:"durability"`
}

// HarvestResult contains the result of a harvest operation
type HarvestResult struct {
	Kind       string `json:"kind"`
	Quantity   int    `json:"quantity"`
	Exp        int    `json:"exp"`
	Energy     int    `json:"energy"`
	Durability int    `json:"durability"`
}

// PlayerProgress awards experience after field work. Implemented by the
// player service.
type PlayerProgress interface {
	AddExp(ctx context.Context, playerID string, exp int) error
}

// Service defines the interface for crop operations
type Service interface {
	GetCrops(ctx context.Context, playerID string) ([]domain.Crop, error)
	Plant(ctx context.Context, playerID, seedName string, x, y int) (*PlantResult, error)
	Water(ctx context.Context, playerID string, x, y int) (*WaterResult, error)
	Harvest(ctx context.Context, playerID string, x, y int) (*HarvestResult, error)
}

type service struct {
	repo     repository.Farm
	progress PlayerProgress
	bus      event.Bus
	locks    *concurrency.LockManager
	now      func() time.Time
}

// NewService creates a new crop service
func NewService(repo repository.Farm, progress PlayerProgress, bus event.Bus, locks *concurrency.LockManager) Service {
	return &service{
		repo:     repo,
		progress: progress,
		bus:      bus,
		locks:    locks,
		now:      time.Now,
	}
}

func (s *service) GetCrops(ctx context.Context, playerID string) ([]domain.Crop, error) {
	if _, err := s.repo.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}
	return s.repo.GetCrops(ctx, playerID)
}

// Plant sows a seed from the inventory on a tilled tile inside the
// planting zone. Planting itself costs no energy.
func (s *service) Plant(ctx context.Context, playerID, seedName string, x, y int) (*PlantResult, error) {
	log := logger.FromContext(ctx)

	kind, err := catalog.CropForSeed(seedName)
	if err != nil {
		return nil, err
	}

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	view, err := s.loadView(ctx, playerID)
	if err != nil {
		return nil, err
	}

	tile, err := view.Grid.At(x, y)
	if err != nil {
		return nil, err
	}
	switch tile.State {
	case domain.TileOccupied:
		return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrTileOccupied, x, y)
	case domain.TileEmpty:
		return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrTileNotTilled, x, y)
	}
	if err := farm.CheckZone(view.Areas, domain.AreaPlanting, x, y); err != nil {
		return nil, err
	}

	crop := &domain.Crop{
		PlayerID:  playerID,
		Kind:      kind.Name,
		X:         x,
		Y:         y,
		PlantedAt: s.now(),
	}

	tx, err := s.repo.BeginFarmTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.RemoveItem(ctx, playerID, seedName, 1, domain.CategorySeed); err != nil {
		return nil, err
	}
	if err := tx.CreateCrop(ctx, crop); err != nil {
		return nil, err
	}
	if err := tx.RemoveTilledTile(ctx, playerID, x, y); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.bus.Publish(ctx, event.NewCropPlantedEvent(playerID, kind.Name, x, y)); err != nil {
		log.Warn("Failed to publish plant event", "error", err)
	}

	log.Info("Planted crop", "player_id", playerID, "kind", kind.Name, "x", x, "y", y)
	return &PlantResult{CropID: crop.ID, Kind: kind.Name, X: x, Y: y}, nil
}

// Water wets a tilled tile or a growing crop. Costs energy and watering
// can durability.
func (s *service) Water(ctx context.Context, playerID string, x, y int) (*WaterResult, error) {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	view, err := s.loadView(ctx, playerID)
	if err != nil {
		return nil, err
	}

	tile, err := view.Grid.At(x, y)
	if err != nil {
		return nil, err
	}
	if tile.State == domain.TileEmpty {
		return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrTileNotTilled, x, y)
	}
	if tile.Watered {
		return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrAlreadyWatered, x, y)
	}

	var crop *domain.Crop
	if tile.State == domain.TileOccupied {
		crop, err = s.repo.GetCropAt(ctx, playerID, x, y)
		if err != nil {
			return nil, err
		}
		if crop == nil {
			return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrCropNotFound, x, y)
		}
		kind, err := catalog.Crop(crop.Kind)
		if err != nil {
			return nil, err
		}
		if IsMature(*crop, kind) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCropMature, crop.Kind)
		}
	}

	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.Energy < domain.EnergyCostWater {
		return nil, fmt.Errorf("%w: need %d have %d", domain.ErrInsufficientEnergy, domain.EnergyCostWater, player.Energy)
	}

	can, err := s.repo.GetTool(ctx, playerID, catalog.ToolWateringCan)
	if err != nil {
		return nil, err
	}
	if can.Durability <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrToolDepleted, can.Kind)
	}

	energy := player.Energy - domain.EnergyCostWater
	durability := can.Durability - can.WearCost()
	if durability < 0 {
		durability = 0
	}

	tx, err := s.repo.BeginFarmTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	result := &WaterResult{X: x, Y: y, Energy: energy, Durability: durability}
	if crop != nil {
		watered := true
		if err := tx.UpdateCrop(ctx, crop.ID, domain.CropPatch{IsWatered: &watered}); err != nil {
			return nil, err
		}
		result.CropID = crop.ID
	} else {
		if err := tx.AddTilledTile(ctx, playerID, domain.TilledTile{X: x, Y: y, Watered: true}); err != nil {
			return nil, err
		}
	}
	if err := tx.UpdatePlayer(ctx, playerID, domain.PlayerPatch{Energy: &energy}); err != nil {
		return nil, err
	}
	if err := tx.UpdateTool(ctx, can.ID, domain.ToolPatch{Durability: &durability}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.bus.Publish(ctx, event.NewCropWateredEvent(playerID, x, y)); err != nil {
		log.Warn("Failed to publish water event", "error", err)
	}

	log.Info("Watered tile", "player_id", playerID, "x", x, "y", y)
	return result, nil
}

// Harvest reaps a mature crop: the tile reverts to tilled ground, the
// yield lands in the inventory and experience is awarded.
func (s *service) Harvest(ctx context.Context, playerID string, x, y int) (*HarvestResult, error) {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	crop, err := s.repo.GetCropAt(ctx, playerID, x, y)
	if err != nil {
		return nil, err
	}
	if crop == nil {
		return nil, fmt.Errorf("%w: (%d,%d)", domain.ErrCropNotFound, x, y)
	}

	kind, err := catalog.Crop(crop.Kind)
	if err != nil {
		return nil, err
	}
	if !IsMature(*crop, kind) {
		return nil, fmt.Errorf("%w: %s at stage %d/%d", domain.ErrCropNotMature, crop.Kind, crop.GrowthStage, kind.GrowthTime)
	}

	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.Energy < domain.EnergyCostHarvest {
		return nil, fmt.Errorf("%w: need %d have %d", domain.ErrInsufficientEnergy, domain.EnergyCostHarvest, player.Energy)
	}

	sickle, err := s.repo.GetTool(ctx, playerID, catalog.ToolSickle)
	if err != nil {
		return nil, err
	}
	if sickle.Durability <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrToolDepleted, sickle.Kind)
	}

	energy := player.Energy - domain.EnergyCostHarvest
	durability := sickle.Durability - sickle.WearCost()
	if durability < 0 {
		durability = 0
	}

	tx, err := s.repo.BeginFarmTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.DeleteCrop(ctx, crop.ID); err != nil {
		return nil, err
	}
	if err := tx.AddTilledTile(ctx, playerID, domain.TilledTile{X: x, Y: y}); err != nil {
		return nil, err
	}
	if err := tx.AddItem(ctx, playerID, crop.Kind, 1, domain.CategoryCrop); err != nil {
		return nil, err
	}
	if err := tx.UpdatePlayer(ctx, playerID, domain.PlayerPatch{Energy: &energy}); err != nil {
		return nil, err
	}
	if err := tx.UpdateTool(ctx, sickle.ID, domain.ToolPatch{Durability: &durability}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.progress.AddExp(ctx, playerID, kind.ExpReward); err != nil {
		log.Error("Failed to award harvest exp", "error", err, "player_id", playerID)
	}

	if err := s.bus.Publish(ctx, event.NewCropHarvestedEvent(playerID, crop.Kind, x, y, kind.ExpReward)); err != nil {
		log.Warn("Failed to publish harvest event", "error", err)
	}

	log.Info("Harvested crop", "player_id", playerID, "kind", crop.Kind, "x", x, "y", y)
	return &HarvestResult{
		Kind:       crop.Kind,
		Quantity:   1,
		Exp:        kind.ExpReward,
		Energy:     energy,
		Durability: durability,
	}, nil
}

func (s *service) loadView(ctx context.Context, playerID string) (*farm.View, error) {
	if _, err := s.repo.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}
	areas, err := s.repo.GetAreas(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get areas: %w", err)
	}
	if len(areas) == 0 {
		areas = farm.DefaultAreas(playerID)
	}
	tilled, err := s.repo.GetTilledLand(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tilled land: %w", err)
	}
	crops, err := s.repo.GetCrops(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get crops: %w", err)
	}
	return &farm.View{Grid: farm.BuildGrid(tilled, crops), Areas: areas, Crops: crops}, nil
}
