package farm

import (
	"context"
	"fmt"

	"github.com/mossvale/farmstead/internal/catalog"
	"github.com/mossvale/farmstead/internal/concurrency"
	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/event"
	"github.com/mossvale/farmstead/internal/logger"
	"github.com/mossvale/farmstead/internal/repository"
)

// View is the assembled state of one player's field.
type View struct {
	Grid  *Grid         `json:"grid"`
	Areas []domain.Area `json:"areas"`
	Crops []domain.Crop `json:"crops"`
}

// TillResult contains the result of a till operation
type TillResult struct {
	X          int `json:"x"`
	Y          int `json:"y"`
	Energy     int `json:"energy"`
	Durability int `json:"durability"`
}

// Service defines the interface for field operations
type Service interface {
	GetFarm(ctx context.Context, playerID string) (*View, error)
	Till(ctx context.Context, playerID string, x, y int) (*TillResult, error)
}

type service struct {
	repo  repository.Farm
	bus   event.Bus
	locks *concurrency.LockManager
}

// NewService creates a new farm service
func NewService(repo repository.Farm, bus event.Bus, locks *concurrency.LockManager) Service {
	return &service{repo: repo, bus: bus, locks: locks}
}

// GetFarm loads the field view, materializing the default zone layout on
// first access.
func (s *service) GetFarm(ctx context.Context, playerID string) (*View, error) {
	log := logger.FromContext(ctx)

	if _, err := s.repo.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	areas, err := s.repo.GetAreas(ctx, playerID)
	if err != nil {
		log.Error("Failed to get areas", "error", err)
		return nil, fmt.Errorf("failed to get areas: %w", err)
	}
	if len(areas) == 0 {
		for _, a := range DefaultAreas(playerID) {
			area := a
			if err := s.repo.CreateArea(ctx, &area); err != nil {
				log.Error("Failed to create default area", "error", err, "kind", area.Kind)
				return nil, fmt.Errorf("failed to create default area: %w", err)
			}
			areas = append(areas, area)
		}
		log.Info("Created default farm areas", "player_id", playerID)
	}

	tilled, err := s.repo.GetTilledLand(ctx, playerID)
	if err != nil {
		log.Error("Failed to get tilled land", "error", err)
		return nil, fmt.Errorf("failed to get tilled land: %w", err)
	}

	crops, err := s.repo.GetCrops(ctx, playerID)
	if err != nil {
		log.Error("Failed to get crops", "error", err)
		return nil, fmt.Errorf("failed to get crops: %w", err)
	}

	return &View{Grid: BuildGrid(tilled, crops), Areas: areas, Crops: crops}, nil
}

// Till turns an empty tile inside the planting zone into tilled ground.
// Costs energy and hoe durability.
func (s *service) Till(ctx context.Context, playerID string, x, y int) (*TillResult, error) {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	view, err := s.GetFarm(ctx, playerID)
	if err != nil {
		return nil, err
	}

	tile, err := view.Grid.At(x, y)
	if err != nil {
		return nil, err
	}
	if tile.State != domain.TileEmpty {
		return nil, fmt.Errorf("%w: (%d,%d) is %s", domain.ErrTileOccupied, x, y, tile.State)
	}
	if err := CheckZone(view.Areas, domain.AreaPlanting, x, y); err != nil {
		return nil, err
	}

	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.Energy < domain.EnergyCostTill {
		return nil, fmt.Errorf("%w: need %d have %d", domain.ErrInsufficientEnergy, domain.EnergyCostTill, player.Energy)
	}

	hoe, err := s.repo.GetTool(ctx, playerID, catalog.ToolHoe)
	if err != nil {
		return nil, err
	}
	if hoe.Durability <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrToolDepleted, hoe.Kind)
	}

	energy := player.Energy - domain.EnergyCostTill
	durability := hoe.Durability - hoe.WearCost()
	if durability < 0 {
		durability = 0
	}

	tx, err := s.repo.BeginFarmTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.AddTilledTile(ctx, playerID, domain.TilledTile{X: x, Y: y}); err != nil {
		return nil, err
	}
	if err := tx.UpdatePlayer(ctx, playerID, domain.PlayerPatch{Energy: &energy}); err != nil {
		return nil, err
	}
	if err := tx.UpdateTool(ctx, hoe.ID, domain.ToolPatch{Durability: &durability}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.bus.Publish(ctx, event.NewFarmTilledEvent(playerID, x, y)); err != nil {
		log.Warn("Failed to publish till event", "error", err)
	}

	log.Info("Tilled tile", "player_id", playerID, "x", x, "y", y, "energy", energy)
	return &TillResult{X: x, Y: y, Energy: energy, Durability: durability}, nil
}
