package repository

import (
	"context"

	"github.com/mossvale/farmstead/internal/domain"
)

// World defines the interface for day-cycle data access
type World interface {
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetCrops(ctx context.Context, playerID string) ([]domain.Crop, error)
	GetAnimals(ctx context.Context, playerID string) ([]domain.Animal, error)
	GetTilledLand(ctx context.Context, playerID string) ([]domain.TilledTile, error)

	// Transaction support
	BeginWorldTx(ctx context.Context) (WorldTx, error)
}
