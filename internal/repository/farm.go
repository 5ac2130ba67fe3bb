package repository

import (
	"context"

	"github.com/mossvale/farmstead/internal/domain"
)

// Farm defines the interface for field data access: zoned areas, tilled
// ground and planted crops.
type Farm interface {
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)

	// Area operations
	GetAreas(ctx context.Context, playerID string) ([]domain.Area, error)
	CreateArea(ctx context.Context, area *domain.Area) error

	// Tilled ground operations. The saved set holds only tiles without a
	// planted crop; occupied tiles are derived from the crops table.
	GetTilledLand(ctx context.Context, playerID string) ([]domain.TilledTile, error)
	SaveTilledLand(ctx context.Context, playerID string, tiles []domain.TilledTile) error

	// Crop operations
	GetCrops(ctx context.Context, playerID string) ([]domain.Crop, error)
	GetCrop(ctx context.Context, cropID int64) (*domain.Crop, error)
	GetCropAt(ctx context.Context, playerID string, x, y int) (*domain.Crop, error)

	// Tool operations
	GetTool(ctx context.Context, playerID, kind string) (*domain.Tool, error)

	// Transaction support
	BeginFarmTx(ctx context.Context) (FarmTx, error)
}
