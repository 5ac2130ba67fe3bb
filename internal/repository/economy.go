package repository

import (
	"context"

	"github.com/mossvale/farmstead/internal/domain"
)

// Economy defines the interface for market data access
type Economy interface {
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetItem(ctx context.Context, playerID, itemName string, category domain.ItemCategory) (*domain.InventoryItem, error)
	GetTool(ctx context.Context, playerID, kind string) (*domain.Tool, error)
	GetTools(ctx context.Context, playerID string) ([]domain.Tool, error)
	GetAreas(ctx context.Context, playerID string) ([]domain.Area, error)
	GetAnimals(ctx context.Context, playerID string) ([]domain.Animal, error)

	// Sales history
	GetSales(ctx context.Context, playerID string, limit int) ([]domain.SalesRecord, error)

	// Transaction support
	BeginEconomyTx(ctx context.Context) (EconomyTx, error)
}
