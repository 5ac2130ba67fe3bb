package repository

import (
	"context"

	"github.com/mossvale/farmstead/internal/domain"
)

// Player defines the interface for player data access
type Player interface {
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, playerID string, patch domain.PlayerPatch) error
	DeletePlayer(ctx context.Context, playerID string) error

	// Inventory operations
	GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error)
	GetItem(ctx context.Context, playerID, itemName string, category domain.ItemCategory) (*domain.InventoryItem, error)
	AddItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error
	RemoveItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error

	// Tool operations
	GetTools(ctx context.Context, playerID string) ([]domain.Tool, error)
	GetTool(ctx context.Context, playerID, kind string) (*domain.Tool, error)
	CreateTool(ctx context.Context, tool *domain.Tool) error
	UpdateTool(ctx context.Context, toolID int64, patch domain.ToolPatch) error

	// Transaction support
	BeginTx(ctx context.Context) (Tx, error)
}
