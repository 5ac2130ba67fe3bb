package repository

import (
	"context"

	"github.com/mossvale/farmstead/internal/domain"
)

// Tx defines the interface for transactional operations shared by all
// feature transactions. Player and inventory rows are touched by nearly
// every command, so they live on the base transaction.
type Tx interface {
	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, playerID string, patch domain.PlayerPatch) error
	GetItem(ctx context.Context, playerID, itemName string, category domain.ItemCategory) (*domain.InventoryItem, error)
	AddItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error
	RemoveItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error
	UpdateTool(ctx context.Context, toolID int64, patch domain.ToolPatch) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// FarmTx extends Tx with field operations: crops and tilled ground.
type FarmTx interface {
	Tx
	CreateCrop(ctx context.Context, crop *domain.Crop) error
	UpdateCrop(ctx context.Context, cropID int64, patch domain.CropPatch) error
	DeleteCrop(ctx context.Context, cropID int64) error
	AddTilledTile(ctx context.Context, playerID string, tile domain.TilledTile) error
	RemoveTilledTile(ctx context.Context, playerID string, x, y int) error
}

// AnimalTx extends Tx with livestock operations.
type AnimalTx interface {
	Tx
	UpdateAnimal(ctx context.Context, animalID int64, patch domain.AnimalPatch) error
}

// EconomyTx extends Tx with market operations: sales logging and the
// purchasable entity kinds.
type EconomyTx interface {
	Tx
	AddSale(ctx context.Context, sale *domain.SalesRecord) error
	CreateAnimal(ctx context.Context, animal *domain.Animal) error
	CreateTool(ctx context.Context, tool *domain.Tool) error
}

// WorldTx extends Tx with the bulk operations the nightly turnover needs.
type WorldTx interface {
	Tx
	UpdateCrop(ctx context.Context, cropID int64, patch domain.CropPatch) error
	UpdateAnimal(ctx context.Context, animalID int64, patch domain.AnimalPatch) error
	SaveTilledLand(ctx context.Context, playerID string, tiles []domain.TilledTile) error
}
