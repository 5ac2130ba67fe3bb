package world

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/repository"
)

// MockRepository implements repository.World for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) GetCrops(ctx context.Context, playerID string) ([]domain.Crop, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Crop), args.Error(1)
}

func (m *MockRepository) GetAnimals(ctx context.Context, playerID string) ([]domain.Animal, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Animal), args.Error(1)
}

func (m *MockRepository) GetTilledLand(ctx context.Context, playerID string) ([]domain.TilledTile, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TilledTile), args.Error(1)
}

func (m *MockRepository) BeginWorldTx(ctx context.Context) (repository.WorldTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.WorldTx), args.Error(1)
}

// MockWorldTx implements repository.WorldTx for testing
type MockWorldTx struct {
	mock.Mock
}

func (m *MockWorldTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockWorldTx) UpdatePlayer(ctx context.Context, playerID string, patch domain.PlayerPatch) error {
	args := m.Called(ctx, playerID, patch)
	return args.Error(0)
}

func (m *MockWorldTx) GetItem(ctx context.Context, playerID, itemName string, category domain.ItemCategory) (*domain.InventoryItem, error) {
	args := m.Called(ctx, playerID, itemName, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockWorldTx) AddItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	args := m.Called(ctx, playerID, itemName, quantity, category)
	return args.Error(0)
}

func (m *MockWorldTx) RemoveItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	args := m.Called(ctx, playerID, itemName, quantity, category)
	return args.Error(0)
}

func (m *MockWorldTx) UpdateTool(ctx context.Context, toolID int64, patch domain.ToolPatch) error {
	args := m.Called(ctx, toolID, patch)
	return args.Error(0)
}

func (m *MockWorldTx) UpdateCrop(ctx context.Context, cropID int64, patch domain.CropPatch) error {
	args := m.Called(ctx, cropID, patch)
	return args.Error(0)
}

func (m *MockWorldTx) UpdateAnimal(ctx context.Context, animalID int64, patch domain.AnimalPatch) error {
	args := m.Called(ctx, animalID, patch)
	return args.Error(0)
}

func (m *MockWorldTx) SaveTilledLand(ctx context.Context, playerID string, tiles []domain.TilledTile) error {
	args := m.Called(ctx, playerID, tiles)
	return args.Error(0)
}

func (m *MockWorldTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorldTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
