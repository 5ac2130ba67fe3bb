package crop

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/repository"
)

// MockRepository implements repository.Farm for testing
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

func (m *MockRepository) GetAreas(ctx context.Context, playerID string) ([]domain.Area, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Area), args.Error(1)
}

func (m *MockRepository) CreateArea(ctx context.Context, area *domain.Area) error {
	args := m.Called(ctx, area)
	return args.Error(0)
}

func (m *MockRepository) GetTilledLand(ctx context.Context, playerID string) ([]domain.TilledTile, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TilledTile), args.Error(1)
}

func (m *MockRepository) SaveTilledLand(ctx context.Context, playerID string, tiles []domain.TilledTile) error {
	args := m.Called(ctx, playerID, tiles)
	return args.Error(0)
}

func (m *MockRepository) GetCrops(ctx context.Context, playerID string) ([]domain.Crop, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Crop), args.Error(1)
}

func (m *MockRepository) GetCrop(ctx context.Context, cropID int64) (*domain.Crop, error) {
	args := m.Called(ctx, cropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crop), args.Error(1)
}

func (m *MockRepository) GetCropAt(ctx context.Context, playerID string, x, y int) (*domain.Crop, error) {
	args := m.Called(ctx, playerID, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crop), args.Error(1)
}

func (m *MockRepository) GetTool(ctx context.Context, playerID, kind string) (*domain.Tool, error) {
	args := m.Called(ctx, playerID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}

func (m *MockRepository) BeginFarmTx(ctx context.Context) (repository.FarmTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.FarmTx), args.Error(1)
}

// MockFarmTx implements repository.FarmTx for testing
type MockFarmTx struct {
	mock.Mock
}

func (m *MockFarmTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockFarmTx) UpdatePlayer(ctx context.Context, playerID string, patch domain.PlayerPatch) error {
	args := m.Called(ctx, playerID, patch)
	return args.Error(0)
}

func (m *MockFarmTx) GetItem(ctx context.Context, playerID, itemName string, category domain.ItemCategory) (*domain.InventoryItem, error) {
	args := m.Called(ctx, playerID, itemName, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockFarmTx) AddItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	args := m.Called(ctx, playerID, itemName, quantity, category)
	return args.Error(0)
}

func (m *MockFarmTx) RemoveItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	args := m.Called(ctx, playerID, itemName, quantity, category)
	return args.Error(0)
}

func (m *MockFarmTx) UpdateTool(ctx context.Context, toolID int64, patch domain.ToolPatch) error {
	args := m.Called(ctx, toolID, patch)
	return args.Error(0)
}

func (m *MockFarmTx) CreateCrop(ctx context.Context, crop *domain.Crop) error {
	args := m.Called(ctx, crop)
	return args.Error(0)
}

func (m *MockFarmTx) UpdateCrop(ctx context.Context, cropID int64, patch domain.CropPatch) error {
	args := m.Called(ctx, cropID, patch)
	return args.Error(0)
}

func (m *MockFarmTx) DeleteCrop(ctx context.Context, cropID int64) error {
	args := m.Called(ctx, cropID)
	return args.Error(0)
}

func (m *MockFarmTx) AddTilledTile(ctx context.Context, playerID string, tile domain.TilledTile) error {
	args := m.Called(ctx, playerID, tile)
	return args.Error(0)
}

func (m *MockFarmTx) RemoveTilledTile(ctx context.Context, playerID string, x, y int) error {
	args := m.Called(ctx, playerID, x, y)
	return args.Error(0)
}

func (m *MockFarmTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFarmTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockProgress implements PlayerProgress for testing
type MockProgress struct {
	mock.Mock
}

func (m *MockProgress) AddExp(ctx context.Context, playerID string, exp int) error {
	args := m.Called(ctx, playerID, exp)
	return args.Error(0)
}
