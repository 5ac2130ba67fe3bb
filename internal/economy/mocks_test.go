package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/repository"
)

// MockRepository implements repository.Economy for testing
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

func (m *MockRepository) GetItem(ctx context.Context, playerID, itemName string, category domain.ItemCategory) (*domain.InventoryItem, error) {
	args := m.Called(ctx, playerID, itemName, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockRepository) GetTool(ctx context.Context, playerID, kind string) (*domain.Tool, error) {
	args := m.Called(ctx, playerID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}

func (m *MockRepository) GetTools(ctx context.Context, playerID string) ([]domain.Tool, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tool), args.Error(1)
}

func (m *MockRepository) GetAreas(ctx context.Context, playerID string) ([]domain.Area, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Area), args.Error(1)
}

func (m *MockRepository) GetAnimals(ctx context.Context, playerID string) ([]domain.Animal, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Animal), args.Error(1)
}

func (m *MockRepository) GetSales(ctx context.Context, playerID string, limit int) ([]domain.SalesRecord, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesRecord), args.Error(1)
}

func (m *MockRepository) BeginEconomyTx(ctx context.Context) (repository.EconomyTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.EconomyTx), args.Error(1)
}

// MockEconomyTx implements repository.EconomyTx for testing
type MockEconomyTx struct {
	mock.Mock
}

func (m *MockEconomyTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockEconomyTx) UpdatePlayer(ctx context.Context, playerID string, patch domain.PlayerPatch) error {
	args := m.Called(ctx, playerID, patch)
	return args.Error(0)
}

func (m *MockEconomyTx) GetItem(ctx context.Context, playerID, itemName string, category domain.ItemCategory) (*domain.InventoryItem, error) {
	args := m.Called(ctx, playerID, itemName, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockEconomyTx) AddItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	args := m.Called(ctx, playerID, itemName, quantity, category)
	return args.Error(0)
}

func (m *MockEconomyTx) RemoveItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	args := m.Called(ctx, playerID, itemName, quantity, category)
	return args.Error(0)
}

func (m *MockEconomyTx) UpdateTool(ctx context.Context, toolID int64, patch domain.ToolPatch) error {
	args := m.Called(ctx, toolID, patch)
	return args.Error(0)
}

func (m *MockEconomyTx) AddSale(ctx context.Context, sale *domain.SalesRecord) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockEconomyTx) CreateAnimal(ctx context.Context, animal *domain.Animal) error {
	args := m.Called(ctx, animal)
	return args.Error(0)
}

func (m *MockEconomyTx) CreateTool(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}

func (m *MockEconomyTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEconomyTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
