package player

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/repository"
)

// MockRepository implements repository.Player for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) UpdatePlayer(ctx context.Context, playerID string, patch domain.PlayerPatch) error {
	args := m.Called(ctx, playerID, patch)
	return args.Error(0)
}

func (m *MockRepository) DeletePlayer(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockRepository) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockRepository) GetItem(ctx context.Context, playerID, itemName string, category domain.ItemCategory) (*domain.InventoryItem, error) {
	args := m.Called(ctx, playerID, itemName, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockRepository) AddItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	args := m.Called(ctx, playerID, itemName, quantity, category)
	return args.Error(0)
}

func (m *MockRepository) RemoveItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	args := m.Called(ctx, playerID, itemName, quantity, category)
	return args.Error(0)
}

func (m *MockRepository) GetTools(ctx context.Context, playerID string) ([]domain.Tool, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tool), args.Error(1)
}

func (m *MockRepository) GetTool(ctx context.Context, playerID, kind string) (*domain.Tool, error) {
	args := m.Called(ctx, playerID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}

func (m *MockRepository) CreateTool(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}

func (m *MockRepository) UpdateTool(ctx context.Context, toolID int64, patch domain.ToolPatch) error {
	args := m.Called(ctx, toolID, patch)
	return args.Error(0)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Tx), args.Error(1)
}

// MockTx implements repository.Tx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockTx) UpdatePlayer(ctx context.Context, playerID string, patch domain.PlayerPatch) error {
	args := m.Called(ctx, playerID, patch)
	return args.Error(0)
}

func (m *MockTx) GetItem(ctx context.Context, playerID, itemName string, category domain.ItemCategory) (*domain.InventoryItem, error) {
	args := m.Called(ctx, playerID, itemName, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockTx) AddItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	args := m.Called(ctx, playerID, itemName, quantity, category)
	return args.Error(0)
}

func (m *MockTx) RemoveItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	args := m.Called(ctx, playerID, itemName, quantity, category)
	return args.Error(0)
}

func (m *MockTx) UpdateTool(ctx context.Context, toolID int64, patch domain.ToolPatch) error {
	args := m.Called(ctx, toolID, patch)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
