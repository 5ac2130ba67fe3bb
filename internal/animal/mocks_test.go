package animal

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/repository"
)

// MockRepository implements repository.Animal for testing
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

func (m *MockRepository) GetAnimals(ctx context.Context, playerID string) ([]domain.Animal, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Animal), args.Error(1)
}

func (m *MockRepository) GetAnimal(ctx context.Context, animalID int64) (*domain.Animal, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Animal), args.Error(1)
}

func (m *MockRepository) UpdateAnimal(ctx context.Context, animalID int64, patch domain.AnimalPatch) error {
	args := m.Called(ctx, animalID, patch)
	return args.Error(0)
}

func (m *MockRepository) DeleteAnimal(ctx context.Context, animalID int64) error {
	args := m.Called(ctx, animalID)
	return args.Error(0)
}

func (m *MockRepository) GetAreas(ctx context.Context, playerID string) ([]domain.Area, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Area), args.Error(1)
}

func (m *MockRepository) GetCropAt(ctx context.Context, playerID string, x, y int) (*domain.Crop, error) {
	args := m.Called(ctx, playerID, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crop), args.Error(1)
}

func (m *MockRepository) BeginAnimalTx(ctx context.Context) (repository.AnimalTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.AnimalTx), args.Error(1)
}

// MockAnimalTx implements repository.AnimalTx for testing
type MockAnimalTx struct {
	mock.Mock
}

func (m *MockAnimalTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockAnimalTx) UpdatePlayer(ctx context.Context, playerID string, patch domain.PlayerPatch) error {
	args := m.Called(ctx, playerID, patch)
	return args.Error(0)
}

func (m *MockAnimalTx) GetItem(ctx context.Context, playerID, itemName string, category domain.ItemCategory) (*domain.InventoryItem, error) {
	args := m.Called(ctx, playerID, itemName, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockAnimalTx) AddItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	args := m.Called(ctx, playerID, itemName, quantity, category)
	return args.Error(0)
}

func (m *MockAnimalTx) RemoveItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	args := m.Called(ctx, playerID, itemName, quantity, category)
	return args.Error(0)
}

func (m *MockAnimalTx) UpdateTool(ctx context.Context, toolID int64, patch domain.ToolPatch) error {
	args := m.Called(ctx, toolID, patch)
	return args.Error(0)
}

func (m *MockAnimalTx) UpdateAnimal(ctx context.Context, animalID int64, patch domain.AnimalPatch) error {
	args := m.Called(ctx, animalID, patch)
	return args.Error(0)
}

func (m *MockAnimalTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAnimalTx) Rollback(ctx context.Context) error {
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
