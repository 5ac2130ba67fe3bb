package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mossvale/farmstead/internal/animal"
	"github.com/mossvale/farmstead/internal/crop"
	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/economy"
	"github.com/mossvale/farmstead/internal/farm"
	"github.com/mossvale/farmstead/internal/player"
	"github.com/mossvale/farmstead/internal/world"
)

// MockPlayerService is a mock implementation of player.Service
type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) CreatePlayer(ctx context.Context, name string) (*domain.Player, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockPlayerService) AddExp(ctx context.Context, playerID string, exp int) error {
	args := m.Called(ctx, playerID, exp)
	return args.Error(0)
}

func (m *MockPlayerService) EatFood(ctx context.Context, playerID, foodName string) (*player.EatResult, error) {
	args := m.Called(ctx, playerID, foodName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*player.EatResult), args.Error(1)
}

func (m *MockPlayerService) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockPlayerService) GetTools(ctx context.Context, playerID string) ([]domain.Tool, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tool), args.Error(1)
}

// MockFarmService is a mock implementation of farm.Service
type MockFarmService struct {
	mock.Mock
}

func (m *MockFarmService) GetFarm(ctx context.Context, playerID string) (*farm.View, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.View), args.Error(1)
}

func (m *MockFarmService) Till(ctx context.Context, playerID string, x, y int) (*farm.TillResult, error) {
	args := m.Called(ctx, playerID, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.TillResult), args.Error(1)
}

// MockCropService is a mock implementation of crop.Service
type MockCropService struct {
	mock.Mock
}

func (m *MockCropService) GetCrops(ctx context.Context, playerID string) ([]domain.Crop, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Crop), args.Error(1)
}

func (m *MockCropService) Plant(ctx context.Context, playerID, seedName string, x, y int) (*crop.PlantResult, error) {
	args := m.Called(ctx, playerID, seedName, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crop.PlantResult), args.Error(1)
}

func (m *MockCropService) Water(ctx context.Context, playerID string, x, y int) (*crop.WaterResult, error) {
	args := m.Called(ctx, playerID, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crop.WaterResult), args.Error(1)
}

func (m *MockCropService) Harvest(ctx context.Context, playerID string, x, y int) (*crop.HarvestResult, error) {
	args := m.Called(ctx, playerID, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crop.HarvestResult), args.Error(1)
}

// MockAnimalService is a mock implementation of animal.Service
type MockAnimalService struct {
	mock.Mock
}

func (m *MockAnimalService) GetAnimals(ctx context.Context, playerID string) ([]domain.Animal, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Animal), args.Error(1)
}

func (m *MockAnimalService) Feed(ctx context.Context, playerID string, animalID int64, feedName string) (*animal.FeedResult, error) {
	args := m.Called(ctx, playerID, animalID, feedName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*animal.FeedResult), args.Error(1)
}

func (m *MockAnimalService) Collect(ctx context.Context, playerID string, animalID int64) (*animal.CollectResult, error) {
	args := m.Called(ctx, playerID, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*animal.CollectResult), args.Error(1)
}

func (m *MockAnimalService) Move(ctx context.Context, playerID string, animalID int64, dx, dy int) (*animal.MoveResult, error) {
	args := m.Called(ctx, playerID, animalID, dx, dy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*animal.MoveResult), args.Error(1)
}

// MockWorldService is a mock implementation of world.Service
type MockWorldService struct {
	mock.Mock
}

func (m *MockWorldService) Advance(ctx context.Context, playerID string, minutes int) (*world.ClockState, error) {
	args := m.Called(ctx, playerID, minutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*world.ClockState), args.Error(1)
}

func (m *MockWorldService) EndDay(ctx context.Context, playerID string) (*world.DayResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*world.DayResult), args.Error(1)
}

// MockEconomyService is a mock implementation of economy.Service
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) Prices(ctx context.Context, playerID string) ([]economy.PriceEntry, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]economy.PriceEntry), args.Error(1)
}

func (m *MockEconomyService) Buy(ctx context.Context, playerID, itemName string, quantity int) (*economy.BuyResult, error) {
	args := m.Called(ctx, playerID, itemName, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.BuyResult), args.Error(1)
}

func (m *MockEconomyService) Sell(ctx context.Context, playerID, itemName string, quantity int) (*economy.SellResult, error) {
	args := m.Called(ctx, playerID, itemName, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.SellResult), args.Error(1)
}

func (m *MockEconomyService) UpgradeTool(ctx context.Context, playerID, kind string) (*economy.UpgradeResult, error) {
	args := m.Called(ctx, playerID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.UpgradeResult), args.Error(1)
}

func (m *MockEconomyService) SalesHistory(ctx context.Context, playerID string, limit int) ([]domain.SalesRecord, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesRecord), args.Error(1)
}
