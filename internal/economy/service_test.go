package economy

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mossvale/farmstead/internal/concurrency"
	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/event"
	"github.com/mossvale/farmstead/internal/farm"
)

const testPlayerID = "66666666-6666-6666-6666-666666666666"

func createTestPlayer(level, money int) *domain.Player {
	return &domain.Player{
		ID:        testPlayerID,
		Name:      "农夫",
		Level:     level,
		Money:     money,
		Day:       1,
		Weather:   domain.WeatherSunny,
		Energy:    domain.MaxEnergy,
		MaxEnergy: domain.MaxEnergy,
	}
}

func setupService(repo *MockRepository) Service {
	return NewService(repo, event.NewMemoryBus(), concurrency.NewLockManager())
}

func TestSellPrice_LevelMarkup(t *testing.T) {
	assert.Equal(t, 25, SellPrice(25, 1))
	assert.Equal(t, 26, SellPrice(25, 2), "5% markup, floored")
	assert.Equal(t, 30, SellPrice(25, 5))
	assert.Equal(t, 180, SellPrice(120, 11))
}

func TestBuy_Seeds(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockEconomyTx)
	repo.On("GetPlayer", mock.Anything, testPlayerID).Return(createTestPlayer(1, 1000), nil)
	repo.On("BeginEconomyTx", mock.Anything).Return(tx, nil)

	tx.On("AddItem", mock.Anything, testPlayerID, "番茄种子", 5, domain.CategorySeed).Return(nil)
	tx.On("UpdatePlayer", mock.Anything, testPlayerID, mock.MatchedBy(func(p domain.PlayerPatch) bool {
		return p.Money != nil && *p.Money == 900
	})).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()

	svc := setupService(repo)
	result, err := svc.Buy(context.Background(), testPlayerID, "番茄种子", 5)

	require.NoError(t, err)
	assert.Equal(t, 100, result.Total)
	assert.Equal(t, 900, result.Money)
	tx.AssertExpectations(t)
}

func TestBuy_CowPlacedInBreedingZone(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockEconomyTx)
	repo.On("GetPlayer", mock.Anything, testPlayerID).Return(createTestPlayer(1, 2000), nil)
	repo.On("GetAreas", mock.Anything, testPlayerID).Return(farm.DefaultAreas(testPlayerID), nil)
	repo.On("GetAnimals", mock.Anything, testPlayerID).Return([]domain.Animal{
		{ID: 1, PlayerID: testPlayerID, Kind: "鸡", Name: "我的鸡", X: 9, Y: 7},
	}, nil)
	repo.On("BeginEconomyTx", mock.Anything).Return(tx, nil)

	// first free breeding tile after the occupied (9,7) is (10,7)
	tx.On("CreateAnimal", mock.Anything, mock.MatchedBy(func(a *domain.Animal) bool {
		return a.Kind == "牛" && a.Name == "我的牛" && a.X == 10 && a.Y == 7
	})).Return(nil)
	tx.On("UpdatePlayer", mock.Anything, testPlayerID, mock.MatchedBy(func(p domain.PlayerPatch) bool {
		return p.Money != nil && *p.Money == 500
	})).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()

	svc := setupService(repo)
	result, err := svc.Buy(context.Background(), testPlayerID, "牛", 1)

	require.NoError(t, err)
	assert.Equal(t, 1500, result.Total)
	tx.AssertExpectations(t)
}

func TestBuy_InsufficientFunds(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetPlayer", mock.Anything, testPlayerID).Return(createTestPlayer(1, 1000), nil)
	repo.On("GetAreas", mock.Anything, testPlayerID).Return(farm.DefaultAreas(testPlayerID), nil)
	repo.On("GetAnimals", mock.Anything, testPlayerID).Return([]domain.Animal{}, nil)

	svc := setupService(repo)
	_, err := svc.Buy(context.Background(), testPlayerID, "牛", 1)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	repo.AssertNotCalled(t, "BeginEconomyTx", mock.Anything)
}

func TestBuy_UnknownItem(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetPlayer", mock.Anything, testPlayerID).Return(createTestPlayer(1, 1000), nil)

	svc := setupService(repo)
	_, err := svc.Buy(context.Background(), testPlayerID, "龙", 1)

	assert.ErrorIs(t, err, domain.ErrNotBuyable)
}

func TestBuy_LostToolReplacement(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockEconomyTx)
	repo.On("GetPlayer", mock.Anything, testPlayerID).Return(createTestPlayer(1, 1000), nil)
	repo.On("GetTool", mock.Anything, testPlayerID, "锄头").
		Return(nil, fmt.Errorf("%w: 锄头", domain.ErrToolNotFound))
	repo.On("BeginEconomyTx", mock.Anything).Return(tx, nil)

	tx.On("CreateTool", mock.Anything, mock.MatchedBy(func(tool *domain.Tool) bool {
		return tool.Kind == "锄头" && tool.Level == 1 && tool.Durability == 100
	})).Return(nil)
	tx.On("UpdatePlayer", mock.Anything, testPlayerID, mock.MatchedBy(func(p domain.PlayerPatch) bool {
		return p.Money != nil && *p.Money == 500
	})).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()

	svc := setupService(repo)
	result, err := svc.Buy(context.Background(), testPlayerID, "锄头", 1)

	require.NoError(t, err)
	assert.Equal(t, domain.ToolShopPrice, result.Total)
	tx.AssertExpectations(t)
}

func TestBuy_OwnedToolNotBuyable(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetPlayer", mock.Anything, testPlayerID).Return(createTestPlayer(1, 5000), nil)
	repo.On("GetTool", mock.Anything, testPlayerID, "锄头").
		Return(&domain.Tool{ID: 4, PlayerID: testPlayerID, Kind: "锄头", Durability: 80, Level: 3}, nil)

	svc := setupService(repo)
	_, err := svc.Buy(context.Background(), testPlayerID, "锄头", 1)

	assert.ErrorIs(t, err, domain.ErrNotBuyable, "an owned tool must never be overwritten by a purchase")
	repo.AssertNotCalled(t, "BeginEconomyTx", mock.Anything)
}

func TestSell_CropWithLevelMarkup(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockEconomyTx)
	repo.On("GetPlayer", mock.Anything, testPlayerID).Return(createTestPlayer(3, 100), nil)
	repo.On("GetItem", mock.Anything, testPlayerID, "番茄", domain.CategoryCrop).
		Return(&domain.InventoryItem{ID: 1, PlayerID: testPlayerID, Name: "番茄", Quantity: 10, Category: domain.CategoryCrop}, nil)
	repo.On("BeginEconomyTx", mock.Anything).Return(tx, nil)

	// level 3 tomato: floor(40 * 1.10) = 44 each
	tx.On("RemoveItem", mock.Anything, testPlayerID, "番茄", 4, domain.CategoryCrop).Return(nil)
	tx.On("UpdatePlayer", mock.Anything, testPlayerID, mock.MatchedBy(func(p domain.PlayerPatch) bool {
		return p.Money != nil && *p.Money == 100+4*44
	})).Return(nil)
	tx.On("AddSale", mock.Anything, mock.MatchedBy(func(sale *domain.SalesRecord) bool {
		return sale.ItemName == "番茄" && sale.Quantity == 4 && sale.PriceTotal == 176
	})).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()

	svc := setupService(repo)
	result, err := svc.Sell(context.Background(), testPlayerID, "番茄", 4)

	require.NoError(t, err)
	assert.Equal(t, 44, result.UnitPrice)
	assert.Equal(t, 176, result.Total)
	tx.AssertExpectations(t)
}

func TestSell_SeedNotSellable(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetPlayer", mock.Anything, testPlayerID).Return(createTestPlayer(1, 100), nil)

	svc := setupService(repo)
	_, err := svc.Sell(context.Background(), testPlayerID, "小麦种子", 1)

	assert.ErrorIs(t, err, domain.ErrNotSellable)
	repo.AssertNotCalled(t, "GetItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "BeginEconomyTx", mock.Anything)
}

func TestSell_InsufficientQuantity(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetPlayer", mock.Anything, testPlayerID).Return(createTestPlayer(1, 100), nil)
	repo.On("GetItem", mock.Anything, testPlayerID, "牛奶", domain.CategoryProduct).
		Return(&domain.InventoryItem{ID: 3, PlayerID: testPlayerID, Name: "牛奶", Quantity: 1, Category: domain.CategoryProduct}, nil)

	svc := setupService(repo)
	_, err := svc.Sell(context.Background(), testPlayerID, "牛奶", 2)

	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
}

func TestUpgradeTool_Success(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockEconomyTx)
	repo.On("GetPlayer", mock.Anything, testPlayerID).Return(createTestPlayer(1, 2000), nil)
	repo.On("GetTool", mock.Anything, testPlayerID, "锄头").
		Return(&domain.Tool{ID: 4, PlayerID: testPlayerID, Kind: "锄头", Durability: 12, Level: 1}, nil)
	repo.On("BeginEconomyTx", mock.Anything).Return(tx, nil)

	tx.On("UpdateTool", mock.Anything, int64(4), mock.MatchedBy(func(p domain.ToolPatch) bool {
		return p.Level != nil && *p.Level == 2 && p.Durability != nil && *p.Durability == 100
	})).Return(nil)
	tx.On("UpdatePlayer", mock.Anything, testPlayerID, mock.MatchedBy(func(p domain.PlayerPatch) bool {
		return p.Money != nil && *p.Money == 1500
	})).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()

	svc := setupService(repo)
	result, err := svc.UpgradeTool(context.Background(), testPlayerID, "锄头")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Level)
	assert.Equal(t, 500, result.Cost)
	tx.AssertExpectations(t)
}

func TestUpgradeTool_AtMaxLevel(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetPlayer", mock.Anything, testPlayerID).Return(createTestPlayer(1, 99999), nil)
	repo.On("GetTool", mock.Anything, testPlayerID, "锄头").
		Return(&domain.Tool{ID: 4, PlayerID: testPlayerID, Kind: "锄头", Durability: 50, Level: 4}, nil)

	svc := setupService(repo)
	_, err := svc.UpgradeTool(context.Background(), testPlayerID, "锄头")

	assert.ErrorIs(t, err, domain.ErrToolMaxLevel)
	repo.AssertNotCalled(t, "BeginEconomyTx", mock.Anything)
}

func TestUpgradeTool_InsufficientFunds(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetPlayer", mock.Anything, testPlayerID).Return(createTestPlayer(1, 100), nil)
	repo.On("GetTool", mock.Anything, testPlayerID, "水壶").
		Return(&domain.Tool{ID: 5, PlayerID: testPlayerID, Kind: "水壶", Durability: 80, Level: 1}, nil)

	svc := setupService(repo)
	_, err := svc.UpgradeTool(context.Background(), testPlayerID, "水壶")

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestPrices_CoversCatalog(t *testing.T) {
	svc := setupService(new(MockRepository))
	entries, err := svc.Prices(context.Background(), "")

	require.NoError(t, err)
	// 4 crops x2 + 3 animals x3; tool rows need a player
	assert.Len(t, entries, 17)
}

func TestPrices_ListsOnlyLostTools(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetTools", mock.Anything, testPlayerID).Return([]domain.Tool{
		{ID: 1, PlayerID: testPlayerID, Kind: "锄头", Durability: 80, Level: 2},
		{ID: 2, PlayerID: testPlayerID, Kind: "水壶", Durability: 100, Level: 1},
	}, nil)

	svc := setupService(repo)
	entries, err := svc.Prices(context.Background(), testPlayerID)

	require.NoError(t, err)
	var tools []string
	for _, e := range entries {
		if e.Category == "工具" {
			tools = append(tools, e.Name)
		}
	}
	assert.Equal(t, []string{"镰刀"}, tools, "only the missing tool is for sale")
}
