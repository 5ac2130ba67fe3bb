package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mossvale/farmstead/internal/database"
	"github.com/mossvale/farmstead/internal/domain"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		testDBConnString = connStr
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	if err := database.Migrate(connStr); err != nil {
		fmt.Printf("WARNING: Failed to run migrations: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := database.NewPool(testDBConnString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return NewRepository(pool)
}

func createTestPlayer(t *testing.T, repo *Repository, name string) *domain.Player {
	t.Helper()
	player := &domain.Player{
		Name:      name,
		Level:     1,
		Money:     1000,
		Day:       1,
		Weather:   domain.WeatherSunny,
		Energy:    domain.MaxEnergy,
		MaxEnergy: domain.MaxEnergy,
		LastLogin: time.Now().UTC(),
	}
	require.NoError(t, repo.CreatePlayer(context.Background(), player))
	t.Cleanup(func() {
		_ = repo.DeletePlayer(context.Background(), player.ID)
	})
	return player
}

func TestPlayerLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	player := createTestPlayer(t, repo, "农夫")

	got, err := repo.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, "农夫", got.Name)
	assert.Equal(t, 1000, got.Money)
	assert.Equal(t, domain.WeatherSunny, got.Weather)

	money := 1234
	level := 3
	require.NoError(t, repo.UpdatePlayer(ctx, player.ID, domain.PlayerPatch{Money: &money, Level: &level}))

	got, err = repo.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 1234, got.Money)
	assert.Equal(t, 3, got.Level)
	assert.Equal(t, 1, got.Day, "untouched fields keep their values")

	_, err = repo.GetPlayer(ctx, "00000000-0000-0000-0000-000000000001")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestAreasAllowMultiplePerKind(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	player := createTestPlayer(t, repo, "分区农夫")

	first := domain.Area{PlayerID: player.ID, Kind: domain.AreaPlanting, X: 9, Y: 1, Width: 6, Height: 5}
	second := domain.Area{PlayerID: player.ID, Kind: domain.AreaPlanting, X: 0, Y: 1, Width: 4, Height: 3}
	require.NoError(t, repo.CreateArea(ctx, &first))
	require.NoError(t, repo.CreateArea(ctx, &second), "a second planting area must not collide")

	areas, err := repo.GetAreas(ctx, player.ID)
	require.NoError(t, err)

	planting := 0
	for _, a := range areas {
		if a.Kind == domain.AreaPlanting {
			planting++
		}
	}
	assert.Equal(t, 2, planting)
}

func TestInventoryMergeAndRemove(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	player := createTestPlayer(t, repo, "tester")

	require.NoError(t, repo.AddItem(ctx, player.ID, "小麦种子", 5, domain.CategorySeed))
	require.NoError(t, repo.AddItem(ctx, player.ID, "小麦种子", 3, domain.CategorySeed))

	item, err := repo.GetItem(ctx, player.ID, "小麦种子", domain.CategorySeed)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 8, item.Quantity, "same item merges into one stack")

	require.NoError(t, repo.RemoveItem(ctx, player.ID, "小麦种子", 8, domain.CategorySeed))

	item, err = repo.GetItem(ctx, player.ID, "小麦种子", domain.CategorySeed)
	require.NoError(t, err)
	assert.Nil(t, item, "stack removed at zero quantity")

	err = repo.RemoveItem(ctx, player.ID, "小麦种子", 1, domain.CategorySeed)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
}

func TestInventorySameNameAcrossCategories(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	player := createTestPlayer(t, repo, "tester")

	require.NoError(t, repo.AddItem(ctx, player.ID, "小麦", 6, domain.CategoryCrop))
	require.NoError(t, repo.AddItem(ctx, player.ID, "小麦", 2, domain.CategoryFeed))

	crop, err := repo.GetItem(ctx, player.ID, "小麦", domain.CategoryCrop)
	require.NoError(t, err)
	require.NotNil(t, crop)
	assert.Equal(t, 6, crop.Quantity, "stacks with the same name stay separate per category")

	require.NoError(t, repo.RemoveItem(ctx, player.ID, "小麦", 6, domain.CategoryCrop))

	feed, err := repo.GetItem(ctx, player.ID, "小麦", domain.CategoryFeed)
	require.NoError(t, err)
	require.NotNil(t, feed)
	assert.Equal(t, 2, feed.Quantity, "removing the crop stack leaves the feed stack intact")
}

func TestCropUniqueTile(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	player := createTestPlayer(t, repo, "tester")

	crop := &domain.Crop{PlayerID: player.ID, Kind: "小麦", X: 9, Y: 1, PlantedAt: time.Now().UTC()}
	require.NoError(t, repo.CreateCrop(ctx, crop))
	assert.NotZero(t, crop.ID)

	dup := &domain.Crop{PlayerID: player.ID, Kind: "番茄", X: 9, Y: 1, PlantedAt: time.Now().UTC()}
	err := repo.CreateCrop(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrTileOccupied)

	found, err := repo.GetCropAt(ctx, player.ID, 9, 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "小麦", found.Kind)

	free, err := repo.GetCropAt(ctx, player.ID, 10, 1)
	require.NoError(t, err)
	assert.Nil(t, free)
}

func TestTilledLandSaveReplaces(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	player := createTestPlayer(t, repo, "tester")

	require.NoError(t, repo.AddTilledTile(ctx, player.ID, domain.TilledTile{X: 9, Y: 1}))
	require.NoError(t, repo.AddTilledTile(ctx, player.ID, domain.TilledTile{X: 10, Y: 1}))

	tiles, err := repo.GetTilledLand(ctx, player.ID)
	require.NoError(t, err)
	assert.Len(t, tiles, 2)

	require.NoError(t, repo.SaveTilledLand(ctx, player.ID, []domain.TilledTile{
		{X: 11, Y: 2, Watered: true},
	}))

	tiles, err = repo.GetTilledLand(ctx, player.ID)
	require.NoError(t, err)
	require.Len(t, tiles, 1)
	assert.Equal(t, 11, tiles[0].X)
	assert.True(t, tiles[0].Watered)
}

func TestAnimalProduceTimeNullable(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	player := createTestPlayer(t, repo, "tester")

	animal := &domain.Animal{PlayerID: player.ID, Kind: "鸡", Name: "我的鸡", X: 10, Y: 8}
	require.NoError(t, repo.CreateAnimal(ctx, animal))

	got, err := repo.GetAnimal(ctx, animal.ID)
	require.NoError(t, err)
	assert.True(t, got.ProduceTime.IsZero(), "unfed animal has no production clock")

	fed := true
	now := time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, repo.UpdateAnimal(ctx, animal.ID, domain.AnimalPatch{IsFed: &fed, ProduceTime: &now}))

	got, err = repo.GetAnimal(ctx, animal.ID)
	require.NoError(t, err)
	assert.True(t, got.IsFed)
	assert.WithinDuration(t, now, got.ProduceTime, time.Second)
}

func TestEconomyTxRollback(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	player := createTestPlayer(t, repo, "tester")

	tx, err := repo.BeginEconomyTx(ctx)
	require.NoError(t, err)

	money := 500
	require.NoError(t, tx.UpdatePlayer(ctx, player.ID, domain.PlayerPatch{Money: &money}))
	require.NoError(t, tx.AddSale(ctx, &domain.SalesRecord{
		PlayerID: player.ID, ItemName: "小麦", Quantity: 2, PriceTotal: 50, SoldAt: time.Now().UTC(),
	}))
	require.NoError(t, tx.Rollback(ctx))

	got, err := repo.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000, got.Money, "rolled back update not visible")

	sales, err := repo.GetSales(ctx, player.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestSalesOrderedNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	player := createTestPlayer(t, repo, "tester")

	base := time.Now().UTC().Add(-time.Hour)
	for i, name := range []string{"小麦", "番茄", "牛奶"} {
		require.NoError(t, repo.AddSale(ctx, &domain.SalesRecord{
			PlayerID: player.ID, ItemName: name, Quantity: 1, PriceTotal: 10 * (i + 1),
			SoldAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	sales, err := repo.GetSales(ctx, player.ID, 2)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "牛奶", sales[0].ItemName)
	assert.Equal(t, "番茄", sales[1].ItemName)
}
