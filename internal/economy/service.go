// Package economy implements the market: price listings, purchases,
// sales and tool upgrades.
package economy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/mossvale/farmstead/internal/catalog"
	"github.com/mossvale/farmstead/internal/concurrency"
	"github.com/mossvale/farmstead/internal/domain"
	"github.com/mossvale/farmstead/internal/event"
	"github.com/mossvale/farmstead/internal/farm"
	"github.com/mossvale/farmstead/internal/logger"
	"github.com/mossvale/farmstead/internal/repository"
)

// MaxTransactionQuantity caps a single buy or sell order.
const MaxTransactionQuantity = 99

// SellLevelBonus is the per-level markup applied to sale prices.
const SellLevelBonus = 0.05

// PriceEntry is one row of the market listing
type PriceEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Buy      int    `json:"buy,omitempty"`
	Sell     int    `json:"sell,omitempty"`
}

// BuyResult contains the result of a purchase
type BuyResult struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Total    int    `json:"total"`
	Money    int    `json:"money"`
}

// SellResult contains the result of a sale
type SellResult struct {
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
	Total     int    `json:"total"`
	Money     int    `json:"money"`
}

// UpgradeResult contains the result of a tool upgrade
type UpgradeResult struct {
	Kind       string `json:"kind"`
	Level      int    `json:"level"`
	Durability int    `json:"durability"`
	Cost       int    `json:"cost"`
	Money      int    `json:"money"`
}

// Service defines the interface for market operations
type Service interface {
	Prices(ctx context.Context, playerID string) ([]PriceEntry, error)
	Buy(ctx context.Context, playerID, itemName string, quantity int) (*BuyResult, error)
	Sell(ctx context.Context, playerID, itemName string, quantity int) (*SellResult, error)
	UpgradeTool(ctx context.Context, playerID, kind string) (*UpgradeResult, error)
	SalesHistory(ctx context.Context, playerID string, limit int) ([]domain.SalesRecord, error)
}

type service struct {
	repo  repository.Economy
	bus   event.Bus
	locks *concurrency.LockManager
	now   func() time.Time
}

// NewService creates a new economy service
func NewService(repo repository.Economy, bus event.Bus, locks *concurrency.LockManager) Service {
	return &service{
		repo:  repo,
		bus:   bus,
		locks: locks,
		now:   time.Now,
	}
}

// SellPrice is the player-facing unit price for a base price at a level.
func SellPrice(base, level int) int {
	return int(float64(base) * (1 + SellLevelBonus*float64(level-1)))
}

// Prices returns the market listing. With a playerID the tool rows are
// filtered to kinds the player does not own, since the shop only sells
// replacements for lost tools. Without one the tool rows are omitted.
func (s *service) Prices(ctx context.Context, playerID string) ([]PriceEntry, error) {
	var entries []PriceEntry
	for _, c := range catalog.Crops() {
		entries = append(entries,
			PriceEntry{Name: c.SeedName(), Category: string(domain.CategorySeed), Buy: c.SeedPrice},
			PriceEntry{Name: c.Name, Category: string(domain.CategoryCrop), Sell: c.SellPrice},
		)
	}
	for _, a := range catalog.Animals() {
		entries = append(entries,
			PriceEntry{Name: a.Name, Category: "动物", Buy: a.PurchasePrice},
			PriceEntry{Name: a.FeedName, Category: string(domain.CategoryFeed), Buy: a.FeedPrice},
			PriceEntry{Name: a.Product, Category: string(domain.CategoryProduct), Sell: a.ProductPrice},
		)
	}
	if playerID != "" {
		owned, err := s.repo.GetTools(ctx, playerID)
		if err != nil {
			return nil, err
		}
		has := make(map[string]bool, len(owned))
		for _, t := range owned {
			has[t.Kind] = true
		}
		for _, t := range catalog.Tools() {
			if has[t.Name] {
				continue
			}
			entries = append(entries, PriceEntry{Name: t.Name, Category: "工具", Buy: domain.ToolShopPrice})
		}
	}
	return entries, nil
}

// Buy purchases seeds, feed, animals or replacement tools. Item names
// are normalized to NFC before lookup so composed and decomposed input
// resolve to the same goods.
func (s *service) Buy(ctx context.Context, playerID, itemName string, quantity int) (*BuyResult, error) {
	log := logger.FromContext(ctx)

	itemName = norm.NFC.String(strings.TrimSpace(itemName))
	if quantity <= 0 || quantity > MaxTransactionQuantity {
		return nil, fmt.Errorf("%w: quantity must be 1..%d", domain.ErrInvalidInput, MaxTransactionQuantity)
	}

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	var (
		unitPrice int
		apply     func(tx repository.EconomyTx) error
	)
	switch {
	case isSeed(itemName):
		kind, err := catalog.CropForSeed(itemName)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotBuyable, itemName)
		}
		unitPrice = kind.SeedPrice
		apply = func(tx repository.EconomyTx) error {
			return tx.AddItem(ctx, playerID, itemName, quantity, domain.CategorySeed)
		}
	case isFeed(itemName):
		kind, err := catalog.AnimalForFeed(itemName)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotBuyable, itemName)
		}
		unitPrice = kind.FeedPrice
		apply = func(tx repository.EconomyTx) error {
			return tx.AddItem(ctx, playerID, itemName, quantity, domain.CategoryFeed)
		}
	case isAnimal(itemName):
		kind, _ := catalog.Animal(itemName)
		unitPrice = kind.PurchasePrice
		spots, err := s.freeBreedingTiles(ctx, playerID, quantity)
		if err != nil {
			return nil, err
		}
		apply = func(tx repository.EconomyTx) error {
			for i := 0; i < quantity; i++ {
				newborn := &domain.Animal{
					PlayerID: playerID,
					Kind:     kind.Name,
					Name:     "我的" + kind.Name,
					X:        spots[i].X,
					Y:        spots[i].Y,
				}
				if err := tx.CreateAnimal(ctx, newborn); err != nil {
					return err
				}
			}
			return nil
		}
	case isTool(itemName):
		kind, _ := catalog.Tool(itemName)
		unitPrice = domain.ToolShopPrice
		if quantity != 1 {
			return nil, fmt.Errorf("%w: tools are bought one at a time", domain.ErrInvalidInput)
		}
		// the shop only sells replacements for tools the player lost
		_, err := s.repo.GetTool(ctx, playerID, kind.Name)
		if err == nil {
			return nil, fmt.Errorf("%w: %s already owned", domain.ErrNotBuyable, itemName)
		}
		if !errors.Is(err, domain.ErrToolNotFound) {
			return nil, err
		}
		apply = func(tx repository.EconomyTx) error {
			return tx.CreateTool(ctx, &domain.Tool{
				PlayerID:   playerID,
				Kind:       kind.Name,
				Durability: kind.MaxDurability,
				Level:      1,
			})
		}
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrNotBuyable, itemName)
	}

	total := unitPrice * quantity
	if player.Money < total {
		return nil, fmt.Errorf("%w: need %d have %d", domain.ErrInsufficientFunds, total, player.Money)
	}
	money := player.Money - total

	tx, err := s.repo.BeginEconomyTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := apply(tx); err != nil {
		return nil, err
	}
	if err := tx.UpdatePlayer(ctx, playerID, domain.PlayerPatch{Money: &money}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.bus.Publish(ctx, event.NewMarketPurchasedEvent(playerID, itemName, quantity, total)); err != nil {
		log.Warn("Failed to publish purchase event", "error", err)
	}

	log.Info("Purchased", "player_id", playerID, "item", itemName, "quantity", quantity, "total", total)
	return &BuyResult{ItemName: itemName, Quantity: quantity, Total: total, Money: money}, nil
}

// Sell trades crops or animal products for money. The sale price scales
// with the player's level.
func (s *service) Sell(ctx context.Context, playerID, itemName string, quantity int) (*SellResult, error) {
	log := logger.FromContext(ctx)

	itemName = norm.NFC.String(strings.TrimSpace(itemName))
	if quantity <= 0 || quantity > MaxTransactionQuantity {
		return nil, fmt.Errorf("%w: quantity must be 1..%d", domain.ErrInvalidInput, MaxTransactionQuantity)
	}

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	var (
		base     int
		category domain.ItemCategory
	)
	if kind, err := catalog.Crop(itemName); err == nil {
		base, category = kind.SellPrice, domain.CategoryCrop
	} else if kind, err := catalog.AnimalForProduct(itemName); err == nil {
		base, category = kind.ProductPrice, domain.CategoryProduct
	} else {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotSellable, itemName)
	}

	item, err := s.repo.GetItem(ctx, playerID, itemName, category)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Quantity < quantity {
		return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientQuantity, itemName)
	}

	unitPrice := SellPrice(base, player.Level)
	total := unitPrice * quantity
	money := player.Money + total

	tx, err := s.repo.BeginEconomyTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.RemoveItem(ctx, playerID, itemName, quantity, category); err != nil {
		return nil, err
	}
	if err := tx.UpdatePlayer(ctx, playerID, domain.PlayerPatch{Money: &money}); err != nil {
		return nil, err
	}
	if err := tx.AddSale(ctx, &domain.SalesRecord{
		PlayerID:   playerID,
		ItemName:   itemName,
		Quantity:   quantity,
		PriceTotal: total,
		SoldAt:     s.now(),
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.bus.Publish(ctx, event.NewMarketSoldEvent(playerID, itemName, quantity, total)); err != nil {
		log.Warn("Failed to publish sale event", "error", err)
	}

	log.Info("Sold", "player_id", playerID, "item", itemName, "quantity", quantity, "total", total)
	return &SellResult{
		ItemName:  itemName,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Total:     total,
		Money:     money,
	}, nil
}

// UpgradeTool raises a tool one level and restores its durability.
func (s *service) UpgradeTool(ctx context.Context, playerID, kind string) (*UpgradeResult, error) {
	log := logger.FromContext(ctx)

	kind = norm.NFC.String(strings.TrimSpace(kind))
	toolKind, err := catalog.Tool(kind)
	if err != nil {
		return nil, err
	}

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	tool, err := s.repo.GetTool(ctx, playerID, toolKind.Name)
	if err != nil {
		return nil, err
	}

	cost, err := toolKind.UpgradeCost(tool.Level)
	if err != nil {
		return nil, err
	}
	if player.Money < cost {
		return nil, fmt.Errorf("%w: need %d have %d", domain.ErrInsufficientFunds, cost, player.Money)
	}

	money := player.Money - cost
	level := tool.Level + 1
	durability := toolKind.MaxDurability

	tx, err := s.repo.BeginEconomyTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.UpdateTool(ctx, tool.ID, domain.ToolPatch{Durability: &durability, Level: &level}); err != nil {
		return nil, err
	}
	if err := tx.UpdatePlayer(ctx, playerID, domain.PlayerPatch{Money: &money}); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.bus.Publish(ctx, event.NewToolUpgradedEvent(playerID, toolKind.Name, cost)); err != nil {
		log.Warn("Failed to publish upgrade event", "error", err)
	}

	log.Info("Upgraded tool", "player_id", playerID, "kind", toolKind.Name, "level", level, "cost", cost)
	return &UpgradeResult{
		Kind:       toolKind.Name,
		Level:      level,
		Durability: durability,
		Cost:       cost,
		Money:      money,
	}, nil
}

func (s *service) SalesHistory(ctx context.Context, playerID string, limit int) ([]domain.SalesRecord, error) {
	if _, err := s.repo.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}
	return s.repo.GetSales(ctx, playerID, limit)
}

// freeBreedingTiles finds tiles inside the breeding zone that no animal
// occupies, in row-major order.
func (s *service) freeBreedingTiles(ctx context.Context, playerID string, count int) ([]domain.TilePosition, error) {
	areas, err := s.repo.GetAreas(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if len(areas) == 0 {
		areas = farm.DefaultAreas(playerID)
	}
	zone := farm.Zone(areas, domain.AreaBreeding)
	if zone == nil {
		return nil, fmt.Errorf("%w: no breeding zone", domain.ErrInvalidZone)
	}

	herd, err := s.repo.GetAnimals(ctx, playerID)
	if err != nil {
		return nil, err
	}
	occupied := make(map[domain.TilePosition]bool, len(herd))
	for _, a := range herd {
		occupied[a.Position()] = true
	}

	var spots []domain.TilePosition
	for y := zone.Y; y < zone.Y+zone.Height && len(spots) < count; y++ {
		for x := zone.X; x < zone.X+zone.Width && len(spots) < count; x++ {
			pos := domain.TilePosition{X: x, Y: y}
			if !occupied[pos] {
				spots = append(spots, pos)
			}
		}
	}
	if len(spots) < count {
		return nil, fmt.Errorf("%w: breeding zone is full", domain.ErrBlocked)
	}
	return spots, nil
}

func isSeed(name string) bool {
	if !strings.HasSuffix(name, domain.SeedSuffix) {
		return false
	}
	_, err := catalog.CropForSeed(name)
	return err == nil
}

func isFeed(name string) bool {
	_, err := catalog.AnimalForFeed(name)
	return err == nil
}

func isAnimal(name string) bool {
	_, err := catalog.Animal(name)
	return err == nil
}

func isTool(name string) bool {
	_, err := catalog.Tool(name)
	return err == nil
}
