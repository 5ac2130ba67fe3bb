package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mossvale/farmstead/internal/domain"
)

// GetInventory returns all inventory stacks for a player, ordered by
// category then name for stable listings.
func (q queries) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	rows, err := q.db.Query(ctx, `
		SELECT item_id, item_name, quantity, category
		FROM inventory
		WHERE player_id = $1
		ORDER BY category, item_name`, playerUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		var item domain.InventoryItem
		var category string
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &category); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
		}
		item.PlayerID = playerID
		item.Category = domain.ItemCategory(category)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return items, nil
}

// GetItem returns a single stack, or nil when the player holds none.
// Stacks are keyed by name and category, matching the table's
// uniqueness.
func (q queries) GetItem(ctx context.Context, playerID, itemName string, category domain.ItemCategory) (*domain.InventoryItem, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	var item domain.InventoryItem
	err = q.db.QueryRow(ctx, `
		SELECT item_id, item_name, quantity
		FROM inventory
		WHERE player_id = $1 AND item_name = $2 AND category = $3`,
		playerUUID, itemName, string(category)).
		Scan(&item.ID, &item.Name, &item.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	item.PlayerID = playerID
	item.Category = category
	return &item, nil
}

// AddItem merges quantity into an existing stack or creates one.
func (q queries) AddItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	_, err = q.db.Exec(ctx, `
		INSERT INTO inventory (player_id, item_name, quantity, category)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id, item_name, category)
		DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity`,
		playerUUID, itemName, quantity, string(category))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertItem, err)
	}
	return nil
}

// RemoveItem deducts quantity from a stack, deleting the row when it hits
// zero. Returns ErrInsufficientQuantity when the stack is missing or short.
func (q queries) RemoveItem(ctx context.Context, playerID, itemName string, quantity int, category domain.ItemCategory) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	var current int
	err = q.db.QueryRow(ctx, `
		SELECT quantity FROM inventory
		WHERE player_id = $1 AND item_name = $2 AND category = $3
		FOR UPDATE`, playerUUID, itemName, string(category)).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s", domain.ErrInsufficientQuantity, itemName)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToRemoveItem, err)
	}
	if current < quantity {
		return fmt.Errorf("%w: %s have %d want %d", domain.ErrInsufficientQuantity, itemName, current, quantity)
	}

	if current == quantity {
		_, err = q.db.Exec(ctx, `
			DELETE FROM inventory
			WHERE player_id = $1 AND item_name = $2 AND category = $3`,
			playerUUID, itemName, string(category))
	} else {
		_, err = q.db.Exec(ctx, `
			UPDATE inventory SET quantity = quantity - $4
			WHERE player_id = $1 AND item_name = $2 AND category = $3`,
			playerUUID, itemName, string(category), quantity)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRemoveItem, err)
	}
	return nil
}
