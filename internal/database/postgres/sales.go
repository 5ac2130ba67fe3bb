package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mossvale/farmstead/internal/domain"
)

// AddSale appends a record to the sales log and writes the assigned ID
// back.
func (q queries) AddSale(ctx context.Context, sale *domain.SalesRecord) error {
	playerUUID, err := parsePlayerUUID(sale.PlayerID)
	if err != nil {
		return err
	}

	err = q.db.QueryRow(ctx, `
		INSERT INTO sales_log (player_id, item_name, quantity, price_total, sold_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING sale_id`,
		playerUUID, sale.ItemName, sale.Quantity, sale.PriceTotal, sale.SoldAt).
		Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertSale, err)
	}
	return nil
}

// GetSales returns the most recent sales for a player, newest first.
// A non-positive limit returns the full history.
func (q queries) GetSales(ctx context.Context, playerID string, limit int) ([]domain.SalesRecord, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT sale_id, item_name, quantity, price_total, sold_at
		FROM sales_log
		WHERE player_id = $1
		ORDER BY sold_at DESC, sale_id DESC`
	args := []any{playerUUID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSales, err)
	}
	defer rows.Close()

	sales := []domain.SalesRecord{}
	for rows.Next() {
		var s domain.SalesRecord
		if err := rows.Scan(&s.ID, &s.ItemName, &s.Quantity, &s.PriceTotal, &s.SoldAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSales, err)
		}
		s.PlayerID = playerID
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSales, err)
	}
	return sales, nil
}

// PruneSales deletes sales log entries older than the cutoff and returns
// the number of rows removed.
func (q queries) PruneSales(ctx context.Context, before time.Time) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM sales_log WHERE sold_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToPruneSales, err)
	}
	return tag.RowsAffected(), nil
}
