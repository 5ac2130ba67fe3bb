package postgres

import (
	"context"
	"fmt"

	"github.com/mossvale/farmstead/internal/domain"
)

// CreateArea inserts an area row and writes the assigned ID back.
func (q queries) CreateArea(ctx context.Context, area *domain.Area) error {
	playerUUID, err := parsePlayerUUID(area.PlayerID)
	if err != nil {
		return err
	}

	err = q.db.QueryRow(ctx, `
		INSERT INTO areas (player_id, kind, x, y, width, height)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING area_id`,
		playerUUID, string(area.Kind), area.X, area.Y, area.Width, area.Height).
		Scan(&area.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertArea, err)
	}
	return nil
}

// GetAreas returns all zoned areas for a player.
func (q queries) GetAreas(ctx context.Context, playerID string) ([]domain.Area, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	rows, err := q.db.Query(ctx, `
		SELECT area_id, kind, x, y, width, height
		FROM areas
		WHERE player_id = $1
		ORDER BY area_id`, playerUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAreas, err)
	}
	defer rows.Close()

	areas := []domain.Area{}
	for rows.Next() {
		var a domain.Area
		var kind string
		if err := rows.Scan(&a.ID, &kind, &a.X, &a.Y, &a.Width, &a.Height); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAreas, err)
		}
		a.PlayerID = playerID
		a.Kind = domain.AreaKind(kind)
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAreas, err)
	}
	return areas, nil
}

// GetTilledLand returns the tilled tiles without a planted crop.
func (q queries) GetTilledLand(ctx context.Context, playerID string) ([]domain.TilledTile, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	rows, err := q.db.Query(ctx, `
		SELECT x, y, is_watered
		FROM tilled_land
		WHERE player_id = $1
		ORDER BY y, x`, playerUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTilledLand, err)
	}
	defer rows.Close()

	tiles := []domain.TilledTile{}
	for rows.Next() {
		var t domain.TilledTile
		if err := rows.Scan(&t.X, &t.Y, &t.Watered); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTilledLand, err)
		}
		tiles = append(tiles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTilledLand, err)
	}
	return tiles, nil
}

// SaveTilledLand replaces the player's tilled set wholesale. Runs in a
// single transaction when called through WorldTx; callers outside a
// transaction get delete and reinsert as separate statements.
func (q queries) SaveTilledLand(ctx context.Context, playerID string, tiles []domain.TilledTile) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	if _, err := q.db.Exec(ctx, `DELETE FROM tilled_land WHERE player_id = $1`, playerUUID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveTilledLand, err)
	}
	for _, t := range tiles {
		if _, err := q.db.Exec(ctx, `
			INSERT INTO tilled_land (player_id, x, y, is_watered)
			VALUES ($1, $2, $3, $4)`,
			playerUUID, t.X, t.Y, t.Watered); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSaveTilledLand, err)
		}
	}
	return nil
}

// AddTilledTile records a single newly tilled tile.
func (q queries) AddTilledTile(ctx context.Context, playerID string, tile domain.TilledTile) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	_, err = q.db.Exec(ctx, `
		INSERT INTO tilled_land (player_id, x, y, is_watered)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id, x, y)
		DO UPDATE SET is_watered = EXCLUDED.is_watered`,
		playerUUID, tile.X, tile.Y, tile.Watered)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddTilledTile, err)
	}
	return nil
}

// RemoveTilledTile drops a tile from the tilled set, typically because a
// crop now occupies it.
func (q queries) RemoveTilledTile(ctx context.Context, playerID string, x, y int) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	_, err = q.db.Exec(ctx, `
		DELETE FROM tilled_land WHERE player_id = $1 AND x = $2 AND y = $3`,
		playerUUID, x, y)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearTilledTile, err)
	}
	return nil
}
