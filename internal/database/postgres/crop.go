package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mossvale/farmstead/internal/domain"
)

const cropColumns = `crop_id, player_id, kind, x, y, growth_stage, is_watered, planted_at`

func scanCrop(row pgx.Row) (*domain.Crop, error) {
	var c domain.Crop
	if err := row.Scan(&c.ID, &c.PlayerID, &c.Kind, &c.X, &c.Y, &c.GrowthStage, &c.IsWatered, &c.PlantedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCrop inserts a crop row and writes the assigned ID back. The
// unique (player, x, y) constraint maps to ErrTileOccupied.
func (q queries) CreateCrop(ctx context.Context, crop *domain.Crop) error {
	playerUUID, err := parsePlayerUUID(crop.PlayerID)
	if err != nil {
		return err
	}

	err = q.db.QueryRow(ctx, `
		INSERT INTO crops (player_id, kind, x, y, growth_stage, is_watered, planted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING crop_id`,
		playerUUID, crop.Kind, crop.X, crop.Y, crop.GrowthStage, crop.IsWatered, crop.PlantedAt).
		Scan(&crop.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: (%d,%d)", domain.ErrTileOccupied, crop.X, crop.Y)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertCrop, err)
	}
	return nil
}

// GetCrops returns all crops for a player.
func (q queries) GetCrops(ctx context.Context, playerID string) ([]domain.Crop, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	rows, err := q.db.Query(ctx, `
		SELECT `+cropColumns+` FROM crops
		WHERE player_id = $1
		ORDER BY crop_id`, playerUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCrops, err)
	}
	defer rows.Close()

	crops := []domain.Crop{}
	for rows.Next() {
		c, err := scanCrop(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCrops, err)
		}
		crops = append(crops, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCrops, err)
	}
	return crops, nil
}

// GetCrop fetches a crop by ID.
func (q queries) GetCrop(ctx context.Context, cropID int64) (*domain.Crop, error) {
	c, err := scanCrop(q.db.QueryRow(ctx, `
		SELECT `+cropColumns+` FROM crops WHERE crop_id = $1`, cropID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrCropNotFound, cropID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCrop, err)
	}
	return c, nil
}

// GetCropAt fetches the crop at a tile, or nil when the tile is free.
func (q queries) GetCropAt(ctx context.Context, playerID string, x, y int) (*domain.Crop, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	c, err := scanCrop(q.db.QueryRow(ctx, `
		SELECT `+cropColumns+` FROM crops
		WHERE player_id = $1 AND x = $2 AND y = $3`, playerUUID, x, y))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCrop, err)
	}
	return c, nil
}

// UpdateCrop applies a partial update to a crop row.
func (q queries) UpdateCrop(ctx context.Context, cropID int64, patch domain.CropPatch) error {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if patch.GrowthStage != nil {
		args = append(args, *patch.GrowthStage)
		sets = append(sets, fmt.Sprintf("growth_stage = $%d", len(args)))
	}
	if patch.IsWatered != nil {
		args = append(args, *patch.IsWatered)
		sets = append(sets, fmt.Sprintf("is_watered = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, cropID)
	query := "UPDATE crops SET " + sets[0]
	for _, s := range sets[1:] {
		query += ", " + s
	}
	query += fmt.Sprintf(" WHERE crop_id = $%d", len(args))

	tag, err := q.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCrop, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrCropNotFound, cropID)
	}
	return nil
}

// DeleteCrop removes a crop row.
func (q queries) DeleteCrop(ctx context.Context, cropID int64) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM crops WHERE crop_id = $1`, cropID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteCrop, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrCropNotFound, cropID)
	}
	return nil
}
