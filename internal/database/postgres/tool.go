package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mossvale/farmstead/internal/domain"
)

// CreateTool inserts a tool row and writes the assigned ID back.
func (q queries) CreateTool(ctx context.Context, tool *domain.Tool) error {
	playerUUID, err := parsePlayerUUID(tool.PlayerID)
	if err != nil {
		return err
	}

	err = q.db.QueryRow(ctx, `
		INSERT INTO tools (player_id, kind, durability, level)
		VALUES ($1, $2, $3, $4)
		RETURNING tool_id`,
		playerUUID, tool.Kind, tool.Durability, tool.Level).Scan(&tool.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertTool, err)
	}
	return nil
}

// GetTools returns all tools for a player.
func (q queries) GetTools(ctx context.Context, playerID string) ([]domain.Tool, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	rows, err := q.db.Query(ctx, `
		SELECT tool_id, kind, durability, level
		FROM tools
		WHERE player_id = $1
		ORDER BY kind`, playerUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTools, err)
	}
	defer rows.Close()

	tools := []domain.Tool{}
	for rows.Next() {
		var t domain.Tool
		if err := rows.Scan(&t.ID, &t.Kind, &t.Durability, &t.Level); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTools, err)
		}
		t.PlayerID = playerID
		tools = append(tools, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTools, err)
	}
	return tools, nil
}

// GetTool returns the player's tool of the given kind.
func (q queries) GetTool(ctx context.Context, playerID, kind string) (*domain.Tool, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	var t domain.Tool
	err = q.db.QueryRow(ctx, `
		SELECT tool_id, kind, durability, level
		FROM tools
		WHERE player_id = $1 AND kind = $2`, playerUUID, kind).
		Scan(&t.ID, &t.Kind, &t.Durability, &t.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrToolNotFound, kind)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTool, err)
	}
	t.PlayerID = playerID
	return &t, nil
}

// UpdateTool applies a partial update to a tool row.
func (q queries) UpdateTool(ctx context.Context, toolID int64, patch domain.ToolPatch) error {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if patch.Durability != nil {
		args = append(args, *patch.Durability)
		sets = append(sets, fmt.Sprintf("durability = $%d", len(args)))
	}
	if patch.Level != nil {
		args = append(args, *patch.Level)
		sets = append(sets, fmt.Sprintf("level = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, toolID)
	query := "UPDATE tools SET " + sets[0]
	for _, s := range sets[1:] {
		query += ", " + s
	}
	query += fmt.Sprintf(" WHERE tool_id = $%d", len(args))

	tag, err := q.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateTool, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrToolNotFound, toolID)
	}
	return nil
}
