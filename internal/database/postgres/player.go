package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mossvale/farmstead/internal/domain"
)

const playerColumns = `player_id, name, level, exp, money, day, weather, energy, max_energy, last_login`

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	var id uuid.UUID
	var weather string
	if err := row.Scan(&id, &p.Name, &p.Level, &p.Exp, &p.Money, &p.Day, &weather, &p.Energy, &p.MaxEnergy, &p.LastLogin); err != nil {
		return nil, err
	}
	p.ID = id.String()
	p.Weather = domain.Weather(weather)
	return &p, nil
}

// CreatePlayer inserts a new player row. A zero ID is assigned by the
// database and written back into the struct.
func (q queries) CreatePlayer(ctx context.Context, player *domain.Player) error {
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	playerUUID, err := parsePlayerUUID(player.ID)
	if err != nil {
		return err
	}

	_, err = q.db.Exec(ctx, `
		INSERT INTO players (player_id, name, level, exp, money, day, weather, energy, max_energy, last_login)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		playerUUID, player.Name, player.Level, player.Exp, player.Money,
		player.Day, string(player.Weather), player.Energy, player.MaxEnergy, player.LastLogin)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlayer, err)
	}
	return nil
}

// GetPlayer fetches a player by ID.
func (q queries) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return q.getPlayer(ctx, playerID, false)
}

// GetPlayerForUpdate fetches a player by ID with a row lock.
func (q queries) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	return q.getPlayer(ctx, playerID, true)
}

func (q queries) getPlayer(ctx context.Context, playerID string, forUpdate bool) (*domain.Player, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	player, err := scanPlayer(q.db.QueryRow(ctx, query, playerUUID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return player, nil
}

// UpdatePlayer applies a partial update. Only non-nil patch fields are
// written.
func (q queries) UpdatePlayer(ctx context.Context, playerID string, patch domain.PlayerPatch) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Level != nil {
		add("level", *patch.Level)
	}
	if patch.Exp != nil {
		add("exp", *patch.Exp)
	}
	if patch.Money != nil {
		add("money", *patch.Money)
	}
	if patch.Day != nil {
		add("day", *patch.Day)
	}
	if patch.Weather != nil {
		add("weather", string(*patch.Weather))
	}
	if patch.Energy != nil {
		add("energy", *patch.Energy)
	}
	if patch.LastLogin != nil {
		add("last_login", *patch.LastLogin)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, playerUUID)
	query := "UPDATE players SET updated_at = NOW()"
	for _, s := range sets {
		query += ", " + s
	}
	query += fmt.Sprintf(" WHERE player_id = $%d", len(args))

	tag, err := q.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePlayer, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return nil
}

// DeletePlayer removes a player and, via cascade, all owned rows.
func (q queries) DeletePlayer(ctx context.Context, playerID string) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	tag, err := q.db.Exec(ctx, `DELETE FROM players WHERE player_id = $1`, playerUUID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePlayer, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return nil
}
