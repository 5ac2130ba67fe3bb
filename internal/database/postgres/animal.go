package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mossvale/farmstead/internal/domain"
)

const animalColumns = `animal_id, player_id, kind, name, age, is_fed, produce_time, x, y`

func scanAnimal(row pgx.Row) (*domain.Animal, error) {
	var a domain.Animal
	var produceTime pgtype.Timestamptz
	if err := row.Scan(&a.ID, &a.PlayerID, &a.Kind, &a.Name, &a.Age, &a.IsFed, &produceTime, &a.X, &a.Y); err != nil {
		return nil, err
	}
	a.ProduceTime = timestampToTime(produceTime)
	return &a, nil
}

// CreateAnimal inserts an animal row and writes the assigned ID back.
func (q queries) CreateAnimal(ctx context.Context, animal *domain.Animal) error {
	playerUUID, err := parsePlayerUUID(animal.PlayerID)
	if err != nil {
		return err
	}

	err = q.db.QueryRow(ctx, `
		INSERT INTO animals (player_id, kind, name, age, is_fed, produce_time, x, y)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING animal_id`,
		playerUUID, animal.Kind, animal.Name, animal.Age, animal.IsFed,
		timeToTimestamp(animal.ProduceTime), animal.X, animal.Y).Scan(&animal.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertAnimal, err)
	}
	return nil
}

// GetAnimals returns all animals for a player.
func (q queries) GetAnimals(ctx context.Context, playerID string) ([]domain.Animal, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	rows, err := q.db.Query(ctx, `
		SELECT `+animalColumns+` FROM animals
		WHERE player_id = $1
		ORDER BY animal_id`, playerUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAnimals, err)
	}
	defer rows.Close()

	animals := []domain.Animal{}
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAnimals, err)
		}
		animals = append(animals, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAnimals, err)
	}
	return animals, nil
}

// GetAnimal fetches an animal by ID.
func (q queries) GetAnimal(ctx context.Context, animalID int64) (*domain.Animal, error) {
	a, err := scanAnimal(q.db.QueryRow(ctx, `
		SELECT `+animalColumns+` FROM animals WHERE animal_id = $1`, animalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrAnimalNotFound, animalID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAnimal, err)
	}
	return a, nil
}

// UpdateAnimal applies a partial update to an animal row.
func (q queries) UpdateAnimal(ctx context.Context, animalID int64, patch domain.AnimalPatch) error {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Age != nil {
		add("age", *patch.Age)
	}
	if patch.IsFed != nil {
		add("is_fed", *patch.IsFed)
	}
	if patch.ProduceTime != nil {
		add("produce_time", timeToTimestamp(*patch.ProduceTime))
	}
	if patch.X != nil {
		add("x", *patch.X)
	}
	if patch.Y != nil {
		add("y", *patch.Y)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, animalID)
	query := "UPDATE animals SET " + sets[0]
	for _, s := range sets[1:] {
		query += ", " + s
	}
	query += fmt.Sprintf(" WHERE animal_id = $%d", len(args))

	tag, err := q.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateAnimal, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrAnimalNotFound, animalID)
	}
	return nil
}

// DeleteAnimal removes an animal row.
func (q queries) DeleteAnimal(ctx context.Context, animalID int64) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM animals WHERE animal_id = $1`, animalID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteAnimal, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrAnimalNotFound, animalID)
	}
	return nil
}
