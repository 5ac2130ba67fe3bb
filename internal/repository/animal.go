package repository

import (
	"context"

	"github.com/mossvale/farmstead/internal/domain"
)

// Animal defines the interface for livestock data access
type Animal interface {
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetAnimals(ctx context.Context, playerID string) ([]domain.Animal, error)
	GetAnimal(ctx context.Context, animalID int64) (*domain.Animal, error)
	UpdateAnimal(ctx context.Context, animalID int64, patch domain.AnimalPatch) error
	DeleteAnimal(ctx context.Context, animalID int64) error

	// Zoning lookups
	GetAreas(ctx context.Context, playerID string) ([]domain.Area, error)
	GetCropAt(ctx context.Context, playerID string, x, y int) (*domain.Crop, error)

	// Transaction support
	BeginAnimalTx(ctx context.Context) (AnimalTx, error)
}
