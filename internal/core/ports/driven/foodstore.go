package driven

import (
	"context"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// FoodStore persists the food catalog.
type FoodStore interface {
	// Save inserts a food or updates the entry with the same name
	// (case-insensitive). The stored ID is written back to food.
	Save(ctx context.Context, food *domain.Food) error

	// Get retrieves a food by ID.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id int64) (*domain.Food, error)

	// GetByName retrieves a food by case-insensitive name.
	// Returns domain.ErrNotFound if absent.
	GetByName(ctx context.Context, name string) (*domain.Food, error)

	// List returns every food. Callers must not rely on the order.
	List(ctx context.Context) ([]domain.Food, error)

	// Delete removes a food by ID.
	Delete(ctx context.Context, id int64) error
}
