package driving

import (
	"context"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// CatalogService manages the food catalog.
type CatalogService interface {
	// List returns every food sorted by category, then name.
	List(ctx context.Context) ([]domain.Food, error)

	// Get returns a food by case-insensitive name.
	Get(ctx context.Context, name string) (*domain.Food, error)

	// Import validates and upserts foods by name.
	Import(ctx context.Context, foods []domain.Food) (*domain.ImportResult, error)

	// Seed imports the built-in starter catalog.
	Seed(ctx context.Context) (*domain.ImportResult, error)
}
