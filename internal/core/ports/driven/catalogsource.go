package driven

import (
	"context"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// CatalogSource reads catalog entries from outside the store.
type CatalogSource interface {
	// Name describes the source (a file path, "embedded").
	Name() string

	// Load returns the entries. IDs are not set.
	Load(ctx context.Context) ([]domain.Food, error)
}
