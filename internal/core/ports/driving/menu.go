package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// MenuService generates and retrieves daily menus.
type MenuService interface {
	// Generate returns the user's menu for date, building and persisting it
	// first if none exists. An existing menu is returned unchanged.
	Generate(ctx context.Context, userID string, date time.Time) (*domain.GeneratedMenu, error)

	// Regenerate builds a new menu for date and replaces any stored one.
	// A planning failure leaves the stored menu in place.
	Regenerate(ctx context.Context, userID string, date time.Time) (*domain.GeneratedMenu, error)

	// Get returns a stored menu without generating.
	// Returns domain.ErrNotFound if there is none.
	Get(ctx context.Context, userID string, date time.Time) (*domain.GeneratedMenu, error)

	// Delete removes the stored menu for date.
	Delete(ctx context.Context, userID string, date time.Time) error

	// List returns summaries of the user's stored menus, newest first.
	List(ctx context.Context, userID string) ([]domain.MenuSummary, error)
}
