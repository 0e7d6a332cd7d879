package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// MenuStore persists generated menus.
type MenuStore interface {
	// Create writes the menu row and then its items in one transaction.
	// Returns domain.ErrAlreadyExists if the user already has a menu for
	// that date; nothing is written in that case.
	Create(ctx context.Context, menu *domain.StoredMenu) error

	// Replace swaps any existing menu for the user and date with menu in one
	// transaction. The old menu survives if the write fails.
	Replace(ctx context.Context, menu *domain.StoredMenu) error

	// FindByDate returns the user's menu for the calendar day of date,
	// with items in position order and their foods attached.
	// Returns domain.ErrNotFound if there is none.
	FindByDate(ctx context.Context, userID string, date time.Time) (*domain.StoredMenu, error)

	// Delete removes the user's menu for date and its items.
	// Returns domain.ErrNotFound if there is none.
	Delete(ctx context.Context, userID string, date time.Time) error

	// List returns summaries of the user's menus, newest first.
	List(ctx context.Context, userID string) ([]domain.MenuSummary, error)
}
