package driven

import (
	"context"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// PreferenceStore persists liked and disliked foods.
// A user has at most one preference per food name (case-insensitive).
type PreferenceStore interface {
	// Set stores or replaces a preference.
	Set(ctx context.Context, userID string, pref domain.FoodPreference) error

	// Delete removes the preference for foodName.
	// Returns domain.ErrNotFound if there was none.
	Delete(ctx context.Context, userID, foodName string) error

	// List returns all of a user's preferences.
	List(ctx context.Context, userID string) ([]domain.FoodPreference, error)
}
