package driven

import (
	"context"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// ProfileStore persists nutrition profiles.
type ProfileStore interface {
	// Save stores or replaces the profile for profile.UserID.
	Save(ctx context.Context, profile domain.NutritionProfile) error

	// Get retrieves a user's profile.
	// Returns domain.ErrNotFound if the user has not onboarded.
	Get(ctx context.Context, userID string) (*domain.NutritionProfile, error)
}
