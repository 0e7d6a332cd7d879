package driving

import (
	"context"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// ProfileService manages nutrition profiles and food preferences.
type ProfileService interface {
	// Onboard validates the form, computes daily targets and stores the profile.
	Onboard(ctx context.Context, userID string, input domain.ProfileInput) (*domain.NutritionProfile, error)

	// Get returns the user's profile.
	Get(ctx context.Context, userID string) (*domain.NutritionProfile, error)

	// SetPreference records a like or dislike for a food name.
	SetPreference(ctx context.Context, userID, foodName string, liked bool) error

	// ClearPreference removes any preference for a food name.
	ClearPreference(ctx context.Context, userID, foodName string) error

	// Preferences returns the user's preferences sorted by food name.
	Preferences(ctx context.Context, userID string) ([]domain.FoodPreference, error)
}
