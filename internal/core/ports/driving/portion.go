package driving

import (
	"context"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// PortionService sizes portions of catalog foods outside menu generation.
type PortionService interface {
	// Scale rescales the portions once toward targetCalories and clamps them.
	Scale(ctx context.Context, portions []domain.PortionRequest, targetCalories float64) ([]domain.MealItem, error)

	// TopUp spreads remainingCalories evenly over the portions and clamps them.
	TopUp(ctx context.Context, portions []domain.PortionRequest, remainingCalories float64) ([]domain.MealItem, error)
}
