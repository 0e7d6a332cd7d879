package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/planner"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
	"github.com/custodia-labs/menugen/internal/core/ports/driving"
)

// Ensure PortionService implements the interface.
var _ driving.PortionService = (*PortionService)(nil)

// PortionService sizes portions of catalog foods outside menu generation.
type PortionService struct {
	foodStore driven.FoodStore
}

// NewPortionService creates a new portion service.
func NewPortionService(foodStore driven.FoodStore) *PortionService {
	return &PortionService{foodStore: foodStore}
}

// Scale rescales the portions once toward targetCalories and clamps them.
func (s *PortionService) Scale(ctx context.Context, reqs []domain.PortionRequest, targetCalories float64) ([]domain.MealItem, error) {
	if targetCalories <= 0 {
		return nil, &domain.ValidationError{Field: "targetCalories", Message: "must be positive"}
	}
	portions, err := s.resolve(ctx, reqs)
	if err != nil {
		return nil, err
	}
	return toItems(planner.RescaleForCalorieTarget(portions, targetCalories)), nil
}

// TopUp spreads remainingCalories evenly over the portions and clamps them.
func (s *PortionService) TopUp(ctx context.Context, reqs []domain.PortionRequest, remainingCalories float64) ([]domain.MealItem, error) {
	if remainingCalories < 0 {
		return nil, &domain.ValidationError{Field: "remainingCalories", Message: "must not be negative"}
	}
	portions, err := s.resolve(ctx, reqs)
	if err != nil {
		return nil, err
	}
	return toItems(planner.DistributeRemainingCalories(portions, remainingCalories)), nil
}

func (s *PortionService) resolve(ctx context.Context, reqs []domain.PortionRequest) ([]planner.Portion, error) {
	if s.foodStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if len(reqs) == 0 {
		return nil, &domain.ValidationError{Field: "portions", Message: "at least one food is required"}
	}

	var errs domain.ValidationErrors
	portions := make([]planner.Portion, 0, len(reqs))
	for i, r := range reqs {
		if r.Grams < 0 {
			errs.Add(fmt.Sprintf("portions[%d].grams", i), "must not be negative")
			continue
		}
		food, err := s.foodStore.GetByName(ctx, r.FoodName)
		if errors.Is(err, domain.ErrNotFound) {
			errs.Add(fmt.Sprintf("portions[%d].foodName", i), fmt.Sprintf("unknown food %q", r.FoodName))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get food %q: %w", r.FoodName, err)
		}
		portions = append(portions, planner.Portion{Food: *food, Grams: r.Grams})
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return portions, nil
}

func toItems(portions []planner.Portion) []domain.MealItem {
	items := make([]domain.MealItem, len(portions))
	for i, p := range portions {
		items[i] = planner.NewMealItem(p.Food, p.Grams)
	}
	return items
}
