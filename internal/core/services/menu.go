package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/planner"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
	"github.com/custodia-labs/menugen/internal/core/ports/driving"
	"github.com/custodia-labs/menugen/internal/logger"
)

// Ensure MenuService implements the interface.
var _ driving.MenuService = (*MenuService)(nil)

// MenuService generates daily menus and persists them, one per user and date.
type MenuService struct {
	foodStore       driven.FoodStore
	profileStore    driven.ProfileStore
	preferenceStore driven.PreferenceStore
	menuStore       driven.MenuStore
	now             func() time.Time
}

// NewMenuService creates a new menu service.
func NewMenuService(
	foodStore driven.FoodStore,
	profileStore driven.ProfileStore,
	preferenceStore driven.PreferenceStore,
	menuStore driven.MenuStore,
) *MenuService {
	return &MenuService{
		foodStore:       foodStore,
		profileStore:    profileStore,
		preferenceStore: preferenceStore,
		menuStore:       menuStore,
		now:             time.Now,
	}
}

func (s *MenuService) configured() bool {
	return s.foodStore != nil && s.profileStore != nil && s.preferenceStore != nil && s.menuStore != nil
}

// Generate returns the user's menu for date, building and persisting it
// first if none exists.
func (s *MenuService) Generate(ctx context.Context, userID string, date time.Time) (*domain.GeneratedMenu, error) {
	if !s.configured() {
		return nil, domain.ErrNotImplemented
	}
	if userID == "" {
		return nil, &domain.ValidationError{Field: "userId", Message: "is required"}
	}
	day := calendarDay(date)

	logger.Section("Menu Generation")
	logger.Debug("User: %s, date: %s", userID, domain.FormatDate(day))

	existing, err := s.menuStore.FindByDate(ctx, userID, day)
	if err == nil {
		logger.Info("Menu %s already exists for %s", existing.ID, domain.FormatDate(day))
		return formatMenu(existing), nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find menu: %w", err)
	}

	stored, err := s.build(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if err := s.menuStore.Create(ctx, stored); err != nil {
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("save menu: %w", err)
		}
		// Another request committed first; its menu wins.
		logger.Info("Menu for %s created concurrently, returning stored menu", domain.FormatDate(day))
		winner, findErr := s.menuStore.FindByDate(ctx, userID, day)
		if findErr != nil {
			return nil, fmt.Errorf("find menu: %w", findErr)
		}
		return formatMenu(winner), nil
	}

	logger.Info("Saved menu %s with %d items", stored.ID, len(stored.Items))
	return formatMenu(stored), nil
}

// Regenerate builds a fresh menu for date and replaces any stored one. The
// stored menu is left untouched when planning fails.
func (s *MenuService) Regenerate(ctx context.Context, userID string, date time.Time) (*domain.GeneratedMenu, error) {
	if !s.configured() {
		return nil, domain.ErrNotImplemented
	}
	if userID == "" {
		return nil, &domain.ValidationError{Field: "userId", Message: "is required"}
	}
	day := calendarDay(date)

	logger.Section("Menu Regeneration")
	logger.Debug("User: %s, date: %s", userID, domain.FormatDate(day))

	stored, err := s.build(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if err := s.menuStore.Replace(ctx, stored); err != nil {
		return nil, fmt.Errorf("replace menu: %w", err)
	}

	logger.Info("Replaced menu for %s with %s (%d items)", domain.FormatDate(day), stored.ID, len(stored.Items))
	return formatMenu(stored), nil
}

// build plans a day for the user without touching the menu store.
func (s *MenuService) build(ctx context.Context, userID string, day time.Time) (*domain.StoredMenu, error) {
	targets, restrictions, err := s.loadTargets(ctx, userID)
	if err != nil {
		return nil, err
	}
	logger.Debug("Daily targets: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat",
		targets.Calories, targets.Protein, targets.Carbs, targets.Fat)

	prefs, err := s.preferenceStore.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	catalog, err := s.foodStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	logger.Debug("Catalog: %d foods, %d preferences, restrictions %v", len(catalog), len(prefs), restrictions)

	plan, err := planner.PlanDay(catalog, prefs, restrictions, targets)
	if err != nil {
		return nil, err
	}
	logPlan(plan, targets)
	return s.toStoredMenu(userID, day, plan), nil
}

// Get returns a stored menu without generating.
func (s *MenuService) Get(ctx context.Context, userID string, date time.Time) (*domain.GeneratedMenu, error) {
	if s.menuStore == nil {
		return nil, domain.ErrNotImplemented
	}
	stored, err := s.menuStore.FindByDate(ctx, userID, calendarDay(date))
	if err != nil {
		return nil, err
	}
	return formatMenu(stored), nil
}

// Delete removes the stored menu for date.
func (s *MenuService) Delete(ctx context.Context, userID string, date time.Time) error {
	if s.menuStore == nil {
		return domain.ErrNotImplemented
	}
	return s.menuStore.Delete(ctx, userID, calendarDay(date))
}

// List returns summaries of the user's stored menus, newest first.
func (s *MenuService) List(ctx context.Context, userID string) ([]domain.MenuSummary, error) {
	if s.menuStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.menuStore.List(ctx, userID)
}

// loadTargets returns the user's daily targets and dietary restrictions.
// A missing or partial profile is ErrProfileIncomplete.
func (s *MenuService) loadTargets(ctx context.Context, userID string) (domain.MacroVector, []string, error) {
	profile, err := s.profileStore.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.MacroVector{}, nil, domain.ErrProfileIncomplete
	}
	if err != nil {
		return domain.MacroVector{}, nil, fmt.Errorf("get profile: %w", err)
	}
	targets, ok := profile.DailyTargets()
	if !ok {
		return domain.MacroVector{}, nil, domain.ErrProfileIncomplete
	}
	return targets, profile.DietaryRestrictions, nil
}

func (s *MenuService) toStoredMenu(userID string, day time.Time, plan *planner.DayPlan) *domain.StoredMenu {
	stored := &domain.StoredMenu{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      day,
		Totals:    plan.Totals,
		CreatedAt: s.now(),
	}
	pos := 0
	for _, b := range plan.Builds {
		for _, item := range b.Meal.Items {
			stored.Items = append(stored.Items, domain.StoredMenuItem{
				Food:     item.Food,
				Grams:    item.Grams,
				MealType: b.Meal.Type,
				Position: pos,
			})
			pos++
		}
	}
	return stored
}

func logPlan(plan *planner.DayPlan, targets domain.MacroVector) {
	for _, b := range plan.Builds {
		logger.Debug("%s: %d items, %.1f kcal, %d iterations, converged=%t",
			b.Meal.Type, len(b.Meal.Items), b.Meal.Totals.Calories, b.Iterations, b.Converged)
		if len(b.Meal.Items) > 0 && !b.Converged {
			logger.Warn("%s did not reach its target within %d iterations", b.Meal.Type, planner.MaxIterations)
		}
	}
	logger.Debug("Day totals: %.1f kcal, deviation %.3f", plan.Totals.Calories, planner.Deviation(plan.Totals, targets))
}

// formatMenu turns a stored menu into the response shape. Item macros and
// meal totals are recomputed; day totals come from the stored row. Empty
// meals are dropped.
func formatMenu(stored *domain.StoredMenu) *domain.GeneratedMenu {
	items := make([]domain.StoredMenuItem, len(stored.Items))
	copy(items, stored.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Position < items[j].Position })

	byType := make(map[domain.MealType][]domain.MealItem)
	for _, it := range items {
		byType[it.MealType] = append(byType[it.MealType], planner.NewMealItem(it.Food, it.Grams))
	}

	menu := &domain.GeneratedMenu{
		ID:     stored.ID,
		Date:   domain.FormatDate(stored.Date),
		Meals:  []domain.Meal{},
		Totals: stored.Totals,
	}
	for _, mt := range domain.MealTypes() {
		mealItems := byType[mt]
		if len(mealItems) == 0 {
			continue
		}
		menu.Meals = append(menu.Meals, domain.Meal{
			Type:   mt,
			Items:  mealItems,
			Totals: planner.Sum(mealItems),
		})
	}
	return menu
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
