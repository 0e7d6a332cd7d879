package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/planner"
)

// mockMenuService is a mock implementation of driving.MenuService.
type mockMenuService struct {
	menu *domain.GeneratedMenu
	err  error

	calls       []string
	lastUserID  string
	lastDate    time.Time
	summaries   []domain.MenuSummary
	deleteCalls int
}

func (m *mockMenuService) record(op, userID string, date time.Time) {
	m.calls = append(m.calls, op)
	m.lastUserID = userID
	m.lastDate = date
}

func (m *mockMenuService) Generate(_ context.Context, userID string, date time.Time) (*domain.GeneratedMenu, error) {
	m.record("generate", userID, date)
	return m.menu, m.err
}

func (m *mockMenuService) Regenerate(_ context.Context, userID string, date time.Time) (*domain.GeneratedMenu, error) {
	m.record("regenerate", userID, date)
	return m.menu, m.err
}

func (m *mockMenuService) Get(_ context.Context, userID string, date time.Time) (*domain.GeneratedMenu, error) {
	m.record("get", userID, date)
	return m.menu, m.err
}

func (m *mockMenuService) Delete(_ context.Context, userID string, date time.Time) error {
	m.record("delete", userID, date)
	m.deleteCalls++
	return m.err
}

func (m *mockMenuService) List(_ context.Context, _ string) ([]domain.MenuSummary, error) {
	return m.summaries, m.err
}

// mockProfileService is a mock implementation of driving.ProfileService.
type mockProfileService struct {
	profile *domain.NutritionProfile
	err     error
}

func (m *mockProfileService) Onboard(_ context.Context, _ string, _ domain.ProfileInput) (*domain.NutritionProfile, error) {
	return m.profile, m.err
}

func (m *mockProfileService) Get(_ context.Context, _ string) (*domain.NutritionProfile, error) {
	return m.profile, m.err
}

func (m *mockProfileService) SetPreference(_ context.Context, _, _ string, _ bool) error {
	return m.err
}

func (m *mockProfileService) ClearPreference(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockProfileService) Preferences(_ context.Context, _ string) ([]domain.FoodPreference, error) {
	return nil, m.err
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	foods []domain.Food
	err   error
}

func (m *mockCatalogService) List(_ context.Context) ([]domain.Food, error) {
	return m.foods, m.err
}

func (m *mockCatalogService) Get(_ context.Context, name string) (*domain.Food, error) {
	for i := range m.foods {
		if m.foods[i].Key() == domain.NormalizeName(name) {
			return &m.foods[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalogService) Import(_ context.Context, foods []domain.Food) (*domain.ImportResult, error) {
	return &domain.ImportResult{Created: len(foods)}, m.err
}

func (m *mockCatalogService) Seed(_ context.Context) (*domain.ImportResult, error) {
	return &domain.ImportResult{Source: "embedded"}, m.err
}

// mockPortionService is a mock implementation of driving.PortionService.
type mockPortionService struct {
	foods    map[string]domain.Food
	err      error
	lastMode string
	lastCal  float64
}

func (m *mockPortionService) items(portions []domain.PortionRequest) []domain.MealItem {
	items := make([]domain.MealItem, 0, len(portions))
	for _, p := range portions {
		items = append(items, planner.NewMealItem(m.foods[domain.NormalizeName(p.FoodName)], p.Grams))
	}
	return items
}

func (m *mockPortionService) Scale(_ context.Context, portions []domain.PortionRequest, target float64) ([]domain.MealItem, error) {
	m.lastMode, m.lastCal = "scale", target
	if m.err != nil {
		return nil, m.err
	}
	return m.items(portions), nil
}

func (m *mockPortionService) TopUp(_ context.Context, portions []domain.PortionRequest, remaining float64) ([]domain.MealItem, error) {
	m.lastMode, m.lastCal = "top_up", remaining
	if m.err != nil {
		return nil, m.err
	}
	return m.items(portions), nil
}

func testFoods() []domain.Food {
	return []domain.Food{
		{ID: 1, Name: "Chicken Breast", Category: domain.CategoryProtein, CaloriesPer100g: 165, ProteinPer100g: 31, FatPer100g: 3.6, Tags: []string{"halal"}},
		{ID: 2, Name: "Brown Rice", Category: domain.CategoryCarb, CaloriesPer100g: 112, ProteinPer100g: 2.6, CarbsPer100g: 23.5, FatPer100g: 0.9, Tags: []string{"vegan"}},
		{ID: 3, Name: "Banana", Category: domain.CategoryFruit, CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 22.8, FatPer100g: 0.3, Tags: []string{"vegan"}},
	}
}

func testMenu() *domain.GeneratedMenu {
	foods := testFoods()
	lunch := []domain.MealItem{
		planner.NewMealItem(foods[0], 150),
		planner.NewMealItem(foods[1], 200),
	}
	breakfast := []domain.MealItem{planner.NewMealItem(foods[2], 120)}
	return &domain.GeneratedMenu{
		ID:   "menu-1",
		Date: "2025-03-01",
		Meals: []domain.Meal{
			{Type: domain.MealBreakfast, Items: breakfast, Totals: planner.Sum(breakfast)},
			{Type: domain.MealLunch, Items: lunch, Totals: planner.Sum(lunch)},
		},
		Totals: planner.Sum(append(append([]domain.MealItem{}, breakfast...), lunch...)),
	}
}
