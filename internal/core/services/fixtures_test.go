package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menugen/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/menugen/internal/core/domain"
)

const testUser = "alice"

var allFree = []string{"vegan", "vegetarian", "gluten-free", "dairy-free", "nut-free"}

func food(name string, cat domain.FoodCategory, cal, protein, carbs, fat float64, tags ...string) domain.Food {
	return domain.Food{
		Name:                name,
		Category:            cat,
		CaloriesPer100g:     cal,
		ProteinPer100g:      protein,
		CarbsPer100g:        carbs,
		FatPer100g:          fat,
		Tags:                tags,
		DefaultServingGrams: domain.DefaultServingGrams,
	}
}

func testCatalog() []domain.Food {
	return []domain.Food{
		food("Salmon", domain.CategoryProtein, 208, 20, 0, 13, "gluten-free", "dairy-free", "nut-free"),
		food("Chicken Breast", domain.CategoryProtein, 165, 31, 0, 3.6, "gluten-free", "dairy-free", "halal", "nut-free"),
		food("Greek Yogurt", domain.CategoryProtein, 59, 10, 3.6, 0.4, "vegetarian", "gluten-free", "nut-free"),
		food("Eggs", domain.CategoryProtein, 155, 13, 1.1, 11, "vegetarian", "gluten-free", "dairy-free", "nut-free"),
		food("Oats", domain.CategoryCarb, 389, 16.9, 66.3, 6.9, "vegan", "vegetarian", "dairy-free", "nut-free"),
		food("Brown Rice", domain.CategoryCarb, 112, 2.6, 23.5, 0.9, allFree...),
		food("Sweet Potato", domain.CategoryCarb, 86, 1.6, 20, 0.1, allFree...),
		food("Whole Wheat Pasta", domain.CategoryCarb, 124, 5.3, 26.5, 0.5, "vegan", "vegetarian", "dairy-free", "nut-free"),
		food("Olive Oil", domain.CategoryFat, 884, 0, 0, 100, allFree...),
		food("Almonds", domain.CategoryFat, 579, 21, 22, 50, "vegan", "vegetarian", "gluten-free", "dairy-free"),
		food("Avocado", domain.CategoryFat, 160, 2, 8.5, 14.7, allFree...),
		food("Spinach", domain.CategoryVegetable, 23, 2.9, 3.6, 0.4, allFree...),
		food("Broccoli", domain.CategoryVegetable, 34, 2.8, 7, 0.4, allFree...),
		food("Carrot", domain.CategoryVegetable, 41, 0.9, 10, 0.2, allFree...),
		food("Banana", domain.CategoryFruit, 89, 1.1, 22.8, 0.3, allFree...),
		food("Apple", domain.CategoryFruit, 52, 0.3, 14, 0.2, allFree...),
		food("Blueberries", domain.CategoryFruit, 57, 0.7, 14.5, 0.3, allFree...),
		food("Lentils", domain.CategoryMixed, 116, 9, 20, 0.4, allFree...),
		food("Chili Con Carne", domain.CategoryMixed, 130, 12, 10, 6, "gluten-free", "dairy-free", "nut-free"),
	}
}

var dayTarget = domain.MacroVector{Calories: 2000, Protein: 150, Carbs: 200, Fat: 70}

// stores bundles the in-memory adapters a service test needs.
type stores struct {
	foods       *memory.FoodStore
	profiles    *memory.ProfileStore
	preferences *memory.PreferenceStore
	menus       *memory.MenuStore
}

func newStores(t *testing.T) *stores {
	t.Helper()
	s := &stores{
		foods:       memory.NewFoodStore(),
		profiles:    memory.NewProfileStore(),
		preferences: memory.NewPreferenceStore(),
		menus:       memory.NewMenuStore(),
	}
	ctx := context.Background()
	for _, f := range testCatalog() {
		f := f
		require.NoError(t, s.foods.Save(ctx, &f))
	}
	return s
}

func (s *stores) onboard(t *testing.T, restrictions ...string) {
	t.Helper()
	require.NoError(t, s.profiles.Save(context.Background(), domain.NutritionProfile{
		UserID:              testUser,
		DietaryRestrictions: restrictions,
		DailyCalories:       dayTarget.Calories,
		ProteinIntake:       dayTarget.Protein,
		CarbsIntake:         dayTarget.Carbs,
		FatIntake:           dayTarget.Fat,
		OnboardingCompleted: true,
	}))
}

func (s *stores) menuService() *MenuService {
	return NewMenuService(s.foods, s.profiles, s.preferences, s.menus)
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}
