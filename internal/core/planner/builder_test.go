package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

type portion struct {
	name  string
	grams float64
}

func portions(m domain.Meal) []portion {
	out := make([]portion, len(m.Items))
	for i, it := range m.Items {
		out[i] = portion{it.Food.Name, it.Grams}
	}
	return out
}

func newBuilder(prefs []domain.FoodPreference, restrictions []string, catalog []domain.Food) *MealBuilder {
	s := NewFoodSelector(prefs, restrictions)
	s.Categorize(catalog)
	return NewMealBuilder(s)
}

func TestSlotWeights_SumToOne(t *testing.T) {
	sum := SlotProtein.Weight() + SlotCarb.Weight() + SlotProduce.Weight() + SlotFat.Weight()
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Equal(t, 0.0, Slot(7).Weight())
}

func TestMealBuilder_BuildMeal_Breakfast(t *testing.T) {
	b := newBuilder(nil, nil, testCatalog())

	got := b.BuildMeal(domain.MealBreakfast, dayTarget.Scale(domain.MealBreakfast.Weight()))

	assert.Equal(t, domain.MealBreakfast, got.Meal.Type)
	assert.Equal(t, []portion{
		{"Chicken Breast", 105},
		{"Brown Rice", 180},
		{"Apple", 145},
		{"Almonds", 10},
	}, portions(got.Meal))
	assert.Equal(t, domain.MacroVector{Calories: 508.2, Protein: 39.8, Carbs: 64.8, Fat: 10.7}, got.Meal.Totals)
	assert.Equal(t, 0, got.Iterations)
	assert.True(t, got.Converged)
}

func TestMealBuilder_BuildMeal_SnackHasNoFat(t *testing.T) {
	b := newBuilder(nil, nil, testCatalog())

	got := b.BuildMeal(domain.MealSnack, dayTarget.Scale(domain.MealSnack.Weight()))

	assert.Equal(t, []portion{
		{"Chicken Breast", 80},
		{"Brown Rice", 50},
		{"Apple", 80},
	}, portions(got.Meal))
	assert.Equal(t, MaxIterations, got.Iterations)
	assert.False(t, got.Converged, "portions pinned at their minimum cannot reach a small snack target")
}

func TestMealBuilder_BuildMeal_LunchPrefersVegetable(t *testing.T) {
	b := newBuilder(nil, nil, testCatalog())

	got := b.BuildMeal(domain.MealLunch, dayTarget.Scale(domain.MealLunch.Weight()))

	require.Len(t, got.Meal.Items, 4)
	assert.Equal(t, domain.CategoryVegetable, got.Meal.Items[2].Food.Category)
}

func TestMealBuilder_BuildMeal_ProduceFallback(t *testing.T) {
	var noFruit []domain.Food
	for _, f := range testCatalog() {
		if f.Category != domain.CategoryFruit {
			noFruit = append(noFruit, f)
		}
	}
	b := newBuilder(nil, nil, noFruit)

	got := b.BuildMeal(domain.MealBreakfast, dayTarget.Scale(domain.MealBreakfast.Weight()))

	require.Len(t, got.Meal.Items, 4)
	assert.Equal(t, "Broccoli", got.Meal.Items[2].Food.Name)
}

func TestMealBuilder_BuildMeal_TotalsMatchItems(t *testing.T) {
	b := newBuilder(nil, nil, testCatalog())

	for _, mt := range domain.MealTypes() {
		got := b.BuildMeal(mt, dayTarget.Scale(mt.Weight()))
		assert.Equal(t, Sum(got.Meal.Items), got.Meal.Totals, mt.String())
		for _, it := range got.Meal.Items {
			assert.Equal(t, MacrosFor(&it.Food, it.Grams), it.MacroVector)
			assert.Equal(t, Clamp(&it.Food, it.Grams), it.Grams, "%s grams not clamped", it.Food.Name)
		}
	}
}

func TestMealBuilder_BuildMeal_EmptyCatalog(t *testing.T) {
	b := newBuilder(nil, nil, nil)

	got := b.BuildMeal(domain.MealDinner, dayTarget.Scale(domain.MealDinner.Weight()))

	assert.Empty(t, got.Meal.Items)
	assert.Equal(t, domain.MacroVector{}, got.Meal.Totals)
	assert.Equal(t, 0, got.Iterations)
	assert.False(t, got.Converged)
}

func TestMealBuilder_FullDay(t *testing.T) {
	b := newBuilder(nil, nil, testCatalog())

	var all []domain.MealItem
	meals := make(map[domain.MealType][]portion)
	for _, mt := range domain.MealTypes() {
		got := b.BuildMeal(mt, dayTarget.Scale(mt.Weight()))
		meals[mt] = portions(got.Meal)
		all = append(all, got.Meal.Items...)
	}

	assert.Equal(t, []portion{{"Chili Con Carne", 190}, {"Lentils", 240}, {"Broccoli", 300}, {"Avocado", 45}}, meals[domain.MealLunch])
	assert.Equal(t, []portion{{"Eggs", 130}, {"Oats", 60}, {"Carrot", 205}, {"Olive Oil", 10}}, meals[domain.MealDinner])
	assert.Equal(t, []portion{{"Greek Yogurt", 100}, {"Sweet Potato", 80}, {"Banana", 80}}, meals[domain.MealSnack])

	day := Sum(all)
	assert.Equal(t, domain.MacroVector{Calories: 2014, Protein: 134.5, Carbs: 256.1, Fat: 60.4}, day)
	assert.True(t, WithinTolerance(day, dayTarget, MealTolerance))
}

func TestMealBuilder_DislikedFoodNeverSelected(t *testing.T) {
	var onlyBroccoli []domain.Food
	for _, f := range testCatalog() {
		if f.Category != domain.CategoryVegetable && f.Category != domain.CategoryFruit {
			onlyBroccoli = append(onlyBroccoli, f)
		}
	}
	onlyBroccoli = append(onlyBroccoli, byName(t, "Broccoli"), byName(t, "Apple"))
	prefs := []domain.FoodPreference{{FoodName: "broccoli", Liked: false}}
	b := newBuilder(prefs, nil, onlyBroccoli)

	for _, mt := range domain.MealTypes() {
		got := b.BuildMeal(mt, dayTarget.Scale(mt.Weight()))
		for _, it := range got.Meal.Items {
			assert.NotEqual(t, "Broccoli", it.Food.Name)
		}
		require.GreaterOrEqual(t, len(got.Meal.Items), 3)
		assert.Equal(t, "Apple", got.Meal.Items[2].Food.Name)
	}
}
