package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

func TestBoundsFor(t *testing.T) {
	tests := []struct {
		category domain.FoodCategory
		want     PortionBounds
	}{
		{domain.CategoryProtein, PortionBounds{80, 300}},
		{domain.CategoryCarb, PortionBounds{50, 250}},
		{domain.CategoryFat, PortionBounds{10, 50}},
		{domain.CategoryVegetable, PortionBounds{80, 300}},
		{domain.CategoryFruit, PortionBounds{80, 200}},
		{domain.CategoryMixed, PortionBounds{100, 400}},
		{domain.FoodCategory("dessert"), PortionBounds{50, 400}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			f := domain.Food{Category: tt.category}
			assert.Equal(t, tt.want, BoundsFor(&f))
		})
	}
}

func TestClamp(t *testing.T) {
	chicken := byName(t, "Chicken Breast")
	oil := byName(t, "Olive Oil")

	tests := []struct {
		name  string
		food  domain.Food
		grams float64
		want  float64
	}{
		{"below min", chicken, 12, 80},
		{"above max", chicken, 999, 300},
		{"rounds down", chicken, 152.4, 150},
		{"rounds half up", chicken, 152.5, 155},
		{"rounds up", chicken, 153, 155},
		{"fat min", oil, 0, 10},
		{"fat max", oil, 80, 50},
		{"zero grams", chicken, 0, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(&tt.food, tt.grams))
		})
	}
}

func TestClamp_Idempotent(t *testing.T) {
	for _, f := range testCatalog() {
		f := f
		for g := 0.0; g <= 500; g += 7.3 {
			once := Clamp(&f, g)
			assert.Equal(t, once, Clamp(&f, once), "%s at %.1fg", f.Name, g)
			assert.True(t, IsRealisticPortion(&f, once), "%s at %.1fg", f.Name, g)
		}
	}
}

func TestIsRealisticPortion(t *testing.T) {
	fruit := byName(t, "Apple")

	assert.True(t, IsRealisticPortion(&fruit, 80))
	assert.True(t, IsRealisticPortion(&fruit, 200))
	assert.False(t, IsRealisticPortion(&fruit, 79.9))
	assert.False(t, IsRealisticPortion(&fruit, 201))
}

func TestRescaleForCalorieTarget(t *testing.T) {
	chicken := byName(t, "Chicken Breast")
	rice := byName(t, "Brown Rice")

	got := RescaleForCalorieTarget([]Portion{
		{Food: chicken, Grams: 100},
		{Food: rice, Grams: 100},
	}, 554)

	require.Len(t, got, 2)
	assert.Equal(t, 200.0, got[0].Grams)
	assert.Equal(t, 200.0, got[1].Grams)
	assert.Equal(t, "Chicken Breast", got[0].Food.Name)
}

func TestRescaleForCalorieTarget_ClampsEachPortion(t *testing.T) {
	chicken := byName(t, "Chicken Breast")
	rice := byName(t, "Brown Rice")

	got := RescaleForCalorieTarget([]Portion{
		{Food: chicken, Grams: 100},
		{Food: rice, Grams: 100},
	}, 2770)

	assert.Equal(t, 300.0, got[0].Grams)
	assert.Equal(t, 250.0, got[1].Grams)
}

func TestRescaleForCalorieTarget_NoCalories(t *testing.T) {
	water := food(99, "Water", domain.CategoryVegetable, 0, 0, 0, 0)
	zeroFat := food(98, "Zero Spread", domain.CategoryFat, 0, 0, 0, 0)

	got := RescaleForCalorieTarget([]Portion{
		{Food: water, Grams: 250},
		{Food: zeroFat, Grams: 20},
	}, 500)

	assert.Equal(t, 100.0, got[0].Grams)
	assert.Equal(t, 50.0, got[1].Grams)
}

func TestRescaleForCalorieTarget_Empty(t *testing.T) {
	assert.Empty(t, RescaleForCalorieTarget(nil, 500))
}

func TestDistributeRemainingCalories(t *testing.T) {
	chicken := byName(t, "Chicken Breast")
	rice := byName(t, "Brown Rice")
	in := []Portion{{Food: chicken, Grams: 100}, {Food: rice, Grams: 100}}

	got := DistributeRemainingCalories(in, 330)

	// 165 kcal each: chicken +100 g, rice +147.3 g then clamped to 245.
	assert.Equal(t, 200.0, got[0].Grams)
	assert.Equal(t, 245.0, got[1].Grams)
	assert.Equal(t, 100.0, in[0].Grams, "input must not be modified")
}

func TestDistributeRemainingCalories_NothingRemaining(t *testing.T) {
	chicken := byName(t, "Chicken Breast")
	in := []Portion{{Food: chicken, Grams: 123}}

	assert.Equal(t, in, DistributeRemainingCalories(in, 0))
	assert.Equal(t, in, DistributeRemainingCalories(in, -50))
}
