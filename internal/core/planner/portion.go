package planner

import (
	"math"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// portionStep is the granularity portions are rounded to, in grams.
const portionStep = 5.0

// flatFallbackGrams is used by RescaleForCalorieTarget when the base
// portions carry no calories to scale from.
const flatFallbackGrams = 100.0

// PortionBounds is the realistic gram range for a food category.
type PortionBounds struct {
	Min float64
	Max float64
}

var defaultBounds = PortionBounds{Min: 50, Max: 400}

var categoryBounds = map[domain.FoodCategory]PortionBounds{
	domain.CategoryProtein:   {Min: 80, Max: 300},
	domain.CategoryCarb:      {Min: 50, Max: 250},
	domain.CategoryFat:       {Min: 10, Max: 50},
	domain.CategoryVegetable: {Min: 80, Max: 300},
	domain.CategoryFruit:     {Min: 80, Max: 200},
	domain.CategoryMixed:     {Min: 100, Max: 400},
}

// BoundsFor returns the portion bounds for the food's category.
func BoundsFor(food *domain.Food) PortionBounds {
	if b, ok := categoryBounds[food.Category]; ok {
		return b
	}
	return defaultBounds
}

// Clamp projects grams into the food's bounds and rounds to the nearest 5 g.
// Clamp(Clamp(g)) == Clamp(g).
func Clamp(food *domain.Food, grams float64) float64 {
	b := BoundsFor(food)
	clamped := math.Max(b.Min, math.Min(b.Max, grams))
	return math.Floor(clamped/portionStep+0.5) * portionStep
}

// IsRealisticPortion reports whether grams already lies within the food's bounds.
func IsRealisticPortion(food *domain.Food, grams float64) bool {
	b := BoundsFor(food)
	return grams >= b.Min && grams <= b.Max
}

// Portion is a food with a gram amount that has not yet been turned into a MealItem.
type Portion struct {
	Food  domain.Food
	Grams float64
}

// RescaleForCalorieTarget applies one proportional correction so the
// portions' calories move toward target, then clamps each portion.
// When the base portions carry no calories every food falls back to a
// clamped 100 g.
func RescaleForCalorieTarget(portions []Portion, target float64) []Portion {
	if len(portions) == 0 {
		return nil
	}

	current := 0.0
	for i := range portions {
		current += portions[i].Food.CaloriesPer100g * portions[i].Grams / 100
	}

	out := make([]Portion, len(portions))
	if current == 0 {
		for i := range portions {
			out[i] = Portion{Food: portions[i].Food, Grams: Clamp(&portions[i].Food, flatFallbackGrams)}
		}
		return out
	}

	factor := target / current
	for i := range portions {
		out[i] = Portion{
			Food:  portions[i].Food,
			Grams: Clamp(&portions[i].Food, portions[i].Grams*factor),
		}
	}
	return out
}

// DistributeRemainingCalories splits remaining calories evenly across the
// portions, grows each by the grams its share buys, and clamps. Foods with
// no calories keep their portion. Non-positive remaining leaves the
// portions untouched.
func DistributeRemainingCalories(portions []Portion, remaining float64) []Portion {
	out := make([]Portion, len(portions))
	copy(out, portions)
	if len(portions) == 0 || remaining <= 0 {
		return out
	}

	share := remaining / float64(len(portions))
	for i := range out {
		extra := GramsForTarget(&out[i].Food, share, domain.FieldCalories)
		out[i].Grams = Clamp(&out[i].Food, out[i].Grams+extra)
	}
	return out
}
