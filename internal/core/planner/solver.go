package planner

import (
	"math"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// DefaultTolerance is the deviation accepted by WithinTolerance callers that
// have no tolerance of their own.
const DefaultTolerance = 0.10

// Deviation weights per macro axis.
const (
	caloriesWeight = 0.4
	proteinWeight  = 0.3
	carbsWeight    = 0.15
	fatWeight      = 0.15
)

// round1 rounds to one decimal place, halves away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// MacrosFor returns the macros of grams of food, each field rounded to one
// decimal. grams must not be negative.
func MacrosFor(food *domain.Food, grams float64) domain.MacroVector {
	m := grams / 100
	return domain.MacroVector{
		Calories: round1(food.CaloriesPer100g * m),
		Protein:  round1(food.ProteinPer100g * m),
		Carbs:    round1(food.CarbsPer100g * m),
		Fat:      round1(food.FatPer100g * m),
	}
}

// NewMealItem builds a MealItem with its derived macros.
func NewMealItem(food domain.Food, grams float64) domain.MealItem {
	return domain.MealItem{
		Food:        food,
		Grams:       grams,
		MacroVector: MacrosFor(&food, grams),
	}
}

// GramsForTarget returns the grams of food needed to reach target on field.
// A food with no positive value on that axis cannot contribute and yields 0.
func GramsForTarget(food *domain.Food, target float64, field domain.MacroField) float64 {
	per100 := food.Per100g().Field(field)
	if per100 <= 0 {
		return 0
	}
	return target / per100 * 100
}

// Sum aggregates item macros. Each running total is rounded to one decimal
// after every addition, so the result depends on item order only through
// rounding.
func Sum(items []domain.MealItem) domain.MacroVector {
	var acc domain.MacroVector
	for i := range items {
		acc = domain.MacroVector{
			Calories: round1(acc.Calories + items[i].Calories),
			Protein:  round1(acc.Protein + items[i].Protein),
			Carbs:    round1(acc.Carbs + items[i].Carbs),
			Fat:      round1(acc.Fat + items[i].Fat),
		}
	}
	return acc
}

// Deviation is the weighted relative error of actual against target.
// Every target field must be non-zero.
func Deviation(actual, target domain.MacroVector) float64 {
	cal := math.Abs(actual.Calories-target.Calories) / target.Calories
	protein := math.Abs(actual.Protein-target.Protein) / target.Protein
	carbs := math.Abs(actual.Carbs-target.Carbs) / target.Carbs
	fat := math.Abs(actual.Fat-target.Fat) / target.Fat
	return cal*caloriesWeight + protein*proteinWeight + carbs*carbsWeight + fat*fatWeight
}

// WithinTolerance reports whether Deviation(actual, target) <= tolerance.
func WithinTolerance(actual, target domain.MacroVector, tolerance float64) bool {
	return Deviation(actual, target) <= tolerance
}
