package domain

import "strings"

// FoodCategory classifies a catalog food by its dominant macronutrient.
type FoodCategory string

// Available food categories.
const (
	CategoryProtein   FoodCategory = "protein"
	CategoryCarb      FoodCategory = "carb"
	CategoryFat       FoodCategory = "fat"
	CategoryVegetable FoodCategory = "vegetable"
	CategoryFruit     FoodCategory = "fruit"

	// CategoryMixed foods are routed to proteins or carbs per generation run.
	CategoryMixed FoodCategory = "mixed"
)

// DefaultServingGrams is the serving size assumed when a catalog entry omits one.
const DefaultServingGrams = 100.0

// FoodCategories returns every known category in catalog order.
func FoodCategories() []FoodCategory {
	return []FoodCategory{
		CategoryProtein, CategoryCarb, CategoryFat,
		CategoryVegetable, CategoryFruit, CategoryMixed,
	}
}

// IsValid returns true if the category is recognised.
func (c FoodCategory) IsValid() bool {
	switch c {
	case CategoryProtein, CategoryCarb, CategoryFat, CategoryVegetable, CategoryFruit, CategoryMixed:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c FoodCategory) String() string {
	return string(c)
}

// Food is an immutable catalog entry. The generation engine only reads it.
type Food struct {
	// ID is the catalog identifier, assigned by the store.
	ID int64 `json:"id"`

	// Name is unique within the catalog when compared case-insensitively.
	Name string `json:"name"`

	// Category drives bucket routing and portion bounds.
	Category FoodCategory `json:"category"`

	// CaloriesPer100g is the energy in kcal per 100 grams.
	CaloriesPer100g float64 `json:"caloriesPer100g"`

	// ProteinPer100g is grams of protein per 100 grams.
	ProteinPer100g float64 `json:"proteinPer100g"`

	// CarbsPer100g is grams of carbohydrate per 100 grams.
	CarbsPer100g float64 `json:"carbsPer100g"`

	// FatPer100g is grams of fat per 100 grams.
	FatPer100g float64 `json:"fatPer100g"`

	// FiberPer100g is optional.
	FiberPer100g *float64 `json:"fiberPer100g,omitempty"`

	// Tags describe the food (e.g. "vegan", "gluten-free") and are
	// matched against dietary restrictions.
	Tags []string `json:"tags"`

	// DefaultServingGrams is the typical serving size.
	DefaultServingGrams float64 `json:"defaultServingGrams"`

	// DensityFactor converts volume to weight when present.
	DensityFactor *float64 `json:"densityFactor,omitempty"`
}

// Per100g returns the food's macro values for a 100 gram portion.
func (f *Food) Per100g() MacroVector {
	return MacroVector{
		Calories: f.CaloriesPer100g,
		Protein:  f.ProteinPer100g,
		Carbs:    f.CarbsPer100g,
		Fat:      f.FatPer100g,
	}
}

// Key returns the case-insensitive comparison key for the food's name.
func (f *Food) Key() string {
	return NormalizeName(f.Name)
}

// HasTag reports whether the food carries tag, ignoring case.
func (f *Food) HasTag(tag string) bool {
	want := NormalizeName(tag)
	for _, t := range f.Tags {
		if NormalizeName(t) == want {
			return true
		}
	}
	return false
}

// Validate checks the catalog entry for malformed fields.
func (f *Food) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(f.Name) == "" {
		errs.Add("name", "is required")
	}
	if !f.Category.IsValid() {
		errs.Add("category", "must be one of protein, carb, fat, vegetable, fruit, mixed")
	}
	if f.CaloriesPer100g < 0 || f.ProteinPer100g < 0 || f.CarbsPer100g < 0 || f.FatPer100g < 0 {
		errs.Add("per100g", "macro values must not be negative")
	}
	if f.FiberPer100g != nil && *f.FiberPer100g < 0 {
		errs.Add("fiberPer100g", "must not be negative")
	}
	if f.DefaultServingGrams < 0 {
		errs.Add("defaultServingGrams", "must not be negative")
	}
	return errs.Err()
}

// NormalizeName lower-cases and trims a food name or tag for comparison.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
