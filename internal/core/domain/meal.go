package domain

// MealType identifies a meal within a day.
type MealType string

// Meal types.
const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes returns the meal types in the order a day is built and presented.
func MealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}
}

// IsValid returns true if the meal type is recognised.
func (t MealType) IsValid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t MealType) String() string {
	return string(t)
}

// Weight returns the share of the daily target allotted to this meal.
// The four weights sum to 1.0.
func (t MealType) Weight() float64 {
	switch t {
	case MealBreakfast:
		return 0.25
	case MealLunch:
		return 0.35
	case MealDinner:
		return 0.30
	case MealSnack:
		return 0.10
	default:
		return 0
	}
}

// PrefersFruit reports whether the produce slot tries fruit before vegetables.
func (t MealType) PrefersFruit() bool {
	return t == MealBreakfast || t == MealSnack
}

// IncludesFat reports whether the meal gets a fat slot.
func (t MealType) IncludesFat() bool {
	return t != MealSnack
}

// MealItem is a portion of one food with the macros derived from it.
// The embedded MacroVector is always Food's per-100g values scaled to
// Grams, rounded to one decimal.
type MealItem struct {
	Food  Food    `json:"food"`
	Grams float64 `json:"grams"`
	MacroVector
}

// Meal groups the items served at one meal type.
type Meal struct {
	Type   MealType    `json:"type"`
	Items  []MealItem  `json:"items"`
	Totals MacroVector `json:"totals"`
}

// PortionRequest names a catalog food and a starting portion.
type PortionRequest struct {
	FoodName string  `json:"foodName"`
	Grams    float64 `json:"grams"`
}
