package planner

import "github.com/custodia-labs/menugen/internal/core/domain"

// Slot weights: the share of a meal's calories given to each filled slot.
// They are not renormalized when a slot stays empty.
const (
	proteinSlotWeight = 0.35
	carbSlotWeight    = 0.40
	produceSlotWeight = 0.15
	fatSlotWeight     = 0.10
)

const (
	// MaxIterations caps the proportional scaling passes per meal.
	MaxIterations = 5

	// MealTolerance is the deviation at which a meal stops scaling.
	MealTolerance = 0.15
)

// Slot is a role within a meal, filled by at most one food.
type Slot int

// Meal slots, in fill order.
const (
	SlotProtein Slot = iota
	SlotCarb
	SlotProduce
	SlotFat
)

// Weight returns the slot's share of the meal's calories.
func (s Slot) Weight() float64 {
	switch s {
	case SlotProtein:
		return proteinSlotWeight
	case SlotCarb:
		return carbSlotWeight
	case SlotProduce:
		return produceSlotWeight
	case SlotFat:
		return fatSlotWeight
	default:
		return 0
	}
}

// Build is the result of building one meal.
type Build struct {
	Meal domain.Meal

	// Iterations is the number of scaling passes applied.
	Iterations int

	// Converged is true when the final totals are within MealTolerance of
	// the meal target. A false value is not an error.
	Converged bool
}

// MealBuilder fills the slots of each meal from a run's FoodSelector.
type MealBuilder struct {
	selector *FoodSelector
}

// NewMealBuilder returns a builder drawing foods from selector. The
// selector must already be categorized.
func NewMealBuilder(selector *FoodSelector) *MealBuilder {
	return &MealBuilder{selector: selector}
}

type slotFood struct {
	slot Slot
	food domain.Food
}

// pickFoods selects one food per slot the meal type calls for.
func (b *MealBuilder) pickFoods(mealType domain.MealType) []slotFood {
	picked := make([]slotFood, 0, 4)

	if f, ok := b.selector.SelectFood(domain.BucketProteins); ok {
		picked = append(picked, slotFood{SlotProtein, f})
	}
	if f, ok := b.selector.SelectFood(domain.BucketCarbs); ok {
		picked = append(picked, slotFood{SlotCarb, f})
	}

	first, second := domain.BucketVegetables, domain.BucketFruits
	if mealType.PrefersFruit() {
		first, second = domain.BucketFruits, domain.BucketVegetables
	}
	if f, ok := b.selector.SelectFood(first); ok {
		picked = append(picked, slotFood{SlotProduce, f})
	} else if f, ok := b.selector.SelectFood(second); ok {
		picked = append(picked, slotFood{SlotProduce, f})
	}

	if mealType.IncludesFat() {
		if f, ok := b.selector.SelectFood(domain.BucketFats); ok {
			picked = append(picked, slotFood{SlotFat, f})
		}
	}
	return picked
}

// BuildMeal selects foods for mealType, sizes each slot from its calorie
// share, then rescales the whole meal toward target for up to
// MaxIterations passes.
func (b *MealBuilder) BuildMeal(mealType domain.MealType, target domain.MacroVector) Build {
	picked := b.pickFoods(mealType)

	items := make([]domain.MealItem, 0, len(picked))
	for _, p := range picked {
		grams := GramsForTarget(&p.food, target.Calories*p.slot.Weight(), domain.FieldCalories)
		items = append(items, NewMealItem(p.food, Clamp(&p.food, grams)))
	}

	items, iterations, converged := converge(items, target)
	return Build{
		Meal: domain.Meal{
			Type:   mealType,
			Items:  items,
			Totals: Sum(items),
		},
		Iterations: iterations,
		Converged:  converged,
	}
}

// converge scales every portion by target/current calories and re-clamps
// until the meal is within MealTolerance or MaxIterations passes have run.
func converge(items []domain.MealItem, target domain.MacroVector) ([]domain.MealItem, int, bool) {
	if len(items) == 0 {
		return items, 0, false
	}

	totals := Sum(items)
	iterations := 0
	for ; iterations < MaxIterations; iterations++ {
		if WithinTolerance(totals, target, MealTolerance) {
			return items, iterations, true
		}

		ratio := target.Calories / totals.Calories
		scaled := make([]domain.MealItem, len(items))
		for i := range items {
			grams := Clamp(&items[i].Food, items[i].Grams*ratio)
			scaled[i] = NewMealItem(items[i].Food, grams)
		}
		items = scaled
		totals = Sum(items)
	}
	return items, iterations, WithinTolerance(totals, target, MealTolerance)
}
