package planner

import "github.com/custodia-labs/menugen/internal/core/domain"

// DayPlan is a fully built day before it is persisted.
type DayPlan struct {
	// Builds holds one entry per meal type in build order, including
	// meals that ended up empty.
	Builds []Build

	// Totals aggregates every item of every meal.
	Totals domain.MacroVector
}

// Items returns all items of the day in build order.
func (p *DayPlan) Items() []domain.MealItem {
	var items []domain.MealItem
	for _, b := range p.Builds {
		items = append(items, b.Meal.Items...)
	}
	return items
}

// PlanDay runs one generation: it filters and categorizes the catalog for
// the user, checks that every required bucket can be filled, splits the
// daily target across meal types and builds each meal in order.
//
// targets must be complete. The selector and builder live only for the
// duration of the call.
func PlanDay(
	catalog []domain.Food,
	prefs []domain.FoodPreference,
	restrictions []string,
	targets domain.MacroVector,
) (*DayPlan, error) {
	selector := NewFoodSelector(prefs, restrictions)
	categorized := selector.Categorize(catalog)

	if err := checkAvailability(categorized); err != nil {
		return nil, err
	}

	selector.Reset()
	builder := NewMealBuilder(selector)

	plan := &DayPlan{}
	for _, mt := range domain.MealTypes() {
		plan.Builds = append(plan.Builds, builder.BuildMeal(mt, targets.Scale(mt.Weight())))
	}
	plan.Totals = Sum(plan.Items())
	return plan, nil
}

func checkAvailability(c domain.CategorizedFoods) error {
	if c.Len(domain.BucketProteins) == 0 {
		return domain.ErrNoProteinFoods
	}
	if c.Len(domain.BucketCarbs) == 0 {
		return domain.ErrNoCarbFoods
	}
	if c.Len(domain.BucketVegetables) == 0 && c.Len(domain.BucketFruits) == 0 {
		return domain.ErrNoProduceFoods
	}
	return nil
}
