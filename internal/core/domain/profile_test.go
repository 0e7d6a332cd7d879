package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutritionProfile_DailyTargets(t *testing.T) {
	complete := &NutritionProfile{
		OnboardingCompleted: true,
		DailyCalories:       2000,
		ProteinIntake:       150,
		CarbsIntake:         200,
		FatIntake:           70,
	}

	targets, ok := complete.DailyTargets()
	require.True(t, ok)
	assert.Equal(t, MacroVector{Calories: 2000, Protein: 150, Carbs: 200, Fat: 70}, targets)

	t.Run("nil profile", func(t *testing.T) {
		var p *NutritionProfile
		_, ok := p.DailyTargets()
		assert.False(t, ok)
	})

	t.Run("onboarding incomplete", func(t *testing.T) {
		p := *complete
		p.OnboardingCompleted = false
		_, ok := p.DailyTargets()
		assert.False(t, ok)
	})

	t.Run("missing fat target", func(t *testing.T) {
		p := *complete
		p.FatIntake = 0
		_, ok := p.DailyTargets()
		assert.False(t, ok)
	})
}

func TestCanonicalRestriction(t *testing.T) {
	tests := map[string]string{
		"Vegan":        "vegan",
		"lactose-free": "dairy-free",
		"Gluten Free":  "gluten-free",
		"plant-based":  "vegan",
		"paleo":        "paleo",
	}
	for in, want := range tests {
		assert.Equal(t, want, CanonicalRestriction(in), in)
	}
	assert.True(t, IsKnownRestriction("KOSHER"))
	assert.False(t, IsKnownRestriction("paleo"))
}

func TestParseGoal(t *testing.T) {
	tests := []struct {
		in   string
		want Goal
		ok   bool
	}{
		{"cut", GoalCut, true},
		{"loss", GoalCut, true},
		{"Maintenance", GoalMaintain, true},
		{"gain", GoalBulk, true},
		{"shred", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseGoal(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActivityLevel_Multiplier(t *testing.T) {
	assert.Equal(t, 1.2, ActivitySedentary.Multiplier())
	assert.Equal(t, 1.9, ActivityVeryActive.Multiplier())
	assert.False(t, ActivityLevel("couch").IsValid())
}

func TestProfileInput_Validate(t *testing.T) {
	valid := ProfileInput{
		Age: 30, Gender: "female", HeightCm: 165, WeightKg: 60,
		ActivityLevel: "moderate", Goal: "maintain",
		DietaryRestrictions: []string{"vegetarian"},
	}
	require.NoError(t, valid.Validate())

	invalid := ProfileInput{
		Age: 150, Gender: "robot", HeightCm: 20, WeightKg: 1000,
		ActivityLevel: "extreme", Goal: "shred",
		DietaryRestrictions: []string{"paleo"},
	}
	err := invalid.Validate()
	require.ErrorIs(t, err, ErrInvalidInput)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{
		"age", "gender", "heightCm", "weightKg", "activityLevel", "goal", "dietaryRestrictions[0]",
	}, fields)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2026-03-14", FormatDate(d))

	for _, bad := range []string{"14/03/2026", "2026-13-01", "", "yesterday"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidInput, bad)
	}
}

func TestGeneratedMenu_Helpers(t *testing.T) {
	m := &GeneratedMenu{Meals: []Meal{
		{Type: MealLunch, Items: []MealItem{{Grams: 100}, {Grams: 50}}},
		{Type: MealSnack, Items: []MealItem{{Grams: 80}}},
	}}
	lunch, ok := m.Meal(MealLunch)
	require.True(t, ok)
	assert.Len(t, lunch.Items, 2)

	_, ok = m.Meal(MealBreakfast)
	assert.False(t, ok)
	assert.Equal(t, 3, m.ItemCount())
}
