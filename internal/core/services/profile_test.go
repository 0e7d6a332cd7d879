package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/menugen/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/menugen/internal/core/domain"
)

func validInput() domain.ProfileInput {
	return domain.ProfileInput{
		Age:           30,
		Gender:        "Male",
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: "moderate",
		Goal:          "maintenance",
	}
}

func TestProfileService_Onboard(t *testing.T) {
	profiles := memory.NewProfileStore()
	service := NewProfileService(profiles, memory.NewPreferenceStore())
	ctx := context.Background()

	input := validInput()
	input.DietaryRestrictions = []string{"Lactose-Free", "halal"}
	profile, err := service.Onboard(ctx, testUser, input)
	require.NoError(t, err)

	assert.True(t, profile.OnboardingCompleted)
	assert.Equal(t, domain.GenderMale, profile.Gender)
	assert.Equal(t, domain.GoalMaintain, profile.Goal)
	assert.Equal(t, []string{"dairy-free", "halal"}, profile.DietaryRestrictions)
	assert.InDelta(t, 2800, profile.DailyCalories, 0.001)

	targets, ok := profile.DailyTargets()
	require.True(t, ok)
	assert.Equal(t, domain.MacroVector{Calories: 2800, Protein: 175, Carbs: 350, Fat: 78}, targets)

	stored, err := profiles.Get(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, profile.DailyCalories, stored.DailyCalories)
}

func TestProfileService_Onboard_KeepsCreatedAt(t *testing.T) {
	service := NewProfileService(memory.NewProfileStore(), nil)
	ctx := context.Background()

	first, err := service.Onboard(ctx, testUser, validInput())
	require.NoError(t, err)

	input := validInput()
	input.Goal = "cut"
	second, err := service.Onboard(ctx, testUser, input)
	require.NoError(t, err)

	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.InDelta(t, 2400, second.DailyCalories, 0.001)
}

func TestProfileService_Onboard_ValidationErrors(t *testing.T) {
	service := NewProfileService(memory.NewProfileStore(), nil)

	input := domain.ProfileInput{
		Age:                 150,
		Gender:              "robot",
		HeightCm:            30,
		WeightKg:            10,
		ActivityLevel:       "extreme",
		Goal:                "shred",
		DietaryRestrictions: []string{"vegan", "carnivore"},
	}
	_, err := service.Onboard(context.Background(), testUser, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, 0, len(verrs))
	for _, v := range verrs {
		fields = append(fields, v.Field)
	}
	assert.Equal(t, []string{"age", "gender", "heightCm", "weightKg", "activityLevel", "goal", "dietaryRestrictions[1]"}, fields)
}

func TestProfileService_Preferences(t *testing.T) {
	service := NewProfileService(nil, memory.NewPreferenceStore())
	ctx := context.Background()

	require.NoError(t, service.SetPreference(ctx, testUser, "Salmon", true))
	require.NoError(t, service.SetPreference(ctx, testUser, " broccoli ", false))
	require.NoError(t, service.SetPreference(ctx, testUser, "avocado", true))

	prefs, err := service.Preferences(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, prefs, 3)
	assert.Equal(t, "avocado", prefs[0].FoodName)
	assert.Equal(t, "broccoli", prefs[1].FoodName)
	assert.False(t, prefs[1].Liked)
	assert.Equal(t, "Salmon", prefs[2].FoodName)

	require.NoError(t, service.ClearPreference(ctx, testUser, "SALMON"))
	assert.ErrorIs(t, service.ClearPreference(ctx, testUser, "salmon"), domain.ErrNotFound)

	var verr *domain.ValidationError
	require.True(t, errors.As(service.SetPreference(ctx, testUser, "  ", true), &verr))
	assert.Equal(t, "foodName", verr.Field)
}

func TestProfileService_NilStores(t *testing.T) {
	service := NewProfileService(nil, nil)
	ctx := context.Background()

	_, err := service.Onboard(ctx, testUser, validInput())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = service.Get(ctx, testUser)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.ErrorIs(t, service.SetPreference(ctx, testUser, "Salmon", true), domain.ErrNotImplemented)
	_, err = service.Preferences(ctx, testUser)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
