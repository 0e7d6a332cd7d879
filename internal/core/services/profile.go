package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
	"github.com/custodia-labs/menugen/internal/core/ports/driving"
)

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// ProfileService manages nutrition profiles and food preferences.
type ProfileService struct {
	profileStore    driven.ProfileStore
	preferenceStore driven.PreferenceStore
	now             func() time.Time
}

// NewProfileService creates a new profile service.
func NewProfileService(profileStore driven.ProfileStore, preferenceStore driven.PreferenceStore) *ProfileService {
	return &ProfileService{
		profileStore:    profileStore,
		preferenceStore: preferenceStore,
		now:             time.Now,
	}
}

// Onboard validates the form, computes daily targets and stores the profile.
func (s *ProfileService) Onboard(ctx context.Context, userID string, input domain.ProfileInput) (*domain.NutritionProfile, error) {
	if s.profileStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if userID == "" {
		return nil, &domain.ValidationError{Field: "userId", Message: "is required"}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gender := domain.Gender(strings.ToLower(input.Gender))
	level := domain.ActivityLevel(strings.ToLower(input.ActivityLevel))
	goal, _ := domain.ParseGoal(input.Goal)
	metrics := CalculateNutrition(gender, input.Age, input.WeightKg, input.HeightCm, level, goal)

	restrictions := make([]string, 0, len(input.DietaryRestrictions))
	for _, r := range input.DietaryRestrictions {
		restrictions = append(restrictions, domain.CanonicalRestriction(r))
	}

	now := s.now()
	profile := domain.NutritionProfile{
		UserID:              userID,
		Age:                 input.Age,
		Gender:              gender,
		HeightCm:            input.HeightCm,
		WeightKg:            input.WeightKg,
		ActivityLevel:       level,
		Goal:                goal,
		DietaryRestrictions: restrictions,
		BMR:                 metrics.BMR,
		TDEE:                metrics.TDEE,
		DailyCalories:       metrics.DailyCalories,
		ProteinIntake:       metrics.ProteinIntake,
		CarbsIntake:         metrics.CarbsIntake,
		FatIntake:           metrics.FatIntake,
		OnboardingCompleted: true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if existing, err := s.profileStore.Get(ctx, userID); err == nil {
		profile.CreatedAt = existing.CreatedAt
	}

	if err := s.profileStore.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return &profile, nil
}

// Get returns the user's profile.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.NutritionProfile, error) {
	if s.profileStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.profileStore.Get(ctx, userID)
}

// SetPreference records a like or dislike for a food name.
func (s *ProfileService) SetPreference(ctx context.Context, userID, foodName string, liked bool) error {
	if s.preferenceStore == nil {
		return domain.ErrNotImplemented
	}
	name := strings.TrimSpace(foodName)
	if name == "" {
		return &domain.ValidationError{Field: "foodName", Message: "is required"}
	}
	pref := domain.FoodPreference{FoodName: name, Liked: liked, UpdatedAt: s.now()}
	if err := s.preferenceStore.Set(ctx, userID, pref); err != nil {
		return fmt.Errorf("save preference: %w", err)
	}
	return nil
}

// ClearPreference removes any preference for a food name.
func (s *ProfileService) ClearPreference(ctx context.Context, userID, foodName string) error {
	if s.preferenceStore == nil {
		return domain.ErrNotImplemented
	}
	return s.preferenceStore.Delete(ctx, userID, strings.TrimSpace(foodName))
}

// Preferences returns the user's preferences sorted by food name.
func (s *ProfileService) Preferences(ctx context.Context, userID string) ([]domain.FoodPreference, error) {
	if s.preferenceStore == nil {
		return nil, domain.ErrNotImplemented
	}
	prefs, err := s.preferenceStore.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(prefs, func(i, j int) bool {
		return domain.NormalizeName(prefs[i].FoodName) < domain.NormalizeName(prefs[j].FoodName)
	})
	return prefs, nil
}
