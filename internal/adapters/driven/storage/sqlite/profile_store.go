package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
)

// ==================== Profile Store ====================

// profileStore implements driven.ProfileStore.
type profileStore struct {
	store *Store
}

var _ driven.ProfileStore = (*profileStore)(nil)

// Save stores or replaces the profile for profile.UserID.
func (s *profileStore) Save(ctx context.Context, profile domain.NutritionProfile) error {
	if profile.UserID == "" {
		return domain.ErrInvalidInput
	}

	restrictions := profile.DietaryRestrictions
	if restrictions == nil {
		restrictions = []string{}
	}
	restrictionsJSON, err := json.Marshal(restrictions)
	if err != nil {
		return fmt.Errorf("marshalling restrictions: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO nutrition_profiles (user_id, age, gender, height_cm, weight_kg, activity_level, goal,
			dietary_restrictions, bmr, tdee, daily_calories, protein_intake, carbs_intake, fat_intake,
			onboarding_completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			age = excluded.age,
			gender = excluded.gender,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			activity_level = excluded.activity_level,
			goal = excluded.goal,
			dietary_restrictions = excluded.dietary_restrictions,
			bmr = excluded.bmr,
			tdee = excluded.tdee,
			daily_calories = excluded.daily_calories,
			protein_intake = excluded.protein_intake,
			carbs_intake = excluded.carbs_intake,
			fat_intake = excluded.fat_intake,
			onboarding_completed = excluded.onboarding_completed,
			updated_at = excluded.updated_at
	`, profile.UserID, profile.Age, string(profile.Gender), profile.HeightCm, profile.WeightKg,
		string(profile.ActivityLevel), string(profile.Goal), string(restrictionsJSON),
		profile.BMR, profile.TDEE, profile.DailyCalories,
		profile.ProteinIntake, profile.CarbsIntake, profile.FatIntake,
		boolToInt(profile.OnboardingCompleted),
		formatTime(profile.CreatedAt), formatNullableTime(profile.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// Get retrieves a user's profile.
func (s *profileStore) Get(ctx context.Context, userID string) (*domain.NutritionProfile, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT user_id, age, gender, height_cm, weight_kg, activity_level, goal, dietary_restrictions,
			bmr, tdee, daily_calories, protein_intake, carbs_intake, fat_intake,
			onboarding_completed, created_at, updated_at
		FROM nutrition_profiles WHERE user_id = ?
	`, userID)

	var p domain.NutritionProfile
	var gender, level, goal, restrictionsJSON, createdAt string
	var completed int
	var updatedAt sql.NullString
	if err := row.Scan(&p.UserID, &p.Age, &gender, &p.HeightCm, &p.WeightKg, &level, &goal,
		&restrictionsJSON, &p.BMR, &p.TDEE, &p.DailyCalories,
		&p.ProteinIntake, &p.CarbsIntake, &p.FatIntake,
		&completed, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	if err := json.Unmarshal([]byte(restrictionsJSON), &p.DietaryRestrictions); err != nil {
		return nil, fmt.Errorf("unmarshalling restrictions: %w", err)
	}
	p.Gender = domain.Gender(gender)
	p.ActivityLevel = domain.ActivityLevel(level)
	p.Goal = domain.Goal(goal)
	p.OnboardingCompleted = completed == 1
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseNullableTime(updatedAt)
	return &p, nil
}
