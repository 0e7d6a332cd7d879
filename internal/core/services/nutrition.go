package services

import (
	"math"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// NutritionMetrics are the values derived from a user's body metrics.
type NutritionMetrics struct {
	BMR           float64
	TDEE          float64
	DailyCalories float64
	ProteinIntake float64
	CarbsIntake   float64
	FatIntake     float64
}

// Macro split of daily calories and energy per gram.
const (
	proteinShare   = 0.25
	fatShare       = 0.25
	carbsShare     = 0.5
	kcalPerGramPro = 4
	kcalPerGramCHO = 4
	kcalPerGramFat = 9
)

// roundHalfUp rounds halves toward positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// CalculateBMR uses the Mifflin-St Jeor equation. Anyone not male gets the
// female constant.
func CalculateBMR(gender domain.Gender, age int, weightKg, heightCm float64) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == domain.GenderMale {
		return roundHalfUp(base + 5)
	}
	return roundHalfUp(base - 161)
}

// CalculateTDEE multiplies BMR by the activity multiplier and rounds to the
// nearest 100 kcal.
func CalculateTDEE(bmr float64, level domain.ActivityLevel) float64 {
	return roundHalfUp(bmr*level.Multiplier()/100) * 100
}

// CalculateDailyCalories applies the goal adjustment to TDEE.
func CalculateDailyCalories(tdee float64, goal domain.Goal) float64 {
	return roundHalfUp(tdee + goal.Adjustment())
}

// CalculateMacros splits daily calories 25% protein, 50% carbs, 25% fat.
func CalculateMacros(dailyCalories float64) (protein, carbs, fat float64) {
	protein = roundHalfUp(dailyCalories * proteinShare / kcalPerGramPro)
	carbs = roundHalfUp(dailyCalories * carbsShare / kcalPerGramCHO)
	fat = roundHalfUp(dailyCalories * fatShare / kcalPerGramFat)
	return protein, carbs, fat
}

// CalculateNutrition derives every metric from validated profile fields.
func CalculateNutrition(
	gender domain.Gender,
	age int,
	weightKg, heightCm float64,
	level domain.ActivityLevel,
	goal domain.Goal,
) NutritionMetrics {
	bmr := CalculateBMR(gender, age, weightKg, heightCm)
	tdee := CalculateTDEE(bmr, level)
	daily := CalculateDailyCalories(tdee, goal)
	protein, carbs, fat := CalculateMacros(daily)
	return NutritionMetrics{
		BMR:           bmr,
		TDEE:          tdee,
		DailyCalories: daily,
		ProteinIntake: protein,
		CarbsIntake:   carbs,
		FatIntake:     fat,
	}
}
