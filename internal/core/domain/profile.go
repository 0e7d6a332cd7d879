package domain

import (
	"fmt"
	"strings"
	"time"
)

// Gender selects the Mifflin-St Jeor constant.
type Gender string

// Genders.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid returns true if the gender is recognised.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// ActivityLevel is a standard physical activity level.
type ActivityLevel string

// Activity levels.
const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Multiplier returns the TDEE multiplier for the level, or 0 if unknown.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case ActivitySedentary:
		return 1.2
	case ActivityLight:
		return 1.375
	case ActivityModerate:
		return 1.55
	case ActivityActive:
		return 1.725
	case ActivityVeryActive:
		return 1.9
	default:
		return 0
	}
}

// IsValid returns true if the activity level is recognised.
func (a ActivityLevel) IsValid() bool {
	return a.Multiplier() > 0
}

// Goal is the user's body-composition goal.
type Goal string

// Goals.
const (
	GoalCut      Goal = "cut"
	GoalMaintain Goal = "maintain"
	GoalBulk     Goal = "bulk"
)

// ParseGoal accepts canonical goal names and the loss/maintenance/gain aliases.
func ParseGoal(s string) (Goal, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cut", "loss":
		return GoalCut, true
	case "maintain", "maintenance":
		return GoalMaintain, true
	case "bulk", "gain":
		return GoalBulk, true
	default:
		return "", false
	}
}

// Adjustment returns the daily kcal offset applied to TDEE.
func (g Goal) Adjustment() float64 {
	switch g {
	case GoalCut:
		return -400
	case GoalBulk:
		return 400
	default:
		return 0
	}
}

// restrictionSynonyms maps accepted spellings to canonical tag names.
var restrictionSynonyms = map[string]string{
	"vegan":         "vegan",
	"plant-based":   "vegan",
	"vegetarian":    "vegetarian",
	"veggie":        "vegetarian",
	"gluten-free":   "gluten-free",
	"gluten free":   "gluten-free",
	"coeliac":       "gluten-free",
	"celiac":        "gluten-free",
	"dairy-free":    "dairy-free",
	"dairy free":    "dairy-free",
	"lactose-free":  "dairy-free",
	"lactose free":  "dairy-free",
	"halal":         "halal",
	"kosher":        "kosher",
	"nut-free":      "nut-free",
	"nut free":      "nut-free",
	"peanut-free":   "nut-free",
	"tree-nut-free": "nut-free",
}

// CanonicalRestriction maps a dietary restriction to the tag a food must carry.
// Unknown restrictions pass through lower-cased.
func CanonicalRestriction(r string) string {
	key := NormalizeName(r)
	if tag, ok := restrictionSynonyms[key]; ok {
		return tag
	}
	return key
}

// IsKnownRestriction reports whether r maps to a recognised restriction.
func IsKnownRestriction(r string) bool {
	_, ok := restrictionSynonyms[NormalizeName(r)]
	return ok
}

// NutritionProfile holds a user's body metrics and daily macro targets.
type NutritionProfile struct {
	// UserID owns the profile.
	UserID string `json:"userId"`

	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	HeightCm      float64       `json:"heightCm"`
	WeightKg      float64       `json:"weightKg"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"goal"`

	// DietaryRestrictions must all be satisfied by every selected food.
	DietaryRestrictions []string `json:"dietaryRestrictions"`

	// BMR is the basal metabolic rate in kcal.
	BMR float64 `json:"bmr"`

	// TDEE is total daily energy expenditure in kcal.
	TDEE float64 `json:"tdee"`

	// Daily targets. Zero means not set.
	DailyCalories float64 `json:"dailyCalories"`
	ProteinIntake float64 `json:"proteinIntake"`
	CarbsIntake   float64 `json:"carbsIntake"`
	FatIntake     float64 `json:"fatIntake"`

	// OnboardingCompleted is set once targets have been computed.
	OnboardingCompleted bool `json:"onboardingCompleted"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DailyTargets returns the profile's target vector. The second return is
// false when onboarding is incomplete or any target is unset.
func (p *NutritionProfile) DailyTargets() (MacroVector, bool) {
	if p == nil || !p.OnboardingCompleted {
		return MacroVector{}, false
	}
	targets := MacroVector{
		Calories: p.DailyCalories,
		Protein:  p.ProteinIntake,
		Carbs:    p.CarbsIntake,
		Fat:      p.FatIntake,
	}
	return targets, targets.IsComplete()
}

// ProfileInput is the onboarding form.
type ProfileInput struct {
	Age                 int      `json:"age"`
	Gender              string   `json:"gender"`
	HeightCm            float64  `json:"heightCm"`
	WeightKg            float64  `json:"weightKg"`
	ActivityLevel       string   `json:"activityLevel"`
	Goal                string   `json:"goal"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
}

// Validate returns field-level errors for a malformed form.
func (in *ProfileInput) Validate() error {
	var errs ValidationErrors
	if in.Age < 0 || in.Age > 120 {
		errs.Add("age", "must be between 0 and 120")
	}
	if !Gender(strings.ToLower(in.Gender)).IsValid() {
		errs.Add("gender", "must be one of male, female, other")
	}
	if in.HeightCm < 50 || in.HeightCm > 250 {
		errs.Add("heightCm", "must be between 50 and 250")
	}
	if in.WeightKg < 20 || in.WeightKg > 400 {
		errs.Add("weightKg", "must be between 20 and 400")
	}
	if !ActivityLevel(strings.ToLower(in.ActivityLevel)).IsValid() {
		errs.Add("activityLevel", "must be one of sedentary, light, moderate, active, very_active")
	}
	if _, ok := ParseGoal(in.Goal); !ok {
		errs.Add("goal", "must be one of cut, maintain, bulk")
	}
	for i, r := range in.DietaryRestrictions {
		if !IsKnownRestriction(r) {
			errs.Add(fmt.Sprintf("dietaryRestrictions[%d]", i), fmt.Sprintf("unknown restriction %q", r))
		}
	}
	return errs.Err()
}

// FoodPreference records whether a user likes or dislikes a food by name.
type FoodPreference struct {
	// FoodName is compared case-insensitively with catalog names.
	FoodName string `json:"foodName"`

	// Liked is false for an explicit dislike.
	Liked bool `json:"liked"`

	UpdatedAt time.Time `json:"updatedAt"`
}
