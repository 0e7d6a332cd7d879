package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

var profileInput domain.ProfileInput

var profileJSON bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your nutrition profile",
	Long: `Your nutrition profile holds the body metrics and goal from which daily
calorie and macro targets are computed. Menus cannot be generated until it
is set.`,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set your profile and compute daily targets",
	Long: `Set your body metrics, activity level and goal. Daily targets are computed
with the Mifflin-St Jeor equation and stored with the profile.

Activity levels: sedentary, light, moderate, active, very_active
Goals:           cut, maintain, bulk
Restrictions:    vegetarian, vegan, gluten-free, lactose-free, dairy-free,
                 halal, kosher, nut-free`,
	Args: cobra.NoArgs,
	RunE: runProfileSet,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile and daily targets",
	Args:  cobra.NoArgs,
	RunE:  runProfileShow,
}

func init() {
	f := profileSetCmd.Flags()
	f.IntVar(&profileInput.Age, "age", 0, "age in years")
	f.StringVar(&profileInput.Gender, "gender", "", "male, female or other")
	f.Float64Var(&profileInput.HeightCm, "height", 0, "height in cm")
	f.Float64Var(&profileInput.WeightKg, "weight", 0, "weight in kg")
	f.StringVar(&profileInput.ActivityLevel, "activity", "", "activity level")
	f.StringVar(&profileInput.Goal, "goal", "", "cut, maintain or bulk")
	f.StringSliceVar(&profileInput.DietaryRestrictions, "restrictions", nil, "comma-separated dietary restrictions")

	profileCmd.PersistentFlags().BoolVar(&profileJSON, "json", false, "output as JSON")
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileSet(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	profile, err := profileService.Onboard(cmd.Context(), currentUser(), profileInput)
	if err != nil {
		var fieldErrs domain.ValidationErrors
		if errors.As(err, &fieldErrs) {
			cmd.Println("Profile not saved:")
			for _, fe := range fieldErrs {
				cmd.Printf("  --%s %s\n", flagForField(fe.Field), fe.Message)
			}
		}
		return fmt.Errorf("failed to save profile: %w", err)
	}

	if wantJSON(profileJSON) {
		return printJSON(cmd, profile)
	}
	cmd.Println("Profile saved.")
	cmd.Println()
	printProfile(cmd, profile)
	return nil
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	profile, err := profileService.Get(cmd.Context(), currentUser())
	if errors.Is(err, domain.ErrNotFound) {
		return errors.New("no profile set, run 'menugen profile set'")
	}
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if wantJSON(profileJSON) {
		return printJSON(cmd, profile)
	}
	printProfile(cmd, profile)
	return nil
}

func printProfile(cmd *cobra.Command, p *domain.NutritionProfile) {
	restrictions := "none"
	if len(p.DietaryRestrictions) > 0 {
		restrictions = strings.Join(p.DietaryRestrictions, ", ")
	}

	cmd.Println(heading(cmd, "Profile"))
	cmd.Printf("  Age:          %d\n", p.Age)
	cmd.Printf("  Gender:       %s\n", p.Gender)
	cmd.Printf("  Height:       %.0f cm\n", p.HeightCm)
	cmd.Printf("  Weight:       %.1f kg\n", p.WeightKg)
	cmd.Printf("  Activity:     %s\n", p.ActivityLevel)
	cmd.Printf("  Goal:         %s\n", p.Goal)
	cmd.Printf("  Restrictions: %s\n", restrictions)
	cmd.Println()
	cmd.Println(heading(cmd, "Daily targets"))
	cmd.Printf("  BMR:      %.0f kcal\n", p.BMR)
	cmd.Printf("  TDEE:     %.0f kcal\n", p.TDEE)
	cmd.Printf("  Calories: %.0f kcal\n", p.DailyCalories)
	cmd.Printf("  Protein:  %.0f g\n", p.ProteinIntake)
	cmd.Printf("  Carbs:    %.0f g\n", p.CarbsIntake)
	cmd.Printf("  Fat:      %.0f g\n", p.FatIntake)
}

// flagForField maps a profile input field to its flag name.
func flagForField(field string) string {
	switch {
	case field == "heightCm":
		return "height"
	case field == "weightKg":
		return "weight"
	case field == "activityLevel":
		return "activity"
	case strings.HasPrefix(field, "dietaryRestrictions"):
		return "restrictions"
	default:
		return field
	}
}
