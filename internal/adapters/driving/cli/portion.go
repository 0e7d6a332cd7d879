package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/planner"
)

var (
	portionCalories float64
	portionJSON     bool
)

var portionCmd = &cobra.Command{
	Use:   "portion",
	Short: "Resize portions toward a calorie goal",
	Long: `Resize portions of catalog foods. Portions are given as food:grams and are
always kept within realistic bounds for the food's category, rounded to 5 g.`,
}

var portionScaleCmd = &cobra.Command{
	Use:   "scale <food:grams>...",
	Short: "Rescale portions so they total about --calories",
	Example: `  menugen portion scale "Chicken Breast:150" "Brown Rice:150" --calories 600`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPortion(cmd, args, false)
	},
}

var portionTopUpCmd = &cobra.Command{
	Use:   "top-up <food:grams>...",
	Short: "Spread --calories extra evenly over the portions",
	Example: `  menugen portion top-up "Oats:60" "Banana:100" --calories 150`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPortion(cmd, args, true)
	},
}

func init() {
	portionCmd.PersistentFlags().Float64Var(&portionCalories, "calories", 0, "calorie target (scale) or calories to add (top-up)")
	portionCmd.PersistentFlags().BoolVar(&portionJSON, "json", false, "output as JSON")
	portionCmd.AddCommand(portionScaleCmd)
	portionCmd.AddCommand(portionTopUpCmd)
	rootCmd.AddCommand(portionCmd)
}

func runPortion(cmd *cobra.Command, args []string, topUp bool) error {
	if portionService == nil {
		return errors.New("portion service not configured")
	}

	requests, err := parsePortions(args)
	if err != nil {
		return err
	}

	resize := portionService.Scale
	if topUp {
		resize = portionService.TopUp
	}
	items, err := resize(cmd.Context(), requests, portionCalories)
	if err != nil {
		return fmt.Errorf("failed to resize portions: %w", err)
	}

	totals := planner.Sum(items)
	if wantJSON(portionJSON) {
		return printJSON(cmd, struct {
			Items  []domain.MealItem  `json:"items"`
			Totals domain.MacroVector `json:"totals"`
		}{items, totals})
	}
	renderItems(cmd, items, totals)
	return nil
}

// parsePortions parses "food:grams" arguments. The last colon separates
// the grams so food names may contain colons.
func parsePortions(args []string) ([]domain.PortionRequest, error) {
	requests := make([]domain.PortionRequest, 0, len(args))
	for _, arg := range args {
		i := strings.LastIndex(arg, ":")
		if i <= 0 {
			return nil, fmt.Errorf("invalid portion %q, expected food:grams", arg)
		}
		grams, err := strconv.ParseFloat(strings.TrimSpace(arg[i+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid grams in %q: %w", arg, err)
		}
		requests = append(requests, domain.PortionRequest{
			FoodName: strings.TrimSpace(arg[:i]),
			Grams:    grams,
		})
	}
	return requests, nil
}
