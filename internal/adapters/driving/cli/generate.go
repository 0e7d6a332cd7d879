package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

var (
	generateDate       string
	generateRegenerate bool
	generateJSON       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the daily menu",
	Long: `Generate the menu for a day from your nutrition profile, your food
preferences and the catalog. If a menu is already stored for the day it is
returned unchanged; use --regenerate to discard it and build a new one.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateDate, "date", "d", "", "day as YYYY-MM-DD (default today)")
	generateCmd.Flags().BoolVar(&generateRegenerate, "regenerate", false, "replace any stored menu for the day")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "output the menu as JSON")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if menuService == nil {
		return errors.New("menu service not configured")
	}

	day, err := parseDayArg(generateDate)
	if err != nil {
		return err
	}

	generate := menuService.Generate
	if generateRegenerate {
		generate = menuService.Regenerate
	}
	menu, err := generate(cmd.Context(), currentUser(), day)
	if err != nil {
		return publicError(err)
	}

	if wantJSON(generateJSON) {
		return printJSON(cmd, menu)
	}
	renderMenu(cmd, menu)
	return nil
}

// parseDayArg parses an optional YYYY-MM-DD argument, defaulting to today.
func parseDayArg(s string) (time.Time, error) {
	if s == "" {
		return domain.Today(), nil
	}
	return domain.ParseDate(s)
}
