package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

var prefsJSON bool

var prefsCmd = &cobra.Command{
	Use:     "prefs",
	Aliases: []string{"preferences"},
	Short:   "Manage liked and disliked foods",
	Long: `Disliked foods are never put on a menu. Liked foods are picked first when
a meal slot is filled.`,
}

var prefsLikeCmd = &cobra.Command{
	Use:   "like <food>",
	Short: "Mark a food as liked",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPreference(cmd, strings.Join(args, " "), true)
	},
}

var prefsDislikeCmd = &cobra.Command{
	Use:   "dislike <food>",
	Short: "Mark a food as disliked",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPreference(cmd, strings.Join(args, " "), false)
	},
}

var prefsClearCmd = &cobra.Command{
	Use:   "clear <food>",
	Short: "Remove the preference for a food",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPrefsClear,
}

var prefsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your food preferences",
	Args:  cobra.NoArgs,
	RunE:  runPrefsList,
}

func init() {
	prefsListCmd.Flags().BoolVar(&prefsJSON, "json", false, "output as JSON")
	prefsCmd.AddCommand(prefsLikeCmd)
	prefsCmd.AddCommand(prefsDislikeCmd)
	prefsCmd.AddCommand(prefsClearCmd)
	prefsCmd.AddCommand(prefsListCmd)
	rootCmd.AddCommand(prefsCmd)
}

func setPreference(cmd *cobra.Command, food string, liked bool) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	if err := profileService.SetPreference(cmd.Context(), currentUser(), food, liked); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}

	// Preferences are matched by name; warn about names the catalog does not know.
	if catalogService != nil {
		if _, err := catalogService.Get(cmd.Context(), food); errors.Is(err, domain.ErrNotFound) {
			cmd.Printf("Note: %q is not in the catalog yet.\n", food)
		}
	}

	verb := "Liked"
	if !liked {
		verb = "Disliked"
	}
	cmd.Printf("%s %s\n", verb, food)
	return nil
}

func runPrefsClear(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	food := strings.Join(args, " ")
	err := profileService.ClearPreference(cmd.Context(), currentUser(), food)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no preference set for %q", food)
	}
	if err != nil {
		return fmt.Errorf("failed to clear preference: %w", err)
	}

	cmd.Printf("Cleared preference for %s\n", food)
	return nil
}

func runPrefsList(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	prefs, err := profileService.Preferences(cmd.Context(), currentUser())
	if err != nil {
		return fmt.Errorf("failed to list preferences: %w", err)
	}

	if wantJSON(prefsJSON) {
		if prefs == nil {
			prefs = []domain.FoodPreference{}
		}
		return printJSON(cmd, prefs)
	}
	if len(prefs) == 0 {
		cmd.Println("No preferences set.")
		return nil
	}

	rows := make([][]string, 0, len(prefs))
	for _, p := range prefs {
		state := "dislike"
		if p.Liked {
			state = "like"
		}
		rows = append(rows, []string{p.FoodName, state})
	}
	renderTable(cmd, []string{"Food", "Preference"}, rows)
	return nil
}
