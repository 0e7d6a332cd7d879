package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

var menuJSON bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Inspect stored menus",
	Long:  `Show, list and delete menus that have already been generated.`,
}

var menuShowCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show the stored menu for a day",
	Long:  `Show the stored menu for a day (default today) without generating one.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMenuShow,
}

var menuListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored menus, newest first",
	Args:  cobra.NoArgs,
	RunE:  runMenuList,
}

var menuDeleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete the stored menu for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runMenuDelete,
}

func init() {
	menuCmd.PersistentFlags().BoolVar(&menuJSON, "json", false, "output as JSON")
	menuCmd.AddCommand(menuShowCmd)
	menuCmd.AddCommand(menuListCmd)
	menuCmd.AddCommand(menuDeleteCmd)
	rootCmd.AddCommand(menuCmd)
}

func runMenuShow(cmd *cobra.Command, args []string) error {
	if menuService == nil {
		return errors.New("menu service not configured")
	}

	raw := ""
	if len(args) == 1 {
		raw = args[0]
	}
	day, err := parseDayArg(raw)
	if err != nil {
		return err
	}

	menu, err := menuService.Get(cmd.Context(), currentUser(), day)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no menu stored for %s, run 'menugen generate --date %s'",
			domain.FormatDate(day), domain.FormatDate(day))
	}
	if err != nil {
		return fmt.Errorf("failed to get menu: %w", err)
	}

	if wantJSON(menuJSON) {
		return printJSON(cmd, menu)
	}
	renderMenu(cmd, menu)
	return nil
}

func runMenuList(cmd *cobra.Command, _ []string) error {
	if menuService == nil {
		return errors.New("menu service not configured")
	}

	summaries, err := menuService.List(cmd.Context(), currentUser())
	if err != nil {
		return fmt.Errorf("failed to list menus: %w", err)
	}

	if wantJSON(menuJSON) {
		if summaries == nil {
			summaries = []domain.MenuSummary{}
		}
		return printJSON(cmd, summaries)
	}
	if len(summaries) == 0 {
		cmd.Println("No menus stored.")
		return nil
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Date,
			fmt.Sprintf("%d", s.ItemCount),
			fmt.Sprintf("%.1f", s.Totals.Calories),
			fmt.Sprintf("%.1f", s.Totals.Protein),
			fmt.Sprintf("%.1f", s.Totals.Carbs),
			fmt.Sprintf("%.1f", s.Totals.Fat),
		})
	}
	renderTable(cmd, []string{"Date", "Items", "kcal", "Protein", "Carbs", "Fat"}, rows, 1, 2, 3, 4, 5)
	return nil
}

func runMenuDelete(cmd *cobra.Command, args []string) error {
	if menuService == nil {
		return errors.New("menu service not configured")
	}

	day, err := domain.ParseDate(args[0])
	if err != nil {
		return err
	}

	err = menuService.Delete(cmd.Context(), currentUser(), day)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no menu stored for %s", domain.FormatDate(day))
	}
	if err != nil {
		return fmt.Errorf("failed to delete menu: %w", err)
	}

	cmd.Printf("Deleted menu for %s\n", domain.FormatDate(day))
	return nil
}
