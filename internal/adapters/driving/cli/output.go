package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numberStyle  = cellStyle.Align(lipgloss.Right)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

var titleCaser = cases.Title(language.English)

// isTerminal reports whether the command writes to a TTY.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// wantJSON reports whether output should be JSON: the --json flag, or
// output.format = json in settings.
func wantJSON(flag bool) bool {
	if flag {
		return true
	}
	if settingsService == nil {
		return false
	}
	settings, err := settingsService.Get()
	return err == nil && settings.Output.Format == domain.OutputFormatJSON
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// renderTable writes rows as a bordered table on terminals and as
// space-aligned text otherwise. Columns listed in numeric are right aligned.
func renderTable(cmd *cobra.Command, headers []string, rows [][]string, numeric ...int) {
	right := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		right[c] = true
	}

	if isTerminal(cmd) {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(borderStyle).
			Headers(headers...).
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case right[col]:
					return numberStyle
				default:
					return cellStyle
				}
			})
		cmd.Println(t.String())
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}
	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if right[i] {
				parts[i] = fmt.Sprintf("%*s", widths[i], cell)
			} else {
				parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
			}
		}
		return "  " + strings.TrimRight(strings.Join(parts, "  "), " ")
	}
	cmd.Println(line(headers))
	for _, row := range rows {
		cmd.Println(line(row))
	}
}

func heading(cmd *cobra.Command, text string) string {
	if isTerminal(cmd) {
		return headingStyle.Render(text)
	}
	return text
}

func formatMacros(v domain.MacroVector) string {
	return fmt.Sprintf("%.1f kcal, %.1fg protein, %.1fg carbs, %.1fg fat",
		v.Calories, v.Protein, v.Carbs, v.Fat)
}

func itemRows(items []domain.MealItem) [][]string {
	rows := make([][]string, 0, len(items))
	for i := range items {
		rows = append(rows, []string{
			items[i].Food.Name,
			fmt.Sprintf("%.0f", items[i].Grams),
			fmt.Sprintf("%.1f", items[i].Calories),
			fmt.Sprintf("%.1f", items[i].Protein),
			fmt.Sprintf("%.1f", items[i].Carbs),
			fmt.Sprintf("%.1f", items[i].Fat),
		})
	}
	return rows
}

var itemHeaders = []string{"Food", "Grams", "kcal", "Protein", "Carbs", "Fat"}

// renderMenu prints a menu meal by meal, followed by the day totals.
func renderMenu(cmd *cobra.Command, menu *domain.GeneratedMenu) {
	cmd.Println(heading(cmd, "Menu for "+menu.Date))
	cmd.Println()
	for _, meal := range menu.Meals {
		cmd.Printf("%s  %s\n", heading(cmd, titleCaser.String(meal.Type.String())), dimText(cmd, formatMacros(meal.Totals)))
		renderTable(cmd, itemHeaders, itemRows(meal.Items), 1, 2, 3, 4, 5)
		cmd.Println()
	}
	cmd.Printf("Total: %s\n", formatMacros(menu.Totals))
}

// renderItems prints portions and their totals.
func renderItems(cmd *cobra.Command, items []domain.MealItem, totals domain.MacroVector) {
	renderTable(cmd, itemHeaders, itemRows(items), 1, 2, 3, 4, 5)
	cmd.Printf("Total: %s\n", formatMacros(totals))
}

func dimText(cmd *cobra.Command, text string) string {
	if isTerminal(cmd) {
		return dimStyle.Render(text)
	}
	return "(" + text + ")"
}
