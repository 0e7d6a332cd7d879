// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color

	// Macro colours are used for the protein, carbs and fat columns and
	// target bars.
	Protein lipgloss.Color
	Carbs   lipgloss.Color
	Fat     lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Success:    lipgloss.Color("#A6E3A1"),
		Warning:    lipgloss.Color("#F9E2AF"),
		Error:      lipgloss.Color("#F38BA8"),
		Border:     lipgloss.Color("#45475A"),
		Protein:    lipgloss.Color("#FAB387"), // Peach
		Carbs:      lipgloss.Color("#89B4FA"), // Blue
		Fat:        lipgloss.Color("#F5C2E7"), // Pink
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style

	// MealHeader heads each meal block of the day view.
	MealHeader lipgloss.Style

	// Cell and Number style table cells; Number is right aligned.
	Cell   lipgloss.Style
	Number lipgloss.Style

	Protein lipgloss.Style
	Carbs   lipgloss.Style
	Fat     lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
	Border     lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	cell := lipgloss.NewStyle().Padding(0, 1).Foreground(theme.Foreground)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal:  lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted:   lipgloss.NewStyle().Foreground(theme.Muted),
		Error:   lipgloss.NewStyle().Foreground(theme.Error),
		Success: lipgloss.NewStyle().Foreground(theme.Success),
		Warning: lipgloss.NewStyle().Foreground(theme.Warning),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		MealHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary).
			MarginTop(1),

		Cell:   cell,
		Number: cell.Align(lipgloss.Right),

		Protein: lipgloss.NewStyle().Foreground(theme.Protein),
		Carbs:   lipgloss.NewStyle().Foreground(theme.Carbs),
		Fat:     lipgloss.NewStyle().Foreground(theme.Fat),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Bar renders a width-cell progress bar for actual against target.
// The bar is capped at full; a zero target renders an empty bar.
func (s *Styles) Bar(style lipgloss.Style, actual, target float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if target > 0 {
		filled = int(math.Round(math.Min(actual/target, 1) * float64(width)))
	}
	return style.Render(strings.Repeat("█", filled)) + s.Muted.Render(strings.Repeat("░", width-filled))
}
