// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/menugen/internal/core/domain"
)

// MenuList displays stored menu summaries in a navigable list.
type MenuList struct {
	menus    []domain.MenuSummary
	selected int
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	width    int
	height   int
}

// NewMenuList creates a new menu list component.
func NewMenuList(s *styles.Styles) *MenuList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &MenuList{
		styles: s,
		keymap: keymap.DefaultKeyMap(),
		width:  80,
		height: 10,
	}
}

// Init initialises the menu list.
func (l *MenuList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *MenuList) Update(msg tea.Msg) (*MenuList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keymap.Matches(msg.String(), l.keymap.Up):
			l.MoveUp()
		case keymap.Matches(msg.String(), l.keymap.Down):
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the menu list.
func (l *MenuList) View() string {
	if len(l.menus) == 0 {
		return l.styles.Muted.Render("No menus stored")
	}

	lines := make([]string, 0, len(l.menus)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Menus (%d)", len(l.menus))), "")

	// Header and blank line take two rows.
	visible := max(l.height-2, 1)
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.menus))

	for i := start; i < end; i++ {
		lines = append(lines, l.renderRow(i, &l.menus[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *MenuList) renderRow(index int, m *domain.MenuSummary) string {
	detail := fmt.Sprintf("%6.0f kcal  P %5.1f  C %5.1f  F %5.1f  %2d items",
		m.Totals.Calories, m.Totals.Protein, m.Totals.Carbs, m.Totals.Fat, m.ItemCount)

	if index == l.selected {
		return l.styles.Selected.Render(fmt.Sprintf("> %s  %s", m.Date, detail))
	}
	return l.styles.Normal.Render("  "+m.Date+"  ") + l.styles.Muted.Render(detail)
}

// SetMenus replaces the listed menus and resets the selection.
func (l *MenuList) SetMenus(menus []domain.MenuSummary) {
	l.menus = menus
	l.selected = 0
}

// Menus returns the listed menus.
func (l *MenuList) Menus() []domain.MenuSummary {
	return l.menus
}

// Selected returns the index of the selected menu.
func (l *MenuList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index. Out of range values are ignored.
func (l *MenuList) SetSelected(index int) {
	if index >= 0 && index < len(l.menus) {
		l.selected = index
	}
}

// SelectedMenu returns the selected summary, or nil if the list is empty.
func (l *MenuList) SelectedMenu() *domain.MenuSummary {
	if l.selected < 0 || l.selected >= len(l.menus) {
		return nil
	}
	return &l.menus[l.selected]
}

// MoveUp moves selection up.
func (l *MenuList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *MenuList) MoveDown() {
	if l.selected < len(l.menus)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *MenuList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of menus.
func (l *MenuList) Count() int {
	return len(l.menus)
}

// IsEmpty returns whether the list is empty.
func (l *MenuList) IsEmpty() bool {
	return len(l.menus) == 0
}
