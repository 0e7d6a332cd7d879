// Package nav provides the start screen of the TUI.
package nav

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/menugen/internal/core/domain"
)

// Action is what selecting an item does.
type Action int

const (
	// ActionToday opens the day view on today's date.
	ActionToday Action = iota
	// ActionView switches to Item.View.
	ActionView
	// ActionQuit exits the program.
	ActionQuit
)

// Item represents a single menu option.
type Item struct {
	Label  string
	Action Action
	View   messages.ViewType
}

// View is the start screen.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new start screen.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		items: []Item{
			{Label: "Today's menu", Action: ActionToday},
			{Label: "History", Action: ActionView, View: messages.ViewHistory},
			{Label: "Help", Action: ActionView, View: messages.ViewHelp},
			{Label: "Quit", Action: ActionQuit},
		},
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the start screen.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch k := msg.String(); {
		case keymap.Matches(k, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case keymap.Matches(k, v.keymap.Down):
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case keymap.Matches(k, v.keymap.Select):
			return v, v.activate(v.items[v.selected])
		case keymap.Matches(k, v.keymap.Quit):
			return v, tea.Quit
		}
	}

	return v, nil
}

func (v *View) activate(item Item) tea.Cmd {
	switch item.Action {
	case ActionToday:
		return func() tea.Msg {
			return messages.DateSelected{Date: domain.Today()}
		}
	case ActionView:
		view := item.View
		return func() tea.Msg {
			return messages.ViewChanged{View: view}
		}
	default:
		return tea.Quit
	}
}

// View renders the start screen.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("menugen"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Daily menus matched to your targets"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + item.Label))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + item.Label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
