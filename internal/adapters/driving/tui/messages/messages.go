// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"time"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewNav is the start screen.
	ViewNav ViewType = iota
	// ViewDay shows the menu for one day.
	ViewDay
	// ViewHistory lists stored menus.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewNav:
		return "nav"
	case ViewDay:
		return "day"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// DateSelected opens the day view on Date.
type DateSelected struct {
	Date time.Time
}

// MenuLoaded carries the menu for Date. Menu is nil when none is stored.
type MenuLoaded struct {
	Date time.Time
	Menu *domain.GeneratedMenu

	// Generated is true when the menu was built by this request.
	Generated bool
	Err       error
}

// TargetsLoaded carries the user's daily targets. OK is false when the
// profile is missing or incomplete.
type TargetsLoaded struct {
	Targets domain.MacroVector
	OK      bool
}

// HistoryLoaded carries stored menu summaries, newest first.
type HistoryLoaded struct {
	Menus []domain.MenuSummary
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
