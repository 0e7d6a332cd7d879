// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady      State = "ready"
	StateLoading    State = "loading"
	StateGenerating State = "generating"
	StateError      State = "error"
	StateHelp       State = "help"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	hints   []key.Binding
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		hints:  km.ShortHelp(),
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateGenerating:
		return s.styles.Warning.Render("Generating menu...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateReady:
		if s.message != "" {
			return s.styles.Success.Render(s.message)
		}
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.hints))
	for _, b := range s.hints {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the message shown for the ready and error states.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetHints sets the keybindings shown on the right. Nil restores the
// short help.
func (s *Bar) SetHints(bindings []key.Binding) {
	if bindings == nil {
		bindings = s.keymap.ShortHelp()
	}
	s.hints = bindings
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to the ready state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
