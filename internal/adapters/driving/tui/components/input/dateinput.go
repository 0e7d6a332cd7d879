// Package input provides text input components for the TUI.
package input

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/menugen/internal/core/domain"
)

// DateInput is a single line prompt for a YYYY-MM-DD date.
type DateInput struct {
	textinput textinput.Model
	styles    *styles.Styles
}

// NewDateInput creates a new date input component.
func NewDateInput(s *styles.Styles) *DateInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 12
	ti.Focus()

	return &DateInput{
		textinput: ti,
		styles:    s,
	}
}

// Init initialises the date input.
func (d *DateInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (d *DateInput) Update(msg tea.Msg) (*DateInput, tea.Cmd) {
	var cmd tea.Cmd
	d.textinput, cmd = d.textinput.Update(msg)
	return d, cmd
}

// View renders the date prompt.
func (d *DateInput) View() string {
	label := d.styles.Title.Render("Go to date: ")
	field := d.styles.InputField.Render(d.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the raw input.
func (d *DateInput) Value() string {
	return d.textinput.Value()
}

// SetValue sets the input value.
func (d *DateInput) SetValue(value string) {
	d.textinput.SetValue(value)
}

// Date parses the input as a calendar date.
func (d *DateInput) Date() (time.Time, error) {
	return domain.ParseDate(d.textinput.Value())
}

// Focus sets focus on the input.
func (d *DateInput) Focus() tea.Cmd {
	return d.textinput.Focus()
}

// Blur removes focus from the input.
func (d *DateInput) Blur() {
	d.textinput.Blur()
}

// Focused returns whether the input is focused.
func (d *DateInput) Focused() bool {
	return d.textinput.Focused()
}

// Reset clears the input.
func (d *DateInput) Reset() {
	d.textinput.Reset()
}
