package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/views/day"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/views/nav"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	navView     *nav.View
	dayView     *day.View
	historyView *history.View

	// startDate, when set, opens the day view directly.
	startDate *time.Time

	currentView messages.ViewType

	// previousView is restored when help is closed.
	previousView messages.ViewType

	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	h := help.New()
	h.ShowAll = true

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		help:        h,
		navView:     nav.NewView(s, km),
		dayView:     day.NewView(s, km, ports.Menu, ports.Profile),
		historyView: history.NewView(s, km, ports.Menu),
		currentView: messages.ViewNav,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.dayView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// WithUser sets the user whose menus are shown.
func (a *App) WithUser(userID string) *App {
	a.dayView.WithUser(userID)
	a.historyView.WithUser(userID)
	return a
}

// WithDate opens the app on the day view for date instead of the start screen.
func (a *App) WithDate(date time.Time) *App {
	a.startDate = &date
	a.currentView = messages.ViewDay
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("menugen")}
	if a.startDate != nil {
		cmds = append(cmds, a.dayView.Open(*a.startDate))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.routeKey(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.DateSelected:
		a.currentView = messages.ViewDay
		return a, a.dayView.Open(msg.Date)

	case messages.MenuLoaded, messages.TargetsLoaded:
		a.dayView, cmd = a.dayView.Update(msg)
		return a, cmd

	case messages.HistoryLoaded:
		a.err = msg.Err
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewDay {
			a.dayView, cmd = a.dayView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) routeKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewNav:
		a.navView, cmd = a.navView.Update(msg)
	case messages.ViewDay:
		a.dayView, cmd = a.dayView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewHelp:
		k := msg.String()
		switch {
		case keymap.Matches(k, a.keymap.Back), keymap.Matches(k, a.keymap.Help):
			a.currentView = a.previousView
		case keymap.Matches(k, a.keymap.Quit):
			return tea.Quit
		}
	}
	return cmd
}

func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	if view == messages.ViewHelp {
		if a.currentView != messages.ViewHelp {
			a.previousView = a.currentView
		}
		a.currentView = view
		return nil
	}

	a.currentView = view
	switch view {
	case messages.ViewHistory:
		return a.historyView.Init()
	case messages.ViewDay:
		return a.dayView.Init()
	case messages.ViewNav, messages.ViewHelp:
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewDay:
		return a.dayView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.navView.View()
	}
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keymap.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Muted.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.navView.SetDimensions(width, height)
	a.dayView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
}
