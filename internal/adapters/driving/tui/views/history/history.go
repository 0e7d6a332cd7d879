// Package history provides the TUI list of stored menus.
package history

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driving"
	"github.com/custodia-labs/menugen/internal/logger"
)

// ErrNoMenuService indicates that no menu service was provided.
var ErrNoMenuService = errors.New("menu service is required")

// View lists stored menus, newest first.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.MenuList
	statusbar *status.Bar

	menuService driving.MenuService
	ctx         context.Context
	userID      string

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a history view.
func NewView(s *styles.Styles, km *keymap.KeyMap, menuService driving.MenuService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.HistoryHelp())

	return &View{
		styles:      s,
		keymap:      km,
		list:        list.NewMenuList(s),
		statusbar:   bar,
		menuService: menuService,
		ctx:         context.Background(),
		userID:      domain.DefaultUserID,
		width:       80,
		height:      24,
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithUser sets the user whose menus are listed.
func (v *View) WithUser(userID string) *View {
	if userID != "" {
		v.userID = userID
	}
	return v
}

// Init loads the stored menus.
func (v *View) Init() tea.Cmd {
	v.statusbar.SetState(status.StateLoading)
	ctx, svc, user := v.ctx, v.menuService, v.userID
	return func() tea.Msg {
		if svc == nil {
			return messages.HistoryLoaded{Err: ErrNoMenuService}
		}
		menus, err := svc.List(ctx, user)
		return messages.HistoryLoaded{Menus: menus, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.HistoryLoaded:
		if msg.Err != nil {
			logger.Error("listing menus: %v", msg.Err)
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage("could not load menus")
			return v, nil
		}
		v.err = nil
		v.list.SetMenus(msg.Menus)
		v.statusbar.Clear()
		return v, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, v.keymap.Back):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewNav} }
		case keymap.Matches(k, v.keymap.Quit):
			return v, tea.Quit
		case keymap.Matches(k, v.keymap.Select):
			selected := v.list.SelectedMenu()
			if selected == nil {
				return v, nil
			}
			date, err := time.Parse(domain.DateLayout, selected.Date)
			if err != nil {
				return v, nil
			}
			return v, func() tea.Msg { return messages.DateSelected{Date: date} }
		}

		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd
	}

	return v, nil
}

// View renders the history view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	body := v.list.View()
	if v.err != nil {
		body = v.styles.Error.Render("Could not load menus.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("Stored menus"),
		"",
		body,
		"",
		v.statusbar.View(),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	// Title, status bar and spacing take six rows.
	v.list.SetDimensions(width, max(height-6, 1))
	v.statusbar.SetWidth(width)
}

// Count returns the number of listed menus.
func (v *View) Count() int {
	return v.list.Count()
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
