// Package day provides the TUI view of one day's menu.
package day

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/menugen/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/ports/driving"
	"github.com/custodia-labs/menugen/internal/logger"
)

const barWidth = 24

var titleCaser = cases.Title(language.English)

// View shows the menu stored for one date against the user's targets.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar
	prompt    *input.DateInput

	menuService    driving.MenuService
	profileService driving.ProfileService
	ctx            context.Context
	userID         string

	date       time.Time
	menu       *domain.GeneratedMenu
	targets    domain.MacroVector
	hasTargets bool
	loading    bool
	prompting  bool
	err        error

	width  int
	height int
	ready  bool
}

// NewView creates a day view. profileService may be nil, in which case
// no targets are shown.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	menuService driving.MenuService,
	profileService driving.ProfileService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.DayHelp())

	return &View{
		styles:         s,
		keymap:         km,
		statusbar:      bar,
		prompt:         input.NewDateInput(s),
		menuService:    menuService,
		profileService: profileService,
		ctx:            context.Background(),
		userID:         domain.DefaultUserID,
		date:           domain.Today(),
		width:          80,
		height:         24,
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithUser sets the user whose menus are shown.
func (v *View) WithUser(userID string) *View {
	if userID != "" {
		v.userID = userID
	}
	return v
}

// Init loads the current date and the user's targets.
func (v *View) Init() tea.Cmd {
	return v.Open(v.date)
}

// Open moves to date and reloads the targets, which may have changed
// since the view was last shown.
func (v *View) Open(date time.Time) tea.Cmd {
	return tea.Batch(v.SetDate(date), v.loadTargets())
}

// SetDate moves the view to date and starts loading its menu.
func (v *View) SetDate(date time.Time) tea.Cmd {
	v.date = date
	v.menu = nil
	v.err = nil
	v.loading = true
	v.statusbar.SetState(status.StateLoading)
	v.statusbar.SetMessage("")
	return v.load(date)
}

// Update handles messages for the day view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.prompting {
			return v.handlePromptKey(msg)
		}
		return v.handleKey(msg)

	case messages.MenuLoaded:
		v.handleMenuLoaded(msg)
		return v, nil

	case messages.TargetsLoaded:
		v.targets = msg.Targets
		v.hasTargets = msg.OK
		return v, nil

	case messages.ErrorOccurred:
		v.showError(msg.Err)
		return v, nil
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Back):
		return v, changeView(messages.ViewNav)
	case keymap.Matches(k, v.keymap.Quit):
		return v, tea.Quit
	case keymap.Matches(k, v.keymap.Help):
		return v, changeView(messages.ViewHelp)
	case keymap.Matches(k, v.keymap.History):
		return v, changeView(messages.ViewHistory)
	case keymap.Matches(k, v.keymap.PrevDay):
		return v, v.SetDate(v.date.AddDate(0, 0, -1))
	case keymap.Matches(k, v.keymap.NextDay):
		return v, v.SetDate(v.date.AddDate(0, 0, 1))
	case keymap.Matches(k, v.keymap.Today):
		return v, v.SetDate(domain.Today())
	case keymap.Matches(k, v.keymap.GoTo):
		v.prompting = true
		v.prompt.Reset()
		return v, v.prompt.Focus()
	case keymap.Matches(k, v.keymap.Generate):
		return v, v.generate(false)
	case keymap.Matches(k, v.keymap.Regenerate):
		return v, v.generate(true)
	}
	return v, nil
}

func (v *View) handlePromptKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // only enter and esc leave the prompt
	switch msg.Type {
	case tea.KeyEsc:
		v.prompting = false
		v.prompt.Blur()
		return v, nil
	case tea.KeyEnter:
		date, err := v.prompt.Date()
		if err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(err.Error())
			return v, nil
		}
		v.prompting = false
		v.prompt.Blur()
		return v, v.SetDate(date)
	}

	var cmd tea.Cmd
	v.prompt, cmd = v.prompt.Update(msg)
	return v, cmd
}

func (v *View) handleMenuLoaded(msg messages.MenuLoaded) {
	// A response for a date the user already left.
	if !msg.Date.Equal(v.date) {
		return
	}
	v.loading = false

	if msg.Err != nil {
		v.showError(msg.Err)
		return
	}

	v.err = nil
	v.menu = msg.Menu
	v.statusbar.Clear()
	if msg.Generated && msg.Menu != nil {
		v.statusbar.SetMessage("Generated menu for " + msg.Menu.Date)
	}
}

func (v *View) showError(err error) {
	text, public := domain.PublicMessage(err)
	if !public {
		logger.Error("menu for %s: %v", domain.FormatDate(v.date), err)
	}
	v.err = errors.New(text)
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(text)
}

func (v *View) load(date time.Time) tea.Cmd {
	ctx, svc, user := v.ctx, v.menuService, v.userID
	return func() tea.Msg {
		if svc == nil {
			return messages.MenuLoaded{Date: date, Err: ErrNoMenuService}
		}
		menu, err := svc.Get(ctx, user, date)
		if errors.Is(err, domain.ErrNotFound) {
			return messages.MenuLoaded{Date: date}
		}
		return messages.MenuLoaded{Date: date, Menu: menu, Err: err}
	}
}

func (v *View) generate(regenerate bool) tea.Cmd {
	if v.loading {
		return nil
	}
	v.loading = true
	v.statusbar.SetState(status.StateGenerating)

	ctx, svc, user, date := v.ctx, v.menuService, v.userID, v.date
	return func() tea.Msg {
		if svc == nil {
			return messages.MenuLoaded{Date: date, Err: ErrNoMenuService}
		}
		var (
			menu *domain.GeneratedMenu
			err  error
		)
		if regenerate {
			menu, err = svc.Regenerate(ctx, user, date)
		} else {
			menu, err = svc.Generate(ctx, user, date)
		}
		return messages.MenuLoaded{Date: date, Menu: menu, Generated: err == nil, Err: err}
	}
}

func (v *View) loadTargets() tea.Cmd {
	ctx, svc, user := v.ctx, v.profileService, v.userID
	return func() tea.Msg {
		if svc == nil {
			return messages.TargetsLoaded{}
		}
		profile, err := svc.Get(ctx, user)
		if err != nil {
			return messages.TargetsLoaded{}
		}
		targets, ok := profile.DailyTargets()
		return messages.TargetsLoaded{Targets: targets, OK: ok}
	}
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}

// View renders the day view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 16)
	title := fmt.Sprintf("Menu for %s (%s)", domain.FormatDate(v.date), v.date.Weekday())
	sections = append(sections, v.styles.Title.Render(title), "")

	if v.prompting {
		sections = append(sections, v.prompt.View(), "")
	}

	switch {
	case v.loading && v.menu == nil:
		sections = append(sections, v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render(v.err.Error()))
	case v.menu == nil:
		sections = append(sections, v.styles.Muted.Render(
			fmt.Sprintf("No menu for %s. Press g to generate.", domain.FormatDate(v.date))))
	default:
		sections = append(sections, v.renderMenu()...)
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderMenu() []string {
	out := make([]string, 0, len(v.menu.Meals)*2+6)
	for _, meal := range v.menu.Meals {
		header := fmt.Sprintf("%s  %.0f kcal", titleCaser.String(meal.Type.String()), meal.Totals.Calories)
		out = append(out, v.styles.MealHeader.Render(header), v.renderMeal(meal.Items))
	}
	out = append(out, "")
	out = append(out, v.renderTotals()...)
	return out
}

func (v *View) renderMeal(items []domain.MealItem) string {
	rows := make([][]string, 0, len(items))
	for i := range items {
		rows = append(rows, []string{
			items[i].Food.Name,
			fmt.Sprintf("%.0f g", items[i].Grams),
			fmt.Sprintf("%.0f", items[i].Calories),
			fmt.Sprintf("%.1f", items[i].Protein),
			fmt.Sprintf("%.1f", items[i].Carbs),
			fmt.Sprintf("%.1f", items[i].Fat),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(v.styles.Border).
		BorderColumn(false).
		Headers("Food", "Portion", "kcal", "P", "C", "F").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return v.styles.Subtitle
			case col == 0:
				return v.styles.Cell
			default:
				return v.styles.Number
			}
		}).
		String()
}

func (v *View) renderTotals() []string {
	totals := v.menu.Totals
	if !v.hasTargets {
		return []string{v.styles.Normal.Render(fmt.Sprintf(
			"Total  %.0f kcal  P %.1f g  C %.1f g  F %.1f g",
			totals.Calories, totals.Protein, totals.Carbs, totals.Fat))}
	}

	line := func(label string, style lipgloss.Style, actual, target float64, unit string) string {
		return fmt.Sprintf("%-9s %s %5.0f / %.0f %s",
			label, v.styles.Bar(style, actual, target, barWidth), actual, target, unit)
	}
	return []string{
		line("Calories", v.styles.Normal, totals.Calories, v.targets.Calories, "kcal"),
		line("Protein", v.styles.Protein, totals.Protein, v.targets.Protein, "g"),
		line("Carbs", v.styles.Carbs, totals.Carbs, v.targets.Carbs, "g"),
		line("Fat", v.styles.Fat, totals.Fat, v.targets.Fat, "g"),
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Date returns the date being shown.
func (v *View) Date() time.Time {
	return v.date
}

// Menu returns the loaded menu, or nil when none is stored.
func (v *View) Menu() *domain.GeneratedMenu {
	return v.menu
}

// Err returns the error being shown, if any.
func (v *View) Err() error {
	return v.err
}

// Prompting reports whether the date prompt is open.
func (v *View) Prompting() bool {
	return v.prompting
}

// Status returns the status bar, for inspection in tests.
func (v *View) Status() *status.Bar {
	return v.statusbar
}
