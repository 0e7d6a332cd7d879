package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menugen/internal/adapters/driving/tui"
	"github.com/custodia-labs/menugen/internal/logger"
)

var viewDate string

var viewCmd = &cobra.Command{
	Use:     "view",
	Aliases: []string{"tui"},
	Short:   "Browse menus in an interactive terminal UI",
	Long: `Open the interactive viewer. Step through days, generate or regenerate
the menu for the day shown, and browse stored menus.

Controls:
  ←/h, →/l - Previous / next day
  t        - Today
  /        - Go to a date
  g, r     - Generate / regenerate
  m        - Stored menus
  ?        - Help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVarP(&viewDate, "date", "d", "", "open on this day (YYYY-MM-DD)")
	rootCmd.AddCommand(viewCmd)
}

// newViewApp builds the TUI for the current user.
func newViewApp(cmd *cobra.Command) (*tui.App, error) {
	if menuService == nil {
		return nil, errors.New("menu service not configured")
	}

	app, err := tui.NewApp(tui.NewPorts(menuService, profileService))
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app.WithContext(ctx).WithUser(currentUser())

	if viewDate != "" {
		day, err := parseDayArg(viewDate)
		if err != nil {
			return nil, err
		}
		app.WithDate(day)
	}
	return app, nil
}

func runView(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newViewApp(cmd)
	if err != nil {
		return err
	}

	// Log lines would corrupt the alternate screen; hold them until exit.
	var held bytes.Buffer
	logger.SetOutput(&held)
	defer func() {
		logger.SetOutput(os.Stderr)
		_, _ = held.WriteTo(os.Stderr)
	}()

	stop := startScheduler(cmd.Context())
	defer stop()

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
