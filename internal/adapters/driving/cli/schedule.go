package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menugen/internal/logger"
)

var scheduleLimit int

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Pre-generate upcoming menus",
	Long: `The scheduler generates menus for the next days ahead of time so they are
ready when asked for. It runs in the background during 'mcp serve' and
'view' when scheduler.enabled is true, and can be run by hand.`,
}

var scheduleRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate any missing menus in the lookahead window now",
	Args:  cobra.NoArgs,
	RunE:  runScheduleRun,
}

var scheduleHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent pre-generation runs",
	Args:  cobra.NoArgs,
	RunE:  runScheduleHistory,
}

func init() {
	scheduleHistoryCmd.Flags().IntVarP(&scheduleLimit, "limit", "n", 10, "maximum number of runs")
	scheduleCmd.AddCommand(scheduleRunCmd)
	scheduleCmd.AddCommand(scheduleHistoryCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func runScheduleRun(cmd *cobra.Command, _ []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}

	scheduler.SetUser(currentUser())
	result, err := scheduler.RunOnce(cmd.Context())
	if result != nil {
		cmd.Printf("Generated %d menus in %s\n", result.MenusGenerated, result.Duration().Round(time.Millisecond))
	}
	if err != nil {
		return fmt.Errorf("pre-generation failed: %w", err)
	}
	return nil
}

func runScheduleHistory(cmd *cobra.Command, _ []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}

	results, err := scheduler.History(cmd.Context(), scheduleLimit)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}
	if len(results) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	rows := make([][]string, 0, len(results))
	for i := range results {
		r := &results[i]
		status := "ok"
		if !r.Success {
			status = r.Error
		}
		rows = append(rows, []string{
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", r.MenusGenerated),
			r.Duration().Round(time.Millisecond).String(),
			status,
		})
	}
	renderTable(cmd, []string{"Started", "Menus", "Took", "Status"}, rows, 1, 2)
	return nil
}

// startScheduler runs the scheduler in the background when it is enabled
// in settings. The returned function stops it and waits for it to exit.
func startScheduler(ctx context.Context) (stop func()) {
	if scheduler == nil || settingsService == nil {
		return func() {}
	}
	settings, err := settingsService.Get()
	if err != nil || !settings.Scheduler.Enabled {
		return func() {}
	}

	scheduler.SetUser(currentUser())
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := scheduler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("scheduler stopped: %v", err)
		}
	}()

	return func() {
		if err := scheduler.Stop(); err != nil {
			logger.Warn("scheduler stop: %v", err)
		}
		cancel()
		<-done
	}
}
