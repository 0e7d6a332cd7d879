package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change settings stored in ~/.menugen/config.toml.

Settings from the environment (MENUGEN_USER, MENUGEN_DATA_DIR,
MENUGEN_VERBOSE, MENUGEN_MCP_PORT) take precedence and are not saved.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting. Known keys:

  user.id                   user menus are generated for
  storage.data_dir          database directory (default ~/.menugen/data)
  mcp.port                  HTTP port for 'mcp serve --http' (0 picks one)
  mcp.requests_per_second   generate_menu rate limit
  mcp.burst                 generate_menu burst size
  output.format             table or json
  log.verbose               true or false
  scheduler.enabled         pre-generate upcoming menus in the background
  scheduler.interval        how often to pre-generate, for example 6h
  scheduler.lookahead_days  days ahead to pre-generate`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}
	port := "auto"
	if settings.MCP.Port > 0 {
		port = fmt.Sprintf("%d", settings.MCP.Port)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[User]")
	cmd.Printf("  ID: %s%s\n", settings.User.ID, envMarker("user.id"))
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Data dir: %s%s\n", dataDir, envMarker("storage.data_dir"))
	cmd.Println()

	cmd.Println("[MCP]")
	cmd.Printf("  HTTP port: %s%s\n", port, envMarker("mcp.port"))
	cmd.Printf("  Rate limit: %.2f req/s, burst %d\n", settings.MCP.RequestsPerSecond, settings.MCP.Burst)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format.Description())
	cmd.Printf("  Verbose: %t%s\n", settings.Log.Verbose, envMarker("log.verbose"))
	cmd.Println()

	cmd.Println("[Scheduler]")
	if settings.Scheduler.Enabled {
		cmd.Printf("  Enabled: yes\n")
		cmd.Printf("  Interval: %s\n", settings.Scheduler.Interval)
		cmd.Printf("  Lookahead: %d days\n", settings.Scheduler.LookaheadDays)
	} else {
		cmd.Printf("  Enabled: no\n")
	}

	return nil
}

func envMarker(key string) string {
	if slices.Contains(envOverrides, key) {
		return " (from environment)"
	}
	return ""
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) && verr.Message == "unknown setting" {
			cmd.Println("Known keys:")
			for _, k := range settingsService.Keys() {
				cmd.Printf("  %s\n", k)
			}
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	if slices.Contains(envOverrides, key) {
		cmd.Println("Note: the environment overrides this setting for the current shell.")
	}
	return nil
}
