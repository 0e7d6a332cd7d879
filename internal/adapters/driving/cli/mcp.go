package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/menugen/internal/adapters/driving/mcp"
	"github.com/custodia-labs/menugen/internal/core/domain"
	"github.com/custodia-labs/menugen/internal/core/services"
)

var (
	mcpPort int
	mcpHTTP bool
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can generate and
read menus, browse the catalog and size portions.

By default the server speaks JSON-RPC over stdio. Use --http to serve the
streamable HTTP transport instead; the port comes from --port, then the
mcp.port setting, then the first free port from 8750.

Examples:
  # Stdio mode (default, for Claude Desktop)
  menugen mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  menugen mcp serve --http --port 8750

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "menugen": {
        "command": "/path/to/menugen",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (implies --http)")
	mcpServeCmd.Flags().BoolVar(&mcpHTTP, "http", false, "serve streamable HTTP instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if menuService == nil {
		return errors.New("menu service not configured")
	}

	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			settings = *s
		}
	}

	ports := &mcp.Ports{
		Menu:    menuService,
		Profile: profileService,
		Catalog: catalogService,
		Portion: portionService,
	}
	server, err := mcp.NewServer(ports, mcp.Options{
		UserID:            currentUser(),
		RequestsPerSecond: settings.MCP.RequestsPerSecond,
		Burst:             settings.MCP.Burst,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stop := startScheduler(ctx)
	defer stop()

	if mcpPort == 0 && !mcpHTTP {
		return server.Run(ctx)
	}

	port, err := resolveMCPPort(mcpPort, settings.MCP.Port)
	if err != nil {
		return err
	}
	addr := fmt.Sprintf("localhost:%d", port)
	cmd.Printf("MCP server listening on http://%s\n", addr)
	return server.RunHTTP(ctx, addr)
}

// resolveMCPPort picks the flag port, then the configured one, then the
// first free port in services.DefaultMCPPortRange.
func resolveMCPPort(flagPort, configured int) (int, error) {
	switch {
	case flagPort > 0:
		return flagPort, nil
	case configured > 0:
		return configured, nil
	default:
		return services.FindAvailablePort("localhost", services.DefaultMCPPortRange[0], services.DefaultMCPPortRange[1])
	}
}
