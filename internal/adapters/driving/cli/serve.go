package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/searxng-mcp/internal/adapters/driving/mcp"
	"github.com/custodia-labs/searxng-mcp/internal/logger"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  searxng-mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  searxng-mcp serve --port 3000

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "searxng": {
        "command": "/path/to/searxng-mcp",
        "args": ["serve"],
        "env": {
          "SEARXNG_BASE_URL": "http://localhost:8080"
        }
      }
    }
  }`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP port (0 = use stdio)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{
		Search: searchService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	logger.Info("starting MCP server (instance: %s, max results: %d)",
		cfg.BaseURL, cfg.MaxResultsLimit)

	if servePort > 0 {
		addr := fmt.Sprintf(":%d", servePort)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
