// Package cli implements the cobra command tree for the adapter.
// Commands share one process-wide configuration and search service,
// wired once before the first command runs.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/searxng-mcp/internal/adapters/driven/searxng"
	"github.com/custodia-labs/searxng-mcp/internal/config"
	"github.com/custodia-labs/searxng-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/searxng-mcp/internal/core/services"
	"github.com/custodia-labs/searxng-mcp/internal/logger"
)

// version is the CLI version string.
const version = "0.1.0"

var (
	cfgFile string
	verbose bool

	// cfg and searchService are wired by initialize. Tests may
	// pre-set them to inject fakes.
	cfg           *config.Config
	searchService driving.SearchService
)

var rootCmd = &cobra.Command{
	Use:   "searxng-mcp",
	Short: "MCP server for web search via a local SearXNG instance",
	Long: `searxng-mcp exposes a web_search tool over the Model Context Protocol,
backed by a locally running SearXNG metasearch instance.

Configuration comes from environment variables (SEARXNG_BASE_URL,
SEARXNG_TIMEOUT, LOG_LEVEL, MAX_RESULTS_LIMIT) or an optional TOML file;
see the serve command for wiring it into an MCP client.`,
	SilenceUsage:      true,
	PersistentPreRunE: initialize,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"path to config file (default ~/.config/searxng-mcp/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

// initialize loads configuration and wires the search service.
// A configuration value that fails coercion is fatal: the returned
// error stops the command before anything is served.
func initialize(_ *cobra.Command, _ []string) error {
	if cfg == nil {
		c, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cfg = c
	}

	if verbose {
		logger.SetLevel(logger.LevelDebug)
	} else {
		logger.SetLevel(cfg.LogLevel)
	}

	if searchService == nil {
		client := searxng.NewClient(cfg)
		searchService = services.NewSearchService(client, cfg.MaxResultsLimit)
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
