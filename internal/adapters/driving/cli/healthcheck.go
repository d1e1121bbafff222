package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that the configured SearXNG instance is reachable",
	Long: `Probes the configured SearXNG instance's search endpoint. Exits
non-zero when the instance is unreachable, times out, or rejects the
probe, which makes the command usable from scripts and container
health checks.`,
	RunE: runHealthcheck,
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}

func runHealthcheck(cmd *cobra.Command, _ []string) error {
	if err := searchService.HealthCheck(cmd.Context()); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	cmd.Printf("SearXNG at %s is reachable\n", cfg.BaseURL)
	return nil
}
