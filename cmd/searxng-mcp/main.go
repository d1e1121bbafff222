// Command searxng-mcp serves a web_search MCP tool backed by a local
// SearXNG instance.
package main

import (
	"os"

	"github.com/custodia-labs/searxng-mcp/internal/adapters/driving/cli"
)

func main() {
	// Cobra prints the error; a configuration or transport failure
	// only needs the non-zero exit here.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
