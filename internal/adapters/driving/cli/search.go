package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/searxng-mcp/internal/core/domain"
)

var (
	searchLimit     int
	searchCategory  string
	searchLanguage  string
	searchTimeRange string
	searchPage      int
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a one-shot search against the configured instance",
	Long: `Queries the configured SearXNG instance directly and prints the
results, without going through the MCP transport. Useful for checking
the instance and the adapter's parameter handling.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default 10)")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "search category (general, news, images, ...)")
	searchCmd.Flags().StringVar(&searchLanguage, "language", "", "ISO 639-1 language code or 'all'")
	searchCmd.Flags().StringVar(&searchTimeRange, "time-range", "", "restrict by recency (day, week, month, year)")
	searchCmd.Flags().IntVar(&searchPage, "page", 0, "1-based result page")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := domain.SearchQuery{
		Query:      args[0],
		MaxResults: searchLimit,
		Category:   domain.Category(searchCategory),
		Language:   searchLanguage,
		TimeRange:  domain.TimeRange(searchTimeRange),
		Page:       searchPage,
	}

	response, err := searchService.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, response)
	}

	return outputSearchText(cmd, response)
}

func outputSearchJSON(cmd *cobra.Command, response *domain.SearchResponse) error {
	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchText(cmd *cobra.Command, response *domain.SearchResponse) error {
	if len(response.Results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results for %q:\n", response.Query)
	cmd.Println()
	for i := range response.Results {
		r := response.Results[i]
		cmd.Printf("  [%d] %s\n", i+1, r.Title)
		cmd.Printf("      %s\n", r.URL)
		if r.Content != "" {
			cmd.Printf("      %s\n", r.Content)
		}
		if r.PublishedDate != "" {
			cmd.Printf("      Published: %s\n", r.PublishedDate)
		}
		cmd.Println()
	}

	return nil
}
