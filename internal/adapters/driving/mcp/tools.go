package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/searxng-mcp/internal/core/domain"
)

// snippetLimit truncates very long content snippets in rendered text.
const snippetLimit = 300

// WebSearchInput is the input schema for the web_search tool.
type WebSearchInput struct {
	Query      string `json:"query" jsonschema:"the search query to execute"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 10, bounded by the configured limit)"`
	Category   string `json:"category,omitempty" jsonschema:"search category, one of: general, news, images, videos, files, science, map, music, it"`
	Language   string `json:"language,omitempty" jsonschema:"ISO 639-1 language code (e.g. 'en', 'de', 'en-US') or 'all'"`
	TimeRange  string `json:"time_range,omitempty" jsonschema:"restrict results by recency, one of: day, week, month, year"`
	Page       int    `json:"page,omitempty" jsonschema:"1-based result page (default 1)"`
}

// WebSearchOutput is the output schema for the web_search tool.
type WebSearchOutput struct {
	Query   string            `json:"query"`
	Results []WebSearchResult `json:"results"`
	Count   int               `json:"count"`
}

// WebSearchResult represents a single search result.
type WebSearchResult struct {
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Content       string   `json:"content"`
	PublishedDate string   `json:"published_date,omitempty"`
	Engines       []string `json:"engines,omitempty"`
	Category      string   `json:"category,omitempty"`
	Score         float64  `json:"score,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "web_search",
		Description: "Search the web using SearXNG, a privacy-focused metasearch engine. " +
			"Returns relevant search results including titles, URLs, and content snippets. " +
			"Supports filtering by category, language, and time range.",
	}, s.handleWebSearch)
}

// handleWebSearch handles the web_search tool invocation.
// Failures are reported as tool results with IsError set, never as
// protocol-level errors, so the calling agent can react to them.
func (s *Server) handleWebSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input WebSearchInput,
) (*mcp.CallToolResult, WebSearchOutput, error) {
	query := domain.SearchQuery{
		Query:      input.Query,
		MaxResults: input.MaxResults,
		Category:   domain.Category(input.Category),
		Language:   input.Language,
		TimeRange:  domain.TimeRange(input.TimeRange),
		Page:       input.Page,
	}

	response, err := s.ports.Search.Search(ctx, query)
	if err != nil {
		return failureResult(err), WebSearchOutput{}, nil
	}

	output := WebSearchOutput{
		Query:   response.Query,
		Results: make([]WebSearchResult, len(response.Results)),
		Count:   response.NumberOfResults,
	}
	for i := range response.Results {
		output.Results[i] = WebSearchResult{
			Title:         response.Results[i].Title,
			URL:           response.Results[i].URL,
			Content:       response.Results[i].Content,
			PublishedDate: response.Results[i].PublishedDate,
			Engines:       response.Results[i].Engines,
			Category:      response.Results[i].Category,
			Score:         response.Results[i].Score,
		}
	}

	return &mcp.CallToolResult{Content: renderResults(response)}, output, nil
}

// failureResult converts a domain error into a failure tool response
// with a human-readable message.
func failureResult(err error) *mcp.CallToolResult {
	var msg string

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		msg = "Invalid request: " + verr.Error()
	case errors.Is(err, domain.ErrTimeout):
		msg = "Search request timed out: " + err.Error()
	case errors.Is(err, domain.ErrConnection):
		msg = "Failed to connect to SearXNG: " + err.Error() +
			". Please ensure the instance is running."
	case errors.Is(err, domain.ErrMalformedResponse):
		msg = "SearXNG returned an invalid response: " + err.Error()
	default:
		msg = "Search failed: " + err.Error()
	}

	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

// renderResults renders the response as one summary block followed by
// one text block per result. Every result field survives the rendering.
func renderResults(response *domain.SearchResponse) []mcp.Content {
	if len(response.Results) == 0 {
		return []mcp.Content{&mcp.TextContent{
			Text: fmt.Sprintf("No results found for query: %s", response.Query),
		}}
	}

	content := make([]mcp.Content, 0, len(response.Results)+1)
	content = append(content, &mcp.TextContent{
		Text: fmt.Sprintf("Search results for: %s\nFound %d results",
			response.Query, response.NumberOfResults),
	})

	for i, r := range response.Results {
		content = append(content, &mcp.TextContent{Text: renderResult(i+1, r)})
	}

	return content
}

func renderResult(position int, r domain.SearchResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d. %s\n", position, r.Title)
	fmt.Fprintf(&b, "   URL: %s", r.URL)

	if r.Content != "" {
		fmt.Fprintf(&b, "\n   %s", truncateSnippet(r.Content))
	}
	if r.PublishedDate != "" {
		fmt.Fprintf(&b, "\n   Published: %s", r.PublishedDate)
	}
	if len(r.Engines) > 0 {
		fmt.Fprintf(&b, "\n   Sources: %s", strings.Join(r.Engines, ", "))
	}

	return b.String()
}

// truncateSnippet shortens content to at most snippetLimit bytes,
// backing up to a rune boundary so the cut never splits a multibyte
// character.
func truncateSnippet(content string) string {
	if len(content) <= snippetLimit {
		return content
	}

	cut := snippetLimit
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + "..."
}
