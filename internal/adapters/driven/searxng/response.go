package searxng

import (
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/searxng-mcp/internal/core/domain"
	"github.com/custodia-labs/searxng-mcp/internal/logger"
)

// wireResponse models the relevant portion of the SearXNG JSON payload.
// Results stays raw so a payload without the array can be told apart
// from one with an empty array.
type wireResponse struct {
	Query   string          `json:"query"`
	Results json.RawMessage `json:"results"`
}

// wireResult is one entry of the results array. Content is a pointer
// so an entry without the content key can be told apart from one with
// an empty snippet; only the former is skipped.
type wireResult struct {
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Content       *string  `json:"content"`
	PublishedDate string   `json:"publishedDate"`
	Engines       []string `json:"engines"`
	Category      string   `json:"category"`
	Score         float64  `json:"score"`
}

// parseResponse decodes the upstream body into a SearchResponse,
// skipping entries missing required fields and truncating to the
// query's effective result count. Upstream order is preserved.
func parseResponse(body []byte, query domain.SearchQuery) (*domain.SearchResponse, error) {
	var wire wireResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: upstream payload is not valid JSON", domain.ErrMalformedResponse)
	}

	if wire.Results == nil {
		return nil, fmt.Errorf("%w: upstream payload has no results array", domain.ErrMalformedResponse)
	}

	var entries []wireResult
	if err := json.Unmarshal(wire.Results, &entries); err != nil {
		return nil, fmt.Errorf("%w: results is not an array of result objects", domain.ErrMalformedResponse)
	}

	limit := query.MaxResults
	if limit <= 0 {
		limit = domain.DefaultMaxResults
	}

	results := make([]domain.SearchResult, 0, min(limit, len(entries)))
	for _, e := range entries {
		if len(results) >= limit {
			break
		}
		if e.Title == "" || e.URL == "" || e.Content == nil {
			logger.Warn("skipping result with missing required fields (url=%q)", e.URL)
			continue
		}
		results = append(results, domain.SearchResult{
			Title:         e.Title,
			URL:           e.URL,
			Content:       *e.Content,
			PublishedDate: e.PublishedDate,
			Engines:       e.Engines,
			Category:      e.Category,
			Score:         e.Score,
		})
	}

	echoed := wire.Query
	if echoed == "" {
		echoed = query.Query
	}

	return &domain.SearchResponse{
		Query:           echoed,
		Results:         results,
		NumberOfResults: len(results),
	}, nil
}
