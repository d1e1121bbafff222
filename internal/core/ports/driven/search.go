package driven

import (
	"context"

	"github.com/custodia-labs/searxng-mcp/internal/core/domain"
)

// SearchEngine is the outbound port to the upstream metasearch engine.
// Implementations receive already-validated queries and map transport
// failures onto the domain error taxonomy (ErrConnection, ErrTimeout,
// ErrMalformedResponse).
type SearchEngine interface {
	// Search issues one upstream query and returns the parsed
	// response, truncated to query.MaxResults, in upstream order.
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error)

	// HealthCheck probes the engine's search endpoint.
	HealthCheck(ctx context.Context) error
}
