package driving

import (
	"context"

	"github.com/custodia-labs/searxng-mcp/internal/core/domain"
)

// SearchService provides web search capabilities to external actors.
type SearchService interface {
	// Search validates the query and forwards it to the upstream
	// metasearch engine. Validation failures are reported as
	// domain.ValidationError before any network call is made.
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error)

	// HealthCheck reports whether the upstream engine is reachable.
	HealthCheck(ctx context.Context) error
}
