package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/custodia-labs/searxng-mcp/internal/core/domain"
	"github.com/custodia-labs/searxng-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/searxng-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/searxng-mcp/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService validates queries and forwards them to the upstream
// search engine. It owns the configured result ceiling; the engine
// only ever sees queries whose limits are already effective.
type SearchService struct {
	engine          driven.SearchEngine
	maxResultsLimit int
}

// NewSearchService creates a search service bound to an engine and
// the configured per-query result ceiling.
func NewSearchService(engine driven.SearchEngine, maxResultsLimit int) *SearchService {
	return &SearchService{
		engine:          engine,
		maxResultsLimit: maxResultsLimit,
	}
}

// Search validates the query, applies defaults, and delegates to the
// engine. Validation failures never reach the network.
func (s *SearchService) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	if err := query.Validate(s.maxResultsLimit); err != nil {
		logger.Debug("rejected query: %v", err)
		return nil, err
	}

	if query.MaxResults == 0 {
		query.MaxResults = min(domain.DefaultMaxResults, s.maxResultsLimit)
	}
	if query.Page == 0 {
		query.Page = 1
	}

	reqID := uuid.NewString()
	logger.Debug("[%s] search query=%q max_results=%d category=%q language=%q time_range=%q page=%d",
		reqID, query.Query, query.MaxResults, query.Category, query.Language, query.TimeRange, query.Page)

	response, err := s.engine.Search(ctx, query)
	if err != nil {
		logger.Debug("[%s] search failed: %v", reqID, err)
		return nil, err
	}

	logger.Info("[%s] %d results for %q", reqID, response.NumberOfResults, query.Query)
	return response, nil
}

// HealthCheck reports whether the upstream engine is reachable.
func (s *SearchService) HealthCheck(ctx context.Context) error {
	return s.engine.HealthCheck(ctx)
}
