package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/searxng-mcp/internal/config"
	"github.com/custodia-labs/searxng-mcp/internal/core/domain"
	"github.com/custodia-labs/searxng-mcp/internal/logger"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	calls     int
	lastQuery domain.SearchQuery
	response  *domain.SearchResponse
	err       error
	healthErr error
}

func (m *mockSearchService) Search(_ context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	m.calls++
	m.lastQuery = query
	return m.response, m.err
}

func (m *mockSearchService) HealthCheck(_ context.Context) error {
	m.calls++
	return m.healthErr
}

// setupTestServices injects a mock search service and a fixed config
// so commands run without touching the environment or the network.
// The returned cleanup restores the uninitialised state.
func setupTestServices(mock *mockSearchService) func() {
	cfg = &config.Config{
		BaseURL:         "http://localhost:8080",
		Timeout:         10 * time.Second,
		LogLevel:        logger.LevelInfo,
		MaxResultsLimit: 50,
	}
	searchService = mock

	return func() {
		cfg = nil
		searchService = nil
	}
}

// defaultMockResults is a small canned response for command tests.
func defaultMockResults() *domain.SearchResponse {
	return &domain.SearchResponse{
		Query: "test query",
		Results: []domain.SearchResult{
			{
				Title:   "First Result",
				URL:     "https://example.com/first",
				Content: "A snippet about the first result",
			},
			{
				Title:         "Second Result",
				URL:           "https://example.com/second",
				Content:       "Another snippet",
				PublishedDate: "2024-01-01",
			},
		},
		NumberOfResults: 2,
	}
}
