package mcp

import (
	"context"

	"github.com/custodia-labs/searxng-mcp/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	calls     int
	lastQuery domain.SearchQuery
	response  *domain.SearchResponse
	err       error
	healthErr error
}

func (m *mockSearchService) Search(
	_ context.Context,
	query domain.SearchQuery,
) (*domain.SearchResponse, error) {
	m.calls++
	m.lastQuery = query
	return m.response, m.err
}

func (m *mockSearchService) HealthCheck(_ context.Context) error {
	return m.healthErr
}
