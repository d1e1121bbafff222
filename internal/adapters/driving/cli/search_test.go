package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/searxng-mcp/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices(&mockSearchService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_ExecutesWithQuery(t *testing.T) {
	mock := &mockSearchService{response: defaultMockResults()}
	cleanup := setupTestServices(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "test query"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 1, mock.calls)
	assert.Equal(t, "test query", mock.lastQuery.Query)
	assert.Contains(t, buf.String(), "First Result")
	assert.Contains(t, buf.String(), "https://example.com/second")
	assert.Contains(t, buf.String(), "Published: 2024-01-01")
}

func TestSearchCmd_PassesFlags(t *testing.T) {
	mock := &mockSearchService{response: defaultMockResults()}
	cleanup := setupTestServices(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"search", "test query",
		"--limit", "5",
		"--category", "news",
		"--language", "de",
		"--time-range", "week",
		"--page", "2",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		searchLimit, searchCategory, searchLanguage, searchTimeRange, searchPage = 0, "", "", "", 0
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, domain.SearchQuery{
		Query:      "test query",
		MaxResults: 5,
		Category:   domain.CategoryNews,
		Language:   "de",
		TimeRange:  domain.TimeRangeWeek,
		Page:       2,
	}, mock.lastQuery)
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	mock := &mockSearchService{response: defaultMockResults()}
	cleanup := setupTestServices(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "test query", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchJSON = false
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	var response domain.SearchResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &response))
	assert.Equal(t, 2, response.NumberOfResults)
	assert.Equal(t, "First Result", response.Results[0].Title)
}

func TestSearchCmd_ReportsServiceError(t *testing.T) {
	mock := &mockSearchService{err: domain.ErrConnection}
	cleanup := setupTestServices(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "test query"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConnection)
}

func TestSearchCmd_NoResults(t *testing.T) {
	mock := &mockSearchService{response: &domain.SearchResponse{Query: "nothing"}}
	cleanup := setupTestServices(mock)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "nothing"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No results found.")
}
