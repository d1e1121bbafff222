// Package mcp provides the MCP (Model Context Protocol) server adapter.
// It exposes web search over a local SearXNG instance to AI assistants
// as a single web_search tool.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
