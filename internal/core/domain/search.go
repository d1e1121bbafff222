package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Category identifies a SearXNG search category.
type Category string

const (
	CategoryGeneral Category = "general"
	CategoryNews    Category = "news"
	CategoryImages  Category = "images"
	CategoryVideos  Category = "videos"
	CategoryFiles   Category = "files"
	CategoryScience Category = "science"
	CategoryMap     Category = "map"
	CategoryMusic   Category = "music"
	CategoryIT      Category = "it"
)

// TimeRange restricts results to a recency window.
type TimeRange string

const (
	TimeRangeDay   TimeRange = "day"
	TimeRangeWeek  TimeRange = "week"
	TimeRangeMonth TimeRange = "month"
	TimeRangeYear  TimeRange = "year"
)

// LanguageAll disables upstream language filtering.
const LanguageAll = "all"

// DefaultMaxResults is applied when a query does not request a count.
const DefaultMaxResults = 10

var validCategories = map[Category]bool{
	CategoryGeneral: true,
	CategoryNews:    true,
	CategoryImages:  true,
	CategoryVideos:  true,
	CategoryFiles:   true,
	CategoryScience: true,
	CategoryMap:     true,
	CategoryMusic:   true,
	CategoryIT:      true,
}

var validTimeRanges = map[TimeRange]bool{
	TimeRangeDay:   true,
	TimeRangeWeek:  true,
	TimeRangeMonth: true,
	TimeRangeYear:  true,
}

// Categories returns the accepted category values, sorted.
func Categories() []string {
	out := make([]string, 0, len(validCategories))
	for c := range validCategories {
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}

// TimeRanges returns the accepted time range values in window order.
func TimeRanges() []string {
	return []string{
		string(TimeRangeDay),
		string(TimeRangeWeek),
		string(TimeRangeMonth),
		string(TimeRangeYear),
	}
}

// SearchQuery is a validated web search request.
// Zero values for optional fields mean "unset".
type SearchQuery struct {
	// Query is the search text. Required, non-empty after trimming.
	Query string

	// MaxResults is the requested result count. Must lie in
	// [1, the configured ceiling]. Zero means DefaultMaxResults.
	MaxResults int

	// Category restricts the search to one SearXNG category.
	Category Category

	// Language is an ISO 639-1 code ("en", "de"), optionally with a
	// region subtag ("en-US"), or LanguageAll.
	Language string

	// TimeRange restricts results to a recency window.
	TimeRange TimeRange

	// Page is the 1-based result page. Zero means page 1.
	Page int
}

// Validate checks the query against the given result ceiling.
// It returns a *ValidationError naming the first offending field,
// or nil. Queries that fail validation must never reach the network.
func (q SearchQuery) Validate(maxResultsLimit int) error {
	if strings.TrimSpace(q.Query) == "" {
		return NewValidationError("query", "must be a non-empty string")
	}

	if q.MaxResults != 0 && (q.MaxResults < 1 || q.MaxResults > maxResultsLimit) {
		return NewValidationError("max_results",
			fmt.Sprintf("must be between 1 and %d, got %d", maxResultsLimit, q.MaxResults))
	}

	if q.Category != "" && !validCategories[q.Category] {
		return NewValidationError("category",
			fmt.Sprintf("%q is not one of: %s", q.Category, strings.Join(Categories(), ", ")))
	}

	if q.Language != "" && !validLanguage(q.Language) {
		return NewValidationError("language",
			fmt.Sprintf("%q is not an ISO 639-1 code (e.g. \"en\", \"de\", \"en-US\") or %q", q.Language, LanguageAll))
	}

	if q.TimeRange != "" && !validTimeRanges[q.TimeRange] {
		return NewValidationError("time_range",
			fmt.Sprintf("%q is not one of: %s", q.TimeRange, strings.Join(TimeRanges(), ", ")))
	}

	if q.Page < 0 {
		return NewValidationError("page", "must be 1 or greater")
	}

	return nil
}

// validLanguage accepts LanguageAll, a two-letter lowercase code, or a
// two-letter code with an uppercase two-letter region ("en-US").
// Codes are checked for shape only; SearXNG decides whether it knows them.
func validLanguage(lang string) bool {
	if lang == LanguageAll {
		return true
	}

	base, region, hasRegion := strings.Cut(lang, "-")
	if len(base) != 2 || !isLowerAlpha(base) {
		return false
	}
	if !hasRegion {
		return true
	}
	return len(region) == 2 && isUpperAlpha(region)
}

func isLowerAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// SearchResult is one normalized engine result. Results have no
// identity beyond their position and live only for one response.
type SearchResult struct {
	// Title of the result page.
	Title string

	// URL of the result page.
	URL string

	// Content is the snippet/description returned by the engine.
	Content string

	// PublishedDate is the publication date, when the engine knows it.
	PublishedDate string

	// Engines lists the upstream engines that produced this result.
	Engines []string

	// Category is the engine-reported category, when present.
	Category string

	// Score is the engine's relevance score, when present.
	Score float64
}

// SearchResponse is the ordered result set for one request.
// Order is the upstream engine's ranking; the adapter never re-ranks.
type SearchResponse struct {
	// Query is the query text the upstream echoed back.
	Query string

	// Results in upstream order, already truncated to the
	// requested count.
	Results []SearchResult

	// NumberOfResults is len(Results).
	NumberOfResults int
}
