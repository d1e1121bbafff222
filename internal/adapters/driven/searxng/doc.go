// Package searxng implements the driven SearchEngine port against a
// SearXNG instance's JSON search API. It owns query-string construction,
// response parsing, and the mapping of transport failures onto the
// domain error taxonomy. The instance itself is an opaque upstream; no
// retries or re-ranking happen here.
package searxng
