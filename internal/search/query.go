package search

import (
	"net/url"
	"strings"
)

// BaseURL is the origin every navigation target shares
const BaseURL = "https://www.youtube.com"

const (
	resultsPath = "/results"
	queryParam  = "search_query"
)

// HomeURL returns the homepage URL used by the logo link
func HomeURL() string {
	return BaseURL + "/"
}

// ResultsURL builds the search-results URL for query. The trimmed query only
// gates whether navigation happens at all; the encoded payload is always the
// original untrimmed text. ok is false for empty or whitespace-only queries,
// which callers treat as a silent no-op.
func ResultsURL(query string) (target string, ok bool) {
	if strings.TrimSpace(query) == "" {
		return "", false
	}
	return BaseURL + resultsPath + "?" + queryParam + "=" + EncodeComponent(query), true
}

// EncodeComponent percent-encodes s for use as a query-parameter value.
// QueryEscape maps spaces to "+"; the results page expects %20, so spaces are
// re-encoded to match encodeURIComponent semantics (UTF-8 byte sequences for
// non-ASCII, %2B for literal plus signs).
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
