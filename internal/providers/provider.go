// Package providers contains the upstream adapters. Each adapter turns one
// news API's response into normalized news.Article records and is fail-soft:
// any upstream problem (network error, bad status, malformed payload) comes
// back as an empty result, never as an error. One provider's outage reduces
// the result count, not aggregate availability.
//
// Every adapter implements news.Source.
package providers

import "strings"

// tooShort guards against degenerate queries. Providers fall back to
// unrelated top-headline defaults when the query is effectively empty, so
// anything shorter than 2 characters after trimming skips the upstream call.
func tooShort(query string) bool {
	return len(strings.TrimSpace(query)) < 2
}
