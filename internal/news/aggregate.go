package news

import (
	"context"
	"time"

	"newsiq/internal/logger"
	"newsiq/internal/metrics"
)

// Source is one upstream provider adapter. Implementations live in
// internal/providers; they are fail-soft and never return an error.
type Source interface {
	// Name returns the human-readable name of the provider.
	Name() string

	// Provider returns the enum value stamped on produced articles.
	Provider() Provider

	// Fetch retrieves articles for the query. Upstream problems yield nil.
	Fetch(ctx context.Context, query string) []Article
}

// Fetcher runs the whole pipeline: fan out a query to every source,
// concatenate in priority order, collapse near-duplicates.
type Fetcher struct {
	sources []Source
}

// NewFetcher builds a pipeline over the given sources. Their order is the
// provider priority order: earlier sources win first-seen representative
// status during deduplication, so callers pass the richest provider first.
func NewFetcher(sources ...Source) *Fetcher {
	return &Fetcher{sources: sources}
}

// Aggregate queries every source and concatenates the results in source
// order. All sources are always asked, even when earlier ones fail or come
// back empty; the fan-out is concurrent but ordering comes from slot
// assignment, not completion order.
func (f *Fetcher) Aggregate(ctx context.Context, query string) []Article {
	slots := make([][]Article, len(f.sources))

	done := make(chan int, len(f.sources))
	for i, src := range f.sources {
		go func(i int, src Source) {
			slots[i] = src.Fetch(ctx, query)
			done <- i
		}(i, src)
	}
	for range f.sources {
		i := <-done
		logger.Debug("provider finished", "provider", f.sources[i].Name(), "articles", len(slots[i]))
	}

	var all []Article
	for _, batch := range slots {
		all = append(all, batch...)
	}
	return all
}

// FetchNews is the one-call entry point: aggregate, then deduplicate.
// The result is deterministic for an identical merged list, so callers may
// cache it keyed on (topic label, resolved query) and reuse until their TTL
// expires.
func (f *Fetcher) FetchNews(ctx context.Context, query string) []Article {
	start := time.Now()
	defer func() {
		metrics.Global.RecordFetchTime(time.Since(start))
		metrics.Global.SetLastRun()
	}()

	merged := f.Aggregate(ctx, query)
	metrics.Global.AddArticlesFetched(len(merged))

	deduped := Deduplicate(merged)
	logger.Info("fetch complete", "query", query, "fetched", len(merged), "unique", len(deduped))
	return deduped
}
