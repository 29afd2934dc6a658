package main

import (
	"context"
	"fmt"

	"newsiq/internal/cache"
	"newsiq/internal/config"
	"newsiq/internal/gemini"
	"newsiq/internal/logger"
	"newsiq/internal/metrics"
	"newsiq/internal/news"
	"newsiq/internal/providers"
	"newsiq/internal/ratelimit"
	"newsiq/internal/retry"
	"newsiq/internal/topics"
)

// placeholderImage is substituted at presentation time for articles without
// their own image. Never stored on the article.
const placeholderImage = "https://placehold.co/600x400?text=News"

// app is the per-invocation session context: configuration, the topic
// catalog, the fetch pipeline, and the session cache. Commands receive it
// explicitly; nothing reaches into ambient globals.
type app struct {
	cfg     *config.Config
	catalog *topics.Catalog
	fetcher *news.Fetcher
	cache   *cache.Cache
	budget  *ratelimit.AIBudget
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Debug)

	catalog, err := topics.Load(cfg.TopicsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load topics: %w", err)
	}

	// Provider priority order: richest metadata first. The deduplicator
	// keeps the first-seen representative, so this order decides which
	// provider's copy of a story survives.
	fetcher := news.NewFetcher(
		providers.NewGeneralNews(cfg.NewsAPIKey, cfg.RequestTimeout),
		providers.NewRegionalNews(cfg.RegionalAPIKey, cfg.RequestTimeout),
		providers.NewHeadlines(cfg.RequestTimeout),
	)

	return &app{
		cfg:     cfg,
		catalog: catalog,
		fetcher: fetcher,
		cache:   cache.New(),
		budget:  ratelimit.NewAIBudget(cfg.MaxGeminiRequests),
	}, nil
}

// articlesFor fetches the deduplicated article list for a topic, reusing the
// session cache keyed on (topic label, resolved query).
func (a *app) articlesFor(ctx context.Context, topic topics.Topic) []news.Article {
	key := a.cache.NewsKey(topic.Label, topic.Query)
	if cached, ok := a.cache.Get(key); ok {
		metrics.Global.IncrementCacheHits()
		return cached.([]news.Article)
	}
	metrics.Global.IncrementCacheMisses()

	articles := a.fetcher.FetchNews(ctx, topic.Query)
	a.cache.Set(key, articles, a.cfg.NewsCacheTTL)
	return articles
}

func (a *app) geminiClient(ctx context.Context) (*gemini.Client, error) {
	return gemini.NewClient(ctx, a.cfg.GeminiAPIKey, a.cfg.GeminiModel, a.budget, retry.RetryConfig{
		MaxAttempts: a.cfg.RetryAttempts,
		Delay:       a.cfg.RetryDelay,
		Backoff:     true,
	})
}

// displayTitle decorates a title with its provider marker. Strictly a
// presentation concern; stored titles are never prefixed.
func displayTitle(art news.Article) string {
	switch art.Provider {
	case news.ProviderHeadlines:
		return "LIVE | " + art.Title
	case news.ProviderRegionalNews:
		return "[Regional] " + art.Title
	default:
		return art.Title
	}
}

// displayImage returns the article's image or the placeholder.
func displayImage(art news.Article) string {
	if art.HasImage() {
		return art.ImageURL
	}
	return placeholderImage
}
