package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	ArticlesFetched     int64
	ProviderFailures    int64
	DuplicatesCollapsed int64
	GeminiRequests      int64
	GeminiFailures      int64
	CacheHits           int64
	CacheMisses         int64

	// Timings
	LastFetchTime    time.Duration
	AverageFetchTime time.Duration
	TotalFetchTime   time.Duration
	FetchCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) AddArticlesFetched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesFetched += int64(n)
}

func (m *Metrics) IncrementProviderFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProviderFailures++
}

func (m *Metrics) IncrementDuplicatesCollapsed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesCollapsed++
}

func (m *Metrics) IncrementGeminiRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GeminiRequests++
}

func (m *Metrics) IncrementGeminiFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GeminiFailures++
}

func (m *Metrics) IncrementCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *Metrics) IncrementCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *Metrics) RecordFetchTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastFetchTime = duration
	m.TotalFetchTime += duration
	m.FetchCount++

	if m.FetchCount > 0 {
		m.AverageFetchTime = m.TotalFetchTime / time.Duration(m.FetchCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"articles_fetched":      m.ArticlesFetched,
		"provider_failures":     m.ProviderFailures,
		"duplicates_collapsed":  m.DuplicatesCollapsed,
		"gemini_requests":       m.GeminiRequests,
		"gemini_failures":       m.GeminiFailures,
		"cache_hits":            m.CacheHits,
		"cache_misses":          m.CacheMisses,
		"last_fetch_time_ms":    m.LastFetchTime.Milliseconds(),
		"average_fetch_time_ms": m.AverageFetchTime.Milliseconds(),
		"last_run_time":         m.LastRunTime.Format(time.RFC3339),
		"last_error_time":       m.LastErrorTime.Format(time.RFC3339),
		"last_error":            m.LastError,
		"is_healthy":            m.IsHealthy,
	}
}
