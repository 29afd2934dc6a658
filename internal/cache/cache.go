// Package cache is the in-process TTL cache layered over the fetch pipeline.
// It holds nothing across restarts; session-scoped reuse only.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

type CacheItem struct {
	Value     interface{}
	ExpiresAt time.Time
}

type Cache struct {
	mu    sync.RWMutex
	items map[string]CacheItem
}

func New() *Cache {
	c := &Cache{
		items: make(map[string]CacheItem),
	}

	// Cleanup expired items every hour
	go c.cleanupLoop()

	return c
}

func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = CacheItem{
		Value:     value,
		ExpiresAt: time.Now().Add(ttl),
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, exists := c.items[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(item.ExpiresAt) {
		delete(c.items, key)
		return nil, false
	}

	return item.Value, true
}

// NewsKey derives the cache key for a fetched article list: the topic label
// plus the resolved query string, hashed so free-text custom searches of any
// length and content make safe keys.
func (c *Cache) NewsKey(topicLabel, query string) string {
	h := sha256.New()
	h.Write([]byte(topicLabel + "|" + query))
	return "news:" + hex.EncodeToString(h.Sum(nil))
}

// AnalysisKey derives the cache key for a deep-dive analysis result. Keyed
// by article title, matching how the study list identifies articles.
func (c *Cache) AnalysisKey(title string) string {
	h := sha256.New()
	h.Write([]byte(title))
	return "analysis:" + hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *Cache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, item := range c.items {
		if now.After(item.ExpiresAt) {
			delete(c.items, key)
		}
	}
}
