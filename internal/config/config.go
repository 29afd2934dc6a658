// Package config loads all runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Provider credentials
	NewsAPIKey     string // general-news provider, required
	RegionalAPIKey string // regional provider, optional: adapter is skipped without it

	// Gemini settings
	GeminiAPIKey      string
	GeminiModel       string
	MaxGeminiRequests int // daily request budget (0 = unlimited)

	// Feedback settings (optional capability)
	GithubToken string
	RepoOwner   string
	RepoName    string

	// Topics
	TopicsConfigPath string

	// Cache settings
	NewsCacheTTL     time.Duration // per (topic, query) article list
	AnalysisCacheTTL time.Duration // per article deep-dive result

	// App settings
	Debug          bool
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		GeminiModel:       "gemini-2.0-flash",
		MaxGeminiRequests: 50,
		TopicsConfigPath:  "configs/topics.yaml",
		NewsCacheTTL:      time.Hour,
		AnalysisCacheTTL:  6 * time.Hour,
		RequestTimeout:    15 * time.Second,
		RetryAttempts:     3,
		RetryDelay:        5 * time.Second,
	}

	// Load from environment
	cfg.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	cfg.RegionalAPIKey = os.Getenv("REGIONAL_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	cfg.GithubToken = os.Getenv("GITHUB_TOKEN")
	cfg.RepoOwner = os.Getenv("REPO_OWNER")
	cfg.RepoName = os.Getenv("REPO_NAME")

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.GeminiModel = model
	}
	if path := os.Getenv("TOPICS_CONFIG_PATH"); path != "" {
		cfg.TopicsConfigPath = path
	}

	if v := getEnvIntOrDefault("NEWS_CACHE_TTL_MINUTES", 60); v > 0 {
		cfg.NewsCacheTTL = time.Duration(v) * time.Minute
	}
	if v := getEnvIntOrDefault("ANALYSIS_CACHE_TTL_MINUTES", 360); v > 0 {
		cfg.AnalysisCacheTTL = time.Duration(v) * time.Minute
	}
	if v := getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", 15); v > 0 {
		cfg.RequestTimeout = time.Duration(v) * time.Second
	}
	if v := os.Getenv("MAX_GEMINI_REQUESTS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val >= 0 {
			cfg.MaxGeminiRequests = val
		}
	}
	if v := os.Getenv("RETRY_ATTEMPTS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RetryAttempts = val
		}
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate enforces the fatal-vs-degrade policy: the primary news provider
// and Gemini have no fallback, so their keys are required up front. The
// regional provider key is deliberately not checked; without it that one
// adapter degrades to empty results.
func (c *Config) Validate() error {
	if c.NewsAPIKey == "" {
		return fmt.Errorf("NEWS_API_KEY is required")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

// FeedbackConfigured reports whether the GitHub feedback capability has all
// three of its settings.
func (c *Config) FeedbackConfigured() bool {
	return c.GithubToken != "" && c.RepoOwner != "" && c.RepoName != ""
}
