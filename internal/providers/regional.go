package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"newsiq/internal/logger"
	"newsiq/internal/metrics"
	"newsiq/internal/news"
)

const (
	regionalNewsBaseURL     = "https://newsdata.io/api/1/latest"
	regionalNewsMaxResults  = 5
	regionalNewsPlaceholder = "No summary available from this outlet."
)

// RegionalNews covers region-focused outlets. Its upstream query grammar is
// weaker than the topic expressions, so the adapter simplifies the query
// before sending. The whole adapter is optional: without a credential it is
// skipped, which is a configuration choice, not an error.
type RegionalNews struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewRegionalNews(apiKey string, timeout time.Duration) *RegionalNews {
	return &RegionalNews{
		apiKey:  apiKey,
		baseURL: regionalNewsBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *RegionalNews) Name() string            { return "RegionalNews" }
func (r *RegionalNews) Provider() news.Provider { return news.ProviderRegionalNews }

// SimplifyQuery adapts a boolean topic expression to the upstream's flat
// grammar: parentheses and quotes are stripped and only the first OR-clause
// survives.
func SimplifyQuery(query string) string {
	q := strings.NewReplacer("(", "", ")", "", `"`, "").Replace(query)
	if idx := strings.Index(q, " OR "); idx >= 0 {
		q = q[:idx]
	}
	return strings.TrimSpace(q)
}

type regionalNewsResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Link        string `json:"link"`
		ImageURL    string `json:"image_url"`
		PubDate     string `json:"pubDate"`
	} `json:"results"`
}

func (r *RegionalNews) Fetch(ctx context.Context, query string) []news.Article {
	if r.apiKey == "" {
		logger.Debug("regional news provider skipped: no credential")
		return nil
	}
	if tooShort(query) {
		return nil
	}

	params := url.Values{}
	params.Set("apikey", r.apiKey)
	params.Set("q", SimplifyQuery(query))
	params.Set("language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return r.fail("build request", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return r.fail("request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("regional news provider returned bad status", "status", resp.StatusCode)
		metrics.Global.IncrementProviderFailures()
		return nil
	}

	var payload regionalNewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return r.fail("decode response", err)
	}
	if payload.Status != "success" {
		logger.Warn("regional news provider rejected query", "status", payload.Status)
		metrics.Global.IncrementProviderFailures()
		return nil
	}

	articles := make([]news.Article, 0, regionalNewsMaxResults)
	for _, raw := range payload.Results {
		if raw.Title == "" || raw.Link == "" {
			continue
		}
		desc := raw.Description
		if desc == "" {
			desc = regionalNewsPlaceholder
		}
		articles = append(articles, news.Article{
			Title:       raw.Title,
			Description: desc,
			URL:         raw.Link,
			ImageURL:    raw.ImageURL,
			PublishedAt: raw.PubDate,
			Provider:    news.ProviderRegionalNews,
		})
		if len(articles) >= regionalNewsMaxResults {
			break
		}
	}
	return articles
}

func (r *RegionalNews) fail(op string, err error) []news.Article {
	logger.Warn("regional news provider failed", "op", op, "error", err)
	metrics.Global.IncrementProviderFailures()
	return nil
}

// SetBaseURL points the adapter at a different endpoint. Used by tests.
func (r *RegionalNews) SetBaseURL(u string) { r.baseURL = u }
