package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"newsiq/internal/logger"
	"newsiq/internal/metrics"
	"newsiq/internal/news"
)

const (
	generalNewsBaseURL     = "https://newsapi.org/v2/everything"
	generalNewsPageSize    = 15
	generalNewsPlaceholder = "No description provided."
)

// GeneralNews is the primary provider: supports the full boolean query
// grammar, sorts by publish time, and has the richest metadata (always a
// description, best-effort image).
type GeneralNews struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGeneralNews(apiKey string, timeout time.Duration) *GeneralNews {
	return &GeneralNews{
		apiKey:  apiKey,
		baseURL: generalNewsBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *GeneralNews) Name() string            { return "GeneralNews" }
func (g *GeneralNews) Provider() news.Provider { return news.ProviderGeneralNews }

type generalNewsResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

func (g *GeneralNews) Fetch(ctx context.Context, query string) []news.Article {
	if tooShort(query) {
		return nil
	}

	params := url.Values{}
	params.Set("apiKey", g.apiKey)
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", "15")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return g.fail("build request", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return g.fail("request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("general news provider returned bad status", "status", resp.StatusCode)
		metrics.Global.IncrementProviderFailures()
		return nil
	}

	var payload generalNewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return g.fail("decode response", err)
	}
	if payload.Status != "ok" {
		logger.Warn("general news provider rejected query", "status", payload.Status)
		metrics.Global.IncrementProviderFailures()
		return nil
	}

	articles := make([]news.Article, 0, len(payload.Articles))
	for _, raw := range payload.Articles {
		if raw.Title == "" || raw.URL == "" {
			continue
		}
		desc := raw.Description
		if desc == "" {
			desc = generalNewsPlaceholder
		}
		articles = append(articles, news.Article{
			Title:       raw.Title,
			Description: desc,
			URL:         raw.URL,
			ImageURL:    raw.URLToImage,
			PublishedAt: raw.PublishedAt,
			Provider:    news.ProviderGeneralNews,
		})
		if len(articles) >= generalNewsPageSize {
			break
		}
	}
	return articles
}

func (g *GeneralNews) fail(op string, err error) []news.Article {
	logger.Warn("general news provider failed", "op", op, "error", err)
	metrics.Global.IncrementProviderFailures()
	return nil
}

// SetBaseURL points the adapter at a different endpoint. Used by tests.
func (g *GeneralNews) SetBaseURL(u string) { g.baseURL = u }
