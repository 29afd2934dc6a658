package providers

import (
	"context"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"newsiq/internal/logger"
	"newsiq/internal/metrics"
	"newsiq/internal/news"
)

const (
	headlinesBaseURL     = "https://news.google.com/rss/search"
	headlinesMaxItems    = 10
	headlinesPlaceholder = "Live coverage, follow the link for details."
)

// Headlines aggregates breaking coverage from a feed-based upstream. The
// feed carries no image metadata, so articles from this adapter never have
// one. The query is bounded to the last day; older entries defeat the point
// of a live-headline source.
type Headlines struct {
	baseURL string
	parser  *gofeed.Parser
	timeout time.Duration
}

func NewHeadlines(timeout time.Duration) *Headlines {
	return &Headlines{
		baseURL: headlinesBaseURL,
		parser:  gofeed.NewParser(),
		timeout: timeout,
	}
}

func (h *Headlines) Name() string            { return "Headlines" }
func (h *Headlines) Provider() news.Provider { return news.ProviderHeadlines }

func (h *Headlines) Fetch(ctx context.Context, query string) []news.Article {
	if tooShort(query) {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("q", query+" when:1d")
	params.Set("hl", "en")

	feed, err := h.parser.ParseURLWithContext(h.baseURL+"?"+params.Encode(), ctx)
	if err != nil {
		logger.Warn("headlines provider failed", "error", err)
		metrics.Global.IncrementProviderFailures()
		return nil
	}

	articles := make([]news.Article, 0, headlinesMaxItems)
	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}
		desc := item.Description
		if desc == "" {
			desc = headlinesPlaceholder
		}
		articles = append(articles, news.Article{
			Title:       item.Title,
			Description: desc,
			URL:         item.Link,
			PublishedAt: item.Published,
			Provider:    news.ProviderHeadlines,
		})
		if len(articles) >= headlinesMaxItems {
			break
		}
	}
	return articles
}

// SetBaseURL points the adapter at a different endpoint. Used by tests.
func (h *Headlines) SetBaseURL(u string) { h.baseURL = u }
