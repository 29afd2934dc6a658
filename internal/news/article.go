// Package news holds the normalized article model and the aggregation and
// deduplication pipeline that merges all provider results into one list.
package news

// Provider identifies which upstream adapter produced an article.
type Provider string

const (
	ProviderGeneralNews  Provider = "general_news"
	ProviderRegionalNews Provider = "regional_news"
	ProviderHeadlines    Provider = "headlines"
)

// Article is the normalized record every adapter returns. It is immutable
// once the adapter has built it; downstream code only selects, never edits.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url,omitempty"`
	// PublishedAt keeps the provider-native timestamp format. Providers
	// disagree on formats and nothing downstream sorts on it, so it is
	// carried as-is instead of being parsed.
	PublishedAt string   `json:"published_at"`
	Provider    Provider `json:"source_provider"`
}

// HasImage reports whether the article carries its own image URL.
// Placeholder substitution happens at presentation time, not here.
func (a Article) HasImage() bool {
	return a.ImageURL != ""
}
