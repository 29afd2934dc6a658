// Package scraper pulls full article text from a source page so the deep-dive
// analysis has more to work with than a title and a one-line description.
package scraper

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ArticleContent is the extracted article body.
type ArticleContent struct {
	Title   string
	Content string
	URL     string
}

// Body text longer than this is cut at a paragraph boundary; the analysis
// prompt does not benefit from more.
const maxContentLen = 6000

// ExtractFullArticle fetches the page and pulls the body text out of it.
func ExtractFullArticle(url string) (*ArticleContent, error) {
	client := &http.Client{
		Timeout: 15 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("error loading page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML: %w", err)
	}

	content := cleanContent(extractContent(doc))
	if content == "" {
		return nil, fmt.Errorf("can't get content from %s", url)
	}

	return &ArticleContent{
		Title:   extractTitle(doc),
		Content: content,
		URL:     url,
	}, nil
}

// extractContent walks a cascade of common article-body selectors and keeps
// the first one that yields real paragraphs.
func extractContent(doc *goquery.Document) string {
	var paragraphs []string

	selectors := []string{
		"article p",
		".article-body p",
		".article p",
		".content p",
		".post-content p",
		".entry-content p",
		"main p",
		"#content p",
		"p",
	}

	for _, selector := range selectors {
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if text != "" && len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) >= 3 { // 3 paragraphs is enough signal
			break
		}
	}

	return strings.Join(paragraphs, "\n\n")
}

func extractTitle(doc *goquery.Document) string {
	selectors := []string{
		"h1",
		"title",
		".article-title",
		".headline",
		".entry-title",
	}

	for _, selector := range selectors {
		title := strings.TrimSpace(doc.Find(selector).First().Text())
		if title != "" {
			return title
		}
	}

	return ""
}

// cleanContent drops boilerplate lines and caps the length at a paragraph
// boundary.
func cleanContent(content string) string {
	if content == "" {
		return ""
	}

	junkIndicators := []string{
		"cookie", "gdpr", "subscribe", "newsletter", "advertisement",
		"read more", "click here", "follow us", "share this", "sign in",
	}

	var kept []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 8 {
			continue
		}
		lower := strings.ToLower(line)
		junk := false
		for _, indicator := range junkIndicators {
			if strings.Contains(lower, indicator) {
				junk = true
				break
			}
		}
		if !junk {
			kept = append(kept, line)
		}
	}

	result := strings.Join(kept, "\n\n")
	for strings.Contains(result, "  ") {
		result = strings.ReplaceAll(result, "  ", " ")
	}
	result = strings.TrimSpace(result)

	if len(result) > maxContentLen {
		paragraphs := strings.Split(result, "\n\n")
		var selected []string
		total := 0
		for _, p := range paragraphs {
			if total+len(p) > maxContentLen {
				break
			}
			selected = append(selected, p)
			total += len(p) + 2
		}
		if len(selected) > 0 {
			result = strings.Join(selected, "\n\n")
		} else {
			result = result[:maxContentLen]
		}
	}

	return result
}
