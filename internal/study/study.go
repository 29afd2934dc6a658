// Package study tracks the user-curated article set that feeds quiz
// generation.
package study

import (
	"strings"

	"newsiq/internal/news"
)

// List is the user's study set. Identity inside the list is exact title
// equality, not the cross-provider similarity heuristic: once an article is
// picked it is a concrete pick, and two picked articles with distinct titles
// stay distinct even when they cover the same story.
type List struct {
	items []news.Article
}

func NewList() *List {
	return &List{}
}

// Add appends an article unless one with the same title is already present.
// Reports whether the article was added.
func (l *List) Add(a news.Article) bool {
	if l.Contains(a.Title) {
		return false
	}
	l.items = append(l.items, a)
	return true
}

// Remove drops the article with the given title. Reports whether anything
// was removed.
func (l *List) Remove(title string) bool {
	for i, item := range l.items {
		if item.Title == title {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports membership by exact title equality.
func (l *List) Contains(title string) bool {
	for _, item := range l.items {
		if item.Title == title {
			return true
		}
	}
	return false
}

// Items returns the selected articles in pick order.
func (l *List) Items() []news.Article {
	return l.items
}

// Len returns the number of selected articles.
func (l *List) Len() int {
	return len(l.items)
}

// FullText joins every article's title and description into the single text
// blob the quiz generator works from.
func (l *List) FullText() string {
	parts := make([]string, 0, len(l.items))
	for _, item := range l.items {
		parts = append(parts, item.Title+" "+item.Description)
	}
	return strings.Join(parts, " ")
}
