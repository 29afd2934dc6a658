package study

import (
	"testing"

	"newsiq/internal/news"
)

func TestList_AddDeduplicatesByTitle(t *testing.T) {
	l := NewList()
	a := news.Article{Title: "Apple launches iPhone 16", Description: "Launch recap"}

	if !l.Add(a) {
		t.Fatal("first add must succeed")
	}
	if l.Add(a) {
		t.Fatal("second add of the same title must be rejected")
	}

	// Same story, different title: a distinct pick.
	b := news.Article{Title: "Apple Unveils iPhone 16 Officially", Description: "Another take"}
	if !l.Add(b) {
		t.Fatal("a different title must be accepted")
	}
	if l.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", l.Len())
	}
}

func TestList_Remove(t *testing.T) {
	l := NewList()
	l.Add(news.Article{Title: "one"})
	l.Add(news.Article{Title: "two"})
	l.Add(news.Article{Title: "three"})

	if !l.Remove("two") {
		t.Fatal("expected removal of present title")
	}
	if l.Remove("two") {
		t.Fatal("second removal must report false")
	}
	if l.Contains("two") {
		t.Fatal("removed title still present")
	}

	got := l.Items()
	if len(got) != 2 || got[0].Title != "one" || got[1].Title != "three" {
		t.Fatalf("pick order not preserved after removal: %+v", got)
	}
}

func TestList_FullText(t *testing.T) {
	l := NewList()
	l.Add(news.Article{Title: "First", Description: "d1"})
	l.Add(news.Article{Title: "Second", Description: "d2"})

	want := "First d1 Second d2"
	if got := l.FullText(); got != want {
		t.Fatalf("FullText() = %q, want %q", got, want)
	}
}

func TestList_Empty(t *testing.T) {
	l := NewList()
	if l.Len() != 0 || l.Contains("anything") || l.FullText() != "" {
		t.Fatal("empty list must report empty state")
	}
}
