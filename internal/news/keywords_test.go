package news

import "testing"

func TestKeywordSet_NormalizesTitle(t *testing.T) {
	set := keywordSet("Apple launches NEW iPhone-16, says report!")
	want := []string{"apple", "launches", "new", "iphone"}
	if len(set) != len(want) {
		t.Fatalf("expected %d keywords, got %d: %v", len(want), len(set), set)
	}
	for _, w := range want {
		if !set[w] {
			t.Errorf("missing keyword %q in %v", w, set)
		}
	}
}

func TestKeywordSet_DropsStopWordsAndShortTokens(t *testing.T) {
	set := keywordSet("The news update at 10 is live on TV by AP")
	if len(set) != 0 {
		t.Fatalf("expected empty keyword set, got %v", set)
	}
}

func TestOverlap(t *testing.T) {
	a := keywordSet("apple iphone launch event")
	b := keywordSet("apple iphone sales numbers")

	inter, ratio := overlap(a, b)
	if inter != 2 {
		t.Fatalf("expected intersection 2, got %d", inter)
	}
	if want := 2.0 / 6.0; ratio != want {
		t.Fatalf("expected ratio %f, got %f", want, ratio)
	}
}

func TestOverlap_BothEmpty(t *testing.T) {
	inter, ratio := overlap(map[string]bool{}, map[string]bool{})
	if inter != 0 || ratio != 0 {
		t.Fatalf("expected zero overlap for empty sets, got %d %f", inter, ratio)
	}
}
