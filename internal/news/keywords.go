package news

import (
	"strings"
	"unicode"
)

// Stop words stripped from titles before similarity comparison. Includes
// filler that news headlines share regardless of the story ("news",
// "update", "live", "says", "report").
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "in": true, "on": true, "at": true,
	"for": true, "to": true, "of": true, "and": true, "is": true,
	"with": true, "by": true, "from": true,
	"news": true, "update": true, "live": true, "says": true, "report": true,
}

// keywordSet reduces a title to its significant tokens: lowercase, punctuation
// stripped, stop words and tokens of length <= 2 dropped. The result can be
// empty when a title is all stop words or punctuation.
func keywordSet(title string) map[string]bool {
	b := make([]rune, 0, len(title))
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b = append(b, r)
		} else {
			b = append(b, ' ')
		}
	}

	set := make(map[string]bool)
	for _, w := range strings.Fields(string(b)) {
		if len(w) <= 2 || stopWords[w] {
			continue
		}
		set[w] = true
	}
	return set
}

// overlap returns the intersection size and Jaccard ratio of two keyword sets.
func overlap(a, b map[string]bool) (inter int, ratio float64) {
	for w := range a {
		if b[w] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0, 0
	}
	return inter, float64(inter) / float64(union)
}
