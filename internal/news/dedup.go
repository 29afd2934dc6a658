package news

import (
	"newsiq/internal/logger"
	"newsiq/internal/metrics"
)

// Match thresholds for the title similarity heuristic. The absolute-overlap
// override catches short but highly specific titles where the Jaccard ratio
// would be diluted by extra tokens.
const (
	jaccardThreshold = 0.3
	minSharedWords   = 3
)

// Deduplicate collapses near-duplicate stories into one representative per
// cluster. The walk is greedy and single-link: each incoming article is
// compared against the current representatives only, in output order, and
// the first match wins. That makes clustering order-dependent and not
// transitively consistent, which is accepted behavior, not a bug: the input
// order carries provider priority, so the first-seen article of a story is
// the one from the preferred provider.
//
// Every returned article is a verbatim element of the input; nothing is
// merged or synthesized. When a duplicate carries an image and its
// representative does not, the duplicate takes over the cluster: the old
// representative is removed and the new one appended at the end. The
// position shift is a side effect of the replacement and is kept as-is.
func Deduplicate(articles []Article) []Article {
	reps := make([]Article, 0, len(articles))
	keys := make([]map[string]bool, 0, len(articles))

	for _, art := range articles {
		kw := keywordSet(art.Title)

		matched := -1
		if len(kw) > 0 {
			for i, rep := range keys {
				if len(rep) == 0 {
					// Not comparable; an empty set matches nothing.
					continue
				}
				inter, ratio := overlap(kw, rep)
				if ratio > jaccardThreshold || inter >= minSharedWords {
					matched = i
					break
				}
			}
		}

		if matched < 0 {
			reps = append(reps, art)
			keys = append(keys, kw)
			continue
		}

		metrics.Global.IncrementDuplicatesCollapsed()
		logger.Debug("duplicate collapsed",
			"title", art.Title, "representative", reps[matched].Title)

		if art.HasImage() && !reps[matched].HasImage() {
			reps = append(reps[:matched], reps[matched+1:]...)
			keys = append(keys[:matched], keys[matched+1:]...)
			reps = append(reps, art)
			keys = append(keys, kw)
		}
	}

	return reps
}
