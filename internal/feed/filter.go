package feed

import (
	"strings"

	"github.com/samber/lo"
)

// Keep returns the episodes whose title or summary contains at least one of
// the keywords, case-folded substring match, OR semantics. An empty keyword
// set keeps everything.
func Keep(episodes []Episode, keywords []string) []Episode {
	if len(keywords) == 0 {
		return episodes
	}
	folded := lo.Map(keywords, func(k string, _ int) string {
		return strings.ToLower(k)
	})
	return lo.Filter(episodes, func(ep Episode, _ int) bool {
		searchable := strings.ToLower(ep.Title + " " + ep.Summary)
		return lo.SomeBy(folded, func(k string) bool {
			return strings.Contains(searchable, k)
		})
	})
}

// Cap truncates to the first max episodes, preserving order. Non-positive max
// means no cap.
func Cap(episodes []Episode, max int) []Episode {
	if max <= 0 || len(episodes) <= max {
		return episodes
	}
	return episodes[:max]
}
