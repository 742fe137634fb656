package prompt

import (
	"fmt"
	"strings"

	"intelliparse/internal/feed"
)

// TextBlob renders episodes into the plain-text document the prompt templates
// embed. The field order and the "---" delimiter are part of the contract the
// templates describe to the model; keep them in sync.
func TextBlob(episodes []feed.Episode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PODCAST FEED CONTENT (%d episodes):\n\n", len(episodes))

	for _, ep := range episodes {
		fmt.Fprintf(&b, "EPISODE: %s\n", ep.Title)
		fmt.Fprintf(&b, "DATE: %s\n", ep.Date)
		fmt.Fprintf(&b, "SOURCE: %s\n", ep.SourceFeed)
		fmt.Fprintf(&b, "MEDIA URL: %s\n", ep.MediaURL)
		if ep.Duration != "" {
			fmt.Fprintf(&b, "DURATION: %s\n", ep.Duration)
		}
		fmt.Fprintf(&b, "SUMMARY: %s\n\n", ep.Summary)
		b.WriteString("---\n\n")
	}

	return b.String()
}
