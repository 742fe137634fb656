package output

import (
	"regexp"
	"strings"

	"intelliparse/internal/extract"
)

// Document is the enriched output contract. The generative service produced
// it; the core only checks its top-level shape and passes it through.
type Document map[string]any

// PlayerDocument is the minimal playback contract, produced without any
// generative call.
type PlayerDocument struct {
	Feeds []PlayerFeed `json:"feeds"`
}

type PlayerFeed struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Tracks []PlayerTrack `json:"tracks"`
}

type PlayerTrack struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	AudioURL    string `json:"audioUrl"`
	Description string `json:"description"`
	AlbumArt    string `json:"albumArt,omitempty"`
}

// AcceptEnrichment admits a parsed reply as the enriched document. Only the
// presence of the "feeds" key is enforced; per-field types inside it are the
// model's responsibility.
func AcceptEnrichment(parsed map[string]any) (Document, error) {
	if _, ok := parsed["feeds"]; !ok {
		return nil, &extract.MalformedResponseError{Reason: `response JSON has no "feeds" key`}
	}
	return Document(parsed), nil
}

var invalidIDChars = regexp.MustCompile(`[^a-z0-9-]`)

// SanitizeID turns free text into a feed or track identifier: lower-case,
// spaces to hyphens, everything outside [a-z0-9-] stripped.
func SanitizeID(text string) string {
	return invalidIDChars.ReplaceAllString(strings.ReplaceAll(strings.ToLower(text), " ", "-"), "")
}
