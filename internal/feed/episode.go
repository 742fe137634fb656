package feed

// Episode is one syndication entry normalized into the shape the rest of the
// pipeline works with. Field names in the JSON dump match the raw-episode
// side files produced by earlier versions of this tool.
type Episode struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Date       string      `json:"date"`
	Summary    string      `json:"summary"`
	SourceFeed string      `json:"source_feed"`
	MediaURL   string      `json:"media_url"`
	Duration   string      `json:"duration,omitempty"`
	ImageURL   string      `json:"image_url,omitempty"`
	Enclosures []Enclosure `json:"enclosures,omitempty"`
}

// Enclosure is a media attachment declared by the feed entry.
type Enclosure struct {
	URL  string `json:"href"`
	Type string `json:"type"`
}

// HasAudio reports whether an audio media URL was resolved for this episode.
func (e Episode) HasAudio() bool {
	return e.MediaURL != ""
}
