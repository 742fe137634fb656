package output

import (
	"go.uber.org/zap"

	"intelliparse/internal/feed"
)

// ToPlayerDocument projects episodes straight into the player contract.
// A track is emitted only when an audio URL resolves; episodes without one
// are dropped and logged, never written with an empty URL.
func ToPlayerDocument(episodes []feed.Episode, feedName, feedTitle string, logger *zap.Logger) PlayerDocument {
	pf := PlayerFeed{
		ID:     SanitizeID(feedName),
		Title:  feedTitle,
		Tracks: []PlayerTrack{},
	}

	for _, ep := range episodes {
		audioURL := resolveAudioURL(ep)
		if audioURL == "" {
			logger.Warn("no audio URL for track, dropping", zap.String("title", ep.Title))
			continue
		}
		pf.Tracks = append(pf.Tracks, PlayerTrack{
			ID:          SanitizeID(ep.Title),
			Title:       ep.Title,
			AudioURL:    audioURL,
			Description: ep.Summary,
			AlbumArt:    ep.ImageURL,
		})
	}

	return PlayerDocument{Feeds: []PlayerFeed{pf}}
}

// resolveAudioURL prefers the normalized media URL and falls back to the
// first enclosure of any type, matching how partially-normalized records
// were handled historically.
func resolveAudioURL(ep feed.Episode) string {
	if ep.MediaURL != "" {
		return ep.MediaURL
	}
	for _, enc := range ep.Enclosures {
		if enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}
