package prompt

import (
	"fmt"
	"strings"

	"intelliparse/internal/output"
)

// Variant selects which output contract the instruction describes. Variants
// are data, not code: a call site picks one and fills in Params.
type Variant string

const (
	// VariantCurated asks for the generic enriched feed.
	VariantCurated Variant = "curated"
	// VariantPersonal asks for a feed personalized for a named user.
	VariantPersonal Variant = "personal"
	// VariantPlayer asks for the exact minimal player format, no enrichment.
	VariantPlayer Variant = "player"
)

// Params carries everything a template needs besides the episode text blob.
type Params struct {
	Variant         Variant
	Interests       []string
	PrimaryInterest string
	FeedName        string // feed group name, becomes the output feed id
	FeedTitle       string // human-readable title for the output feed
	UserName        string // personal variant only
}

// Build produces the single instruction string sent to the completion
// service. The embedded JSON example states the exact key names and nesting
// the extractor expects; the "JSON only" instruction is advisory and the
// extractor tolerates violations.
func Build(p Params, blob string) string {
	switch p.Variant {
	case VariantPersonal:
		return buildPersonal(p, blob)
	case VariantPlayer:
		return buildPlayer(p, blob)
	default:
		return buildCurated(p, blob)
	}
}

func (p Params) feedID() string {
	if p.FeedName != "" {
		return output.SanitizeID(p.FeedName) + "-feed"
	}
	return "intelliparse-curated"
}

func (p Params) feedTitle() string {
	if p.FeedTitle != "" {
		return p.FeedTitle
	}
	return "IntelliParse Curated Feed"
}

func interestList(interests []string) string {
	if len(interests) == 0 {
		return "- (none specified)"
	}
	return "- " + strings.Join(interests, "\n- ")
}

func buildCurated(p Params, blob string) string {
	focus := ""
	if p.PrimaryInterest != "" {
		focus = fmt.Sprintf("\nThis feed is focused primarily on %s.\n", p.PrimaryInterest)
	}
	return fmt.Sprintf(`You are IntelliParse, an LLM agent that identifies relevant episodes from podcast feeds and returns JSON content for use in a simple media player.
%s
This user is interested in the following topics:
%s

Below is a mix of episodes from multiple podcast feeds. Extract the most relevant ones and enhance them.

For each episode, provide:
1. A precise but engaging description that captures the key points
2. Technical elements and concepts covered with their relevance score
3. A short precision summary (1-3 sentences)
4. Why this content matches the stated interests

Return ONLY structured JSON in this format, with no other text:
{
  "feeds": [
    {
      "id": "%s",
      "title": "%s",
      "tracks": [
        {
          "id": "episode_id",
          "title": "Episode Title",
          "description": "Enhanced description with key points",
          "audioUrl": "media_url",
          "date_iso": "ISO-formatted date",
          "runtime_minutes": minutes,
          "intelliparse_enrichment": {
            "precision_summary": "2-3 sentence focused summary",
            "technical_elements": [
              {"concept": "relevant technical concept", "relevance": 0.0-1.0}
            ],
            "content_density": "LOW/MEDIUM/HIGH",
            "confidence_score": 0.0-1.0,
            "relevance_match": "How this content matches the stated interests"
          }
        }
      ]
    }
  ]
}

FEED CONTENT:
%s`, focus, interestList(p.Interests), p.feedID(), p.feedTitle(), blob)
}

func buildPersonal(p Params, blob string) string {
	user := p.UserName
	title := p.FeedTitle
	if title == "" {
		title = fmt.Sprintf("%s's Curated Feed", user)
	}
	id := output.SanitizeID(user) + "-feed"
	return fmt.Sprintf(`You are IntelliParse, an LLM agent that identifies relevant episodes from podcast feeds and returns JSON content for use in %[1]s's personal media player.

This feed is being created specifically for %[1]s, who is interested in:
%[2]s

IMPORTANT: Return ONLY valid JSON with no additional text or explanation. Do not include any preamble, explanations, or text outside the JSON structure.

Below is a mix of episodes from multiple podcast feeds. Extract the most relevant ones for %[1]s and enhance them.

For each episode, provide:
1. A precise but engaging description that captures the key points
2. Technical elements and concepts covered with their relevance score
3. A short precision summary (1-3 sentences)
4. Why this might be interesting to %[1]s specifically

Return ONLY the following JSON structure with no other text:
{
  "feeds": [
    {
      "id": "%[3]s",
      "title": "%[4]s",
      "tracks": [
        {
          "id": "episode_id",
          "title": "Episode Title",
          "description": "Enhanced description with key points",
          "audioUrl": "media_url",
          "date_iso": "ISO-formatted date",
          "runtime_minutes": minutes,
          "intelliparse_enrichment": {
            "precision_summary": "2-3 sentence focused summary",
            "technical_elements": [
              {"concept": "relevant technical concept", "relevance": 0.0-1.0}
            ],
            "content_density": "LOW/MEDIUM/HIGH",
            "confidence_score": 0.0-1.0,
            "personal_relevance": "Why this is specifically relevant to %[1]s's interests"
          }
        }
      ]
    }
  ]
}

FEED CONTENT:
%[5]s`, user, interestList(p.Interests), id, title, blob)
}

func buildPlayer(p Params, blob string) string {
	id := output.SanitizeID(p.FeedName)
	focus := ""
	if p.PrimaryInterest != "" {
		focus = fmt.Sprintf("\nThe feed is focused on %s, with these additional interests:\n%s\n", p.PrimaryInterest, interestList(p.Interests))
	}
	return fmt.Sprintf(`You are IntelliParse, an agent that processes podcast feeds into a specific JSON format for the "Did you hear that?" audio player.

Below is a mix of episodes from podcast feeds. Extract the relevant ones and format them according to these exact requirements:

1. Each feed must have an "id", "title", and "tracks" array
2. Each track must have an "id", "title", and "audioUrl"
3. Tracks can optionally have "description" and "albumArt"
4. The output structure must follow this exact format
%s
Return structured JSON in this EXACT format - do not add any additional fields:
{
  "feeds": [
    {
      "id": "%s",
      "title": "%s",
      "tracks": [
        {
          "id": "track-id",
          "title": "Episode Title",
          "audioUrl": "media_url",
          "description": "Episode description",
          "albumArt": "image_url"
        }
      ]
    }
  ]
}

FEED CONTENT:
%s`, focus, id, p.feedTitle(), blob)
}
