package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEpisodes() []Episode {
	return []Episode{
		{Title: "AI Talk", Summary: "about machine learning"},
		{Title: "Cooking", Summary: "pasta recipes"},
		{Title: "Retro Gaming", Summary: "the consoles of the 90s"},
	}
}

func TestKeep(t *testing.T) {
	testCases := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{
			name:     "matches title or summary, OR semantics",
			keywords: []string{"ai", "machine learning"},
			want:     []string{"AI Talk"},
		},
		{
			name:     "substring match crosses word boundaries",
			keywords: []string{"consoles"},
			want:     []string{"Retro Gaming"},
		},
		{
			name:     "case folded",
			keywords: []string{"PASTA"},
			want:     []string{"Cooking"},
		},
		{
			name:     "empty keyword set keeps everything",
			keywords: nil,
			want:     []string{"AI Talk", "Cooking", "Retro Gaming"},
		},
		{
			name:     "no matches",
			keywords: []string{"quantum"},
			want:     []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Keep(sampleEpisodes(), tc.keywords)
			titles := make([]string, 0, len(got))
			for _, ep := range got {
				titles = append(titles, ep.Title)
			}
			assert.Equal(t, tc.want, titles)
		})
	}
}

func TestKeep_MonotonicInKeywordSet(t *testing.T) {
	episodes := sampleEpisodes()
	small := Keep(episodes, []string{"pasta"})
	large := Keep(episodes, []string{"pasta", "machine learning"})
	assert.GreaterOrEqual(t, len(large), len(small))
}

func TestCap(t *testing.T) {
	episodes := sampleEpisodes()

	capped := Cap(episodes, 2)
	require.Len(t, capped, 2)
	assert.Equal(t, "AI Talk", capped[0].Title)
	assert.Equal(t, "Cooking", capped[1].Title)

	// idempotent: capping an already-capped sequence yields the same sequence
	assert.Equal(t, capped, Cap(capped, 2))

	// no-ops
	assert.Len(t, Cap(episodes, 10), 3)
	assert.Len(t, Cap(episodes, 0), 3)
	assert.Len(t, Cap(episodes, -1), 3)
}
