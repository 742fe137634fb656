package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFeedSet_YAML(t *testing.T) {
	path := writeConfig(t, "feeds.yaml", `
feeds:
  - name: ai-weekly
    description: AI Weekly
    primary_interest: artificial_intelligence
    additional_interests:
      - machine_learning
    sources:
      - https://example.com/feed.xml
    filter_keywords:
      - ai
    max_episodes: 10
    output_file: out/ai.json
`)

	fs, err := LoadFeedSet(path)
	require.NoError(t, err)
	require.Len(t, fs.Feeds, 1)

	g := fs.Feeds[0]
	assert.Equal(t, "ai-weekly", g.Name)
	assert.Equal(t, 10, g.MaxEpisodes)
	assert.Equal(t, []string{"artificial_intelligence", "machine_learning"}, g.Interests())
}

func TestLoadFeedSet_LegacyJSON(t *testing.T) {
	// YAML is a superset of JSON; old feeds_config.json files keep working
	path := writeConfig(t, "feeds_config.json", `{
  "feeds": [
    {
      "name": "jmcpheron",
      "description": "JMcPheron's AI & Media Feed",
      "primary_interest": "ai_media",
      "sources": ["https://lexfridman.com/feed/podcast/"],
      "filter_keywords": ["ai", "media"],
      "output_file": "examples/jmcpheron/feed.json"
    }
  ]
}`)

	fs, err := LoadFeedSet(path)
	require.NoError(t, err)
	require.Len(t, fs.Feeds, 1)
	assert.Equal(t, "jmcpheron", fs.Feeds[0].Name)
	// unset cap defaults
	assert.Equal(t, defaultMaxEpisodes, fs.Feeds[0].MaxEpisodes)
}

func TestLoadFeedSet_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "missing name",
			content: "feeds:\n  - sources: [https://example.com/feed.xml]\n",
		},
		{
			name:    "no sources",
			content: "feeds:\n  - name: broken\n",
		},
		{
			name:    "source not a URL",
			content: "feeds:\n  - name: broken\n    sources: [not-a-url]\n",
		},
		{
			name:    "no feeds at all",
			content: "feeds: []\n",
		},
		{
			name:    "not yaml",
			content: "{{{{",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, "feeds.yaml", tc.content)
			_, err := LoadFeedSet(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFeedSet_MissingFile(t *testing.T) {
	_, err := LoadFeedSet(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	fs := &FeedSet{Feeds: []FeedGroup{{Name: "a"}, {Name: "b"}}}

	g, ok := fs.Find("b")
	assert.True(t, ok)
	assert.Equal(t, "b", g.Name)

	_, ok = fs.Find("c")
	assert.False(t, ok)
}

func TestAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "  from-env  ")

	assert.Equal(t, "from-env", APIKey(""))
	assert.Equal(t, "override", APIKey("override"))

	t.Setenv("OPENAI_API_KEY", "")
	assert.Empty(t, APIKey(""))
}
