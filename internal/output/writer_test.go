package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.json")

	doc := PlayerDocument{Feeds: []PlayerFeed{{
		ID:     "test",
		Title:  "Test",
		Tracks: []PlayerTrack{{ID: "a", Title: "A", AudioURL: "https://x/a.mp3"}},
	}}}

	require.NoError(t, WriteJSON(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `{
  "feeds": [
    {
      "id": "test",
      "title": "Test",
      "tracks": [
        {
          "id": "a",
          "title": "A",
          "audioUrl": "https://x/a.mp3",
          "description": ""
        }
      ]
    }
  ]
}`
	assert.Equal(t, want, string(data))
}
