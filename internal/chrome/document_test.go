package chrome

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStore = `{
	"checksum": "stale",
	"roots": {
		"bookmark_bar": {
			"type": "folder", "name": "Bookmarks bar", "id": "1",
			"children": [
				{"type": "url", "name": "repo", "url": "https://github.com/x/y", "id": "17", "guid": "g-17", "date_added": "13270000000000000"}
			]
		},
		"other": {"type": "folder", "name": "Other bookmarks", "id": "2", "children": []},
		"synced": {"type": "folder", "name": "Mobile bookmarks", "id": "3", "children": []}
	},
	"version": 1
}`

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"plain", sampleStore, false},
		{"with BOM", "\xEF\xBB\xBF" + sampleStore, false},
		{"malformed json", "{not json", true},
		{"missing roots", `{"version": 1}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, doc.Roots[RootBookmarkBar])
			assert.Equal(t, "repo", doc.Roots[RootBookmarkBar].Children[0].Name)
		})
	}
}

func TestMaxIDCoversFolders(t *testing.T) {
	doc, err := Parse([]byte(sampleStore))
	require.NoError(t, err)
	assert.Equal(t, int64(17), doc.MaxID())

	// Folder ids count too, even when larger than every url id.
	doc.Roots[RootOther].ID = "99"
	assert.Equal(t, int64(99), doc.MaxID())

	// Non-numeric ids are ignored.
	doc.Roots[RootOther].ID = "not-a-number"
	assert.Equal(t, int64(17), doc.MaxID())
}

func TestIDGenerator(t *testing.T) {
	doc, err := Parse([]byte(sampleStore))
	require.NoError(t, err)

	gen := NewIDGenerator(doc)
	assert.Equal(t, "18", gen.Next())
	assert.Equal(t, "19", gen.Next())
	assert.Equal(t, "20", gen.Next())
}

func TestTimestamps(t *testing.T) {
	at := time.Unix(1700000000, 0)
	ts := FormatTimestamp(at)
	assert.Equal(t, "13344473600000000", ts)
	assert.Equal(t, int64(1700000000), TimestampToUnix(ts))

	assert.Zero(t, TimestampToUnix("0"))
	assert.Zero(t, TimestampToUnix(""))
	assert.Zero(t, TimestampToUnix("garbage"))
}

func TestChecksum(t *testing.T) {
	doc, err := Parse([]byte(sampleStore))
	require.NoError(t, err)

	sum := doc.ComputeChecksum()
	assert.Len(t, sum, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", sum)
	assert.Equal(t, sum, doc.ComputeChecksum(), "digest must be deterministic")

	// The digest covers structure: changing a url changes it.
	doc.Roots[RootBookmarkBar].Children[0].URL = "https://github.com/x/z"
	assert.NotEqual(t, sum, doc.ComputeChecksum())

	// Non-canonical roots are not part of the digest.
	doc.Roots[RootBookmarkBar].Children[0].URL = "https://github.com/x/y"
	doc.Roots["custom"] = &Node{Type: TypeFolder, Name: "custom", ID: "50"}
	assert.Equal(t, sum, doc.ComputeChecksum())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	doc, err := Parse([]byte(sampleStore))
	require.NoError(t, err)
	doc.Checksum = doc.ComputeChecksum()

	path := filepath.Join(t.TempDir(), "Bookmarks")
	require.NoError(t, doc.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"bookmark_bar"`)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Checksum, got.Checksum)
	assert.Equal(t, "repo", got.Roots[RootBookmarkBar].Children[0].Name)
	assert.Equal(t, "g-17", got.Roots[RootBookmarkBar].Children[0].GUID)
}

func TestSaveKeepsChildrenKeyOnEmptyFolders(t *testing.T) {
	doc, err := Parse([]byte(sampleStore))
	require.NoError(t, err)

	// A cleared root, a root that was never populated and an empty
	// synthesized folder must all keep their children list.
	doc.Roots[RootOther].Children = []*Node{}
	doc.Roots[RootSynced].Children = nil
	doc.Roots[RootBookmarkBar].Children = append(doc.Roots[RootBookmarkBar].Children,
		&Node{Type: TypeFolder, Name: "Empty", ID: "20", GUID: "g-20"})

	path := filepath.Join(t.TempDir(), "Bookmarks")
	require.NoError(t, doc.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// One children key per folder (three roots plus the empty folder);
	// the url node must not grow one.
	assert.Equal(t, 4, strings.Count(string(data), `"children"`))
	assert.Contains(t, string(data), `"children": []`)

	got, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, got.Roots[RootOther].Children)
	assert.Empty(t, got.Roots[RootOther].Children)
}

func TestIsFolder(t *testing.T) {
	assert.True(t, (&Node{Type: TypeFolder}).IsFolder())
	assert.False(t, (&Node{Type: TypeURL, URL: "https://example.com"}).IsFolder())
	// Untyped nodes with children and no url are treated as folders.
	assert.True(t, (&Node{Children: []*Node{{}}}).IsFolder())
	assert.False(t, (&Node{URL: "https://example.com"}).IsFolder())
}
