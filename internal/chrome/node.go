package chrome

import "encoding/json"

// Node types used in the bookmark store document.
const (
	TypeURL    = "url"
	TypeFolder = "folder"
)

// The three canonical top-level roots of a Chrome bookmarks file.
const (
	RootBookmarkBar = "bookmark_bar"
	RootOther       = "other"
	RootSynced      = "synced"
)

// CanonicalRoots lists the roots in the fixed order the checksum walks them.
var CanonicalRoots = []string{RootBookmarkBar, RootOther, RootSynced}

// IsCanonicalRoot reports whether name is one of the three canonical roots.
func IsCanonicalRoot(name string) bool {
	for _, r := range CanonicalRoots {
		if name == r {
			return true
		}
	}
	return false
}

// Node is a single entry in the bookmark store: a folder or a url leaf.
// Fields are declared in alphabetical order so the JSON encoder emits
// keys the way the browser writes them.
type Node struct {
	Children     []*Node `json:"children,omitempty"`
	DateAdded    string  `json:"date_added,omitempty"`
	DateLastUsed string  `json:"date_last_used,omitempty"`
	DateModified string  `json:"date_modified,omitempty"`
	GUID         string  `json:"guid,omitempty"`
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Type         string  `json:"type,omitempty"`
	URL          string  `json:"url,omitempty"`
}

// MarshalJSON emits folder nodes with a children list even when it is
// empty, and url nodes without one. The browser's codec requires the
// list on every folder and treats the file as corrupt without it, so
// omitempty alone cannot produce the right shape.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.IsFolder() {
		type folderNode struct {
			Children     []*Node `json:"children"`
			DateAdded    string  `json:"date_added,omitempty"`
			DateLastUsed string  `json:"date_last_used,omitempty"`
			DateModified string  `json:"date_modified,omitempty"`
			GUID         string  `json:"guid,omitempty"`
			ID           string  `json:"id,omitempty"`
			Name         string  `json:"name"`
			Type         string  `json:"type,omitempty"`
		}
		children := n.Children
		if children == nil {
			children = []*Node{}
		}
		return json.Marshal(folderNode{
			Children:     children,
			DateAdded:    n.DateAdded,
			DateLastUsed: n.DateLastUsed,
			DateModified: n.DateModified,
			GUID:         n.GUID,
			ID:           n.ID,
			Name:         n.Name,
			Type:         n.Type,
		})
	}

	type urlNode struct {
		DateAdded    string `json:"date_added,omitempty"`
		DateLastUsed string `json:"date_last_used,omitempty"`
		DateModified string `json:"date_modified,omitempty"`
		GUID         string `json:"guid,omitempty"`
		ID           string `json:"id,omitempty"`
		Name         string `json:"name"`
		Type         string `json:"type,omitempty"`
		URL          string `json:"url,omitempty"`
	}
	return json.Marshal(urlNode{
		DateAdded:    n.DateAdded,
		DateLastUsed: n.DateLastUsed,
		DateModified: n.DateModified,
		GUID:         n.GUID,
		ID:           n.ID,
		Name:         n.Name,
		Type:         n.Type,
		URL:          n.URL,
	})
}

// IsFolder reports whether the node is a folder. Nodes without an explicit
// type are treated as folders unless they carry a url.
func (n *Node) IsFolder() bool {
	if n.Type == TypeFolder {
		return true
	}
	return n.Type == "" && n.URL == ""
}
