package organize

import (
	"sort"
	"strings"

	"bookmarks-organizer/internal/chrome"
)

// FolderTree accumulates classified bookmarks into an ordered folder
// hierarchy before it is lowered into store nodes. Sibling folders keep
// first-seen order; a map index gives O(1) lookup by name.
type FolderTree struct {
	order     []string
	folders   map[string]*FolderTree
	bookmarks []*Record
}

// NewFolderTree returns an empty accumulator.
func NewFolderTree() *FolderTree {
	return &FolderTree{folders: make(map[string]*FolderTree)}
}

// EnsurePath walks the tree creating missing folders and returns the
// leaf. Idempotent: calling it twice with the same path changes nothing.
func (t *FolderTree) EnsurePath(path []string) *FolderTree {
	cur := t
	for _, name := range path {
		next, ok := cur.folders[name]
		if !ok {
			next = NewFolderTree()
			cur.folders[name] = next
			cur.order = append(cur.order, name)
		}
		cur = next
	}
	return cur
}

// Add appends a bookmark to this folder in collection order.
func (t *FolderTree) Add(r *Record) {
	t.bookmarks = append(t.bookmarks, r)
}

// SortBookmarks orders every folder's bookmarks case-insensitively by
// name, recursively. Equal names keep their original relative order.
// Folders are never resorted: their order expresses config intent.
func (t *FolderTree) SortBookmarks() {
	sort.SliceStable(t.bookmarks, func(i, j int) bool {
		return strings.ToLower(t.bookmarks[i].Node.Name) < strings.ToLower(t.bookmarks[j].Node.Name)
	})
	for _, name := range t.order {
		t.folders[name].SortBookmarks()
	}
}

// Lower converts the accumulated tree into store nodes: folders first in
// insertion order, then bookmark leaves. Every synthesized folder gets a
// fresh id from gen, a fresh guid and the given timestamp.
func (t *FolderTree) Lower(gen *chrome.IDGenerator, now string) []*chrome.Node {
	nodes := make([]*chrome.Node, 0, len(t.order)+len(t.bookmarks))
	for _, name := range t.order {
		sub := t.folders[name]
		nodes = append(nodes, &chrome.Node{
			Children:     sub.Lower(gen, now),
			DateAdded:    now,
			DateLastUsed: "0",
			DateModified: now,
			GUID:         chrome.NewGUID(),
			ID:           gen.Next(),
			Name:         name,
			Type:         chrome.TypeFolder,
		})
	}
	for _, r := range t.bookmarks {
		nodes = append(nodes, sanitize(r.Node))
	}
	return nodes
}

// sanitize copies a url node and fills required-but-possibly-absent
// fields. Identifier, timestamps and url are preserved verbatim; the
// original node is left untouched.
func sanitize(n *chrome.Node) *chrome.Node {
	cp := *n
	cp.Type = chrome.TypeURL
	if cp.GUID == "" {
		cp.GUID = chrome.NewGUID()
	}
	if cp.DateLastUsed == "" {
		cp.DateLastUsed = "0"
	}
	return &cp
}
