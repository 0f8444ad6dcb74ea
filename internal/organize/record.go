package organize

import (
	"bookmarks-organizer/internal/chrome"
)

// Record is one bookmark pulled out of the source document together with
// where it was found. It is read-only after collection.
type Record struct {
	Node       *chrome.Node
	RootName   string
	SourcePath []string
}

// Collect flattens every url node under the given source roots, in
// document order. Folder structure is remembered on each record but
// otherwise discarded.
func Collect(doc *chrome.Document, sourceRoots []string) []*Record {
	var records []*Record
	for _, rootName := range sourceRoots {
		root := doc.Roots[rootName]
		if root == nil {
			continue
		}

		var walk func(n *chrome.Node, path []string)
		walk = func(n *chrome.Node, path []string) {
			for _, c := range n.Children {
				if c.IsFolder() {
					walk(c, append(path, c.Name))
					continue
				}
				records = append(records, &Record{
					Node:       c,
					RootName:   rootName,
					SourcePath: append([]string(nil), path...),
				})
			}
		}
		walk(root, nil)
	}
	return records
}
