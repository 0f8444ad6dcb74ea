package organize

import (
	"bookmarks-organizer/internal/config"
)

// category is one compiled node of the category forest.
type category struct {
	name     string
	match    *matcher // nil when the node only groups children
	children []*category
}

// compileForest compiles the configured categories once per run, so
// regex patterns are not recompiled per bookmark.
func compileForest(nodes []config.CategoryNode) []*category {
	compiled := make([]*category, 0, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		c := &category{
			name:     n.Name,
			children: compileForest(n.Children),
		}
		if n.Match != nil {
			c.match = newMatcher(n.Match)
		}
		compiled = append(compiled, c)
	}
	return compiled
}

// resolve walks the forest depth-first, children before the node's own
// rule, first match wins. The deepest applicable category on a branch
// therefore always beats a broader parent rule, so a parent can carry a
// catch-all while sub-rules still route to its children.
func resolve(forest []*category, f fields) ([]string, bool) {
	for _, c := range forest {
		if path, ok := c.resolve(nil, f); ok {
			return path, true
		}
	}
	return nil, false
}

func (c *category) resolve(prefix []string, f fields) ([]string, bool) {
	path := append(append([]string(nil), prefix...), c.name)
	for _, child := range c.children {
		if p, ok := child.resolve(path, f); ok {
			return p, true
		}
	}
	if c.match != nil && c.match.matches(f) {
		return path, true
	}
	return nil, false
}
