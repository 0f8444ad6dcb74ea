package organize

import (
	"fmt"

	"bookmarks-organizer/internal/chrome"
	"bookmarks-organizer/internal/config"
	"bookmarks-organizer/internal/logger"
)

// Organizer runs the classification pass and rebuilds the destination
// tree. It never mutates the source document; only Apply does.
type Organizer struct {
	cfg    *config.Config
	forest []*category
	log    logger.Logger
}

// New compiles the configured category forest into an Organizer.
func New(cfg *config.Config, log logger.Logger) *Organizer {
	return &Organizer{
		cfg:    cfg,
		forest: compileForest(cfg.Categories),
		log:    log,
	}
}

// Result is the outcome of one organize run before it is applied.
type Result struct {
	// Children are the rebuilt top-level children for the destination
	// root, already wrapped when an organized folder name is configured.
	Children []*chrome.Node
	Report   *Report
}

// Run classifies every bookmark under the configured source roots and
// lowers the rebuilt tree. Classification is total: a bookmark no rule
// matches goes to the configured default path. Zero matches is a valid
// outcome, not an error.
func (o *Organizer) Run(doc *chrome.Document) *Result {
	records := Collect(doc, o.cfg.SourceRoots)
	o.log.Debug("collected bookmarks", logger.Int("count", len(records)))

	tree := NewFolderTree()
	if o.cfg.IncludeEmpty() {
		declareCategoryPaths(tree, o.forest, nil)
	}

	report := NewReport()
	for _, r := range records {
		f := deriveFields(r)
		path, ok := resolve(o.forest, f)
		if !ok {
			path = o.cfg.DefaultPath
		}
		tree.EnsurePath(path).Add(r)
		report.Count(path)
	}
	tree.SortBookmarks()

	gen := chrome.NewIDGenerator(doc)
	now := chrome.NowTimestamp()
	children := tree.Lower(gen, now)

	if name := o.cfg.WrapperName(); name != "" {
		children = []*chrome.Node{{
			Children:     children,
			DateAdded:    now,
			DateLastUsed: "0",
			DateModified: now,
			GUID:         chrome.NewGUID(),
			ID:           gen.Next(),
			Name:         name,
			Type:         chrome.TypeFolder,
		}}
	}

	return &Result{Children: children, Report: report}
}

// declareCategoryPaths pre-creates every folder the category forest can
// route to, in pre-order, so empty categories still show up in the
// output tree.
func declareCategoryPaths(tree *FolderTree, forest []*category, prefix []string) {
	for _, c := range forest {
		path := append(append([]string(nil), prefix...), c.name)
		tree.EnsurePath(path)
		declareCategoryPaths(tree, c.children, path)
	}
}

// Apply splices the rebuilt children into the destination root, clears
// every other source root and recomputes the document checksum. It is
// the only step that mutates the document and runs only after the whole
// tree is built.
func (o *Organizer) Apply(doc *chrome.Document, res *Result) error {
	dest := doc.Roots[o.cfg.DestinationRoot]
	if dest == nil {
		return fmt.Errorf("destination root %q not found in bookmarks file", o.cfg.DestinationRoot)
	}

	now := chrome.NowTimestamp()
	dest.Children = res.Children
	dest.DateModified = now

	for _, name := range o.cfg.SourceRoots {
		if name == o.cfg.DestinationRoot {
			continue
		}
		if root := doc.Roots[name]; root != nil {
			root.Children = []*chrome.Node{}
			root.DateModified = now
		}
	}

	doc.Checksum = doc.ComputeChecksum()
	return nil
}
