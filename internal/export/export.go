// Package export renders a node tree as a Netscape bookmark file.
// The format is write-only here; there is no importer.
package export

import (
	"fmt"
	"html"
	"strings"

	"bookmarks-organizer/internal/chrome"
)

// Render produces a Netscape-bookmark-file-compatible document for the
// given nodes. Folder add/modified dates are converted from the store's
// 1601 epoch to Unix seconds and omitted when zero or unparseable.
func Render(nodes []*chrome.Node) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")
	for _, n := range nodes {
		writeNode(&b, n, 1)
	}
	b.WriteString("</DL><p>\n")
	return b.String()
}

func writeNode(b *strings.Builder, n *chrome.Node, depth int) {
	pad := strings.Repeat("    ", depth)

	if n.Type == chrome.TypeFolder {
		b.WriteString(pad)
		b.WriteString("<DT><H3")
		if ts := chrome.TimestampToUnix(n.DateAdded); ts > 0 {
			fmt.Fprintf(b, " ADD_DATE=\"%d\"", ts)
		}
		if ts := chrome.TimestampToUnix(n.DateModified); ts > 0 {
			fmt.Fprintf(b, " LAST_MODIFIED=\"%d\"", ts)
		}
		fmt.Fprintf(b, ">%s</H3>\n", html.EscapeString(n.Name))

		b.WriteString(pad)
		b.WriteString("<DL><p>\n")
		for _, c := range n.Children {
			writeNode(b, c, depth+1)
		}
		b.WriteString(pad)
		b.WriteString("</DL><p>\n")
		return
	}

	b.WriteString(pad)
	fmt.Fprintf(b, "<DT><A HREF=\"%s\"", html.EscapeString(n.URL))
	if ts := chrome.TimestampToUnix(n.DateAdded); ts > 0 {
		fmt.Fprintf(b, " ADD_DATE=\"%d\"", ts)
	}
	fmt.Fprintf(b, ">%s</A>\n", html.EscapeString(n.Name))
}
