package chrome

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"unicode/utf16"
)

// ComputeChecksum recomputes the structural digest the browser uses to
// detect out-of-band edits: MD5 over the three canonical roots in fixed
// order. Each node mixes its id, its name as UTF-16LE code units and a
// type tag; url nodes additionally mix the url text; folders hash their
// own fields before their children. The digest covers neither the
// checksum field itself nor any other document fields.
func (d *Document) ComputeChecksum() string {
	h := md5.New()
	for _, name := range CanonicalRoots {
		if root, ok := d.Roots[name]; ok {
			checksumNode(h, root)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func checksumNode(h hash.Hash, n *Node) {
	h.Write([]byte(n.ID))
	h.Write(utf16leBytes(n.Name))
	if n.Type == TypeURL {
		h.Write([]byte(TypeURL))
		h.Write([]byte(n.URL))
		return
	}
	h.Write([]byte(TypeFolder))
	for _, c := range n.Children {
		checksumNode(h, c)
	}
}

func utf16leBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, 0, len(units)*2)
	for _, u := range units {
		buf = append(buf, byte(u), byte(u>>8))
	}
	return buf
}
