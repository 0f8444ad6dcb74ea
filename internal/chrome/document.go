package chrome

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Document is the host bookmark store: a version, the canonical roots and
// a structural checksum over them.
type Document struct {
	Checksum string           `json:"checksum,omitempty"`
	Roots    map[string]*Node `json:"roots"`
	Version  int              `json:"version"`
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse decodes a bookmark store document, tolerating a UTF-8 BOM prefix.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse bookmarks file: %w", err)
	}
	if doc.Roots == nil {
		return nil, errors.New("bookmarks file has no roots")
	}
	return &doc, nil
}

// Load reads and parses a bookmark store file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read bookmarks file: %w", err)
	}
	return Parse(data)
}

// Save writes the document back with the browser's three-space indent.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "   ")
	if err != nil {
		return fmt.Errorf("cannot encode bookmarks file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write bookmarks file: %w", err)
	}
	return nil
}

// MaxID returns the largest numeric node id anywhere in the document,
// folders included. Non-numeric ids are ignored.
func (d *Document) MaxID() int64 {
	var max int64
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if id, err := strconv.ParseInt(n.ID, 10, 64); err == nil && id > max {
			max = id
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, root := range d.Roots {
		walk(root)
	}
	return max
}
