// Package backup copies the bookmarks file aside before it is
// overwritten. The backup is the sole recovery path, so callers must
// abort the run when Copy fails.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Copy writes a timestamped copy of the store file into dir and returns
// the backup path.
func Copy(storePath, dir string) (string, error) {
	data, err := os.ReadFile(storePath)
	if err != nil {
		return "", fmt.Errorf("cannot read bookmarks file: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create backup directory: %w", err)
	}

	name := fmt.Sprintf("%s.%s.bak", filepath.Base(storePath), time.Now().Format("20060102-150405"))
	dst := filepath.Join(dir, name)
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("cannot write backup: %w", err)
	}
	return dst, nil
}
