package history

import "time"

// Run is one applied organize run.
type Run struct {
	ID         int
	RanAt      time.Time
	StorePath  string
	BackupPath string
	Checksum   string
	Total      int
	Report     string // per-path counts, JSON-encoded
}

// Repository stores applied-run records.
type Repository interface {
	Record(run *Run) error
	List(limit int) ([]Run, error)
	Close() error
}
