package commands

import (
	"fmt"
	"time"

	"bookmarks-organizer/internal/history"
)

// HistoryCommand lists recorded organize runs.
type HistoryCommand struct {
	hist history.Repository
}

// NewHistoryCommand creates a new history command
func NewHistoryCommand(hist history.Repository) *HistoryCommand {
	return &HistoryCommand{hist: hist}
}

// Execute prints the most recent applied runs, newest first.
func (c *HistoryCommand) Execute(limit int) error {
	runs, err := c.hist.List(limit)
	if err != nil {
		return fmt.Errorf("failed to read run history: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  total=%d  checksum=%s\n  backup: %s\n",
			r.RanAt.Format(time.RFC3339), r.StorePath, r.Total, r.Checksum, r.BackupPath)
	}
	return nil
}
