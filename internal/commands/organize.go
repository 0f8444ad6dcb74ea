package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"bookmarks-organizer/internal/backup"
	"bookmarks-organizer/internal/chrome"
	"bookmarks-organizer/internal/config"
	"bookmarks-organizer/internal/export"
	"bookmarks-organizer/internal/history"
	"bookmarks-organizer/internal/logger"
	"bookmarks-organizer/internal/organize"
)

// OrganizeCommand classifies a bookmarks file and reports, applies or
// exports the result.
type OrganizeCommand struct {
	cfg  *config.Config
	hist history.Repository
	log  logger.Logger
}

// OrganizeOptions are the per-invocation knobs.
type OrganizeOptions struct {
	StorePath  string
	Apply      bool
	ExportPath string
	BackupDir  string
}

// NewOrganizeCommand creates a new organize command. hist may be nil when
// run history is disabled.
func NewOrganizeCommand(cfg *config.Config, hist history.Repository, log logger.Logger) *OrganizeCommand {
	return &OrganizeCommand{cfg: cfg, hist: hist, log: log}
}

// Execute runs the strictly sequential pipeline: read document, compute,
// then optionally backup, write the destination and write the export.
// The backup must succeed before the bookmarks file is overwritten.
func (c *OrganizeCommand) Execute(opts OrganizeOptions) error {
	doc, err := chrome.Load(opts.StorePath)
	if err != nil {
		return err
	}

	org := organize.New(c.cfg, c.log)
	res := org.Run(doc)
	c.printReport(res.Report)

	if opts.Apply {
		backupPath, err := backup.Copy(opts.StorePath, opts.BackupDir)
		if err != nil {
			return fmt.Errorf("backup failed, aborting: %w", err)
		}
		c.log.Info("backup written", logger.String("path", backupPath))

		if err := org.Apply(doc, res); err != nil {
			return err
		}
		if err := doc.Save(opts.StorePath); err != nil {
			return err
		}
		fmt.Printf("Organized %d bookmarks into %s\n", res.Report.Total, opts.StorePath)

		c.recordRun(opts, doc, res, backupPath)
	} else if opts.ExportPath == "" {
		fmt.Println("Dry run: nothing written. Use -apply to write the result back.")
	}

	if opts.ExportPath != "" {
		markup := export.Render(res.Children)
		if err := os.WriteFile(opts.ExportPath, []byte(markup), 0644); err != nil {
			return fmt.Errorf("cannot write export file: %w", err)
		}
		fmt.Printf("Exported %d bookmarks to %s\n", res.Report.Total, opts.ExportPath)
	}

	return nil
}

// recordRun saves the applied run to the history catalog. Failures are
// logged, not fatal: the bookmarks file is already safely written.
func (c *OrganizeCommand) recordRun(opts OrganizeOptions, doc *chrome.Document, res *organize.Result, backupPath string) {
	if c.hist == nil {
		return
	}
	reportJSON, err := json.Marshal(res.Report.Sorted())
	if err != nil {
		reportJSON = []byte("[]")
	}
	run := &history.Run{
		RanAt:      time.Now(),
		StorePath:  opts.StorePath,
		BackupPath: backupPath,
		Checksum:   doc.Checksum,
		Total:      res.Report.Total,
		Report:     string(reportJSON),
	}
	if err := c.hist.Record(run); err != nil {
		c.log.Warn("failed to record run history", logger.Error(err))
	}
}

func (c *OrganizeCommand) printReport(r *organize.Report) {
	fmt.Printf("Classified %d bookmarks:\n", r.Total)
	for _, row := range r.Sorted() {
		fmt.Printf("  %5d  %s\n", row.Count, row.Path)
	}
}
