package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"bookmarks-organizer/internal/commands"
	"bookmarks-organizer/internal/config"
	"bookmarks-organizer/internal/history"
	"bookmarks-organizer/internal/logger"
)

func main() {
	configPath := flag.String("config", "organizer.json", "Path to category configuration file (JSON or YAML)")
	storePath := flag.String("file", "", "Path to the Chrome Bookmarks file")
	apply := flag.Bool("apply", false, "Write the organized result back to the bookmarks file")
	exportPath := flag.String("export", "", "Path to write a Netscape bookmark HTML export")
	backupDir := flag.String("backup-dir", "", "Directory for backups (default: alongside the bookmarks file)")
	dbPath := flag.String("db", "", "Path to run-history database (default: ~/.bookmarks-organizer/history.db)")
	showHistory := flag.Bool("history", false, "List recorded runs and exit")
	historyLimit := flag.Int("history-limit", 20, "Max runs to list with -history")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	prettyLog := flag.Bool("pretty-log", true, "Human-readable colored logs instead of JSON")
	flag.Parse()

	log := logger.New(*logLevel, *prettyLog)
	defer log.Sync()

	// Handle history command
	if *showHistory {
		hist, err := openHistory(*dbPath)
		if err != nil {
			log.Fatal("failed to open history database", logger.Error(err))
		}
		defer hist.Close()
		if err := commands.NewHistoryCommand(hist).Execute(*historyLimit); err != nil {
			log.Fatal("history failed", logger.Error(err))
		}
		return
	}

	if *storePath == "" {
		fmt.Fprintln(os.Stderr, "missing required -file flag")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("invalid configuration", logger.Error(err))
	}

	dir := *backupDir
	if dir == "" {
		dir = filepath.Dir(*storePath)
	}

	// Only applied runs are recorded, so dry-run and export-only
	// invocations never touch the history database.
	var hist history.Repository
	if *apply {
		repo, err := openHistory(*dbPath)
		if err != nil {
			log.Fatal("failed to open history database", logger.Error(err))
		}
		defer repo.Close()
		hist = repo
	}

	cmd := commands.NewOrganizeCommand(cfg, hist, log)
	if err := cmd.Execute(commands.OrganizeOptions{
		StorePath:  *storePath,
		Apply:      *apply,
		ExportPath: *exportPath,
		BackupDir:  dir,
	}); err != nil {
		log.Fatal("organize failed", logger.Error(err))
	}
}

// openHistory opens the run-history database, creating its directory on
// first use.
func openHistory(dbPath string) (*history.SQLiteRepository, error) {
	if dbPath == "" {
		dbPath = config.DefaultHistoryPath()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}
	return history.NewSQLiteRepository(dbPath)
}
