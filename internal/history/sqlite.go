package history

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (and if needed initializes) a run-history database.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func initSchema(db *sql.DB) error {
	createTables := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ran_at TIMESTAMP NOT NULL,
		store_path TEXT NOT NULL,
		backup_path TEXT,
		checksum TEXT,
		total INTEGER NOT NULL,
		report TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_ran_at ON runs(ran_at);
	`
	_, err := db.Exec(createTables)
	return err
}

// Record inserts one applied run and fills in its assigned id.
func (r *SQLiteRepository) Record(run *Run) error {
	res, err := r.db.Exec(
		`INSERT INTO runs(ran_at, store_path, backup_path, checksum, total, report) VALUES (?, ?, ?, ?, ?, ?)`,
		run.RanAt, run.StorePath, run.BackupPath, run.Checksum, run.Total, run.Report,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	run.ID = int(id)
	return nil
}

// List returns the most recent runs, newest first.
func (r *SQLiteRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT id, ran_at, store_path, backup_path, checksum, total, report
		FROM runs
		ORDER BY ran_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.RanAt, &run.StorePath, &run.BackupPath, &run.Checksum, &run.Total, &run.Report); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
