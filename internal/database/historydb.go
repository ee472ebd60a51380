package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/olocus/seolint/internal/model"
)

// HistoryDB provides SQLite-based storage for validation run history.
// It manages connection pooling and provides methods for saving runs and
// querying them for comparison.
//
// Design decision: We store per-file counts rather than full report text.
// Reports are cheap to regenerate from the files themselves; the history
// only needs enough to answer "what changed between runs".
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is
// returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "seolint.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite distinguishes create and read-write modes via the DSN.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Runs store one row per invocation of the check command
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		root TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		total INTEGER NOT NULL,
		passed INTEGER NOT NULL,
		failed INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_root ON runs(root);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);

	-- File results store per-file outcomes for each run.
	-- Rows are keyed by path relative to the run root, not by file name:
	-- root and templates/ can both hold an index.html.
	CREATE TABLE IF NOT EXISTS file_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		path TEXT NOT NULL,
		file_name TEXT NOT NULL,
		passed INTEGER NOT NULL,
		pass_count INTEGER NOT NULL,
		warning_count INTEGER NOT NULL,
		error_count INTEGER NOT NULL,
		UNIQUE(run_id, path)
	);

	CREATE INDEX IF NOT EXISTS idx_file_results_run ON file_results(run_id);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// RunRecord is a stored validation run.
type RunRecord struct {
	// ID is the run's database identifier.
	ID int64 `json:"id"`

	// Root is the target the run was invoked against.
	Root string `json:"root"`

	// Timestamp is when the run was recorded.
	Timestamp time.Time `json:"timestamp"`

	// Total is the number of files checked.
	Total int `json:"total"`

	// Passed is the number of files that passed.
	Passed int `json:"passed"`

	// Failed is the number of files that failed.
	Failed int `json:"failed"`

	// Files holds the per-file outcomes, loaded on demand.
	Files []model.FileResult `json:"files,omitempty"`
}

// SaveRun records a run and its per-file outcomes in one transaction.
// Returns the new run's ID.
func (hdb *HistoryDB) SaveRun(ctx context.Context, root string, summary *model.RunSummary) (int64, error) {
	tx, err := hdb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after commit is a no-op

	result, err := tx.ExecContext(ctx,
		`INSERT INTO runs (root, total, passed, failed) VALUES (?, ?, ?, ?)`,
		root, len(summary.Results), summary.PassedCount(), summary.FailedCount(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	for _, res := range summary.Results {
		path := relativePath(root, res)
		_, err := tx.ExecContext(ctx,
			`INSERT INTO file_results (run_id, path, file_name, passed, pass_count, warning_count, error_count)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(run_id, path) DO UPDATE SET
				file_name = excluded.file_name,
				passed = excluded.passed,
				pass_count = excluded.pass_count,
				warning_count = excluded.warning_count,
				error_count = excluded.error_count`,
			runID, path, res.FileName, boolToInt(res.Passed), res.PassCount, res.WarningCount, res.ErrorCount,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert file result for %s: %w", path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// ListRuns returns the most recent runs for a root, newest first.
// A limit of 0 returns all runs.
func (hdb *HistoryDB) ListRuns(ctx context.Context, root string, limit int) ([]*RunRecord, error) {
	query := `
	SELECT id, root, timestamp, total, passed, failed
	FROM runs
	WHERE root = ?
	ORDER BY timestamp DESC, id DESC
	`
	args := []any{root}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor

	runs := make([]*RunRecord, 0)
	for rows.Next() {
		var run RunRecord
		var timestamp string
		if err := rows.Scan(&run.ID, &run.Root, &timestamp, &run.Total, &run.Passed, &run.Failed); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Timestamp = parseTimestamp(timestamp)
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// GetRun returns a run with its per-file outcomes, or nil if not found.
func (hdb *HistoryDB) GetRun(ctx context.Context, runID int64) (*RunRecord, error) {
	var run RunRecord
	var timestamp string

	err := hdb.db.QueryRowContext(ctx,
		`SELECT id, root, timestamp, total, passed, failed FROM runs WHERE id = ?`,
		runID,
	).Scan(&run.ID, &run.Root, &timestamp, &run.Total, &run.Passed, &run.Failed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	run.Timestamp = parseTimestamp(timestamp)

	rows, err := hdb.db.QueryContext(ctx,
		`SELECT path, file_name, passed, pass_count, warning_count, error_count
		 FROM file_results WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get file results: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor

	for rows.Next() {
		var res model.FileResult
		var passed int
		if err := rows.Scan(&res.Path, &res.FileName, &passed, &res.PassCount, &res.WarningCount, &res.ErrorCount); err != nil {
			return nil, fmt.Errorf("failed to scan file result: %w", err)
		}
		res.Passed = passed != 0
		run.Files = append(run.Files, res)
	}

	return &run, rows.Err()
}

// LatestRuns returns up to n most recent runs for a root, with per-file
// outcomes loaded, newest first.
func (hdb *HistoryDB) LatestRuns(ctx context.Context, root string, n int) ([]*RunRecord, error) {
	runs, err := hdb.ListRuns(ctx, root, n)
	if err != nil {
		return nil, err
	}

	full := make([]*RunRecord, 0, len(runs))
	for _, run := range runs {
		loaded, err := hdb.GetRun(ctx, run.ID)
		if err != nil {
			return nil, err
		}
		full = append(full, loaded)
	}

	return full, nil
}

// ListRoots returns the distinct targets recorded in the database.
func (hdb *HistoryDB) ListRoots(ctx context.Context) ([]string, error) {
	rows, err := hdb.db.QueryContext(ctx,
		`SELECT DISTINCT root FROM runs ORDER BY root`)
	if err != nil {
		return nil, fmt.Errorf("failed to list roots: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor

	roots := make([]string, 0)
	for rows.Next() {
		var root string
		if err := rows.Scan(&root); err != nil {
			return nil, fmt.Errorf("failed to scan root: %w", err)
		}
		roots = append(roots, root)
	}

	return roots, rows.Err()
}

// relativePath normalizes a file result into its storage key: the path
// relative to the run root. Results without a path (or outside the root,
// as with explicit file targets) fall back to the path as checked, then
// to the basename.
func relativePath(root string, res model.FileResult) string {
	if res.Path == "" {
		return res.FileName
	}

	abs, err := filepath.Abs(res.Path)
	if err != nil {
		return res.Path
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return res.Path
	}
	return rel
}

// parseTimestamp parses the timestamp formats SQLite may return depending
// on version and configuration.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006-01-02T15:04:05Z",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// boolToInt converts a bool to the 0/1 integer SQLite stores.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
