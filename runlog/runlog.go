// Package runlog keeps an SQLite history of generation runs, so the CLI
// can show what was generated when and skip regeneration for unchanged
// sources.
package runlog

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one generation attempt, successful or not.
type Run struct {
	ID          string
	SourcePath  string
	SourceHash  string
	OutputPath  string
	GeneratedAt time.Time
	OK          bool
	Diagnostic  string
}

// Log is an append-only run history backed by SQLite.
type Log struct {
	db *sql.DB
}

// Open opens (or creates) the run log database at the given path.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open run log: %w", err)
	}

	log := &Log{db: db}
	if err := log.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate run log: %w", err)
	}
	return log, nil
}

func (l *Log) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source_path TEXT NOT NULL,
		source_hash TEXT NOT NULL,
		output_path TEXT NOT NULL,
		generated_at DATETIME NOT NULL,
		ok INTEGER NOT NULL,
		diagnostic TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source_path, generated_at);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Record appends a run. A zero ID or timestamp is filled in.
func (l *Log) Record(run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.GeneratedAt.IsZero() {
		run.GeneratedAt = time.Now().UTC()
	}

	_, err := l.db.Exec(`
		INSERT INTO runs (id, source_path, source_hash, output_path, generated_at, ok, diagnostic)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.SourcePath, run.SourceHash, run.OutputPath,
		run.GeneratedAt, run.OK, run.Diagnostic)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}
	return run, nil
}

// Last returns the most recent run for the given source path, or false if
// the source has never been processed.
func (l *Log) Last(sourcePath string) (Run, bool, error) {
	row := l.db.QueryRow(`
		SELECT id, source_path, source_hash, output_path, generated_at, ok, diagnostic
		FROM runs WHERE source_path = ?
		ORDER BY generated_at DESC, rowid DESC LIMIT 1`, sourcePath)

	var run Run
	err := row.Scan(&run.ID, &run.SourcePath, &run.SourceHash, &run.OutputPath,
		&run.GeneratedAt, &run.OK, &run.Diagnostic)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, fmt.Errorf("query last run: %w", err)
	}
	return run, true, nil
}

// Unchanged reports whether the most recent successful run for the source
// used the same content hash, i.e. regeneration would be a no-op.
func (l *Log) Unchanged(sourcePath, sourceHash string) (bool, error) {
	last, ok, err := l.Last(sourcePath)
	if err != nil || !ok {
		return false, err
	}
	return last.OK && last.SourceHash == sourceHash, nil
}

// Close closes the underlying database.
func (l *Log) Close() error {
	return l.db.Close()
}

// HashSource returns the hex sha256 digest of source text, the key used
// for change detection.
func HashSource(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}
