// Package index is an optional sqlite archive for conversion runs. Each run
// stores its source path and the records it produced; a full-text index over
// commands and outputs makes old runs searchable.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/user/termscribe/internal/transcript"
)

type DB struct {
	conn *sql.DB
}

func Open(ctx context.Context, path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory %q: %w", dir, err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &DB{conn: conn}, nil
}

func (d *DB) SQL() *sql.DB {
	return d.conn
}

func (d *DB) Close() error {
	if d == nil || d.conn == nil {
		return nil
	}
	return d.conn.Close()
}

// Run is one archived conversion.
type Run struct {
	ID          int64
	SourcePath  string
	CreatedAt   time.Time
	RecordCount int
}

// ArchiveRun stores one conversion and its records atomically and returns the
// new run id.
func (d *DB) ArchiveRun(ctx context.Context, sourcePath string, records []transcript.Record) (int64, error) {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin archive transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (source_path, created_at, record_count) VALUES (?, ?, ?)`,
		sourcePath, time.Now().UTC().Format(time.RFC3339), len(records))
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for _, rec := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO records (run_id, record_id, command, output) VALUES (?, ?, ?, ?)`,
			runID, rec.ID, rec.Command, rec.Output); err != nil {
			return 0, fmt.Errorf("insert record %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit archive transaction: %w", err)
	}
	return runID, nil
}

// Records returns the records of one run in emission order.
func (d *DB) Records(ctx context.Context, runID int64) ([]transcript.Record, error) {
	rows, err := d.conn.QueryContext(ctx,
		`SELECT record_id, command, output FROM records WHERE run_id = ? ORDER BY CAST(record_id AS INTEGER)`,
		runID)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []transcript.Record
	for rows.Next() {
		var rec transcript.Record
		if err := rows.Scan(&rec.ID, &rec.Command, &rec.Output); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Hit is one full-text search result.
type Hit struct {
	RunID    int64
	RecordID string
	Command  string
	Output   string
}

// Search runs an FTS5 query over archived commands and outputs, best matches
// first.
func (d *DB) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.conn.QueryContext(ctx, `
		SELECT r.run_id, r.record_id, r.command, r.output
		FROM records_fts f
		JOIN records r ON r.rowid = f.rowid
		WHERE records_fts MATCH ?
		ORDER BY rank
		LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search records: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.RunID, &h.RecordID, &h.Command, &h.Output); err != nil {
			return nil, fmt.Errorf("scan search hit: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
