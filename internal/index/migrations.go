package index

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "create run tables",
		sql: `
CREATE TABLE IF NOT EXISTS runs (
	run_id INTEGER PRIMARY KEY AUTOINCREMENT,
	source_path TEXT NOT NULL,
	created_at TEXT NOT NULL,
	record_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS records (
	run_id INTEGER NOT NULL,
	record_id TEXT NOT NULL,
	command TEXT NOT NULL,
	output TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (run_id, record_id),
	FOREIGN KEY(run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);
`,
	},
	{
		version: 2,
		name:    "add record full-text search",
		sql: `
CREATE VIRTUAL TABLE IF NOT EXISTS records_fts USING fts5(
	command,
	output,
	content=records,
	content_rowid=rowid,
	tokenize='unicode61'
);

CREATE TRIGGER IF NOT EXISTS records_ai AFTER INSERT ON records BEGIN
	INSERT INTO records_fts(rowid, command, output) VALUES (new.rowid, new.command, new.output);
END;

CREATE TRIGGER IF NOT EXISTS records_ad AFTER DELETE ON records BEGIN
	INSERT INTO records_fts(records_fts, rowid, command, output) VALUES('delete', old.rowid, old.command, old.output);
END;

CREATE TRIGGER IF NOT EXISTS records_au AFTER UPDATE ON records BEGIN
	INSERT INTO records_fts(records_fts, rowid, command, output) VALUES('delete', old.rowid, old.command, old.output);
	INSERT INTO records_fts(rowid, command, output) VALUES (new.rowid, new.command, new.output);
END;
`,
	},
}

func runMigrations(ctx context.Context, conn *sql.DB) error {
	if _, err := conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _meta (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		return fmt.Errorf("failed to create meta table: %w", err)
	}

	current := 0
	var value string
	err := conn.QueryRowContext(ctx, `SELECT value FROM _meta WHERE key = 'schema_version'`).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	default:
		current, err = strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid schema version %q: %w", value, err)
		}
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := conn.ExecContext(ctx, m.sql); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
		if _, err := conn.ExecContext(ctx,
			`INSERT INTO _meta (key, value) VALUES ('schema_version', ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			strconv.Itoa(m.version)); err != nil {
			return fmt.Errorf("failed to record schema version %d: %w", m.version, err)
		}
	}
	return nil
}
