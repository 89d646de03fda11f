package index

import (
	"context"
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/user/termscribe/internal/transcript"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "termscribe-test.db")
	db, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
	})
	return db
}

func assertTableExists(t *testing.T, conn *sql.DB, table string) {
	t.Helper()
	var count int
	err := conn.QueryRow(`SELECT count(1) FROM sqlite_master WHERE name=?`, table).Scan(&count)
	if err != nil {
		t.Fatalf("query sqlite_master error: %v", err)
	}
	if count != 1 {
		t.Fatalf("table %q not found", table)
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	db := openTestDB(t)

	assertTableExists(t, db.SQL(), "_meta")
	assertTableExists(t, db.SQL(), "runs")
	assertTableExists(t, db.SQL(), "records")
	assertTableExists(t, db.SQL(), "records_fts")
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("Open(\"\") error = nil, want error")
	}
}

func TestArchiveRunRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	records := []transcript.Record{
		{ID: "1", Command: "echo hi", Output: "hi"},
		{ID: "2", Command: "grep err /var/log/syslog", Output: "err: disk full"},
	}

	runID, err := db.ArchiveRun(ctx, "/tmp/session.txt", records)
	if err != nil {
		t.Fatalf("ArchiveRun() error = %v", err)
	}
	if runID == 0 {
		t.Fatal("ArchiveRun() returned run id 0")
	}

	got, err := db.Records(ctx, runID)
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("Records() = %v, want %v", got, records)
	}
}

func TestSearchFindsArchivedRecords(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	runID, err := db.ArchiveRun(ctx, "/tmp/session.txt", []transcript.Record{
		{ID: "1", Command: "uptime", Output: "load average: 0.42"},
		{ID: "2", Command: "dmesg", Output: "kernel panic averted"},
	})
	if err != nil {
		t.Fatalf("ArchiveRun() error = %v", err)
	}

	hits, err := db.Search(ctx, "panic", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("Search() returned %d hits, want 1", len(hits))
	}
	if hits[0].RunID != runID || hits[0].RecordID != "2" {
		t.Fatalf("hit = %+v, want run %d record 2", hits[0], runID)
	}
}

func TestSearchNoMatches(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := db.ArchiveRun(ctx, "/tmp/s.txt", []transcript.Record{
		{ID: "1", Command: "true", Output: ""},
	}); err != nil {
		t.Fatalf("ArchiveRun() error = %v", err)
	}

	hits, err := db.Search(ctx, "nonexistent", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("Search() = %v, want no hits", hits)
	}
}
