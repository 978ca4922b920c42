package sqlitemigrate

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTempDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, query string) int {
	t.Helper()

	var n int
	if err := db.QueryRow(query).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}

func TestApplyRecordsAndSkipsApplied(t *testing.T) {
	t.Parallel()

	db := openTempDB(t)
	migrations := fstest.MapFS{
		"001_guild.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE guild(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE guild;")},
		"002_seed.sql":  &fstest.MapFile{Data: []byte("INSERT INTO guild(id) VALUES ('g-1');")},
	}

	for i := 0; i < 2; i++ {
		if err := Apply(context.Background(), db, migrations); err != nil {
			t.Fatalf("apply pass %d: %v", i, err)
		}
	}

	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 2 {
		t.Fatalf("migration rows = %d, want 2", got)
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM guild"); got != 1 {
		t.Fatalf("guild rows = %d, want seed applied once", got)
	}
}

func TestApplyDoesNotRecordFailedMigration(t *testing.T) {
	t.Parallel()

	db := openTempDB(t)
	bad := fstest.MapFS{
		"001_bad.sql": &fstest.MapFile{Data: []byte("CREAT TABLE things(id INT);")},
	}
	if err := Apply(context.Background(), db, bad); err == nil {
		t.Fatal("expected bad migration to fail")
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 0 {
		t.Fatalf("migration rows = %d, want 0", got)
	}
}

func TestApplyRejectsMissingInputs(t *testing.T) {
	t.Parallel()

	if err := Apply(context.Background(), nil, fstest.MapFS{}); err == nil {
		t.Fatal("expected nil db error")
	}
	if err := Apply(context.Background(), openTempDB(t), nil); err == nil {
		t.Fatal("expected nil fs error")
	}
}

func TestUpSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "SELECT 1;", want: "SELECT 1;"},
		{name: "up only", content: "-- +migrate Up\nSELECT 1;", want: "\nSELECT 1;"},
		{name: "up and down", content: "-- +migrate Up\nSELECT 1;\n-- +migrate Down\nSELECT 2;", want: "\nSELECT 1;\n"},
	}
	for _, tt := range tests {
		if got := UpSection(tt.content); got != tt.want {
			t.Fatalf("%s: UpSection() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
