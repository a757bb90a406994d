package storage_test

import (
	"database/sql"
	"path/filepath"
	"sort"
	"testing"

	_ "modernc.org/sqlite"

	"touchline/internal/adapters/storage"
)

// openTestDB creates an in-memory SQLite database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// getTableNames returns sorted table names from sqlite_master, excluding internal tables.
func getTableNames(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		t.Fatalf("failed to query sqlite_master: %v", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("failed to scan table name: %v", err)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TestInitDB_CreatesTables verifies the planner schema exists after InitDB.
func TestInitDB_CreatesTables(t *testing.T) {
	db := openTestDB(t)
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB() error = %v", err)
	}

	got := getTableNames(t, db)
	want := []string{"planning_document", "planning_template", "season"}
	if len(got) != len(want) {
		t.Fatalf("tables = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tables = %v, want %v", got, want)
			break
		}
	}
}

// TestInitDB_Idempotent runs InitDB twice without error.
func TestInitDB_Idempotent(t *testing.T) {
	db := openTestDB(t)
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("first InitDB() error = %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("second InitDB() error = %v", err)
	}
}

// TestInitDB_UniqueSeasonTeam enforces one planning document per (season, team).
func TestInitDB_UniqueSeasonTeam(t *testing.T) {
	db := openTestDB(t)
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB() error = %v", err)
	}

	if _, err := db.Exec("INSERT INTO season (id, team_id, name, start_date, end_date) VALUES ('s1','t1','2024/25','2024-09-02','2025-05-31')"); err != nil {
		t.Fatalf("insert season: %v", err)
	}
	insert := "INSERT INTO planning_document (id, season_id, team_id, body, updated_at) VALUES (?, 's1', 't1', '{}', '2024-09-02T00:00:00Z')"
	if _, err := db.Exec(insert, "d1"); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := db.Exec(insert, "d2"); err == nil {
		t.Error("duplicate (season_id, team_id) insert succeeded, want constraint violation")
	}
}

// TestBackupTo writes a readable snapshot file.
func TestBackupTo(t *testing.T) {
	db := openTestDB(t)
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB() error = %v", err)
	}

	dest := filepath.Join(t.TempDir(), "backup.db")
	if err := storage.BackupTo(db, dest); err != nil {
		t.Fatalf("BackupTo() error = %v", err)
	}

	snap, err := sql.Open("sqlite", dest)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer snap.Close()
	if got := getTableNames(t, snap); len(got) != 3 {
		t.Errorf("snapshot tables = %v, want the 3 planner tables", got)
	}
}
