package migrations_test

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/msomdec/tasklist/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// Each new connection to :memory: is a fresh database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	return db
}

func countMigrations(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	return count
}

func TestRun_CreatesSchema(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("Run: %v", err)
	}

	res, err := db.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?)",
		"Test User", "test@example.com", "hash123",
	)
	if err != nil {
		t.Fatalf("insert into users: %v", err)
	}
	userID, _ := res.LastInsertId()

	if _, err := db.ExecContext(ctx, "INSERT INTO tasks (user_id, title) VALUES (?, ?)", userID, "X"); err != nil {
		t.Fatalf("insert into tasks: %v", err)
	}

	var description string
	var completed bool
	if err := db.QueryRowContext(ctx, "SELECT description, completed FROM tasks").Scan(&description, &completed); err != nil {
		t.Fatalf("select task: %v", err)
	}
	if description != "" || completed {
		t.Fatalf("expected defaults description=\"\" completed=false, got %q %v", description, completed)
	}

	if got := countMigrations(t, db); got != 2 {
		t.Fatalf("expected 2 migration records, got %d", got)
	}
}

func TestRun_Idempotent(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("second run (idempotent): %v", err)
	}

	if got := countMigrations(t, db); got != 2 {
		t.Fatalf("expected 2 migration records, got %d", got)
	}
}

func TestRun_TaskRequiresExistingUser(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := db.ExecContext(ctx, "INSERT INTO tasks (user_id, title) VALUES (?, ?)", 999, "orphan"); err == nil {
		t.Fatal("expected foreign key violation for unknown user")
	}
}

func TestRunFS_FailedMigrationIsNotRecorded(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"001_ok.sql":     {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
		"002_broken.sql": {Data: []byte("CREATE TABLE (;")},
	}

	if err := migrations.RunFS(ctx, db, fsys); err == nil {
		t.Fatal("expected error from broken migration")
	}

	if got := countMigrations(t, db); got != 1 {
		t.Fatalf("expected only the first migration recorded, got %d", got)
	}
}

func TestRunFS_SkipsNonSQLFiles(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"001_ok.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
		"README.md":  {Data: []byte("not sql")},
	}

	if err := migrations.RunFS(ctx, db, fsys); err != nil {
		t.Fatalf("RunFS: %v", err)
	}
	if got := countMigrations(t, db); got != 1 {
		t.Fatalf("expected 1 migration record, got %d", got)
	}
}
