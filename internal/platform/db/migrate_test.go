package db

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrations_SortsByVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "002_tokens.sql", "CREATE TABLE b (id INT);")
	writeFile(t, dir, "001_init.sql", "CREATE TABLE a (id INT);")
	writeFile(t, dir, "010_later.sql", "CREATE TABLE c (id INT);")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(migrations) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migrations))
	}
	versions := []int{migrations[0].Version, migrations[1].Version, migrations[2].Version}
	if versions[0] != 1 || versions[1] != 2 || versions[2] != 10 {
		t.Errorf("expected versions [1 2 10], got %v", versions)
	}
	if migrations[0].Name != "001_init.sql" {
		t.Errorf("expected 001_init.sql first, got %s", migrations[0].Name)
	}
}

func TestLoadMigrations_SkipsNonNumericAndNonSQL(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "001_init.sql", "CREATE TABLE a (id INT);")
	writeFile(t, dir, "README.md", "not a migration")
	writeFile(t, dir, "notes.sql", "missing version prefix")
	writeFile(t, dir, "abc_bad.sql", "non-numeric prefix")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(migrations) != 1 {
		t.Fatalf("expected 1 migration, got %d", len(migrations))
	}
}

func TestLoadMigrations_ReadsContent(t *testing.T) {
	dir := t.TempDir()
	sql := "CREATE TABLE patients (id BIGSERIAL PRIMARY KEY);"
	writeFile(t, dir, "001_init.sql", sql)

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if migrations[0].SQL != sql {
		t.Errorf("expected SQL content to round-trip, got %q", migrations[0].SQL)
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	m := NewMigrator(nil, "/nonexistent/migrations")
	if _, err := m.LoadMigrations(); err == nil {
		t.Error("expected error for missing directory")
	}
}
