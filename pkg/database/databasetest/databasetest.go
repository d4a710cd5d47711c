// Package databasetest builds throwaway action databases for tests.
package databasetest

import (
	"database/sql"
	_ "embed"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

// Fixtures is a small network: train number 1 resolves to one section with two
// actions, complex action 20 expands into a nested tree.
//
//go:embed fixtures.sql
var Fixtures string

// NewDatabase creates a database file in a temp dir containing the schema
// followed by statements, and returns its path.
func NewDatabase(t testing.TB, statements ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cab.sqlite")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer db.Close()

	for _, statement := range append([]string{Schema}, statements...) {
		if _, err := db.Exec(statement); err != nil {
			t.Fatalf("apply statement: %v\n%s", err, statement)
		}
	}

	return path
}
