// Package testdb provides test database utilities for integration testing.
//
// This package creates isolated PostgreSQL schemas that run real queries
// against a real database instance, so tests exercise the actual constraints
// (foreign keys, CHECKs) instead of a mock.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    // Use tdb.DB for database operations
//	    n, err := tdb.DB.Execute(tdb.Ctx(), "DELETE FROM jobs")
//	}
package testdb

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/forgo/jobly/internal/database"
)

// EnvURL names the environment variable holding the test database URL.
// Tests that need a database are skipped when it is unset.
const EnvURL = "TEST_DATABASE_URL"

// TestDB provides an isolated database environment for testing.
// Each TestDB instance gets a unique schema to ensure test isolation.
type TestDB struct {
	DB     database.Database
	Schema string
	url    string
	t      *testing.T
}

// uniqueSchema generates a unique schema name for test isolation
func uniqueSchema() string {
	return "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// New creates a new isolated test database with migrations applied.
// It skips the test when TEST_DATABASE_URL is not set.
// Call Close() when done to drop the schema.
func New(t *testing.T) *TestDB {
	t.Helper()

	url := os.Getenv(EnvURL)
	if url == "" {
		t.Skipf("testdb: %s not set, skipping database test", EnvURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	schema := uniqueSchema()

	// The schema must exist before connections can use it as search_path.
	admin := database.NewPostgres(database.Config{URL: url, MaxConns: 1})
	if err := admin.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}
	_, err := admin.Execute(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema))
	admin.Close()
	if err != nil {
		t.Fatalf("testdb: failed to create schema %s: %v", schema, err)
	}

	db := database.NewPostgres(database.Config{
		URL:        url,
		MaxConns:   4,
		SearchPath: schema,
	})
	if err := db.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}

	tdb := &TestDB{
		DB:     db,
		Schema: schema,
		url:    url,
		t:      t,
	}

	if err := database.Migrate(ctx, db); err != nil {
		tdb.Close()
		t.Fatalf("testdb: migrations failed: %v", err)
	}

	return tdb
}

// Close drops the test schema and closes the pool.
func (tdb *TestDB) Close() {
	if tdb.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", tdb.Schema)
	_, _ = tdb.DB.Execute(ctx, query) // Ignore errors on cleanup

	tdb.DB.Close()
	tdb.DB = nil
}

// Reset clears all data from tables while preserving schema.
// Job ids restart at 1.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := tdb.DB.Execute(ctx, "TRUNCATE jobs, companies RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("testdb: failed to reset tables: %v", err)
	}
}

// Ctx returns a context with a reasonable timeout for test operations.
// The context is cancelled when the test finishes.
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tdb.t.Cleanup(cancel)
	return ctx
}

// MustExec executes a statement and fails the test on error.
func (tdb *TestDB) MustExec(query string, args ...any) {
	tdb.t.Helper()
	if _, err := tdb.DB.Execute(tdb.Ctx(), query, args...); err != nil {
		tdb.t.Fatalf("testdb: exec failed: %v\nQuery: %s", err, query)
	}
}

// Count returns the number of rows in table.
func (tdb *TestDB) Count(table string) int {
	tdb.t.Helper()
	var n int
	query := fmt.Sprintf("SELECT count(*) FROM %s", table)
	if err := tdb.DB.QueryRow(tdb.Ctx(), query).Scan(&n); err != nil {
		tdb.t.Fatalf("testdb: count %s failed: %v", table, err)
	}
	return n
}

// Shared creates a TestDB that can be shared across subtests.
// It provides a SetupSubtest method for per-subtest isolation.
type Shared struct {
	*TestDB
}

// NewShared creates a shared test database for use across multiple subtests.
func NewShared(t *testing.T) *Shared {
	return &Shared{TestDB: New(t)}
}

// SetupSubtest resets the database and returns the TestDB for use in a subtest.
// Call this at the start of each t.Run() block.
func (s *Shared) SetupSubtest(t *testing.T) *TestDB {
	t.Helper()
	s.TestDB.t = t
	s.TestDB.Reset(t)
	return s.TestDB
}
