// Package testdb provides test database utilities for the Jobly API.
//
// The testdb package manages PostgreSQL test connections with automatic
// setup, migration, and cleanup. Tests are skipped unless
// TEST_DATABASE_URL points at a reachable database.
//
// # Isolation
//
// Each test gets its own schema, used as the connection search_path:
//
//	func TestA(t *testing.T) {
//	    tdb := testdb.New(t) // schema: test_3f2a...
//	    defer tdb.Close()
//	}
//
// Close drops the schema with CASCADE.
//
// # Shared Database
//
// For subtests that share schema:
//
//	tdb := testdb.NewShared(t)
//	t.Run("create", func(t *testing.T) { db := tdb.SetupSubtest(t); ... })
//
// SetupSubtest truncates every table and restarts identity sequences.
package testdb
