// Package repository implements the data access layer for the Jobly API.
//
// Each repository struct handles the SQL for one table. Repositories accept a
// database.Database so the caller decides how connections are pooled and
// tests can point them at an isolated schema.
//
// # Repository Pattern
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods map one operation to one statement (Create, List, Get, Update, Remove)
//   - Rows are mapped onto model structs with database.CollectOne/CollectAll
//   - Errors are the database package sentinels (ErrNotFound, ErrQuery, ...)
//
// # Query Patterns
//
//   - Positional $n placeholders for every caller-supplied value
//   - RETURNING clauses instead of a follow-up SELECT
//   - Partial updates rendered by database.SQLForPartialUpdate
//
// # Example Usage
//
//	repo := NewJobRepository(db)
//	job, err := repo.Get(ctx, 42)
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle not found
//	}
package repository
