// Package database provides the database abstraction layer for Jobly.
//
// This package defines the Database interface that abstracts PostgreSQL
// operations, allowing for clean separation between business logic and data
// access. The connection handle is created once by the caller and injected
// into every repository; there is no package-level connection.
//
// # Interface Design
//
// The Database interface provides three query methods:
//   - Query: Returns rows (for SELECT / RETURNING statements)
//   - QueryRow: Returns a single row whose Scan reports ErrNotFound
//   - Execute: Returns the number of affected rows (for mutations)
//
// Rows are usually consumed with CollectOne and CollectAll, which map
// columns onto struct fields by their `db` tag.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//   - ErrEmptyUpdate: A partial update carried no fields
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// # Usage Example
//
//	db := database.NewPostgres(cfg)
//	db.Connect(ctx)
//	defer db.Close()
//
//	job, err := database.CollectOne[model.Job](db.Query(ctx, "SELECT * FROM jobs WHERE id = $1", id))
package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// Standard errors for database operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation (e.g., duplicate company name).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, constraint violation, etc.).
	ErrQuery = errors.New("query error")

	// ErrEmptyUpdate indicates a partial update was requested without any fields.
	ErrEmptyUpdate = errors.New("no data")
)

// Database defines the interface for database operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns its rows
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)

	// QueryRow executes a query expected to return at most one row
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row

	// Execute runs a statement and reports the number of affected rows
	Execute(ctx context.Context, sql string, args ...any) (int64, error)

	// Transaction support
	BeginTx(ctx context.Context) (Transaction, error)
}

// Transaction represents a database transaction
type Transaction interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Execute(ctx context.Context, sql string, args ...any) (int64, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Config holds database configuration
type Config struct {
	URL string

	// Pool settings. Zero values keep the pgxpool defaults.
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration

	// SearchPath, when set, is applied to every pooled connection.
	SearchPath string
}
