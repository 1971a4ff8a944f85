package database

// Transaction utilities for Jobly
//
// Request handling never needs more than one statement, so these helpers
// exist for schema migrations and test setup.
//
// # WithTransaction
//
// Runs a function inside a transaction, rolling back when it fails:
//
//	err := WithTransaction(ctx, db, func(tx Transaction) error {
//	    _, err := tx.Execute(ctx, "...")
//	    return err
//	})
//
// # AtomicBatch
//
// Fluent API for a handful of statements that must succeed together:
//
//	batch := NewAtomicBatch()
//	batch.Add(query1, args1...)
//	batch.Add(query2, args2...)
//	batch.Execute(ctx, db)  // All or nothing

import (
	"context"
	"fmt"
)

// WithTransaction executes fn within a transaction.
// If fn returns an error, the transaction is rolled back.
func WithTransaction(ctx context.Context, db Database, fn func(tx Transaction) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}

// AtomicBatch collects statements that are executed in a single transaction
type AtomicBatch struct {
	queries []batchQuery
}

type batchQuery struct {
	sql  string
	args []any
}

// NewAtomicBatch creates a new atomic batch
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{
		queries: make([]batchQuery, 0),
	}
}

// Add adds a statement to the batch
func (ab *AtomicBatch) Add(sql string, args ...any) *AtomicBatch {
	ab.queries = append(ab.queries, batchQuery{sql: sql, args: args})
	return ab
}

// Execute runs all statements as a single transaction
func (ab *AtomicBatch) Execute(ctx context.Context, db Database) error {
	if len(ab.queries) == 0 {
		return nil
	}

	return WithTransaction(ctx, db, func(tx Transaction) error {
		for i, q := range ab.queries {
			if _, err := tx.Execute(ctx, q.sql, q.args...); err != nil {
				return fmt.Errorf("statement %d: %w", i+1, err)
			}
		}
		return nil
	})
}

// Len returns the number of statements in the batch
func (ab *AtomicBatch) Len() int {
	return len(ab.queries)
}
