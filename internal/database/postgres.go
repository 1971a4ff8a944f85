package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes the layer cares about.
const (
	pgUniqueViolation = "23505"
)

// Postgres implements the Database interface for PostgreSQL
type Postgres struct {
	pool   *pgxpool.Pool
	config Config
}

// NewPostgres creates a new Postgres instance
func NewPostgres(cfg Config) *Postgres {
	return &Postgres{
		config: cfg,
	}
}

// Connect establishes the connection pool and verifies it with a ping
func (p *Postgres) Connect(ctx context.Context) error {
	poolCfg, err := pgxpool.ParseConfig(p.config.URL)
	if err != nil {
		return fmt.Errorf("%w: parse config: %v", ErrConnection, err)
	}

	if p.config.MaxConns > 0 {
		poolCfg.MaxConns = p.config.MaxConns
	}
	if p.config.MinConns > 0 {
		poolCfg.MinConns = p.config.MinConns
	}
	if p.config.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = p.config.MaxConnLifetime
	}
	if p.config.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = p.config.MaxConnIdleTime
	}
	if p.config.SearchPath != "" {
		poolCfg.ConnConfig.RuntimeParams["search_path"] = p.config.SearchPath
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("%w: ping failed: %v", ErrConnection, err)
	}

	p.pool = pool
	return nil
}

// Close closes every pooled connection
func (p *Postgres) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// Ping checks the database connection
func (p *Postgres) Ping(ctx context.Context) error {
	if p.pool == nil {
		return ErrConnection
	}
	if err := p.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Query executes a query and returns its rows.
// Errors raised while reading the rows are translated by CollectOne/CollectAll.
func (p *Postgres) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if p.pool == nil {
		return nil, ErrConnection
	}
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}

// QueryRow executes a query returning at most one row
func (p *Postgres) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if p.pool == nil {
		return errRow{err: ErrConnection}
	}
	return translatedRow{row: p.pool.QueryRow(ctx, sql, args...)}
}

// Execute runs a statement and returns the number of affected rows
func (p *Postgres) Execute(ctx context.Context, sql string, args ...any) (int64, error) {
	if p.pool == nil {
		return 0, ErrConnection
	}
	tag, err := p.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, translateError(err)
	}
	return tag.RowsAffected(), nil
}

// BeginTx starts a new transaction
func (p *Postgres) BeginTx(ctx context.Context) (Transaction, error) {
	if p.pool == nil {
		return nil, ErrConnection
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	return &PostgresTransaction{tx: tx}, nil
}

// PostgresTransaction implements Transaction on top of pgx.Tx
type PostgresTransaction struct {
	tx pgx.Tx
}

func (t *PostgresTransaction) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	rows, err := t.tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}

func (t *PostgresTransaction) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return translatedRow{row: t.tx.QueryRow(ctx, sql, args...)}
}

func (t *PostgresTransaction) Execute(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		return 0, translateError(err)
	}
	return tag.RowsAffected(), nil
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit failed: %w", ErrQuery, err)
	}
	return nil
}

// Rollback is a no-op after a successful commit
func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return translateError(err)
	}
	return nil
}

// translatedRow maps pgx errors from Scan onto the package sentinels
type translatedRow struct {
	row pgx.Row
}

func (r translatedRow) Scan(dest ...any) error {
	return translateError(r.row.Scan(dest...))
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}

// translateError converts driver errors into the standard database errors.
// The original error stays in the chain so context cancellation is still
// detectable with errors.Is.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.Detail)
	}
	return fmt.Errorf("%w: %w", ErrQuery, err)
}

// CollectOne reads exactly one row into a T using `db` struct tags.
// It is meant to wrap a Query call directly:
//
//	job, err := CollectOne[model.Job](db.Query(ctx, sql, args...))
func CollectOne[T any](rows pgx.Rows, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, translateError(err)
	}
	return item, nil
}

// CollectAll reads every row into a slice of T. An empty result is an
// empty, non-nil slice.
func CollectAll[T any](rows pgx.Rows, err error) ([]*T, error) {
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, translateError(err)
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}
