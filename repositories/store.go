package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// SQLSTATE foreign_key_violation.
const foreignKeyViolation = "23503"

var (
	ErrNotFound = errors.New("record not found")
	// ErrReferenced reports a foreign key violation: a row still in use was
	// deleted, or a row points at one that does not exist.
	ErrReferenced = errors.New("foreign key violation")
)

// fitsKey reports whether id can exist in a SERIAL (INT) key column. Larger
// ids cannot be encoded as parameters, so callers treat them as absent rows.
func fitsKey(id int64) bool {
	return id > 0 && id <= math.MaxInt32
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", ErrReferenced, pgErr.ConstraintName)
	}
	return err
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the narrow adapter every SQL repository goes through:
// parameterized exec, query-one, query-all and a transaction scope.
type Store struct {
	db *sql.DB
	q  querier
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, q: db}
}

func (s *Store) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := s.q.ExecContext(ctx, query, args...)
	return res, translate(err)
}

// QueryOne scans a single row into dest. A missing row is reported as ErrNotFound.
func (s *Store) QueryOne(ctx context.Context, query string, dest []any, args ...any) error {
	err := s.q.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return translate(err)
}

// QueryAll calls scan once per row.
func (s *Store) QueryAll(ctx context.Context, query string, scan func(rows *sql.Rows) error, args ...any) error {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// InTx runs fn inside a transaction; any error from fn rolls it back.
// Nested calls reuse the outer transaction.
func (s *Store) InTx(ctx context.Context, fn func(tx *Store) error) error {
	if _, nested := s.q.(*sql.Tx); nested {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if err := fn(&Store{db: s.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("transaction rollback failed")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
