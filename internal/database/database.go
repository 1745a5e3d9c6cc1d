package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const uniqueViolation = "23505"

func New(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation, optionally restricted to the named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}

	return constraint == "" || pgErr.ConstraintName == constraint
}

// ExpenseLockKey derives the advisory lock key that serializes settlement and
// vote creation for one expense.
func ExpenseLockKey(expenseID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("expense"))
	h.Write([]byte{0})
	h.Write(expenseID[:])

	return int64(h.Sum64())
}

// LockExpense takes the per-expense advisory lock for the lifetime of tx.
func LockExpense(ctx context.Context, tx *sql.Tx, expenseID uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", ExpenseLockKey(expenseID)); err != nil {
		return fmt.Errorf("acquiring expense lock: %w", err)
	}

	return nil
}
