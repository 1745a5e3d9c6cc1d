package database_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/settle/internal/database"
)

func TestExpenseLockKey(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.Equal(t, database.ExpenseLockKey(a), database.ExpenseLockKey(a))
	assert.NotEqual(t, database.ExpenseLockKey(a), database.ExpenseLockKey(b))
}

func TestIsUniqueViolation(t *testing.T) {
	type testCase struct {
		name       string
		err        error
		constraint string
		want       bool
	}

	dup := &pgconn.PgError{Code: "23505", ConstraintName: "settlements_expense_id_key"}

	tests := []testCase{
		{name: "AnyConstraint", err: dup, want: true},
		{name: "NamedConstraint", err: dup, constraint: "settlements_expense_id_key", want: true},
		{name: "OtherConstraint", err: dup, constraint: "votes_expense_id_key", want: false},
		{name: "Wrapped", err: fmt.Errorf("inserting settlement: %w", dup), want: true},
		{name: "OtherCode", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "PlainError", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, database.IsUniqueViolation(tt.err, tt.constraint))
		})
	}
}
