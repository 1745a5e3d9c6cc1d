package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/database"
	"github.com/MrJamesThe3rd/settle/internal/settlement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ settlement.Repository = (*Store)(nil)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const selectSettlementColumns = `id, expense_id, method, status, deadline, created_at, completed_at`

// scanSettlement expects selectSettlementColumns order.
func scanSettlement(s scanner) (*settlement.Settlement, error) {
	var st settlement.Settlement

	var method, status string

	if err := s.Scan(&st.ID, &st.ExpenseID, &method, &status, &st.Deadline, &st.CreatedAt, &st.CompletedAt); err != nil {
		return nil, err
	}

	st.Method = settlement.Method(method)
	st.Status = settlement.Status(status)

	return &st, nil
}

const selectDetailColumns = `d.id, d.settlement_id, d.debtor_id, d.creditor_id, d.amount, d.sent, d.sent_at`

func scanDetail(s scanner) (*settlement.Detail, error) {
	var d settlement.Detail
	if err := s.Scan(&d.ID, &d.SettlementID, &d.DebtorID, &d.CreditorID, &d.Amount, &d.Sent, &d.SentAt); err != nil {
		return nil, err
	}

	return &d, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*settlement.Settlement, error) {
	return s.load(ctx, `SELECT `+selectSettlementColumns+` FROM settlements WHERE id = $1`, id,
		func() error { return apperr.NotFound("settlement %s not found", id) })
}

func (s *Store) GetByExpense(ctx context.Context, expenseID uuid.UUID) (*settlement.Settlement, error) {
	return s.load(ctx, `SELECT `+selectSettlementColumns+` FROM settlements WHERE expense_id = $1`, expenseID,
		func() error { return apperr.NotFound("expense %s has no settlement", expenseID) })
}

func (s *Store) load(ctx context.Context, query string, arg uuid.UUID, notFound func() error) (*settlement.Settlement, error) {
	st, err := scanSettlement(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound()
		}

		return nil, fmt.Errorf("getting settlement: %w", err)
	}

	details, err := listDetails(ctx, s.db, st.ID)
	if err != nil {
		return nil, err
	}

	st.Details = details

	return st, nil
}

func listDetails(ctx context.Context, q querier, settlementID uuid.UUID) ([]settlement.Detail, error) {
	query := `SELECT ` + selectDetailColumns + `
		FROM settlement_details d
		WHERE d.settlement_id = $1
		ORDER BY d.position ASC, d.id ASC`

	rows, err := q.QueryContext(ctx, query, settlementID)
	if err != nil {
		return nil, fmt.Errorf("listing settlement details: %w", err)
	}
	defer rows.Close()

	var details []settlement.Detail

	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning settlement detail: %w", err)
		}

		details = append(details, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settlement details: %w", err)
	}

	return details, nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning delete tx: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM settlement_details WHERE settlement_id = $1`, id); err != nil {
		return fmt.Errorf("deleting settlement details: %w", err)
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM settlements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting settlement: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return apperr.NotFound("settlement %s not found", id)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}

type expenseTx struct {
	tx *sql.Tx
}

func (s *Store) BeginExpense(ctx context.Context, expenseID uuid.UUID) (settlement.ExpenseTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning settlement tx: %w", err)
	}

	if err := database.LockExpense(ctx, dbTx, expenseID); err != nil {
		dbTx.Rollback()
		return nil, err
	}

	return &expenseTx{tx: dbTx}, nil
}

func (etx *expenseTx) Commit() error   { return etx.tx.Commit() }
func (etx *expenseTx) Rollback() error { return etx.tx.Rollback() }

func (etx *expenseTx) ExistsForExpense(ctx context.Context, expenseID uuid.UUID) (bool, error) {
	var exists bool

	err := etx.tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM settlements WHERE expense_id = $1)`, expenseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking settlement: %w", err)
	}

	return exists, nil
}

func (etx *expenseTx) Create(ctx context.Context, st *settlement.Settlement) error {
	query := `
		INSERT INTO settlements (expense_id, method, status, deadline, completed_at)
		VALUES ($1, $2, $3, $4, CASE WHEN $3::text = 'COMPLETED' THEN NOW() END)
		RETURNING id, created_at, completed_at
	`

	err := etx.tx.QueryRowContext(ctx, query, st.ExpenseID, string(st.Method), string(st.Status), st.Deadline).
		Scan(&st.ID, &st.CreatedAt, &st.CompletedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "settlements_expense_id_key") {
			return apperr.Conflict("expense %s already has a settlement", st.ExpenseID)
		}

		return fmt.Errorf("creating settlement: %w", err)
	}

	detailQuery := `
		INSERT INTO settlement_details (settlement_id, debtor_id, creditor_id, amount, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	for i := range st.Details {
		d := &st.Details[i]
		d.SettlementID = st.ID

		if err := etx.tx.QueryRowContext(ctx, detailQuery, st.ID, d.DebtorID, d.CreditorID, d.Amount, i).Scan(&d.ID); err != nil {
			if database.IsUniqueViolation(err, "settlement_details_one_per_debtor") {
				return apperr.Conflict("user %s already owes in settlement %s", d.DebtorID, st.ID)
			}

			return fmt.Errorf("creating settlement detail: %w", err)
		}
	}

	return nil
}

type detailTx struct {
	tx *sql.Tx
}

func (s *Store) BeginDetail(ctx context.Context) (settlement.DetailTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning detail tx: %w", err)
	}

	return &detailTx{tx: dbTx}, nil
}

func (dtx *detailTx) Commit() error   { return dtx.tx.Commit() }
func (dtx *detailTx) Rollback() error { return dtx.tx.Rollback() }

// LockDetail takes the settlement row lock as well, so concurrent final
// confirmations on one settlement are serialized.
func (dtx *detailTx) LockDetail(ctx context.Context, detailID uuid.UUID) (*settlement.Detail, settlement.Status, error) {
	query := `SELECT ` + selectDetailColumns + `, s.status
		FROM settlement_details d
		JOIN settlements s ON s.id = d.settlement_id
		WHERE d.id = $1
		FOR UPDATE OF s, d`

	var d settlement.Detail

	var status string

	err := dtx.tx.QueryRowContext(ctx, query, detailID).Scan(
		&d.ID, &d.SettlementID, &d.DebtorID, &d.CreditorID, &d.Amount, &d.Sent, &d.SentAt, &status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", apperr.NotFound("settlement detail %s not found", detailID)
		}

		return nil, "", fmt.Errorf("locking settlement detail: %w", err)
	}

	return &d, settlement.Status(status), nil
}

func (dtx *detailTx) MarkSent(ctx context.Context, d *settlement.Detail) error {
	err := dtx.tx.QueryRowContext(ctx,
		`UPDATE settlement_details SET sent = TRUE, sent_at = NOW() WHERE id = $1 RETURNING sent, sent_at`,
		d.ID,
	).Scan(&d.Sent, &d.SentAt)
	if err != nil {
		return fmt.Errorf("marking detail sent: %w", err)
	}

	return nil
}

func (dtx *detailTx) CountUnsent(ctx context.Context, settlementID uuid.UUID) (int, error) {
	var n int

	err := dtx.tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM settlement_details WHERE settlement_id = $1 AND NOT sent`, settlementID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting unsent details: %w", err)
	}

	return n, nil
}

func (dtx *detailTx) Complete(ctx context.Context, settlementID uuid.UUID) error {
	_, err := dtx.tx.ExecContext(ctx,
		`UPDATE settlements SET status = 'COMPLETED', completed_at = NOW() WHERE id = $1 AND status = 'PENDING'`,
		settlementID)
	if err != nil {
		return fmt.Errorf("completing settlement: %w", err)
	}

	return nil
}
