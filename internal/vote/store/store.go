package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/database"
	"github.com/MrJamesThe3rd/settle/internal/vote"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ vote.Repository = (*Store)(nil)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const selectVoteColumns = `id, expense_id, closed, created_at, closed_at`

func (s *Store) GetVote(ctx context.Context, id uuid.UUID) (*vote.Vote, error) {
	v, err := loadVote(ctx, s.db, `SELECT `+selectVoteColumns+` FROM votes WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	if v == nil {
		return nil, apperr.NotFound("vote %s not found", id)
	}

	return v, nil
}

func (s *Store) GetVoteByExpense(ctx context.Context, expenseID uuid.UUID) (*vote.Vote, error) {
	v, err := loadVote(ctx, s.db, `SELECT `+selectVoteColumns+` FROM votes WHERE expense_id = $1`, expenseID)
	if err != nil {
		return nil, err
	}

	if v == nil {
		return nil, apperr.NotFound("expense %s has no vote", expenseID)
	}

	return v, nil
}

func (s *Store) CloseVote(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE votes SET closed = TRUE, closed_at = NOW() WHERE id = $1 AND NOT closed`, id)
	if err != nil {
		return false, fmt.Errorf("closing vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 1 {
		return true, nil
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM votes WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking vote: %w", err)
	}

	if !exists {
		return false, apperr.NotFound("vote %s not found", id)
	}

	return false, nil
}

// loadVote returns nil, nil when the query matches no vote.
func loadVote(ctx context.Context, q querier, query string, arg uuid.UUID) (*vote.Vote, error) {
	var v vote.Vote

	err := q.QueryRowContext(ctx, query, arg).Scan(&v.ID, &v.ExpenseID, &v.Closed, &v.CreatedAt, &v.ClosedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting vote: %w", err)
	}

	options, err := loadOptions(ctx, q, v.ID)
	if err != nil {
		return nil, err
	}

	v.Options = options

	return &v, nil
}

func loadOptions(ctx context.Context, q querier, voteID uuid.UUID) ([]vote.Option, error) {
	query := `
		SELECT o.id, o.vote_id, o.expense_item_id, i.name, i.unit_price * i.quantity
		FROM vote_options o
		JOIN expense_items i ON i.id = o.expense_item_id
		WHERE o.vote_id = $1
		ORDER BY o.position ASC, o.id ASC
	`

	rows, err := q.QueryContext(ctx, query, voteID)
	if err != nil {
		return nil, fmt.Errorf("listing vote options: %w", err)
	}
	defer rows.Close()

	var options []vote.Option

	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var o vote.Option
		if err := rows.Scan(&o.ID, &o.VoteID, &o.ExpenseItemID, &o.ItemName, &o.Price); err != nil {
			return nil, fmt.Errorf("scanning vote option: %w", err)
		}

		index[o.ID] = len(options)
		options = append(options, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vote options: %w", err)
	}

	voterRows, err := q.QueryContext(ctx, `
		SELECT uv.vote_option_id, uv.user_id
		FROM user_votes uv
		JOIN vote_options o ON o.id = uv.vote_option_id
		WHERE o.vote_id = $1
		ORDER BY uv.created_at ASC, uv.user_id ASC
	`, voteID)
	if err != nil {
		return nil, fmt.Errorf("listing voters: %w", err)
	}
	defer voterRows.Close()

	for voterRows.Next() {
		var optionID, userID uuid.UUID
		if err := voterRows.Scan(&optionID, &userID); err != nil {
			return nil, fmt.Errorf("scanning voter: %w", err)
		}

		i, ok := index[optionID]
		if !ok {
			continue
		}

		options[i].VoterIDs = append(options[i].VoterIDs, userID)
	}

	if err := voterRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating voters: %w", err)
	}

	return options, nil
}

type expenseTx struct {
	tx *sql.Tx
}

func (s *Store) BeginExpense(ctx context.Context, expenseID uuid.UUID) (vote.ExpenseTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning vote tx: %w", err)
	}

	if err := database.LockExpense(ctx, dbTx, expenseID); err != nil {
		dbTx.Rollback()
		return nil, err
	}

	return &expenseTx{tx: dbTx}, nil
}

func (etx *expenseTx) Commit() error   { return etx.tx.Commit() }
func (etx *expenseTx) Rollback() error { return etx.tx.Rollback() }

func (etx *expenseTx) FindVote(ctx context.Context, expenseID uuid.UUID) (*vote.Vote, error) {
	return loadVote(ctx, etx.tx, `SELECT `+selectVoteColumns+` FROM votes WHERE expense_id = $1`, expenseID)
}

func (etx *expenseTx) SettlementExists(ctx context.Context, expenseID uuid.UUID) (bool, error) {
	var exists bool

	err := etx.tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM settlements WHERE expense_id = $1)`, expenseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking settlement: %w", err)
	}

	return exists, nil
}

func (etx *expenseTx) CreateVote(ctx context.Context, v *vote.Vote) error {
	err := etx.tx.QueryRowContext(ctx,
		`INSERT INTO votes (expense_id) VALUES ($1) RETURNING id, closed, created_at`,
		v.ExpenseID,
	).Scan(&v.ID, &v.Closed, &v.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "votes_expense_id_key") {
			return apperr.Conflict("expense %s already has a vote", v.ExpenseID)
		}

		return fmt.Errorf("creating vote: %w", err)
	}

	query := `
		INSERT INTO vote_options (vote_id, expense_item_id, position)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	for i := range v.Options {
		o := &v.Options[i]
		o.VoteID = v.ID

		if err := etx.tx.QueryRowContext(ctx, query, v.ID, o.ExpenseItemID, i).Scan(&o.ID); err != nil {
			return fmt.Errorf("creating vote option: %w", err)
		}
	}

	return nil
}

// DeleteVote removes the vote only while it is still open. A close committed
// after FindVote leaves the row in place and yields a conflict.
func (etx *expenseTx) DeleteVote(ctx context.Context, voteID uuid.UUID) error {
	res, err := etx.tx.ExecContext(ctx, `DELETE FROM votes WHERE id = $1 AND NOT closed`, voteID)
	if err != nil {
		return fmt.Errorf("deleting vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		return apperr.Conflict("vote %s is closed and cannot be deleted", voteID)
	}

	return nil
}

type castTx struct {
	tx *sql.Tx
}

func (s *Store) BeginCast(ctx context.Context) (vote.CastTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning cast tx: %w", err)
	}

	return &castTx{tx: dbTx}, nil
}

func (ct *castTx) Commit() error   { return ct.tx.Commit() }
func (ct *castTx) Rollback() error { return ct.tx.Rollback() }

func (ct *castTx) LockOption(ctx context.Context, optionID uuid.UUID) (*vote.OptionRef, error) {
	query := `
		SELECT o.id, o.vote_id, v.expense_id, i.name, v.closed
		FROM vote_options o
		JOIN votes v ON v.id = o.vote_id
		JOIN expense_items i ON i.id = o.expense_item_id
		WHERE o.id = $1
		FOR UPDATE OF o FOR SHARE OF v
	`

	var ref vote.OptionRef

	err := ct.tx.QueryRowContext(ctx, query, optionID).Scan(
		&ref.OptionID, &ref.VoteID, &ref.ExpenseID, &ref.ItemName, &ref.VoteClosed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("vote option %s not found", optionID)
		}

		return nil, fmt.Errorf("locking vote option: %w", err)
	}

	return &ref, nil
}

func (ct *castTx) HasUserVote(ctx context.Context, userID, optionID uuid.UUID) (bool, error) {
	var exists bool

	err := ct.tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_votes WHERE user_id = $1 AND vote_option_id = $2)`,
		userID, optionID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking user vote: %w", err)
	}

	return exists, nil
}

func (ct *castTx) AddUserVote(ctx context.Context, userID, optionID uuid.UUID) error {
	_, err := ct.tx.ExecContext(ctx,
		`INSERT INTO user_votes (user_id, vote_option_id) VALUES ($1, $2)`, userID, optionID)
	if err != nil {
		if database.IsUniqueViolation(err, "user_votes_user_option_key") {
			return apperr.Conflict("user %s already voted for option %s", userID, optionID)
		}

		return fmt.Errorf("adding user vote: %w", err)
	}

	return nil
}

func (ct *castTx) RemoveUserVote(ctx context.Context, userID, optionID uuid.UUID) error {
	_, err := ct.tx.ExecContext(ctx,
		`DELETE FROM user_votes WHERE user_id = $1 AND vote_option_id = $2`, userID, optionID)
	if err != nil {
		return fmt.Errorf("removing user vote: %w", err)
	}

	return nil
}
