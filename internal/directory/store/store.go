package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/directory"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ directory.Reader = (*Store)(nil)

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*directory.Expense, error) {
	query := `SELECT id, group_id, payer_id, amount FROM expenses WHERE id = $1`

	var e directory.Expense

	err := s.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.GroupID, &e.PayerID, &e.Amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("expense %s not found", id)
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	items, err := s.listItems(ctx, id)
	if err != nil {
		return nil, err
	}

	e.Items = items

	participants, err := s.listParticipants(ctx, id)
	if err != nil {
		return nil, err
	}

	e.ParticipantIDs = participants

	return &e, nil
}

func (s *Store) listItems(ctx context.Context, expenseID uuid.UUID) ([]directory.Item, error) {
	query := `
		SELECT id, name, unit_price, quantity
		FROM expense_items
		WHERE expense_id = $1
		ORDER BY position ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("listing expense items: %w", err)
	}
	defer rows.Close()

	var items []directory.Item

	for rows.Next() {
		var it directory.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scanning expense item: %w", err)
		}

		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense items: %w", err)
	}

	return items, nil
}

func (s *Store) listParticipants(ctx context.Context, expenseID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id FROM expense_participants WHERE expense_id = $1 ORDER BY user_id`, expenseID)
	if err != nil {
		return nil, fmt.Errorf("listing expense participants: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning expense participant: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense participants: %w", err)
	}

	return ids, nil
}

func (s *Store) IsMember(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)`

	var ok bool
	if err := s.db.QueryRowContext(ctx, query, groupID, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("checking membership: %w", err)
	}

	return ok, nil
}

func (s *Store) GetUsers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*directory.User, error) {
	users := make(map[uuid.UUID]*directory.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))

	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `SELECT id, display_name FROM users WHERE id IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("getting users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u directory.User
		if err := rows.Scan(&u.ID, &u.DisplayName); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}

		users[u.ID] = &u
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	return users, nil
}
