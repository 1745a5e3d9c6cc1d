// Package directory exposes the read-only view of expenses, group membership
// and users that settlement and vote logic consume. The owning services for
// those records live elsewhere; nothing in this package mutates them.
package directory

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=directory.go -destination=reader_mock.go -package=directory
type Reader interface {
	// GetExpense returns apperr.ErrNotFound when the expense does not exist.
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	IsMember(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
	// GetUsers returns the users that exist; unknown ids are omitted.
	GetUsers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*User, error)
}

// Expense is a recorded group purchase. Amount is in minor currency units and
// equals the sum of item prices whenever items are present.
type Expense struct {
	ID             uuid.UUID
	GroupID        uuid.UUID
	PayerID        uuid.UUID
	Amount         int64
	Items          []Item
	ParticipantIDs []uuid.UUID
}

func (e *Expense) HasParticipant(userID uuid.UUID) bool {
	for _, p := range e.ParticipantIDs {
		if p == userID {
			return true
		}
	}

	return false
}

// Item is one line of an itemized expense.
type Item struct {
	ID        uuid.UUID
	Name      string
	UnitPrice int64
	Quantity  int64
}

// Price is the line total.
func (i Item) Price() int64 {
	return i.UnitPrice * i.Quantity
}

type User struct {
	ID          uuid.UUID
	DisplayName string
}
