package vote

import (
	"time"

	"github.com/google/uuid"
)

// Vote lets the participants of one expense claim the line items they
// consumed. A vote is Open until closed; only an open vote accepts casts and
// only a closed vote can feed an item-based settlement.
type Vote struct {
	ID        uuid.UUID
	ExpenseID uuid.UUID
	Closed    bool
	CreatedAt time.Time
	ClosedAt  *time.Time
	Options   []Option // Loaded with voters, ordered as the expense items
}

// Option is one selectable expense line item. Options never change after the
// vote is created.
type Option struct {
	ID            uuid.UUID
	VoteID        uuid.UUID
	ExpenseItemID uuid.UUID
	ItemName      string // Loaded via JOIN on expense_items
	Price         int64  // unit_price * quantity, via JOIN
	VoterIDs      []uuid.UUID
}

// OptionRef is a locked option together with the state of its vote.
type OptionRef struct {
	OptionID   uuid.UUID
	VoteID     uuid.UUID
	ExpenseID  uuid.UUID
	ItemName   string
	VoteClosed bool
}

// CastAction reports which way a toggle went.
type CastAction string

const (
	ActionCast      CastAction = "cast"
	ActionRetracted CastAction = "retracted"
)

type CastResult struct {
	Action   CastAction
	OptionID uuid.UUID
	ItemName string
}

// Status is a read-only snapshot of who claimed what.
type Status struct {
	VoteID      uuid.UUID
	ExpenseID   uuid.UUID
	Closed      bool
	Options     []Option
	NonVoterIDs []uuid.UUID // Expense participants with no claim on any option
}

type CreateResult struct {
	Vote    *Vote
	Created bool // false when an existing vote was returned
}

type CloseResult struct {
	Vote          *Vote
	AlreadyClosed bool
}

// nonVoters returns the participants, in order, that hold no claim on any option.
func nonVoters(participants []uuid.UUID, options []Option) []uuid.UUID {
	voted := make(map[uuid.UUID]struct{})

	for _, opt := range options {
		for _, v := range opt.VoterIDs {
			voted[v] = struct{}{}
		}
	}

	out := make([]uuid.UUID, 0, len(participants))
	for _, p := range participants {
		if _, ok := voted[p]; ok {
			continue
		}

		out = append(out, p)
	}

	return out
}
