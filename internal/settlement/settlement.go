package settlement

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
)

type Method string

const (
	MethodEqual   Method = "EQUAL"
	MethodDirect  Method = "DIRECT"
	MethodPercent Method = "PERCENT"
	MethodItem    Method = "ITEM"
)

// ParseMethod accepts the upper-case method names.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodEqual, MethodDirect, MethodPercent, MethodItem:
		return m, nil
	default:
		return "", apperr.Validation("unknown split method %q", s)
	}
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// Settlement is the aggregate root: at most one per expense. Details are
// created with it and only their sent flag changes afterwards.
type Settlement struct {
	ID          uuid.UUID
	ExpenseID   uuid.UUID
	Method      Method
	Status      Status
	Deadline    *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
	Details     []Detail // Ordered as computed
}

// Detail is one debtor → creditor transfer. DebtorID never equals CreditorID.
type Detail struct {
	ID           uuid.UUID
	SettlementID uuid.UUID
	DebtorID     uuid.UUID
	CreditorID   uuid.UUID
	Amount       int64
	Sent         bool
	SentAt       *time.Time
}

// Transfer is a Detail with display names resolved.
type Transfer struct {
	DetailID     uuid.UUID
	DebtorID     uuid.UUID
	DebtorName   string
	CreditorID   uuid.UUID
	CreditorName string
	Amount       int64
	Sent         bool
	SentAt       *time.Time
}

// Summary is the caller-facing view of a settlement.
type Summary struct {
	SettlementID uuid.UUID
	ExpenseID    uuid.UUID
	Method       Method
	Status       Status
	TotalAmount  int64 // The expense amount
	Deadline     *time.Time
	CreatedAt    time.Time
	CompletedAt  *time.Time
	Transfers    []Transfer
}

// Outstanding sums the transfers not yet sent.
func (s *Summary) Outstanding() int64 {
	var sum int64
	for _, t := range s.Transfers {
		if !t.Sent {
			sum += t.Amount
		}
	}

	return sum
}

type CreateParams struct {
	ExpenseID uuid.UUID
	ActorID   uuid.UUID
	Strategy  Strategy
	Deadline  *time.Time
}

type MarkSentResult struct {
	Detail           Detail
	SettlementStatus Status
	AlreadySent      bool // the detail was already sent; nothing was written
	Completed        bool // this call promoted the settlement to COMPLETED
}
