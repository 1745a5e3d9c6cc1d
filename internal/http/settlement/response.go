package settlement

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/settlement"
)

type transferResponse struct {
	DetailID     uuid.UUID  `json:"detail_id"`
	DebtorID     uuid.UUID  `json:"debtor_id"`
	DebtorName   string     `json:"debtor_name"`
	CreditorID   uuid.UUID  `json:"creditor_id"`
	CreditorName string     `json:"creditor_name"`
	Amount       int64      `json:"amount"`
	Sent         bool       `json:"sent"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
}

type summaryResponse struct {
	SettlementID uuid.UUID          `json:"settlement_id"`
	ExpenseID    uuid.UUID          `json:"expense_id"`
	Method       settlement.Method  `json:"method"`
	Status       settlement.Status  `json:"status"`
	TotalAmount  int64              `json:"total_amount"`
	Outstanding  int64              `json:"outstanding"`
	Deadline     *time.Time         `json:"deadline,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
	Transfers    []transferResponse `json:"transfers"`
}

type detailResponse struct {
	ID           uuid.UUID  `json:"id"`
	SettlementID uuid.UUID  `json:"settlement_id"`
	DebtorID     uuid.UUID  `json:"debtor_id"`
	CreditorID   uuid.UUID  `json:"creditor_id"`
	Amount       int64      `json:"amount"`
	Sent         bool       `json:"sent"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
}

type markSentResponse struct {
	Detail           detailResponse    `json:"detail"`
	SettlementStatus settlement.Status `json:"settlement_status"`
	AlreadySent      bool              `json:"already_sent"`
	Completed        bool              `json:"completed"`
}

type importResponse struct {
	Charset    string          `json:"charset"`
	Rows       int             `json:"rows"`
	Settlement summaryResponse `json:"settlement"`
}

func toSummaryResponse(s *settlement.Summary) summaryResponse {
	resp := summaryResponse{
		SettlementID: s.SettlementID,
		ExpenseID:    s.ExpenseID,
		Method:       s.Method,
		Status:       s.Status,
		TotalAmount:  s.TotalAmount,
		Outstanding:  s.Outstanding(),
		Deadline:     s.Deadline,
		CreatedAt:    s.CreatedAt,
		CompletedAt:  s.CompletedAt,
		Transfers:    make([]transferResponse, len(s.Transfers)),
	}

	for i, t := range s.Transfers {
		resp.Transfers[i] = transferResponse{
			DetailID:     t.DetailID,
			DebtorID:     t.DebtorID,
			DebtorName:   t.DebtorName,
			CreditorID:   t.CreditorID,
			CreditorName: t.CreditorName,
			Amount:       t.Amount,
			Sent:         t.Sent,
			SentAt:       t.SentAt,
		}
	}

	return resp
}

func toDetailResponse(d settlement.Detail) detailResponse {
	return detailResponse{
		ID:           d.ID,
		SettlementID: d.SettlementID,
		DebtorID:     d.DebtorID,
		CreditorID:   d.CreditorID,
		Amount:       d.Amount,
		Sent:         d.Sent,
		SentAt:       d.SentAt,
	}
}
