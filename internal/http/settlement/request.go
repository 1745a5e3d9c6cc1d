package settlement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/settle/internal/allocation"
	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/settlement"
)

type entryRequest struct {
	UserID  uuid.UUID        `json:"user_id"`
	Amount  *int64           `json:"amount,omitempty"`
	Percent *decimal.Decimal `json:"percent,omitempty"`
}

type createRequest struct {
	Method         string         `json:"method"`
	ParticipantIDs []uuid.UUID    `json:"participant_ids,omitempty"`
	Entries        []entryRequest `json:"entries,omitempty"`
	Deadline       *time.Time     `json:"deadline,omitempty"`
}

// strategy checks that the request carries the inputs its method needs.
// Business checks such as sums and membership stay in the service.
func (req createRequest) strategy() (settlement.Strategy, error) {
	method, err := settlement.ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}

	switch method {
	case settlement.MethodEqual:
		return settlement.Equal{ParticipantIDs: req.ParticipantIDs}, nil
	case settlement.MethodDirect:
		entries := make([]allocation.DirectEntry, 0, len(req.Entries))

		for i, e := range req.Entries {
			if e.Amount == nil {
				return nil, apperr.Validation("entry %d: amount is required for %s", i, method)
			}

			entries = append(entries, allocation.DirectEntry{UserID: e.UserID, Amount: *e.Amount})
		}

		return settlement.Direct{Entries: entries}, nil
	case settlement.MethodPercent:
		entries := make([]allocation.PercentEntry, 0, len(req.Entries))

		for i, e := range req.Entries {
			if e.Percent == nil {
				return nil, apperr.Validation("entry %d: percent is required for %s", i, method)
			}

			entries = append(entries, allocation.PercentEntry{UserID: e.UserID, Ratio: *e.Percent})
		}

		return settlement.Percent{Entries: entries}, nil
	default:
		return settlement.ByItem{}, nil
	}
}
