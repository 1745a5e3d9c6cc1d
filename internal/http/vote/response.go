package vote

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/vote"
)

type optionResponse struct {
	ID            uuid.UUID   `json:"id"`
	ExpenseItemID uuid.UUID   `json:"expense_item_id"`
	ItemName      string      `json:"item_name"`
	Price         int64       `json:"price"`
	VoterIDs      []uuid.UUID `json:"voter_ids"`
}

type voteResponse struct {
	ID        uuid.UUID        `json:"id"`
	ExpenseID uuid.UUID        `json:"expense_id"`
	Closed    bool             `json:"closed"`
	CreatedAt time.Time        `json:"created_at"`
	ClosedAt  *time.Time       `json:"closed_at,omitempty"`
	Options   []optionResponse `json:"options"`
}

type statusResponse struct {
	VoteID      uuid.UUID        `json:"vote_id"`
	ExpenseID   uuid.UUID        `json:"expense_id"`
	Closed      bool             `json:"closed"`
	Options     []optionResponse `json:"options"`
	NonVoterIDs []uuid.UUID      `json:"non_voter_ids"`
}

type closeResponse struct {
	Vote          voteResponse `json:"vote"`
	AlreadyClosed bool         `json:"already_closed"`
}

type castResponse struct {
	Action   vote.CastAction `json:"action"`
	OptionID uuid.UUID       `json:"option_id"`
	ItemName string          `json:"item_name"`
}

func toVoteResponse(v *vote.Vote) voteResponse {
	return voteResponse{
		ID:        v.ID,
		ExpenseID: v.ExpenseID,
		Closed:    v.Closed,
		CreatedAt: v.CreatedAt,
		ClosedAt:  v.ClosedAt,
		Options:   toOptionResponses(v.Options),
	}
}

func toOptionResponses(opts []vote.Option) []optionResponse {
	resp := make([]optionResponse, len(opts))
	for i, o := range opts {
		resp[i] = optionResponse{
			ID:            o.ID,
			ExpenseItemID: o.ExpenseItemID,
			ItemName:      o.ItemName,
			Price:         o.Price,
			VoterIDs:      nonNil(o.VoterIDs),
		}
	}

	return resp
}

// nonNil keeps empty id lists as [] rather than null on the wire.
func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}

	return ids
}
