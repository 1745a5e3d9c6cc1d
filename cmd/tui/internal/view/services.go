package view

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/settlement"
	"github.com/MrJamesThe3rd/settle/internal/vote"
)

//go:generate mockgen -source=services.go -destination=services_mock.go -package=view
type SettlementService interface {
	Create(ctx context.Context, params settlement.CreateParams) (*settlement.Summary, error)
	GetByExpense(ctx context.Context, expenseID, actorID uuid.UUID) (*settlement.Summary, error)
	MarkSent(ctx context.Context, detailID, actorID uuid.UUID) (*settlement.MarkSentResult, error)
}

type VoteService interface {
	Create(ctx context.Context, expenseID, actorID uuid.UUID) (*vote.CreateResult, error)
	Status(ctx context.Context, expenseID, actorID uuid.UUID) (*vote.Status, error)
	Cast(ctx context.Context, optionID, actorID uuid.UUID) (*vote.CastResult, error)
	CloseAs(ctx context.Context, voteID, actorID uuid.UUID) (*vote.CloseResult, error)
}
