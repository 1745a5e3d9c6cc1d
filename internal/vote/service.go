package vote

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/directory"
	"github.com/MrJamesThe3rd/settle/internal/metrics"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=vote
type Repository interface {
	GetVote(ctx context.Context, id uuid.UUID) (*Vote, error)
	GetVoteByExpense(ctx context.Context, expenseID uuid.UUID) (*Vote, error)
	// CloseVote reports true when this call moved the vote from open to closed.
	CloseVote(ctx context.Context, id uuid.UUID) (bool, error)

	BeginExpense(ctx context.Context, expenseID uuid.UUID) (ExpenseTx, error)
	BeginCast(ctx context.Context) (CastTx, error)
}

// ExpenseTx holds the per-expense lock shared with settlement creation, so
// "no settlement yet" and "no vote yet" cannot both be observed stale.
type ExpenseTx interface {
	// FindVote returns nil, nil when the expense has no vote.
	FindVote(ctx context.Context, expenseID uuid.UUID) (*Vote, error)
	SettlementExists(ctx context.Context, expenseID uuid.UUID) (bool, error)
	CreateVote(ctx context.Context, v *Vote) error
	// DeleteVote is a conflict if the vote has been closed since FindVote.
	DeleteVote(ctx context.Context, voteID uuid.UUID) error
	Commit() error
	Rollback() error
}

// CastTx serializes toggles on one option through a row lock.
type CastTx interface {
	LockOption(ctx context.Context, optionID uuid.UUID) (*OptionRef, error)
	HasUserVote(ctx context.Context, userID, optionID uuid.UUID) (bool, error)
	AddUserVote(ctx context.Context, userID, optionID uuid.UUID) error
	RemoveUserVote(ctx context.Context, userID, optionID uuid.UUID) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
	dir  directory.Reader
}

func NewService(repo Repository, dir directory.Reader) *Service {
	return &Service{repo: repo, dir: dir}
}

// Create opens a vote with one option per expense line item. If the expense
// already has a vote, that vote is returned instead. Creating a vote once a
// settlement exists is a conflict.
func (s *Service) Create(ctx context.Context, expenseID, actorID uuid.UUID) (*CreateResult, error) {
	expense, err := s.authorize(ctx, expenseID, actorID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginExpense(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("begin vote creation: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.FindVote(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("finding vote: %w", err)
	}

	if existing != nil {
		slog.Info("vote already exists", "expense_id", expenseID, "vote_id", existing.ID)
		return &CreateResult{Vote: existing}, nil
	}

	settled, err := tx.SettlementExists(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("checking settlement: %w", err)
	}

	if settled {
		return nil, apperr.Conflict("expense %s is already settled; a vote can no longer be created", expenseID)
	}

	if len(expense.Items) == 0 {
		return nil, apperr.Validation("expense %s has no line items to vote on", expenseID)
	}

	v := &Vote{
		ExpenseID: expenseID,
		Options:   make([]Option, len(expense.Items)),
	}
	for i, item := range expense.Items {
		v.Options[i] = Option{
			ExpenseItemID: item.ID,
			ItemName:      item.Name,
			Price:         item.Price(),
		}
	}

	if err := tx.CreateVote(ctx, v); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit vote creation: %w", err)
	}

	metrics.VotesCreated.Inc()
	slog.Info("vote created", "expense_id", expenseID, "vote_id", v.ID, "options", len(v.Options))

	return &CreateResult{Vote: v, Created: true}, nil
}

// Cast toggles the actor's claim on an option: a second cast retracts the first.
func (s *Service) Cast(ctx context.Context, optionID, actorID uuid.UUID) (*CastResult, error) {
	tx, err := s.repo.BeginCast(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin cast: %w", err)
	}
	defer tx.Rollback()

	ref, err := tx.LockOption(ctx, optionID)
	if err != nil {
		return nil, err
	}

	expense, err := s.authorize(ctx, ref.ExpenseID, actorID)
	if err != nil {
		return nil, err
	}

	if !expense.HasParticipant(actorID) {
		return nil, apperr.AccessDenied("user %s is not a participant of expense %s", actorID, expense.ID)
	}

	if ref.VoteClosed {
		return nil, apperr.Conflict("vote %s is closed", ref.VoteID)
	}

	has, err := tx.HasUserVote(ctx, actorID, optionID)
	if err != nil {
		return nil, fmt.Errorf("checking user vote: %w", err)
	}

	action := ActionCast
	if has {
		action = ActionRetracted
		err = tx.RemoveUserVote(ctx, actorID, optionID)
	} else {
		err = tx.AddUserVote(ctx, actorID, optionID)
	}

	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cast: %w", err)
	}

	metrics.VoteCasts.WithLabelValues(string(action)).Inc()
	slog.Debug("vote toggled", "option_id", optionID, "user_id", actorID, "action", action)

	return &CastResult{Action: action, OptionID: optionID, ItemName: ref.ItemName}, nil
}

// Status lists the voters of every option and the participants who have not
// voted on anything.
func (s *Service) Status(ctx context.Context, expenseID, actorID uuid.UUID) (*Status, error) {
	expense, err := s.authorize(ctx, expenseID, actorID)
	if err != nil {
		return nil, err
	}

	v, err := s.repo.GetVoteByExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	return &Status{
		VoteID:      v.ID,
		ExpenseID:   v.ExpenseID,
		Closed:      v.Closed,
		Options:     v.Options,
		NonVoterIDs: nonVoters(expense.ParticipantIDs, v.Options),
	}, nil
}

// Delete removes an open vote together with its options and claims.
func (s *Service) Delete(ctx context.Context, expenseID, actorID uuid.UUID) error {
	if _, err := s.authorize(ctx, expenseID, actorID); err != nil {
		return err
	}

	tx, err := s.repo.BeginExpense(ctx, expenseID)
	if err != nil {
		return fmt.Errorf("begin vote deletion: %w", err)
	}
	defer tx.Rollback()

	v, err := tx.FindVote(ctx, expenseID)
	if err != nil {
		return fmt.Errorf("finding vote: %w", err)
	}

	if v == nil {
		return apperr.NotFound("expense %s has no vote", expenseID)
	}

	if v.Closed {
		return apperr.Conflict("vote %s is closed and cannot be deleted", v.ID)
	}

	if err := tx.DeleteVote(ctx, v.ID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit vote deletion: %w", err)
	}

	slog.Info("vote deleted", "expense_id", expenseID, "vote_id", v.ID)

	return nil
}

// Close ends voting. It is the hook for deadline schedulers and operators and
// performs no membership check; closing twice is reported, not an error.
func (s *Service) Close(ctx context.Context, voteID uuid.UUID) (*CloseResult, error) {
	closedNow, err := s.repo.CloseVote(ctx, voteID)
	if err != nil {
		return nil, err
	}

	v, err := s.repo.GetVote(ctx, voteID)
	if err != nil {
		return nil, err
	}

	if closedNow {
		metrics.VotesClosed.Inc()
		slog.Info("vote closed", "vote_id", voteID, "expense_id", v.ExpenseID)
	} else {
		slog.Warn("vote already closed", "vote_id", voteID)
	}

	return &CloseResult{Vote: v, AlreadyClosed: !closedNow}, nil
}

// CloseAs is Close on behalf of a group member.
func (s *Service) CloseAs(ctx context.Context, voteID, actorID uuid.UUID) (*CloseResult, error) {
	v, err := s.repo.GetVote(ctx, voteID)
	if err != nil {
		return nil, err
	}

	if _, err := s.authorize(ctx, v.ExpenseID, actorID); err != nil {
		return nil, err
	}

	return s.Close(ctx, voteID)
}

// ForExpense returns the vote of an expense with its voters, without any
// authorization. It backs item-based settlement.
func (s *Service) ForExpense(ctx context.Context, expenseID uuid.UUID) (*Vote, error) {
	return s.repo.GetVoteByExpense(ctx, expenseID)
}

func (s *Service) authorize(ctx context.Context, expenseID, actorID uuid.UUID) (*directory.Expense, error) {
	expense, err := s.dir.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	ok, err := s.dir.IsMember(ctx, actorID, expense.GroupID)
	if err != nil {
		return nil, fmt.Errorf("checking membership: %w", err)
	}

	if !ok {
		return nil, apperr.AccessDenied("user %s is not a member of group %s", actorID, expense.GroupID)
	}

	return expense, nil
}
