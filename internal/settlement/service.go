package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/allocation"
	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/directory"
	"github.com/MrJamesThe3rd/settle/internal/metrics"
	"github.com/MrJamesThe3rd/settle/internal/vote"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settlement
type Repository interface {
	// Get and GetByExpense load the settlement with its details.
	Get(ctx context.Context, id uuid.UUID) (*Settlement, error)
	GetByExpense(ctx context.Context, expenseID uuid.UUID) (*Settlement, error)
	// Delete removes the details, then the settlement, in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	BeginExpense(ctx context.Context, expenseID uuid.UUID) (ExpenseTx, error)
	BeginDetail(ctx context.Context) (DetailTx, error)
}

// ExpenseTx holds the per-expense lock for the duration of a creation.
type ExpenseTx interface {
	ExistsForExpense(ctx context.Context, expenseID uuid.UUID) (bool, error)
	// Create inserts the settlement and its details, filling in their ids.
	Create(ctx context.Context, s *Settlement) error
	Commit() error
	Rollback() error
}

// DetailTx covers one mark-sent unit of work.
type DetailTx interface {
	// LockDetail locks the detail and its settlement row and returns the
	// settlement's current status.
	LockDetail(ctx context.Context, detailID uuid.UUID) (*Detail, Status, error)
	MarkSent(ctx context.Context, d *Detail) error
	CountUnsent(ctx context.Context, settlementID uuid.UUID) (int, error)
	Complete(ctx context.Context, settlementID uuid.UUID) error
	Commit() error
	Rollback() error
}

// VoteReader yields an expense's vote with its voters.
type VoteReader interface {
	ForExpense(ctx context.Context, expenseID uuid.UUID) (*vote.Vote, error)
}

type Service struct {
	repo  Repository
	dir   directory.Reader
	votes VoteReader
}

func NewService(repo Repository, dir directory.Reader, votes VoteReader) *Service {
	return &Service{repo: repo, dir: dir, votes: votes}
}

// Create computes and persists the settlement of an expense. It is
// all-or-nothing and fails with a conflict if the expense is already settled.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Summary, error) {
	if params.Strategy == nil {
		return nil, apperr.Validation("split method is required")
	}

	expense, err := s.authorize(ctx, params.ExpenseID, params.ActorID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginExpense(ctx, expense.ID)
	if err != nil {
		return nil, fmt.Errorf("begin settlement creation: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.ExistsForExpense(ctx, expense.ID)
	if err != nil {
		return nil, fmt.Errorf("checking existing settlement: %w", err)
	}

	if exists {
		return nil, apperr.Conflict("expense %s already has a settlement", expense.ID)
	}

	shares, err := s.computeShares(ctx, expense, params.Strategy)
	if err != nil {
		return nil, err
	}

	st := &Settlement{
		ExpenseID: expense.ID,
		Method:    params.Strategy.Method(),
		Status:    StatusPending,
		Deadline:  params.Deadline,
	}

	for _, sh := range shares {
		if sh.Amount <= 0 || sh.Debtor == expense.PayerID {
			continue
		}

		st.Details = append(st.Details, Detail{
			DebtorID:   sh.Debtor,
			CreditorID: expense.PayerID,
			Amount:     sh.Amount,
		})
	}

	// Nothing to pay back means every transfer is trivially sent.
	if len(st.Details) == 0 {
		st.Status = StatusCompleted
	}

	// Names are resolved before commit so an unknown user leaves nothing behind.
	names, err := s.resolveNames(ctx, st, expense)
	if err != nil {
		return nil, err
	}

	if err := tx.Create(ctx, st); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit settlement creation: %w", err)
	}

	summary := buildSummary(st, expense, names)

	metrics.SettlementsCreated.WithLabelValues(string(st.Method)).Inc()
	slog.Info("settlement created",
		"settlement_id", st.ID,
		"expense_id", expense.ID,
		"method", st.Method,
		"transfers", len(st.Details),
		"owed", allocation.Total(shares),
		"amount", expense.Amount,
	)

	return summary, nil
}

func (s *Service) computeShares(ctx context.Context, expense *directory.Expense, strategy Strategy) ([]allocation.Share, error) {
	switch st := strategy.(type) {
	case Equal:
		ids := st.ParticipantIDs
		if len(ids) == 0 {
			ids = expense.ParticipantIDs
		}

		if err := checkDistinct(ids); err != nil {
			return nil, err
		}

		shares, err := allocation.Equal(expense.Amount, expense.PayerID, ids)
		if err != nil {
			return nil, err
		}

		if err := s.requireMembers(ctx, expense.GroupID, ids); err != nil {
			return nil, err
		}

		return shares, nil

	case Direct:
		shares, err := allocation.Direct(expense.PayerID, st.Entries)
		if err != nil {
			return nil, err
		}

		ids := make([]uuid.UUID, len(st.Entries))

		var sum int64
		for i, e := range st.Entries {
			if e.Amount < 0 {
				return nil, apperr.Validation("amount for user %s is negative", e.UserID)
			}

			// sum stays within [0, expense.Amount], so the addition below cannot overflow.
			if e.Amount > expense.Amount-sum {
				return nil, apperr.Validation("amounts exceed the expense amount %d", expense.Amount)
			}

			ids[i] = e.UserID
			sum += e.Amount
		}

		if err := checkDistinct(ids); err != nil {
			return nil, err
		}

		if sum != expense.Amount {
			return nil, apperr.Validation("amounts sum to %d but the expense amount is %d", sum, expense.Amount)
		}

		if err := s.requireMembers(ctx, expense.GroupID, ids); err != nil {
			return nil, err
		}

		return shares, nil

	case Percent:
		shares, err := allocation.Percent(expense.Amount, expense.PayerID, st.Entries)
		if err != nil {
			return nil, err
		}

		ids := make([]uuid.UUID, len(st.Entries))
		for i, e := range st.Entries {
			if e.Ratio.IsNegative() {
				return nil, apperr.Validation("percentage for user %s is negative", e.UserID)
			}

			ids[i] = e.UserID
		}

		if err := checkDistinct(ids); err != nil {
			return nil, err
		}

		if !allocation.RatiosSumTo100(st.Entries) {
			return nil, apperr.Validation("percentages sum to %s, want 100", allocation.RatioSum(st.Entries).String())
		}

		if err := s.requireMembers(ctx, expense.GroupID, ids); err != nil {
			return nil, err
		}

		return shares, nil

	case ByItem:
		// A closed vote never changes, so reading it outside the settlement
		// transaction is safe.
		v, err := s.votes.ForExpense(ctx, expense.ID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, apperr.Validation("expense %s has no vote; create one first", expense.ID)
			}

			return nil, fmt.Errorf("loading vote: %w", err)
		}

		if !v.Closed {
			return nil, apperr.Conflict("vote %s is still open", v.ID)
		}

		return netItemShares(v, expense.PayerID), nil

	default:
		return nil, apperr.Validation("unsupported split method %T", strategy)
	}
}

func (s *Service) requireMembers(ctx context.Context, groupID uuid.UUID, ids []uuid.UUID) error {
	for _, id := range ids {
		ok, err := s.dir.IsMember(ctx, id, groupID)
		if err != nil {
			return fmt.Errorf("checking membership: %w", err)
		}

		if !ok {
			return apperr.Validation("user %s is not a member of group %s", id, groupID)
		}
	}

	return nil
}

func checkDistinct(ids []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return apperr.Validation("user %s is listed more than once", id)
		}

		seen[id] = struct{}{}
	}

	return nil
}

// Get returns a settlement by id for a member of the expense's group.
func (s *Service) Get(ctx context.Context, settlementID, actorID uuid.UUID) (*Summary, error) {
	st, err := s.repo.Get(ctx, settlementID)
	if err != nil {
		return nil, err
	}

	expense, err := s.authorize(ctx, st.ExpenseID, actorID)
	if err != nil {
		return nil, err
	}

	return s.summarize(ctx, st, expense)
}

// GetByExpense returns the settlement status of an expense.
func (s *Service) GetByExpense(ctx context.Context, expenseID, actorID uuid.UUID) (*Summary, error) {
	expense, err := s.authorize(ctx, expenseID, actorID)
	if err != nil {
		return nil, err
	}

	st, err := s.repo.GetByExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	return s.summarize(ctx, st, expense)
}

// MarkSent records that the debtor sent their transfer. When it was the last
// outstanding transfer the settlement becomes COMPLETED in the same
// transaction. Marking an already-sent transfer changes nothing.
func (s *Service) MarkSent(ctx context.Context, detailID, actorID uuid.UUID) (*MarkSentResult, error) {
	tx, err := s.repo.BeginDetail(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin mark sent: %w", err)
	}
	defer tx.Rollback()

	d, status, err := tx.LockDetail(ctx, detailID)
	if err != nil {
		return nil, err
	}

	if d.DebtorID != actorID {
		return nil, apperr.AccessDenied("only the debtor may mark transfer %s as sent", detailID)
	}

	if d.Sent {
		slog.Warn("transfer already marked sent", "detail_id", detailID, "settlement_id", d.SettlementID)
		return &MarkSentResult{Detail: *d, SettlementStatus: status, AlreadySent: true}, nil
	}

	if err := tx.MarkSent(ctx, d); err != nil {
		return nil, err
	}

	unsent, err := tx.CountUnsent(ctx, d.SettlementID)
	if err != nil {
		return nil, fmt.Errorf("counting unsent transfers: %w", err)
	}

	completed := false
	if unsent == 0 && status != StatusCompleted {
		if err := tx.Complete(ctx, d.SettlementID); err != nil {
			return nil, err
		}

		status = StatusCompleted
		completed = true
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit mark sent: %w", err)
	}

	metrics.TransfersSent.Inc()
	slog.Info("transfer marked sent", "detail_id", detailID, "settlement_id", d.SettlementID, "remaining", unsent)

	if completed {
		metrics.SettlementsCompleted.Inc()
		slog.Info("settlement completed", "settlement_id", d.SettlementID)
	}

	return &MarkSentResult{Detail: *d, SettlementStatus: status, Completed: completed}, nil
}

// Delete removes a settlement and its transfers. A vote on the same expense
// is left as it is.
func (s *Service) Delete(ctx context.Context, settlementID, actorID uuid.UUID) error {
	st, err := s.repo.Get(ctx, settlementID)
	if err != nil {
		return err
	}

	if _, err := s.authorize(ctx, st.ExpenseID, actorID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, settlementID); err != nil {
		return err
	}

	slog.Info("settlement deleted", "settlement_id", settlementID, "expense_id", st.ExpenseID)

	return nil
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

func (s *Service) summarize(ctx context.Context, st *Settlement, expense *directory.Expense) (*Summary, error) {
	names, err := s.resolveNames(ctx, st, expense)
	if err != nil {
		return nil, err
	}

	return buildSummary(st, expense, names), nil
}

// resolveNames maps the payer and every debtor to a display name. An unknown
// user is NotFound.
func (s *Service) resolveNames(ctx context.Context, st *Settlement, expense *directory.Expense) (map[uuid.UUID]string, error) {
	ids := []uuid.UUID{expense.PayerID}
	for _, d := range st.Details {
		ids = append(ids, d.DebtorID, d.CreditorID)
	}

	users, err := s.dir.GetUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolving users: %w", err)
	}

	names := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		u, ok := users[id]
		if !ok {
			return nil, apperr.NotFound("user %s not found", id)
		}

		names[id] = u.DisplayName
	}

	return names, nil
}

func buildSummary(st *Settlement, expense *directory.Expense, names map[uuid.UUID]string) *Summary {
	summary := &Summary{
		SettlementID: st.ID,
		ExpenseID:    st.ExpenseID,
		Method:       st.Method,
		Status:       st.Status,
		TotalAmount:  expense.Amount,
		Deadline:     st.Deadline,
		CreatedAt:    st.CreatedAt,
		CompletedAt:  st.CompletedAt,
		Transfers:    make([]Transfer, len(st.Details)),
	}

	for i, d := range st.Details {
		summary.Transfers[i] = Transfer{
			DetailID:     d.ID,
			DebtorID:     d.DebtorID,
			DebtorName:   names[d.DebtorID],
			CreditorID:   d.CreditorID,
			CreditorName: names[d.CreditorID],
			Amount:       d.Amount,
			Sent:         d.Sent,
			SentAt:       d.SentAt,
		}
	}

	return summary
}
