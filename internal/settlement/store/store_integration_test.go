//go:build integration

package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/database/dbtest"
	dirStore "github.com/MrJamesThe3rd/settle/internal/directory/store"
	"github.com/MrJamesThe3rd/settle/internal/settlement"
	"github.com/MrJamesThe3rd/settle/internal/settlement/store"
	"github.com/MrJamesThe3rd/settle/internal/vote"
	voteStore "github.com/MrJamesThe3rd/settle/internal/vote/store"
)

type services struct {
	settlements *settlement.Service
	votes       *vote.Service
	repo        *store.Store
}

func newServices(t *testing.T) (*services, *dbtest.Fixture) {
	t.Helper()

	db := dbtest.New(t)
	f := dbtest.Seed(t, db, dbtest.SeedParams{
		Amount: 9000,
		Items: []dbtest.Item{
			{Name: "Pizza", UnitPrice: 3000, Quantity: 2},
			{Name: "Wine", UnitPrice: 3000, Quantity: 1},
		},
		Members:   []string{"Payer", "Ana", "Rui"},
		Outsiders: []string{"Stranger"},
	})

	dir := dirStore.New(db)
	votes := vote.NewService(voteStore.New(db), dir)
	repo := store.New(db)

	return &services{
		settlements: settlement.NewService(repo, dir, votes),
		votes:       votes,
		repo:        repo,
	}, f
}

func TestIntegration_SettlementLifecycle(t *testing.T) {
	s, f := newServices(t)
	ctx := context.Background()

	summary, err := s.settlements.Create(ctx, settlement.CreateParams{
		ExpenseID: f.ExpenseID,
		ActorID:   f.PayerID,
		Strategy:  settlement.Equal{},
	})
	require.NoError(t, err)

	assert.Equal(t, settlement.StatusPending, summary.Status)
	require.Len(t, summary.Transfers, 2)
	assert.Equal(t, int64(6000), summary.Outstanding())

	for _, tr := range summary.Transfers {
		assert.Equal(t, int64(3000), tr.Amount)
		assert.Equal(t, f.PayerID, tr.CreditorID)
		assert.Equal(t, "Payer", tr.CreditorName)
	}

	first, err := s.settlements.MarkSent(ctx, summary.Transfers[0].DetailID, summary.Transfers[0].DebtorID)
	require.NoError(t, err)
	assert.False(t, first.Completed)
	assert.Equal(t, settlement.StatusPending, first.SettlementStatus)
	assert.NotNil(t, first.Detail.SentAt)

	again, err := s.settlements.MarkSent(ctx, summary.Transfers[0].DetailID, summary.Transfers[0].DebtorID)
	require.NoError(t, err)
	assert.True(t, again.AlreadySent)

	last, err := s.settlements.MarkSent(ctx, summary.Transfers[1].DetailID, summary.Transfers[1].DebtorID)
	require.NoError(t, err)
	assert.True(t, last.Completed)

	got, err := s.settlements.GetByExpense(ctx, f.ExpenseID, f.Members[1])
	require.NoError(t, err)
	assert.Equal(t, settlement.StatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)
	assert.Zero(t, got.Outstanding())

	_, err = s.settlements.GetByExpense(ctx, f.ExpenseID, f.Outsiders[0])
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)
}

func TestIntegration_ConcurrentCreateYieldsOneSettlement(t *testing.T) {
	s, f := newServices(t)

	const attempts = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)

	for range attempts {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := s.settlements.Create(context.Background(), settlement.CreateParams{
				ExpenseID: f.ExpenseID,
				ActorID:   f.PayerID,
				Strategy:  settlement.Equal{},
			})

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				created++
			case errors.Is(err, apperr.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)
}

func TestIntegration_ConcurrentFinalMarksCompleteOnce(t *testing.T) {
	s, f := newServices(t)
	ctx := context.Background()

	summary, err := s.settlements.Create(ctx, settlement.CreateParams{
		ExpenseID: f.ExpenseID,
		ActorID:   f.PayerID,
		Strategy:  settlement.Equal{},
	})
	require.NoError(t, err)

	results := make([]*settlement.MarkSentResult, len(summary.Transfers))

	var wg sync.WaitGroup

	for i, tr := range summary.Transfers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			res, err := s.settlements.MarkSent(ctx, tr.DetailID, tr.DebtorID)
			if assert.NoError(t, err) {
				results[i] = res
			}
		}()
	}

	wg.Wait()

	completions := 0
	for _, r := range results {
		require.NotNil(t, r)

		if r.Completed {
			completions++
		}
	}

	assert.Equal(t, 1, completions)

	got, err := s.repo.Get(ctx, summary.SettlementID)
	require.NoError(t, err)
	assert.Equal(t, settlement.StatusCompleted, got.Status)
}

func TestIntegration_ItemSettlementFromClosedVote(t *testing.T) {
	s, f := newServices(t)
	ctx := context.Background()

	payer, ana, rui := f.Members[0], f.Members[1], f.Members[2]

	created, err := s.votes.Create(ctx, f.ExpenseID, ana)
	require.NoError(t, err)

	pizza, wine := created.Vote.Options[0], created.Vote.Options[1]
	assert.Equal(t, int64(6000), pizza.Price)

	for _, c := range []struct {
		option uuid.UUID
		user   uuid.UUID
	}{
		{pizza.ID, ana}, {pizza.ID, payer}, {wine.ID, rui},
	} {
		_, err := s.votes.Cast(ctx, c.option, c.user)
		require.NoError(t, err)
	}

	_, err = s.settlements.Create(ctx, settlement.CreateParams{
		ExpenseID: f.ExpenseID, ActorID: payer, Strategy: settlement.ByItem{},
	})
	require.ErrorIs(t, err, apperr.ErrConflict, "open vote must block ITEM settlement")

	_, err = s.votes.Close(ctx, created.Vote.ID)
	require.NoError(t, err)

	summary, err := s.settlements.Create(ctx, settlement.CreateParams{
		ExpenseID: f.ExpenseID, ActorID: payer, Strategy: settlement.ByItem{},
	})
	require.NoError(t, err)

	owed := map[uuid.UUID]int64{}
	for _, tr := range summary.Transfers {
		owed[tr.DebtorID] = tr.Amount
	}

	assert.Equal(t, map[uuid.UUID]int64{ana: 3000, rui: 3000}, owed)

	_, err = s.votes.Create(ctx, f.ExpenseID, ana)
	require.NoError(t, err, "an existing vote is returned even after settlement")
}

func TestIntegration_DeleteRemovesDetails(t *testing.T) {
	s, f := newServices(t)
	ctx := context.Background()

	summary, err := s.settlements.Create(ctx, settlement.CreateParams{
		ExpenseID: f.ExpenseID,
		ActorID:   f.PayerID,
		Strategy:  settlement.Equal{},
	})
	require.NoError(t, err)

	require.NoError(t, s.settlements.Delete(ctx, summary.SettlementID, f.Members[2]))

	_, err = s.repo.Get(ctx, summary.SettlementID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = s.settlements.MarkSent(ctx, summary.Transfers[0].DetailID, summary.Transfers[0].DebtorID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = s.settlements.Create(ctx, settlement.CreateParams{
		ExpenseID: f.ExpenseID,
		ActorID:   f.PayerID,
		Strategy:  settlement.Equal{},
	})
	assert.NoError(t, err, "an expense can be settled again after deletion")
}
