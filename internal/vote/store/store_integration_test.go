//go:build integration

package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/database/dbtest"
	dirStore "github.com/MrJamesThe3rd/settle/internal/directory/store"
	"github.com/MrJamesThe3rd/settle/internal/vote"
	"github.com/MrJamesThe3rd/settle/internal/vote/store"
)

func newService(t *testing.T) (*vote.Service, *dbtest.Fixture) {
	t.Helper()

	db := dbtest.New(t)
	f := dbtest.Seed(t, db, dbtest.SeedParams{
		Amount: 7000,
		Items: []dbtest.Item{
			{Name: "Soup", UnitPrice: 1000, Quantity: 2},
			{Name: "Fish", UnitPrice: 5000, Quantity: 1},
		},
		Members:   []string{"Payer", "Ana"},
		Outsiders: []string{"Stranger"},
	})

	return vote.NewService(store.New(db), dirStore.New(db)), f
}

func TestIntegration_VoteCreateLoadsOptionsInItemOrder(t *testing.T) {
	svc, f := newService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, f.ExpenseID, f.PayerID)
	require.NoError(t, err)
	require.True(t, res.Created)

	got, err := svc.ForExpense(ctx, f.ExpenseID)
	require.NoError(t, err)
	require.Len(t, got.Options, 2)

	assert.Equal(t, "Soup", got.Options[0].ItemName)
	assert.Equal(t, int64(2000), got.Options[0].Price)
	assert.Equal(t, f.ItemIDs[0], got.Options[0].ExpenseItemID)
	assert.Equal(t, "Fish", got.Options[1].ItemName)

	again, err := svc.Create(ctx, f.ExpenseID, f.PayerID)
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, res.Vote.ID, again.Vote.ID)
}

func TestIntegration_ConcurrentTogglesStayConsistent(t *testing.T) {
	svc, f := newService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, f.ExpenseID, f.PayerID)
	require.NoError(t, err)

	optionID := res.Vote.Options[0].ID
	ana := f.Members[1]

	const toggles = 10

	var (
		wg          sync.WaitGroup
		mu          sync.Mutex
		casts       int
		retractions int
	)

	for range toggles {
		wg.Add(1)

		go func() {
			defer wg.Done()

			r, err := svc.Cast(ctx, optionID, ana)
			if !assert.NoError(t, err) {
				return
			}

			mu.Lock()
			defer mu.Unlock()

			if r.Action == vote.ActionCast {
				casts++
			} else {
				retractions++
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, toggles/2, casts)
	assert.Equal(t, toggles/2, retractions)

	st, err := svc.Status(ctx, f.ExpenseID, ana)
	require.NoError(t, err)
	assert.Empty(t, st.Options[0].VoterIDs)
}

func TestIntegration_CloseIsIdempotentAndFreezesVotes(t *testing.T) {
	svc, f := newService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, f.ExpenseID, f.PayerID)
	require.NoError(t, err)

	first, err := svc.Close(ctx, res.Vote.ID)
	require.NoError(t, err)
	assert.False(t, first.AlreadyClosed)
	assert.True(t, first.Vote.Closed)
	assert.NotNil(t, first.Vote.ClosedAt)

	second, err := svc.Close(ctx, res.Vote.ID)
	require.NoError(t, err)
	assert.True(t, second.AlreadyClosed)

	_, err = svc.Cast(ctx, res.Vote.Options[0].ID, f.Members[1])
	assert.ErrorIs(t, err, apperr.ErrConflict)

	err = svc.Delete(ctx, f.ExpenseID, f.PayerID)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestIntegration_DeleteOpenVote(t *testing.T) {
	svc, f := newService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, f.ExpenseID, f.PayerID)
	require.NoError(t, err)

	_, err = svc.Cast(ctx, res.Vote.Options[1].ID, f.Members[1])
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, f.ExpenseID, f.Members[1]))

	_, err = svc.ForExpense(ctx, f.ExpenseID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Status(ctx, f.ExpenseID, f.Outsiders[0])
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)
}

func TestIntegration_DeleteLosesToConcurrentClose(t *testing.T) {
	db := dbtest.New(t)
	f := dbtest.Seed(t, db, dbtest.SeedParams{
		Amount:  1000,
		Items:   []dbtest.Item{{Name: "Tea", UnitPrice: 500, Quantity: 2}},
		Members: []string{"Payer", "Ana"},
	})

	repo := store.New(db)
	svc := vote.NewService(repo, dirStore.New(db))
	ctx := context.Background()

	res, err := svc.Create(ctx, f.ExpenseID, f.PayerID)
	require.NoError(t, err)

	tx, err := repo.BeginExpense(ctx, f.ExpenseID)
	require.NoError(t, err)
	defer tx.Rollback()

	found, err := tx.FindVote(ctx, f.ExpenseID)
	require.NoError(t, err)
	require.False(t, found.Closed)

	// Close takes no expense lock, so it commits while tx is still open.
	closed, err := svc.Close(ctx, res.Vote.ID)
	require.NoError(t, err)
	require.False(t, closed.AlreadyClosed)

	err = tx.DeleteVote(ctx, found.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	require.NoError(t, tx.Rollback())

	got, err := svc.ForExpense(ctx, f.ExpenseID)
	require.NoError(t, err)
	assert.True(t, got.Closed)
	assert.Len(t, got.Options, 1)
}
