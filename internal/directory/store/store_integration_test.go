//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/database/dbtest"
	"github.com/MrJamesThe3rd/settle/internal/directory/store"
)

func TestIntegration_DirectoryReads(t *testing.T) {
	db := dbtest.New(t)
	f := dbtest.Seed(t, db, dbtest.SeedParams{
		Amount: 4500,
		Items: []dbtest.Item{
			{Name: "Bread", UnitPrice: 500, Quantity: 1},
			{Name: "Cheese", UnitPrice: 2000, Quantity: 2},
		},
		Members:   []string{"Payer", "Ana"},
		Outsiders: []string{"Stranger"},
	})

	s := store.New(db)
	ctx := context.Background()

	e, err := s.GetExpense(ctx, f.ExpenseID)
	require.NoError(t, err)

	assert.Equal(t, f.PayerID, e.PayerID)
	assert.Equal(t, f.GroupID, e.GroupID)
	assert.Equal(t, int64(4500), e.Amount)
	require.Len(t, e.Items, 2)
	assert.Equal(t, "Bread", e.Items[0].Name)
	assert.Equal(t, int64(4000), e.Items[1].Price())
	assert.ElementsMatch(t, f.Members, e.ParticipantIDs)

	_, err = s.GetExpense(ctx, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	ok, err := s.IsMember(ctx, f.Members[1], f.GroupID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.IsMember(ctx, f.Outsiders[0], f.GroupID)
	require.NoError(t, err)
	assert.False(t, ok)

	users, err := s.GetUsers(ctx, []uuid.UUID{f.PayerID, f.Outsiders[0], uuid.New()})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Payer", users[f.PayerID].DisplayName)
	assert.Equal(t, "Stranger", users[f.Outsiders[0]].DisplayName)
}
