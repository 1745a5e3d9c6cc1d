package vote_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/directory"
	"github.com/MrJamesThe3rd/settle/internal/vote"
)

type fixture struct {
	groupID  uuid.UUID
	alice    uuid.UUID
	bob      uuid.UUID
	carol    uuid.UUID
	outsider uuid.UUID
	expense  *directory.Expense
}

func newFixture() fixture {
	f := fixture{
		groupID:  uuid.New(),
		alice:    uuid.New(),
		bob:      uuid.New(),
		carol:    uuid.New(),
		outsider: uuid.New(),
	}

	f.expense = &directory.Expense{
		ID:      uuid.New(),
		GroupID: f.groupID,
		PayerID: f.alice,
		Amount:  9000,
		Items: []directory.Item{
			{ID: uuid.New(), Name: "Pizza", UnitPrice: 3000, Quantity: 2},
			{ID: uuid.New(), Name: "Wine", UnitPrice: 3000, Quantity: 1},
		},
		ParticipantIDs: []uuid.UUID{f.alice, f.bob, f.carol},
	}

	return f
}

func (f fixture) expectMember(dir *directory.MockReader, userID uuid.UUID, ok bool) {
	dir.EXPECT().GetExpense(gomock.Any(), f.expense.ID).Return(f.expense, nil)
	dir.EXPECT().IsMember(gomock.Any(), userID, f.groupID).Return(ok, nil)
}

func TestService_Create(t *testing.T) {
	f := newFixture()

	type testCase struct {
		name        string
		actor       uuid.UUID
		setup       func(repo *vote.MockRepository, tx *vote.MockExpenseTx, dir *directory.MockReader)
		wantErr     error
		wantCreated bool
	}

	tests := []testCase{
		{
			name:  "Success",
			actor: f.bob,
			setup: func(repo *vote.MockRepository, tx *vote.MockExpenseTx, dir *directory.MockReader) {
				f.expectMember(dir, f.bob, true)
				repo.EXPECT().BeginExpense(gomock.Any(), f.expense.ID).Return(tx, nil)
				tx.EXPECT().FindVote(gomock.Any(), f.expense.ID).Return(nil, nil)
				tx.EXPECT().SettlementExists(gomock.Any(), f.expense.ID).Return(false, nil)
				tx.EXPECT().CreateVote(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, v *vote.Vote) error {
						require.Len(t, v.Options, 2)
						assert.Equal(t, f.expense.Items[0].ID, v.Options[0].ExpenseItemID)
						assert.Equal(t, int64(6000), v.Options[0].Price)
						assert.Equal(t, "Wine", v.Options[1].ItemName)
						v.ID = uuid.New()
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantCreated: true,
		},
		{
			name:  "ExistingVoteReturned",
			actor: f.bob,
			setup: func(repo *vote.MockRepository, tx *vote.MockExpenseTx, dir *directory.MockReader) {
				f.expectMember(dir, f.bob, true)
				repo.EXPECT().BeginExpense(gomock.Any(), f.expense.ID).Return(tx, nil)
				tx.EXPECT().FindVote(gomock.Any(), f.expense.ID).
					Return(&vote.Vote{ID: uuid.New(), ExpenseID: f.expense.ID}, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantCreated: false,
		},
		{
			name:  "AlreadySettled",
			actor: f.bob,
			setup: func(repo *vote.MockRepository, tx *vote.MockExpenseTx, dir *directory.MockReader) {
				f.expectMember(dir, f.bob, true)
				repo.EXPECT().BeginExpense(gomock.Any(), f.expense.ID).Return(tx, nil)
				tx.EXPECT().FindVote(gomock.Any(), f.expense.ID).Return(nil, nil)
				tx.EXPECT().SettlementExists(gomock.Any(), f.expense.ID).Return(true, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: apperr.ErrConflict,
		},
		{
			name:  "NotAGroupMember",
			actor: f.outsider,
			setup: func(_ *vote.MockRepository, _ *vote.MockExpenseTx, dir *directory.MockReader) {
				f.expectMember(dir, f.outsider, false)
			},
			wantErr: apperr.ErrAccessDenied,
		},
		{
			name:  "ExpenseNotFound",
			actor: f.bob,
			setup: func(_ *vote.MockRepository, _ *vote.MockExpenseTx, dir *directory.MockReader) {
				dir.EXPECT().GetExpense(gomock.Any(), f.expense.ID).
					Return(nil, apperr.NotFound("expense %s not found", f.expense.ID))
			},
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := vote.NewMockRepository(ctrl)
			tx := vote.NewMockExpenseTx(ctrl)
			dir := directory.NewMockReader(ctrl)
			tt.setup(repo, tx, dir)

			svc := vote.NewService(repo, dir)
			got, err := svc.Create(context.Background(), f.expense.ID, tt.actor)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, got.Created)
			assert.NotEqual(t, uuid.Nil, got.Vote.ID)
		})
	}
}

func TestService_Create_NoItems(t *testing.T) {
	f := newFixture()
	f.expense.Items = nil

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := vote.NewMockRepository(ctrl)
	tx := vote.NewMockExpenseTx(ctrl)
	dir := directory.NewMockReader(ctrl)

	f.expectMember(dir, f.bob, true)
	repo.EXPECT().BeginExpense(gomock.Any(), f.expense.ID).Return(tx, nil)
	tx.EXPECT().FindVote(gomock.Any(), f.expense.ID).Return(nil, nil)
	tx.EXPECT().SettlementExists(gomock.Any(), f.expense.ID).Return(false, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := vote.NewService(repo, dir).Create(context.Background(), f.expense.ID, f.bob)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestService_Cast(t *testing.T) {
	f := newFixture()
	optionID := uuid.New()
	voteID := uuid.New()

	openRef := &vote.OptionRef{OptionID: optionID, VoteID: voteID, ExpenseID: f.expense.ID, ItemName: "Pizza"}
	closedRef := &vote.OptionRef{OptionID: optionID, VoteID: voteID, ExpenseID: f.expense.ID, ItemName: "Pizza", VoteClosed: true}

	type testCase struct {
		name       string
		actor      uuid.UUID
		setup      func(repo *vote.MockRepository, tx *vote.MockCastTx, dir *directory.MockReader)
		wantAction vote.CastAction
		wantErr    error
	}

	tests := []testCase{
		{
			name:  "FirstCastAdds",
			actor: f.bob,
			setup: func(repo *vote.MockRepository, tx *vote.MockCastTx, dir *directory.MockReader) {
				repo.EXPECT().BeginCast(gomock.Any()).Return(tx, nil)
				tx.EXPECT().LockOption(gomock.Any(), optionID).Return(openRef, nil)
				f.expectMember(dir, f.bob, true)
				tx.EXPECT().HasUserVote(gomock.Any(), f.bob, optionID).Return(false, nil)
				tx.EXPECT().AddUserVote(gomock.Any(), f.bob, optionID).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantAction: vote.ActionCast,
		},
		{
			name:  "SecondCastRetracts",
			actor: f.bob,
			setup: func(repo *vote.MockRepository, tx *vote.MockCastTx, dir *directory.MockReader) {
				repo.EXPECT().BeginCast(gomock.Any()).Return(tx, nil)
				tx.EXPECT().LockOption(gomock.Any(), optionID).Return(openRef, nil)
				f.expectMember(dir, f.bob, true)
				tx.EXPECT().HasUserVote(gomock.Any(), f.bob, optionID).Return(true, nil)
				tx.EXPECT().RemoveUserVote(gomock.Any(), f.bob, optionID).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantAction: vote.ActionRetracted,
		},
		{
			name:  "ClosedVote",
			actor: f.bob,
			setup: func(repo *vote.MockRepository, tx *vote.MockCastTx, dir *directory.MockReader) {
				repo.EXPECT().BeginCast(gomock.Any()).Return(tx, nil)
				tx.EXPECT().LockOption(gomock.Any(), optionID).Return(closedRef, nil)
				f.expectMember(dir, f.bob, true)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: apperr.ErrConflict,
		},
		{
			name:  "MemberButNotParticipant",
			actor: f.outsider,
			setup: func(repo *vote.MockRepository, tx *vote.MockCastTx, dir *directory.MockReader) {
				repo.EXPECT().BeginCast(gomock.Any()).Return(tx, nil)
				tx.EXPECT().LockOption(gomock.Any(), optionID).Return(openRef, nil)
				f.expectMember(dir, f.outsider, true)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: apperr.ErrAccessDenied,
		},
		{
			name:  "UnknownOption",
			actor: f.bob,
			setup: func(repo *vote.MockRepository, tx *vote.MockCastTx, _ *directory.MockReader) {
				repo.EXPECT().BeginCast(gomock.Any()).Return(tx, nil)
				tx.EXPECT().LockOption(gomock.Any(), optionID).
					Return(nil, apperr.NotFound("vote option %s not found", optionID))
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := vote.NewMockRepository(ctrl)
			tx := vote.NewMockCastTx(ctrl)
			dir := directory.NewMockReader(ctrl)
			tt.setup(repo, tx, dir)

			got, err := vote.NewService(repo, dir).Cast(context.Background(), optionID, tt.actor)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAction, got.Action)
			assert.Equal(t, "Pizza", got.ItemName)
		})
	}
}

// Casting twice must leave the claim set as it started.
func TestService_Cast_ToggleRoundTrip(t *testing.T) {
	f := newFixture()
	optionID := uuid.New()
	ref := &vote.OptionRef{OptionID: optionID, VoteID: uuid.New(), ExpenseID: f.expense.ID, ItemName: "Wine"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := vote.NewMockRepository(ctrl)
	dir := directory.NewMockReader(ctrl)
	tx := vote.NewMockCastTx(ctrl)

	claims := map[uuid.UUID]bool{}

	dir.EXPECT().GetExpense(gomock.Any(), f.expense.ID).Return(f.expense, nil).Times(2)
	dir.EXPECT().IsMember(gomock.Any(), f.carol, f.groupID).Return(true, nil).Times(2)
	repo.EXPECT().BeginCast(gomock.Any()).Return(tx, nil).Times(2)
	tx.EXPECT().LockOption(gomock.Any(), optionID).Return(ref, nil).Times(2)
	tx.EXPECT().HasUserVote(gomock.Any(), f.carol, optionID).
		DoAndReturn(func(_ context.Context, u, _ uuid.UUID) (bool, error) { return claims[u], nil }).Times(2)
	tx.EXPECT().AddUserVote(gomock.Any(), f.carol, optionID).
		DoAndReturn(func(_ context.Context, u, _ uuid.UUID) error { claims[u] = true; return nil })
	tx.EXPECT().RemoveUserVote(gomock.Any(), f.carol, optionID).
		DoAndReturn(func(_ context.Context, u, _ uuid.UUID) error { delete(claims, u); return nil })
	tx.EXPECT().Commit().Return(nil).Times(2)
	tx.EXPECT().Rollback().Return(nil).Times(2)

	svc := vote.NewService(repo, dir)

	first, err := svc.Cast(context.Background(), optionID, f.carol)
	require.NoError(t, err)
	assert.Equal(t, vote.ActionCast, first.Action)
	assert.True(t, claims[f.carol])

	second, err := svc.Cast(context.Background(), optionID, f.carol)
	require.NoError(t, err)
	assert.Equal(t, vote.ActionRetracted, second.Action)
	assert.Empty(t, claims)
}

func TestService_Status(t *testing.T) {
	f := newFixture()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := vote.NewMockRepository(ctrl)
	dir := directory.NewMockReader(ctrl)

	v := &vote.Vote{
		ID:        uuid.New(),
		ExpenseID: f.expense.ID,
		Options: []vote.Option{
			{ID: uuid.New(), ItemName: "Pizza", Price: 6000, VoterIDs: []uuid.UUID{f.bob}},
			{ID: uuid.New(), ItemName: "Wine", Price: 3000},
		},
	}

	f.expectMember(dir, f.alice, true)
	repo.EXPECT().GetVoteByExpense(gomock.Any(), f.expense.ID).Return(v, nil)

	got, err := vote.NewService(repo, dir).Status(context.Background(), f.expense.ID, f.alice)
	require.NoError(t, err)

	assert.Equal(t, v.ID, got.VoteID)
	assert.Len(t, got.Options, 2)
	assert.Equal(t, []uuid.UUID{f.alice, f.carol}, got.NonVoterIDs)
}

func TestService_Delete(t *testing.T) {
	f := newFixture()

	type testCase struct {
		name    string
		setup   func(repo *vote.MockRepository, tx *vote.MockExpenseTx)
		wantErr error
	}

	openVote := &vote.Vote{ID: uuid.New(), ExpenseID: f.expense.ID}
	closedVote := &vote.Vote{ID: uuid.New(), ExpenseID: f.expense.ID, Closed: true}

	tests := []testCase{
		{
			name: "Success",
			setup: func(repo *vote.MockRepository, tx *vote.MockExpenseTx) {
				repo.EXPECT().BeginExpense(gomock.Any(), f.expense.ID).Return(tx, nil)
				tx.EXPECT().FindVote(gomock.Any(), f.expense.ID).Return(openVote, nil)
				tx.EXPECT().DeleteVote(gomock.Any(), openVote.ID).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name: "Closed",
			setup: func(repo *vote.MockRepository, tx *vote.MockExpenseTx) {
				repo.EXPECT().BeginExpense(gomock.Any(), f.expense.ID).Return(tx, nil)
				tx.EXPECT().FindVote(gomock.Any(), f.expense.ID).Return(closedVote, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: apperr.ErrConflict,
		},
		{
			name: "ClosedAfterRead",
			setup: func(repo *vote.MockRepository, tx *vote.MockExpenseTx) {
				repo.EXPECT().BeginExpense(gomock.Any(), f.expense.ID).Return(tx, nil)
				tx.EXPECT().FindVote(gomock.Any(), f.expense.ID).Return(openVote, nil)
				tx.EXPECT().DeleteVote(gomock.Any(), openVote.ID).
					Return(apperr.Conflict("vote %s is closed and cannot be deleted", openVote.ID))
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: apperr.ErrConflict,
		},
		{
			name: "Missing",
			setup: func(repo *vote.MockRepository, tx *vote.MockExpenseTx) {
				repo.EXPECT().BeginExpense(gomock.Any(), f.expense.ID).Return(tx, nil)
				tx.EXPECT().FindVote(gomock.Any(), f.expense.ID).Return(nil, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := vote.NewMockRepository(ctrl)
			tx := vote.NewMockExpenseTx(ctrl)
			dir := directory.NewMockReader(ctrl)
			f.expectMember(dir, f.bob, true)
			tt.setup(repo, tx)

			err := vote.NewService(repo, dir).Delete(context.Background(), f.expense.ID, f.bob)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_Close(t *testing.T) {
	voteID := uuid.New()

	type testCase struct {
		name              string
		closedNow         bool
		wantAlreadyClosed bool
	}

	tests := []testCase{
		{name: "ClosesOpenVote", closedNow: true, wantAlreadyClosed: false},
		{name: "SecondCloseIsReported", closedNow: false, wantAlreadyClosed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := vote.NewMockRepository(ctrl)
			repo.EXPECT().CloseVote(gomock.Any(), voteID).Return(tt.closedNow, nil)
			repo.EXPECT().GetVote(gomock.Any(), voteID).Return(&vote.Vote{ID: voteID, Closed: true}, nil)

			got, err := vote.NewService(repo, directory.NewMockReader(ctrl)).Close(context.Background(), voteID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAlreadyClosed, got.AlreadyClosed)
			assert.True(t, got.Vote.Closed)
		})
	}
}

func TestService_CloseAs_NotMember(t *testing.T) {
	f := newFixture()
	voteID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := vote.NewMockRepository(ctrl)
	dir := directory.NewMockReader(ctrl)

	repo.EXPECT().GetVote(gomock.Any(), voteID).Return(&vote.Vote{ID: voteID, ExpenseID: f.expense.ID}, nil)
	f.expectMember(dir, f.outsider, false)

	_, err := vote.NewService(repo, dir).CloseAs(context.Background(), voteID, f.outsider)
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)
}

func TestService_Close_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := vote.NewMockRepository(ctrl)
	repo.EXPECT().CloseVote(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

	_, err := vote.NewService(repo, directory.NewMockReader(ctrl)).Close(context.Background(), uuid.New())
	require.Error(t, err)
}
