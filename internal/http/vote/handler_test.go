package vote_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/auth"
	handler "github.com/MrJamesThe3rd/settle/internal/http/vote"
	"github.com/MrJamesThe3rd/settle/internal/vote"
)

var (
	actor     = uuid.MustParse("3c1f6a2b-8d4e-4f5a-9b0c-7d6e5f4a3b2c")
	expenseID = uuid.MustParse("5e4d3c2b-1a09-4f8e-8d7c-6b5a49382716")
)

func newRouter(t *testing.T) (*handler.MockService, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := handler.NewMockService(ctrl)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithUserID(req.Context(), actor)))
		})
	})
	handler.NewHandler(svc).Routes(r)

	return svc, r
}

func openVote() *vote.Vote {
	return &vote.Vote{
		ID:        uuid.New(),
		ExpenseID: expenseID,
		CreatedAt: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC),
		Options: []vote.Option{
			{ID: uuid.New(), ItemName: "Pizza", Price: 6000, VoterIDs: []uuid.UUID{actor}},
			{ID: uuid.New(), ItemName: "Wine", Price: 3000},
		},
	}
}

func TestHandler_Create(t *testing.T) {
	type testCase struct {
		name       string
		result     *vote.CreateResult
		err        error
		wantStatus int
	}

	tests := []testCase{
		{name: "NewVote", result: &vote.CreateResult{Vote: openVote(), Created: true}, wantStatus: http.StatusCreated},
		{name: "ExistingVote", result: &vote.CreateResult{Vote: openVote()}, wantStatus: http.StatusOK},
		{name: "AlreadySettled", err: apperr.Conflict("expense already settled"), wantStatus: http.StatusConflict},
		{name: "NoItems", err: apperr.Validation("expense has no items"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			svc.EXPECT().Create(gomock.Any(), expenseID, actor).Return(tt.result, tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/expenses/"+expenseID.String()+"/vote/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Status(t *testing.T) {
	svc, router := newRouter(t)
	v := openVote()
	other := uuid.New()

	svc.EXPECT().Status(gomock.Any(), expenseID, actor).Return(&vote.Status{
		VoteID:      v.ID,
		ExpenseID:   expenseID,
		Options:     v.Options,
		NonVoterIDs: []uuid.UUID{other},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/expenses/"+expenseID.String()+"/vote/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Options []struct {
			ItemName string      `json:"item_name"`
			VoterIDs []uuid.UUID `json:"voter_ids"`
		} `json:"options"`
		NonVoterIDs []uuid.UUID `json:"non_voter_ids"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Options, 2)
	assert.Equal(t, []uuid.UUID{actor}, body.Options[0].VoterIDs)
	assert.NotNil(t, body.Options[1].VoterIDs)
	assert.Empty(t, body.Options[1].VoterIDs)
	assert.Equal(t, []uuid.UUID{other}, body.NonVoterIDs)
	assert.NotContains(t, rec.Body.String(), "null")
}

func TestHandler_Delete(t *testing.T) {
	type testCase struct {
		name       string
		err        error
		wantStatus int
	}

	tests := []testCase{
		{name: "Deleted", wantStatus: http.StatusNoContent},
		{name: "Closed", err: apperr.Conflict("vote is closed"), wantStatus: http.StatusConflict},
		{name: "Missing", err: apperr.NotFound("no vote"), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			svc.EXPECT().Delete(gomock.Any(), expenseID, actor).Return(tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/expenses/"+expenseID.String()+"/vote/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Cast(t *testing.T) {
	type testCase struct {
		name       string
		result     *vote.CastResult
		err        error
		wantStatus int
		wantAction string
	}

	optionID := uuid.New()

	tests := []testCase{
		{
			name:       "Cast",
			result:     &vote.CastResult{Action: vote.ActionCast, OptionID: optionID, ItemName: "Pizza"},
			wantStatus: http.StatusOK,
			wantAction: "cast",
		},
		{
			name:       "Retracted",
			result:     &vote.CastResult{Action: vote.ActionRetracted, OptionID: optionID, ItemName: "Pizza"},
			wantStatus: http.StatusOK,
			wantAction: "retracted",
		},
		{name: "NotParticipant", err: apperr.AccessDenied("not a participant"), wantStatus: http.StatusForbidden},
		{name: "VoteClosed", err: apperr.Conflict("vote is closed"), wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			svc.EXPECT().Cast(gomock.Any(), optionID, actor).Return(tt.result, tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/vote-options/"+optionID.String()+"/cast", nil))

			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantAction != "" {
				var body struct {
					Action string `json:"action"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantAction, body.Action)
			}
		})
	}
}

func TestHandler_Close(t *testing.T) {
	svc, router := newRouter(t)
	v := openVote()
	closedAt := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	v.Closed, v.ClosedAt = true, &closedAt

	svc.EXPECT().CloseAs(gomock.Any(), v.ID, actor).Return(&vote.CloseResult{Vote: v, AlreadyClosed: true}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/votes/"+v.ID.String()+"/close", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Vote struct {
			Closed bool `json:"closed"`
		} `json:"vote"`
		AlreadyClosed bool `json:"already_closed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Vote.Closed)
	assert.True(t, body.AlreadyClosed)
}

func TestHandler_MalformedID(t *testing.T) {
	_, router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/vote-options/xyz/cast", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
