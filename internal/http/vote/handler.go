package vote

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/http/respond"
	"github.com/MrJamesThe3rd/settle/internal/vote"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=vote
type Service interface {
	Create(ctx context.Context, expenseID, actorID uuid.UUID) (*vote.CreateResult, error)
	Status(ctx context.Context, expenseID, actorID uuid.UUID) (*vote.Status, error)
	Delete(ctx context.Context, expenseID, actorID uuid.UUID) error
	Cast(ctx context.Context, optionID, actorID uuid.UUID) (*vote.CastResult, error)
	CloseAs(ctx context.Context, voteID, actorID uuid.UUID) (*vote.CloseResult, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/expenses/{expenseID}/vote", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.status)
		r.Delete("/", h.delete)
	})

	r.Post("/votes/{voteID}/close", h.close)
	r.Post("/vote-options/{optionID}/cast", h.cast)
}

// create answers 201 for a new vote and 200 when the expense already had one.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := respond.Actor(w, r)
	if !ok {
		return
	}

	expenseID, ok := respond.IDParam(w, r, "expenseID")
	if !ok {
		return
	}

	res, err := h.svc.Create(r.Context(), expenseID, actor)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}

	respond.JSON(w, status, toVoteResponse(res.Vote))
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	actor, ok := respond.Actor(w, r)
	if !ok {
		return
	}

	expenseID, ok := respond.IDParam(w, r, "expenseID")
	if !ok {
		return
	}

	st, err := h.svc.Status(r.Context(), expenseID, actor)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, statusResponse{
		VoteID:      st.VoteID,
		ExpenseID:   st.ExpenseID,
		Closed:      st.Closed,
		Options:     toOptionResponses(st.Options),
		NonVoterIDs: nonNil(st.NonVoterIDs),
	})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := respond.Actor(w, r)
	if !ok {
		return
	}

	expenseID, ok := respond.IDParam(w, r, "expenseID")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), expenseID, actor); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	actor, ok := respond.Actor(w, r)
	if !ok {
		return
	}

	voteID, ok := respond.IDParam(w, r, "voteID")
	if !ok {
		return
	}

	res, err := h.svc.CloseAs(r.Context(), voteID, actor)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, closeResponse{
		Vote:          toVoteResponse(res.Vote),
		AlreadyClosed: res.AlreadyClosed,
	})
}

func (h *Handler) cast(w http.ResponseWriter, r *http.Request) {
	actor, ok := respond.Actor(w, r)
	if !ok {
		return
	}

	optionID, ok := respond.IDParam(w, r, "optionID")
	if !ok {
		return
	}

	res, err := h.svc.Cast(r.Context(), optionID, actor)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, castResponse{
		Action:   res.Action,
		OptionID: res.OptionID,
		ItemName: res.ItemName,
	})
}
