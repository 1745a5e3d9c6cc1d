package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/http/respond"
	"github.com/MrJamesThe3rd/settle/internal/settlement"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=export
type Service interface {
	Load(ctx context.Context, settlementID, actorID uuid.UUID) (*settlement.Summary, error)
	Reminder(sum *settlement.Summary) string
	WriteStatement(w io.Writer, sum *settlement.Summary) error
	WriteArchive(w io.Writer, sum *settlement.Summary) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/settlements/{settlementID}/export", func(r chi.Router) {
		r.Get("/", h.reminder)
		r.Get("/statement.csv", h.statement)
		r.Get("/download", h.download)
	})
}

type reminderResponse struct {
	SettlementID uuid.UUID         `json:"settlement_id"`
	Status       settlement.Status `json:"status"`
	Outstanding  int64             `json:"outstanding"`
	Reminder     string            `json:"reminder"`
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*settlement.Summary, bool) {
	actor, ok := respond.Actor(w, r)
	if !ok {
		return nil, false
	}

	id, ok := respond.IDParam(w, r, "settlementID")
	if !ok {
		return nil, false
	}

	sum, err := h.svc.Load(r.Context(), id, actor)
	if err != nil {
		respond.Error(w, r, err)
		return nil, false
	}

	return sum, true
}

func (h *Handler) reminder(w http.ResponseWriter, r *http.Request) {
	sum, ok := h.load(w, r)
	if !ok {
		return
	}

	respond.JSON(w, http.StatusOK, reminderResponse{
		SettlementID: sum.SettlementID,
		Status:       sum.Status,
		Outstanding:  sum.Outstanding(),
		Reminder:     h.svc.Reminder(sum),
	})
}

func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
	sum, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")

	if err := h.svc.WriteStatement(w, sum); err != nil {
		slog.Error("failed to write statement", "settlement_id", sum.SettlementID, "error", err)
	}
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	sum, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"settlement_%s.zip\"", sum.SettlementID))

	if err := h.svc.WriteArchive(w, sum); err != nil {
		slog.Error("failed to create zip", "settlement_id", sum.SettlementID, "error", err)
	}
}
