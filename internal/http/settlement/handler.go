package settlement

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/http/respond"
	"github.com/MrJamesThe3rd/settle/internal/settlement"
	"github.com/MrJamesThe3rd/settle/internal/splitsheet"
)

// maxSheetSize bounds split-sheet uploads held in memory.
const maxSheetSize = 1 << 20

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=settlement
type Service interface {
	Create(ctx context.Context, params settlement.CreateParams) (*settlement.Summary, error)
	Get(ctx context.Context, settlementID, actorID uuid.UUID) (*settlement.Summary, error)
	GetByExpense(ctx context.Context, expenseID, actorID uuid.UUID) (*settlement.Summary, error)
	MarkSent(ctx context.Context, detailID, actorID uuid.UUID) (*settlement.MarkSentResult, error)
	Delete(ctx context.Context, settlementID, actorID uuid.UUID) error
}

type SheetParser interface {
	Parse(r io.Reader) (*splitsheet.Sheet, error)
}

type Handler struct {
	svc    Service
	sheets SheetParser
}

func NewHandler(svc Service, sheets SheetParser) *Handler {
	return &Handler{svc: svc, sheets: sheets}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/expenses/{expenseID}/settlement", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.getByExpense)
		r.Post("/import", h.importSheet)
	})

	r.Get("/settlements/{settlementID}", h.get)
	r.Delete("/settlements/{settlementID}", h.delete)
	r.Post("/settlement-details/{detailID}/sent", h.markSent)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := respond.Actor(w, r)
	if !ok {
		return
	}

	expenseID, ok := respond.IDParam(w, r, "expenseID")
	if !ok {
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	strategy, err := req.strategy()
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	summary, err := h.svc.Create(r.Context(), settlement.CreateParams{
		ExpenseID: expenseID,
		ActorID:   actor,
		Strategy:  strategy,
		Deadline:  req.Deadline,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toSummaryResponse(summary))
}

func (h *Handler) importSheet(w http.ResponseWriter, r *http.Request) {
	actor, ok := respond.Actor(w, r)
	if !ok {
		return
	}

	expenseID, ok := respond.IDParam(w, r, "expenseID")
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxSheetSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	var deadline *time.Time

	if s := r.FormValue("deadline"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "deadline must be RFC3339", http.StatusBadRequest)
			return
		}

		deadline = &t
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	sheet, err := h.sheets.Parse(file)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	summary, err := h.svc.Create(r.Context(), settlement.CreateParams{
		ExpenseID: expenseID,
		ActorID:   actor,
		Strategy:  sheet.Strategy(),
		Deadline:  deadline,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, importResponse{
		Charset:    sheet.Charset,
		Rows:       sheet.Len(),
		Settlement: toSummaryResponse(summary),
	})
}

func (h *Handler) getByExpense(w http.ResponseWriter, r *http.Request) {
	actor, ok := respond.Actor(w, r)
	if !ok {
		return
	}

	expenseID, ok := respond.IDParam(w, r, "expenseID")
	if !ok {
		return
	}

	summary, err := h.svc.GetByExpense(r.Context(), expenseID, actor)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toSummaryResponse(summary))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	actor, ok := respond.Actor(w, r)
	if !ok {
		return
	}

	id, ok := respond.IDParam(w, r, "settlementID")
	if !ok {
		return
	}

	summary, err := h.svc.Get(r.Context(), id, actor)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toSummaryResponse(summary))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := respond.Actor(w, r)
	if !ok {
		return
	}

	id, ok := respond.IDParam(w, r, "settlementID")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id, actor); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markSent(w http.ResponseWriter, r *http.Request) {
	actor, ok := respond.Actor(w, r)
	if !ok {
		return
	}

	id, ok := respond.IDParam(w, r, "detailID")
	if !ok {
		return
	}

	res, err := h.svc.MarkSent(r.Context(), id, actor)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, markSentResponse{
		Detail:           toDetailResponse(res.Detail),
		SettlementStatus: res.SettlementStatus,
		AlreadySent:      res.AlreadySent,
		Completed:        res.Completed,
	})
}
