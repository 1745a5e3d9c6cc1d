// Package respond holds the response helpers shared by the API handlers.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/settle/internal/apperr"
	"github.com/MrJamesThe3rd/settle/internal/auth"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes err as plain text with the status of its apperr kind.
// Anything unclassified is logged and hidden behind a 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	switch apperr.KindOf(err) {
	case apperr.ErrNotFound:
		http.Error(w, err.Error(), http.StatusNotFound)
	case apperr.ErrAccessDenied:
		http.Error(w, err.Error(), http.StatusForbidden)
	case apperr.ErrConflict:
		http.Error(w, err.Error(), http.StatusConflict)
	case apperr.ErrValidation:
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// IDParam parses a UUID path parameter, answering 400 when it is malformed.
func IDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return uuid.Nil, false
	}

	return id, true
}

// Actor returns the authenticated user, answering 401 when there is none.
func Actor(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, auth.ErrMissingToken.Error(), http.StatusUnauthorized)
	}

	return id, ok
}
