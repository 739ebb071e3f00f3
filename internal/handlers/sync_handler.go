package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"focusquote-backend/internal/middleware"
	"focusquote-backend/internal/services"
)

type SyncHandler struct {
	Service *services.SyncService
}

func NewSyncHandler(s *services.SyncService) *SyncHandler {
	return &SyncHandler{Service: s}
}

// Sync returns the caller's full dataset in one response. A concurrent
// sync for the same user gets 409 instead of a second pass.
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	email, _ := middleware.GetEmailFromContext(r.Context())

	resp, err := h.Service.Sync(r.Context(), userID, email)
	if errors.Is(err, services.ErrSyncInFlight) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
