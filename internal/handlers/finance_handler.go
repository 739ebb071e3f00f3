package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"focusquote-backend/internal/middleware"
	"focusquote-backend/internal/models"
	"focusquote-backend/internal/services"

	"github.com/gorilla/mux"
)

type FinanceHandler struct {
	Service *services.FinanceService
}

func NewFinanceHandler(s *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{Service: s}
}

// GetStatement merges manual transactions with approved-quote income for
// the requested window. Missing dates fall back to month-to-date.
func (h *FinanceHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	statement, err := h.Service.Statement(r.Context(), userID, start, end)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(statement)
}

func (h *FinanceHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	transactions, err := h.Service.ListTransactions(r.Context(), userID, start, end)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if transactions == nil {
		transactions = []*models.Transaction{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(transactions)
}

func (h *FinanceHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	transaction, err := h.Service.AddTransaction(r.Context(), userID, &req)
	if errors.Is(err, services.ErrTransactionInvalid) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(transaction)
}

// DeleteEntry accepts both persisted transaction ids and synthetic
// quote-derived ids; the latter are ignored without error.
func (h *FinanceHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	entryID := mux.Vars(r)["id"]

	if err := h.Service.DeleteEntry(r.Context(), userID, entryID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
