package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"focusquote-backend/internal/middleware"
	"focusquote-backend/internal/models"
	"focusquote-backend/internal/repositories"
	"focusquote-backend/internal/services"
	"focusquote-backend/internal/storage"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

type QuoteHandler struct {
	Service     *services.QuoteService
	PDFService  *services.PDFService
	ProfileRepo *repositories.ProfileRepository
	ClientRepo  *repositories.ClientRepository
	Archiver    *storage.Archiver
}

func NewQuoteHandler(
	s *services.QuoteService,
	pdfService *services.PDFService,
	profileRepo *repositories.ProfileRepository,
	clientRepo *repositories.ClientRepository,
	archiver *storage.Archiver,
) *QuoteHandler {
	return &QuoteHandler{
		Service:     s,
		PDFService:  pdfService,
		ProfileRepo: profileRepo,
		ClientRepo:  clientRepo,
		Archiver:    archiver,
	}
}

func isQuoteValidationError(err error) bool {
	return errors.Is(err, services.ErrNoClient) ||
		errors.Is(err, services.ErrNoItems) ||
		errors.Is(err, services.ErrBadQuantity) ||
		errors.Is(err, services.ErrBadDate)
}

func (h *QuoteHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.SaveQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	quote, err := h.Service.CreateQuote(r.Context(), userID, &req)
	if isQuoteValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(quote)
}

func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	quote, err := h.Service.GetQuote(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Quote not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quote)
}

func (h *QuoteHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	quotes, err := h.Service.ListQuotes(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if quotes == nil {
		quotes = []*models.Quote{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quotes)
}

func (h *QuoteHandler) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.SaveQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	quote, err := h.Service.UpdateQuote(r.Context(), userID, id, &req)
	if isQuoteValidationError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, pgx.ErrNoRows) {
		http.Error(w, "Quote not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quote)
}

// UpdateStatus applies a manual status change; any transition is allowed
func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateQuoteStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := h.Service.SetStatus(r.Context(), userID, id, req.Status)
	if errors.Is(err, services.ErrBadStatus) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, pgx.ErrNoRows) {
		http.Error(w, "Quote not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": string(req.Status)})
}

func (h *QuoteHandler) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteQuote(r.Context(), userID, id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DownloadPDF renders the quote document and streams it as an attachment
func (h *QuoteHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	quote, err := h.Service.GetQuote(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Quote not found", http.StatusNotFound)
		return
	}

	profile, err := h.ProfileRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	// A deleted client still renders, just without contact details
	client, err := h.ClientRepo.Get(r.Context(), userID, quote.ClientID)
	if err != nil {
		client = nil
	}

	data, err := h.PDFService.GenerateQuotePDF(quote, profile, client)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	clientName := ""
	if client != nil {
		clientName = client.Name
	}
	filename := services.QuotePDFFilename(quote.Number, clientName)
	h.Archiver.Store(fmt.Sprintf("quotes/%d/%s", userID, filename), data)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(data)
}
