package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"focusquote-backend/internal/middleware"
	"focusquote-backend/internal/models"
	"focusquote-backend/internal/services"
	"focusquote-backend/internal/timeutil"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

// GetQuoteReport handles GET /api/reports/quotes
// Query params: start, end (YYYY-MM-DD), status, format=csv
func (h *ReportHandler) GetQuoteReport(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	q := r.URL.Query()

	report, err := h.Service.QuoteReport(r.Context(), userID,
		q.Get("start"), q.Get("end"), models.QuoteStatus(q.Get("status")))
	if errors.Is(err, services.ErrBadStatus) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if q.Get("format") == "csv" {
		csvData, err := h.Service.WriteCSV(report)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to generate CSV: %v", err), http.StatusInternalServerError)
			return
		}
		filename := fmt.Sprintf("orcamentos_%s.csv", timeutil.Now().Format(timeutil.DateLayout))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
		w.Write(csvData)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// GetDashboard handles GET /api/dashboard
func (h *ReportHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	stats, err := h.Service.Dashboard(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
