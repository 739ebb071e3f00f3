package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"focusquote-backend/internal/metrics"
	"focusquote-backend/internal/models"
	"focusquote-backend/internal/repositories"
	"focusquote-backend/internal/services"
	"focusquote-backend/pkg/utils"

	"github.com/gorilla/mux"
)

// PublicHandler serves the unauthenticated approval link. The link carries
// the owner's id in the "u" query param; a quote id that doesn't belong to
// that owner is indistinguishable from a missing one.
type PublicHandler struct {
	QuoteService *services.QuoteService
	PDFService   *services.PDFService
	ProfileRepo  *repositories.ProfileRepository
	ClientRepo   *repositories.ClientRepository
}

func NewPublicHandler(
	quoteService *services.QuoteService,
	pdfService *services.PDFService,
	profileRepo *repositories.ProfileRepository,
	clientRepo *repositories.ClientRepository,
) *PublicHandler {
	return &PublicHandler{
		QuoteService: quoteService,
		PDFService:   pdfService,
		ProfileRepo:  profileRepo,
		ClientRepo:   clientRepo,
	}
}

func publicParams(r *http.Request) (userID, quoteID int, ok bool) {
	userID, err := strconv.Atoi(r.URL.Query().Get("u"))
	if err != nil || userID <= 0 {
		return 0, 0, false
	}
	quoteID, err = strconv.Atoi(mux.Vars(r)["quoteId"])
	if err != nil || quoteID <= 0 {
		return 0, 0, false
	}
	return userID, quoteID, true
}

func publicNotFound(w http.ResponseWriter) {
	utils.Error(w, http.StatusNotFound, "Este orçamento não está mais disponível")
}

// ViewQuote serves the quote to the client and records the first open by
// moving Draft/Sent to Viewed. Repeat opens change nothing.
func (h *PublicHandler) ViewQuote(w http.ResponseWriter, r *http.Request) {
	userID, quoteID, ok := publicParams(r)
	if !ok {
		metrics.PublicQuoteViews.WithLabelValues("bad_request").Inc()
		publicNotFound(w)
		return
	}

	quote, err := h.QuoteService.MarkViewed(r.Context(), userID, quoteID)
	if err != nil {
		metrics.PublicQuoteViews.WithLabelValues("not_found").Inc()
		publicNotFound(w)
		return
	}
	metrics.PublicQuoteViews.WithLabelValues("ok").Inc()

	profile, err := h.ProfileRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		profile = &models.Profile{UserID: userID}
	}
	client, err := h.ClientRepo.Get(r.Context(), userID, quote.ClientID)
	if err != nil {
		client = nil
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&models.PublicQuote{
		Quote:   quote,
		Profile: profile,
		Client:  client,
	})
}

// ApproveQuote records the client's acceptance. No auth beyond the link
// itself; approval always lands regardless of the current state.
func (h *PublicHandler) ApproveQuote(w http.ResponseWriter, r *http.Request) {
	userID, quoteID, ok := publicParams(r)
	if !ok {
		publicNotFound(w)
		return
	}

	if err := h.QuoteService.Approve(r.Context(), userID, quoteID); err != nil {
		publicNotFound(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": string(models.QuoteStatusApproved)})
}

// DownloadPDF lets the client save the quote document from the public link
func (h *PublicHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	userID, quoteID, ok := publicParams(r)
	if !ok {
		publicNotFound(w)
		return
	}

	quote, err := h.QuoteService.GetQuote(r.Context(), userID, quoteID)
	if err != nil {
		publicNotFound(w)
		return
	}

	profile, err := h.ProfileRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		profile = &models.Profile{UserID: userID}
	}
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

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(data)
}
