package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"focusquote-backend/internal/middleware"
	"focusquote-backend/internal/models"
	"focusquote-backend/internal/repositories"

	"github.com/jackc/pgx/v5"
)

type ProfileHandler struct {
	Repo *repositories.ProfileRepository
}

func NewProfileHandler(repo *repositories.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{Repo: repo}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	profile, err := h.Repo.GetByUserID(r.Context(), userID)
	if errors.Is(err, pgx.ErrNoRows) {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// UpdateProfile upserts the caller's profile in one write
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile := &models.Profile{
		UserID:       userID,
		Name:         req.Name,
		StudioName:   req.StudioName,
		TaxID:        req.TaxID,
		Phone:        req.Phone,
		Whatsapp:     req.Whatsapp,
		Email:        req.Email,
		Address:      req.Address,
		Website:      req.Website,
		Instagram:    req.Instagram,
		DefaultTerms: req.DefaultTerms,
		MonthlyGoal:  req.MonthlyGoal,
	}
	if err := h.Repo.Upsert(r.Context(), profile); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
