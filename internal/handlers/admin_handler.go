package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"focusquote-backend/internal/middleware"
	"focusquote-backend/internal/models"
	"focusquote-backend/internal/repositories"

	"github.com/gorilla/mux"
)

type AdminHandler struct {
	UserRepo    *repositories.UserRepository
	ProfileRepo *repositories.ProfileRepository
}

func NewAdminHandler(userRepo *repositories.UserRepository, profileRepo *repositories.ProfileRepository) *AdminHandler {
	return &AdminHandler{UserRepo: userRepo, ProfileRepo: profileRepo}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserRepo.ListWithProfiles(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []*models.AdminUserRow{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// ToggleRole flips a user between admin and photographer. Admins cannot
// demote themselves; that would let the panel lock everyone out.
func (h *AdminHandler) ToggleRole(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if id == callerID {
		http.Error(w, "Cannot change your own role", http.StatusBadRequest)
		return
	}

	user, err := h.UserRepo.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	newRole := "admin"
	if user.Role == "admin" {
		newRole = "photographer"
	}
	if err := h.UserRepo.SetRole(r.Context(), id, newRole); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"role": newRole})
}

// ToggleBlocked flips a user's blocked flag. The auth middleware re-reads
// the user row on every request, so a block lands immediately even with a
// live token.
func (h *AdminHandler) ToggleBlocked(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.GetUserIDFromContext(r.Context())
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if id == callerID {
		http.Error(w, "Cannot block your own account", http.StatusBadRequest)
		return
	}

	if _, err := h.UserRepo.Get(r.Context(), id); err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	blocked, err := h.UserRepo.ToggleBlocked(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"is_blocked": blocked})
}

// DeleteProfile wipes a user's profile so the next sync recreates it with
// defaults. The account itself stays.
func (h *AdminHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if _, err := h.UserRepo.Get(r.Context(), id); err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	if err := h.ProfileRepo.DeleteByUserID(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
