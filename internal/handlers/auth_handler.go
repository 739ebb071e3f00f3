package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"focusquote-backend/internal/auth"
	"focusquote-backend/internal/models"
	"focusquote-backend/internal/services"
)

type AuthHandler struct {
	Service     *services.UserService
	TOTPService *services.TOTPService
	JWTManager  *auth.JWTManager
}

func NewAuthHandler(s *services.UserService, totpService *services.TOTPService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		Service:     s,
		TOTPService: totpService,
		JWTManager:  jwtManager,
	}
}

// Signup handles user registration
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	authResp, err := h.Service.Signup(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(authResp)
}

// Login handles user authentication. Admins with 2FA enabled get a temp
// token and must finish via VerifyTOTP.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrAccountBlocked) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if result.Pending != nil {
		json.NewEncoder(w).Encode(result.Pending)
		return
	}
	json.NewEncoder(w).Encode(result.Auth)
}

// VerifyTOTP exchanges a temp token plus a valid 2FA code for a session token
func (h *AuthHandler) VerifyTOTP(w http.ResponseWriter, r *http.Request) {
	var req models.TOTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.TempToken == "" || req.Code == "" {
		http.Error(w, "temp_token and code are required", http.StatusBadRequest)
		return
	}

	claims, err := h.JWTManager.ValidateTempToken(req.TempToken)
	if err != nil {
		http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
		return
	}

	ok, err := h.TOTPService.Verify(r.Context(), claims.UserID, req.Code, getIPAddress(r))
	if err != nil || !ok {
		http.Error(w, "invalid verification code", http.StatusUnauthorized)
		return
	}

	authResp, err := h.Service.CompleteTOTPLogin(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(authResp)
}

// getIPAddress extracts the real IP address from the request
func getIPAddress(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	return r.RemoteAddr
}
