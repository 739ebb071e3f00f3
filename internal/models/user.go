package models

import "time"

type User struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"` // Never expose in JSON
	Role           string     `json:"role"` // admin or photographer
	IsBlocked      bool       `json:"is_blocked"`
	TOTPSecret     string     `json:"-"`
	TOTPEnabled    bool       `json:"totp_enabled"`
	TOTPVerifiedAt *time.Time `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// SignupRequest represents the request body for signup
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// TwoFactorPendingResponse is returned when an admin with 2FA enabled logs in.
// The temp token must be exchanged via /auth/totp/verify.
type TwoFactorPendingResponse struct {
	Requires2FA bool   `json:"requires_2fa"`
	TempToken   string `json:"temp_token"`
}

// AdminUserRow is a user joined with profile info for the admin panel
type AdminUserRow struct {
	ID         int       `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsBlocked  bool      `json:"is_blocked"`
	Name       string    `json:"name"`
	StudioName string    `json:"studio_name"`
	CreatedAt  time.Time `json:"created_at"`
}
