package models

import "time"

// Profile holds the photographer's studio data shown on quotes and PDFs.
// One row per user, created lazily on first sync.
type Profile struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Name        string    `json:"name"`
	StudioName  string    `json:"studio_name"`
	TaxID       string    `json:"tax_id"`
	Phone       string    `json:"phone"`
	Whatsapp    string    `json:"whatsapp"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Website     string    `json:"website"`
	Instagram   string    `json:"instagram"`
	DefaultTerms string   `json:"default_terms"`
	MonthlyGoal float64   `json:"monthly_goal"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateProfileRequest represents the request body for the profile upsert
type UpdateProfileRequest struct {
	Name         string  `json:"name"`
	StudioName   string  `json:"studio_name"`
	TaxID        string  `json:"tax_id"`
	Phone        string  `json:"phone"`
	Whatsapp     string  `json:"whatsapp"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	Website      string  `json:"website"`
	Instagram    string  `json:"instagram"`
	DefaultTerms string  `json:"default_terms"`
	MonthlyGoal  float64 `json:"monthly_goal"`
}
