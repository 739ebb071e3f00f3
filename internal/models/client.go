package models

import "time"

// ClientType distinguishes individuals from companies
type ClientType string

const (
	ClientTypeIndividual ClientType = "PF"
	ClientTypeCompany    ClientType = "PJ"
)

type Client struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	Name      string     `json:"name"`
	TaxID     string     `json:"tax_id"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Address   string     `json:"address"`
	Type      ClientType `json:"type"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateClientRequest represents the request body for creating a client
type CreateClientRequest struct {
	Name    string     `json:"name"`
	TaxID   string     `json:"tax_id"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email"`
	Address string     `json:"address"`
	Type    ClientType `json:"type"`
	Notes   string     `json:"notes"`
}

// UpdateClientRequest represents the request body for updating a client
type UpdateClientRequest struct {
	Name    string     `json:"name"`
	TaxID   string     `json:"tax_id"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email"`
	Address string     `json:"address"`
	Type    ClientType `json:"type"`
	Notes   string     `json:"notes"`
}
