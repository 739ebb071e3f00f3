package models

import "time"

// ServiceType is the pricing unit of a catalog service.
// Values are the Portuguese labels the clients of this API expect.
type ServiceType string

const (
	ServiceTypePackage ServiceType = "Pacote"
	ServiceTypeHourly  ServiceType = "Hora"
	ServiceTypeDaily   ServiceType = "Diária"
)

// Service is a reusable catalog template. Quotes copy its fields at
// insertion time; editing a service never rewrites existing quotes.
type Service struct {
	ID           int         `json:"id"`
	UserID       int         `json:"user_id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	DefaultPrice float64     `json:"default_price"`
	Type         ServiceType `json:"type"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// CreateServiceRequest represents the request body for creating a service
type CreateServiceRequest struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	DefaultPrice float64     `json:"default_price"`
	Type         ServiceType `json:"type"`
}

// UpdateServiceRequest represents the request body for updating a service
type UpdateServiceRequest struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	DefaultPrice float64     `json:"default_price"`
	Type         ServiceType `json:"type"`
}
