package models

import "time"

// QuoteStatus is the lifecycle state of a quote.
// Values are the Portuguese labels the clients of this API expect.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "Rascunho"
	QuoteStatusSent     QuoteStatus = "Enviado"
	QuoteStatusViewed   QuoteStatus = "Visualizado"
	QuoteStatusApproved QuoteStatus = "Aprovado"
	QuoteStatusDeclined QuoteStatus = "Recusado"
)

// Valid reports whether s is one of the five known statuses.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusViewed,
		QuoteStatusApproved, QuoteStatusDeclined:
		return true
	}
	return false
}

// PaymentMethod is a closed label set; no gateway integration behind it.
type PaymentMethod string

const (
	PaymentMethodPix      PaymentMethod = "Pix"
	PaymentMethodCard     PaymentMethod = "Cartão de Crédito"
	PaymentMethodTransfer PaymentMethod = "Transferência"
	PaymentMethodCash     PaymentMethod = "Dinheiro"
)

type Quote struct {
	ID                int           `json:"id"`
	UserID            int           `json:"user_id"`
	ClientID          int           `json:"client_id"`
	Number            string        `json:"number"`
	Date              string        `json:"date"`        // ISO YYYY-MM-DD
	ValidUntil        string        `json:"valid_until"` // ISO YYYY-MM-DD
	Status            QuoteStatus   `json:"status"`
	Items             []*QuoteItem  `json:"items"`
	Discount          float64       `json:"discount"`
	ExtraFees         float64       `json:"extra_fees"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	PaymentConditions string        `json:"payment_conditions"`
	Total             float64       `json:"total"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// QuoteItem is a line item frozen at quote-save time. It carries its own
// copy of name/price so later catalog edits don't rewrite history.
type QuoteItem struct {
	ID          int         `json:"id"`
	QuoteID     int         `json:"quote_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	UnitPrice   float64     `json:"unit_price"`
	Quantity    int         `json:"quantity"`
	Type        ServiceType `json:"type"`
}

// QuoteItemInput is a line item as sent by the client on save
type QuoteItemInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	UnitPrice   float64     `json:"unit_price"`
	Quantity    int         `json:"quantity"`
	Type        ServiceType `json:"type"`
}

// SaveQuoteRequest represents the request body for creating or updating a
// quote. Totals are recomputed server-side; any client-sent total is ignored.
type SaveQuoteRequest struct {
	ClientID          int               `json:"client_id"`
	Date              string            `json:"date"`
	ValidUntil        string            `json:"valid_until"`
	Items             []*QuoteItemInput `json:"items"`
	Discount          float64           `json:"discount"`
	ExtraFees         float64           `json:"extra_fees"`
	PaymentMethod     PaymentMethod     `json:"payment_method"`
	PaymentConditions string            `json:"payment_conditions"`
}

// UpdateQuoteStatusRequest represents the request body for a manual
// status change
type UpdateQuoteStatusRequest struct {
	Status QuoteStatus `json:"status"`
}

// PublicQuote is the payload served on the unauthenticated approval link
type PublicQuote struct {
	Quote   *Quote   `json:"quote"`
	Profile *Profile `json:"profile"`
	Client  *Client  `json:"client"`
}
