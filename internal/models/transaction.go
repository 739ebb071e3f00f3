package models

import "time"

// TransactionType represents the direction of a cash-flow entry
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a manually recorded cash-flow row. Income derived from
// approved quotes is never stored here; it is merged in at read time.
type Transaction struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Date        string          `json:"date"` // ISO YYYY-MM-DD
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateTransactionRequest represents the request body for creating a
// transaction
type CreateTransactionRequest struct {
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

// FinanceEntry is one row of the merged statement. Persisted transactions
// keep their numeric id as a string; quote-derived rows use "quote-<id>".
type FinanceEntry struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

// FinanceStats summarizes a statement window
type FinanceStats struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// Statement is the full cash-flow response for a date range
type Statement struct {
	Entries []*FinanceEntry `json:"entries"`
	Stats   FinanceStats    `json:"stats"`
	Start   string          `json:"start"`
	End     string          `json:"end"`
}
