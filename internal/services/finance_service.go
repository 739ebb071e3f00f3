package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"focusquote-backend/internal/models"
	"focusquote-backend/internal/repositories"
	"focusquote-backend/internal/timeutil"
)

var (
	ErrTransactionInvalid = errors.New("description, amount and date are required")
)

// syntheticIDPrefix marks statement rows derived from approved quotes.
// These rows are never persisted; deleting one is a silent no-op.
const syntheticIDPrefix = "quote-"

type FinanceService struct {
	TransactionRepo *repositories.TransactionRepository
	QuoteRepo       *repositories.QuoteRepository
}

func NewFinanceService(transactionRepo *repositories.TransactionRepository, quoteRepo *repositories.QuoteRepository) *FinanceService {
	return &FinanceService{
		TransactionRepo: transactionRepo,
		QuoteRepo:       quoteRepo,
	}
}

// DefaultRange returns the window used when the caller sends no dates:
// first of the current month through today.
func DefaultRange() (start, end string) {
	now := timeutil.Now()
	return timeutil.StartOfMonth(now).Format(timeutil.DateLayout),
		now.Format(timeutil.DateLayout)
}

// inRange does an inclusive lexicographic compare, which on ISO dates is
// the same as a calendar compare.
func inRange(date, start, end string) bool {
	return date >= start && date <= end
}

// BuildStatement merges persisted transactions with synthetic income rows
// derived from approved quotes. Nothing is written; the statement is a
// pure read-time projection.
func BuildStatement(transactions []*models.Transaction, approvedQuotes []*models.Quote, start, end string) *models.Statement {
	entries := []*models.FinanceEntry{}

	for _, t := range transactions {
		if !inRange(t.Date, start, end) {
			continue
		}
		entries = append(entries, &models.FinanceEntry{
			ID:          strconv.Itoa(t.ID),
			Description: t.Description,
			Amount:      t.Amount,
			Type:        t.Type,
			Category:    t.Category,
			Date:        t.Date,
		})
	}

	for _, q := range approvedQuotes {
		if q.Status != models.QuoteStatusApproved || !inRange(q.Date, start, end) {
			continue
		}
		entries = append(entries, &models.FinanceEntry{
			ID:          fmt.Sprintf("%s%d", syntheticIDPrefix, q.ID),
			Description: fmt.Sprintf("Orçamento #%s", q.Number),
			Amount:      q.Total,
			Type:        models.TransactionTypeIncome,
			Category:    "Orçamento",
			Date:        q.Date,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	var stats models.FinanceStats
	for _, e := range entries {
		switch e.Type {
		case models.TransactionTypeIncome:
			stats.Income += e.Amount
		case models.TransactionTypeExpense:
			stats.Expense += e.Amount
		}
	}
	stats.Balance = stats.Income - stats.Expense

	return &models.Statement{
		Entries: entries,
		Stats:   stats,
		Start:   start,
		End:     end,
	}
}

// Statement fetches both sources and merges them for the given window
func (s *FinanceService) Statement(ctx context.Context, userID int, start, end string) (*models.Statement, error) {
	if start == "" || end == "" {
		start, end = DefaultRange()
	}

	transactions, err := s.TransactionRepo.ListInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	quotes, err := s.QuoteRepo.ListApprovedInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return BuildStatement(transactions, quotes, start, end), nil
}

// ListTransactions returns only the persisted rows for a window, without
// the synthetic quote income the statement adds.
func (s *FinanceService) ListTransactions(ctx context.Context, userID int, start, end string) ([]*models.Transaction, error) {
	if start == "" || end == "" {
		start, end = DefaultRange()
	}
	return s.TransactionRepo.ListInRange(ctx, userID, start, end)
}

// AddTransaction validates and persists a manual cash-flow row
func (s *FinanceService) AddTransaction(ctx context.Context, userID int, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if req.Description == "" || req.Amount == 0 || req.Date == "" {
		return nil, ErrTransactionInvalid
	}
	if req.Type != models.TransactionTypeIncome && req.Type != models.TransactionTypeExpense {
		return nil, ErrTransactionInvalid
	}

	t := &models.Transaction{
		UserID:      userID,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Date:        req.Date,
	}
	if err := s.TransactionRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteEntry removes a persisted transaction. Synthetic quote-derived ids
// are accepted and silently ignored, matching the statement contract.
func (s *FinanceService) DeleteEntry(ctx context.Context, userID int, entryID string) error {
	if strings.HasPrefix(entryID, syntheticIDPrefix) {
		return nil
	}
	id, err := strconv.Atoi(entryID)
	if err != nil {
		return nil // unknown id shape, nothing to delete
	}
	return s.TransactionRepo.Delete(ctx, userID, id)
}
