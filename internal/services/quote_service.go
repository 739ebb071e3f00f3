package services

import (
	"context"
	"errors"
	"time"

	"focusquote-backend/internal/cache"
	"focusquote-backend/internal/models"
	"focusquote-backend/internal/repositories"
	"focusquote-backend/internal/timeutil"
)

var (
	ErrNoClient     = errors.New("quote must reference a client")
	ErrNoItems      = errors.New("quote must have at least one item")
	ErrBadQuantity  = errors.New("item quantity must be at least 1")
	ErrBadStatus    = errors.New("unknown quote status")
	ErrBadDate      = errors.New("dates must be in YYYY-MM-DD format")
)

type QuoteService struct {
	Repo       *repositories.QuoteRepository
	ClientRepo *repositories.ClientRepository
}

func NewQuoteService(repo *repositories.QuoteRepository, clientRepo *repositories.ClientRepository) *QuoteService {
	return &QuoteService{Repo: repo, ClientRepo: clientRepo}
}

// ComputeTotal derives the quote total from its parts. The result never
// goes below zero: an oversized discount clamps to 0, it does not go
// negative.
func ComputeTotal(items []*models.QuoteItemInput, discount, extraFees float64) float64 {
	var sum float64
	for _, item := range items {
		sum += item.UnitPrice * float64(item.Quantity)
	}
	total := sum - discount + extraFees
	if total < 0 {
		return 0
	}
	return total
}

// NextStatusOnView returns the status a quote moves to when its public
// link is opened. Only Draft and Sent advance to Viewed; every other
// state is left untouched, so repeat opens are idempotent.
func NextStatusOnView(current models.QuoteStatus) (models.QuoteStatus, bool) {
	switch current {
	case models.QuoteStatusDraft, models.QuoteStatusSent:
		return models.QuoteStatusViewed, true
	}
	return current, false
}

func (s *QuoteService) validate(req *models.SaveQuoteRequest) error {
	if req.ClientID == 0 {
		return ErrNoClient
	}
	if len(req.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return ErrBadQuantity
		}
	}
	for _, d := range []string{req.Date, req.ValidUntil} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(timeutil.DateLayout, d); err != nil {
			return ErrBadDate
		}
	}
	return nil
}

func buildItems(inputs []*models.QuoteItemInput) []*models.QuoteItem {
	items := make([]*models.QuoteItem, len(inputs))
	for i, in := range inputs {
		t := in.Type
		if t == "" {
			t = models.ServiceTypePackage
		}
		items[i] = &models.QuoteItem{
			Name:        in.Name,
			Description: in.Description,
			UnitPrice:   in.UnitPrice,
			Quantity:    in.Quantity,
			Type:        t,
		}
	}
	return items
}

// CreateQuote validates the request, derives the number from the current
// wall clock and recomputes the total before persisting.
func (s *QuoteService) CreateQuote(ctx context.Context, userID int, req *models.SaveQuoteRequest) (*models.Quote, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	now := timeutil.Now()
	date := req.Date
	if date == "" {
		date = now.Format(timeutil.DateLayout)
	}
	validUntil := req.ValidUntil
	if validUntil == "" {
		validUntil = now.AddDate(0, 0, 7).Format(timeutil.DateLayout)
	}
	method := req.PaymentMethod
	if method == "" {
		method = models.PaymentMethodPix
	}

	quote := &models.Quote{
		UserID:            userID,
		ClientID:          req.ClientID,
		Number:            timeutil.QuoteNumber(now),
		Date:              date,
		ValidUntil:        validUntil,
		Status:            models.QuoteStatusDraft,
		Items:             buildItems(req.Items),
		Discount:          req.Discount,
		ExtraFees:         req.ExtraFees,
		PaymentMethod:     method,
		PaymentConditions: req.PaymentConditions,
		Total:             ComputeTotal(req.Items, req.Discount, req.ExtraFees),
	}

	if err := s.Repo.Create(ctx, quote); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx, userID)
	return quote, nil
}

// UpdateQuote rewrites the quote. The number and status are kept; items
// are replaced wholesale and the total recomputed.
func (s *QuoteService) UpdateQuote(ctx context.Context, userID, id int, req *models.SaveQuoteRequest) (*models.Quote, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	existing, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	existing.ClientID = req.ClientID
	if req.Date != "" {
		existing.Date = req.Date
	}
	if req.ValidUntil != "" {
		existing.ValidUntil = req.ValidUntil
	}
	existing.Items = buildItems(req.Items)
	existing.Discount = req.Discount
	existing.ExtraFees = req.ExtraFees
	if req.PaymentMethod != "" {
		existing.PaymentMethod = req.PaymentMethod
	}
	existing.PaymentConditions = req.PaymentConditions
	existing.Total = ComputeTotal(req.Items, req.Discount, req.ExtraFees)

	if err := s.Repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx, userID)
	return existing, nil
}

// SetStatus applies a manual status change. Any transition is allowed;
// the owner can reopen, resend or decline a quote freely.
func (s *QuoteService) SetStatus(ctx context.Context, userID, id int, status models.QuoteStatus) error {
	if !status.Valid() {
		return ErrBadStatus
	}
	if err := s.Repo.UpdateStatus(ctx, userID, id, status); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx, userID)
	return nil
}

// MarkViewed advances a Draft or Sent quote to Viewed. Persist-then-apply:
// the returned quote reflects the stored state even when nothing changed.
func (s *QuoteService) MarkViewed(ctx context.Context, userID, id int) (*models.Quote, error) {
	quote, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if next, changed := NextStatusOnView(quote.Status); changed {
		if err := s.Repo.UpdateStatus(ctx, userID, id, next); err != nil {
			return nil, err
		}
		quote.Status = next
		cache.InvalidateDashboard(ctx, userID)
	}
	return quote, nil
}

// Approve sets a quote to Approved regardless of its current state.
func (s *QuoteService) Approve(ctx context.Context, userID, id int) error {
	if err := s.Repo.UpdateStatus(ctx, userID, id, models.QuoteStatusApproved); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx, userID)
	return nil
}

func (s *QuoteService) GetQuote(ctx context.Context, userID, id int) (*models.Quote, error) {
	return s.Repo.Get(ctx, userID, id)
}

func (s *QuoteService) ListQuotes(ctx context.Context, userID int) ([]*models.Quote, error) {
	return s.Repo.List(ctx, userID)
}

func (s *QuoteService) DeleteQuote(ctx context.Context, userID, id int) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx, userID)
	return nil
}
