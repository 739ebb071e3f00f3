package services

import (
	"testing"

	"focusquote-backend/internal/models"
)

func TestComputeTotal(t *testing.T) {
	items := func(prices ...float64) []*models.QuoteItemInput {
		var out []*models.QuoteItemInput
		for _, p := range prices {
			out = append(out, &models.QuoteItemInput{UnitPrice: p, Quantity: 1})
		}
		return out
	}

	tests := []struct {
		name      string
		items     []*models.QuoteItemInput
		discount  float64
		extraFees float64
		want      float64
	}{
		{
			name:  "single item",
			items: items(250),
			want:  250,
		},
		{
			name:     "discount applied",
			items:    items(250),
			discount: 10,
			want:     240,
		},
		{
			name:      "discount plus extra fees",
			items:     items(100, 200),
			discount:  50,
			extraFees: 30,
			want:      280,
		},
		{
			name: "quantity multiplies unit price",
			items: []*models.QuoteItemInput{
				{UnitPrice: 150, Quantity: 3},
			},
			want: 450,
		},
		{
			name:     "oversized discount clamps to zero",
			items:    items(100),
			discount: 500,
			want:     0,
		},
		{
			name:      "extra fees cannot rescue a clamped total below zero",
			items:     items(100),
			discount:  500,
			extraFees: 50,
			want:      0,
		},
		{
			name: "no items",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(tt.items, tt.discount, tt.extraFees)
			if got != tt.want {
				t.Errorf("ComputeTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextStatusOnView(t *testing.T) {
	tests := []struct {
		current     models.QuoteStatus
		want        models.QuoteStatus
		wantChanged bool
	}{
		{models.QuoteStatusDraft, models.QuoteStatusViewed, true},
		{models.QuoteStatusSent, models.QuoteStatusViewed, true},
		{models.QuoteStatusViewed, models.QuoteStatusViewed, false},
		{models.QuoteStatusApproved, models.QuoteStatusApproved, false},
		{models.QuoteStatusDeclined, models.QuoteStatusDeclined, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			got, changed := NextStatusOnView(tt.current)
			if got != tt.want || changed != tt.wantChanged {
				t.Errorf("NextStatusOnView(%s) = (%s, %v), want (%s, %v)",
					tt.current, got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestSaveQuoteValidation(t *testing.T) {
	s := &QuoteService{}
	valid := &models.SaveQuoteRequest{
		ClientID: 1,
		Items:    []*models.QuoteItemInput{{Name: "Ensaio", UnitPrice: 300, Quantity: 1}},
	}
	if err := s.validate(valid); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(r *models.SaveQuoteRequest)
		wantErr error
	}{
		{"missing client", func(r *models.SaveQuoteRequest) { r.ClientID = 0 }, ErrNoClient},
		{"no items", func(r *models.SaveQuoteRequest) { r.Items = nil }, ErrNoItems},
		{"zero quantity", func(r *models.SaveQuoteRequest) { r.Items[0].Quantity = 0 }, ErrBadQuantity},
		{"bad date", func(r *models.SaveQuoteRequest) { r.Date = "31/12/2025" }, ErrBadDate},
		{"bad valid_until", func(r *models.SaveQuoteRequest) { r.ValidUntil = "soon" }, ErrBadDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &models.SaveQuoteRequest{
				ClientID: 1,
				Items:    []*models.QuoteItemInput{{Name: "Ensaio", UnitPrice: 300, Quantity: 1}},
			}
			tt.mutate(req)
			if err := s.validate(req); err != tt.wantErr {
				t.Errorf("validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildItemsDefaultsType(t *testing.T) {
	items := buildItems([]*models.QuoteItemInput{
		{Name: "Ensaio", UnitPrice: 300, Quantity: 1},
		{Name: "Cobertura", UnitPrice: 200, Quantity: 4, Type: models.ServiceTypeHourly},
	})

	if items[0].Type != models.ServiceTypePackage {
		t.Errorf("missing type should default to %s, got %s", models.ServiceTypePackage, items[0].Type)
	}
	if items[1].Type != models.ServiceTypeHourly {
		t.Errorf("explicit type overwritten: got %s", items[1].Type)
	}
}

func TestQuoteStatusValid(t *testing.T) {
	for _, s := range []models.QuoteStatus{
		models.QuoteStatusDraft, models.QuoteStatusSent, models.QuoteStatusViewed,
		models.QuoteStatusApproved, models.QuoteStatusDeclined,
	} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if models.QuoteStatus("Pendente").Valid() {
		t.Error("unknown status should be invalid")
	}
	if models.QuoteStatus("").Valid() {
		t.Error("empty status should be invalid")
	}
}
