package services

import (
	"bytes"
	"testing"

	"focusquote-backend/internal/models"
)

func TestQuotePDFFilename(t *testing.T) {
	tests := []struct {
		name       string
		number     string
		clientName string
		want       string
	}{
		{"simple name", "150820261030", "Maria", "Orcamento_150820261030_Maria.pdf"},
		{"spaces become underscores", "150820261030", "Maria da Silva", "Orcamento_150820261030_Maria_da_Silva.pdf"},
		{"runs of whitespace collapse", "150820261030", "Maria   da\tSilva", "Orcamento_150820261030_Maria_da_Silva.pdf"},
		{"empty name falls back", "150820261030", "", "Orcamento_150820261030_Cliente.pdf"},
		{"whitespace-only name falls back", "150820261030", "   ", "Orcamento_150820261030_Cliente.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuotePDFFilename(tt.number, tt.clientName); got != tt.want {
				t.Errorf("QuotePDFFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateQuotePDF(t *testing.T) {
	s := NewPDFService()

	quote := &models.Quote{
		Number:     "150820261030",
		Date:       "2026-08-15",
		ValidUntil: "2026-08-22",
		Status:     models.QuoteStatusSent,
		Items: []*models.QuoteItem{
			{Name: "Ensaio fotográfico", Description: "Externo, 2 locações", UnitPrice: 450, Quantity: 1, Type: models.ServiceTypePackage},
			{Name: "Cobertura adicional", UnitPrice: 150, Quantity: 3, Type: models.ServiceTypeHourly},
		},
		Discount:      50,
		ExtraFees:     30,
		PaymentMethod: models.PaymentMethodPix,
		Total:         880,
	}
	profile := &models.Profile{
		Name:       "Ana Souza",
		StudioName: "Estúdio Luz & Sombra",
		Phone:      "(11) 99999-0000",
		Email:      "ana@luzesombra.com.br",
	}
	client := &models.Client{
		Name:  "João Pereira",
		Email: "joao@example.com",
		Phone: "(11) 98888-1111",
	}

	data, err := s.GenerateQuotePDF(quote, profile, client)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("generated PDF is empty")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with PDF magic bytes: %q", data[:8])
	}
}

func TestGenerateQuotePDFWithoutClient(t *testing.T) {
	s := NewPDFService()

	quote := &models.Quote{
		Number:     "010920260900",
		Date:       "2026-09-01",
		ValidUntil: "2026-09-08",
		Status:     models.QuoteStatusDraft,
		Items: []*models.QuoteItem{
			{Name: "Diária de evento", UnitPrice: 1200, Quantity: 1, Type: models.ServiceTypeDaily},
		},
		PaymentMethod: models.PaymentMethodCash,
		Total:         1200,
	}
	profile := &models.Profile{Name: "Ana Souza", DefaultTerms: "50% na reserva, 50% na entrega"}

	data, err := s.GenerateQuotePDF(quote, profile, nil)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() with nil client error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("generated PDF is empty")
	}
}

func TestItemUnit(t *testing.T) {
	tests := []struct {
		serviceType models.ServiceType
		want        string
	}{
		{models.ServiceTypeHourly, "h"},
		{models.ServiceTypeDaily, "diária(s)"},
		{models.ServiceTypePackage, "un"},
		{"", "un"},
	}
	for _, tt := range tests {
		if got := itemUnit(tt.serviceType); got != tt.want {
			t.Errorf("itemUnit(%q) = %q, want %q", tt.serviceType, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("curto", 60); got != "curto" {
		t.Errorf("short string should pass through, got %q", got)
	}
	long := "Ensaio fotográfico externo com duas locações e figurino completo incluso"
	got := truncate(long, 30)
	if len([]rune(got)) != 30 {
		t.Errorf("truncated length = %d runes, want 30", len([]rune(got)))
	}
	// Multi-byte characters must not be split mid-rune
	got = truncate("ààààààààààà", 10)
	for _, r := range got {
		if r != 'à' && r != '.' {
			t.Errorf("rune corrupted during truncate: %q", got)
			break
		}
	}
}
