package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"focusquote-backend/internal/format"
	"focusquote-backend/internal/metrics"
	"focusquote-backend/internal/models"

	"github.com/jung-kurt/gofpdf/v2"
)

// PDFService renders quote documents. The layout mirrors the web app's
// document: studio header, quote metadata, client block, item table,
// totals, payment box and signature line.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// QuotePDFFilename builds the download filename:
// Orcamento_<number>_<client name with whitespace collapsed to _>.pdf
func QuotePDFFilename(number, clientName string) string {
	name := whitespaceRe.ReplaceAllString(strings.TrimSpace(clientName), "_")
	if name == "" {
		name = "Cliente"
	}
	return fmt.Sprintf("Orcamento_%s_%s.pdf", number, name)
}

func statusBadgeColor(status models.QuoteStatus) (r, g, b int) {
	switch status {
	case models.QuoteStatusApproved:
		return 22, 163, 74 // green
	case models.QuoteStatusDeclined:
		return 220, 38, 38 // red
	case models.QuoteStatusViewed:
		return 202, 138, 4 // amber
	case models.QuoteStatusSent:
		return 37, 99, 235 // blue
	default:
		return 107, 114, 128 // gray
	}
}

// GenerateQuotePDF renders the quote as an A4 portrait document
func (s *PDFService) GenerateQuotePDF(quote *models.Quote, profile *models.Profile, client *models.Client) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Studio header band
	pdf.SetFillColor(79, 70, 229) // indigo
	pdf.Rect(0, 0, 210, 30, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 16)
	studio := profile.StudioName
	if studio == "" {
		studio = profile.Name
	}
	pdf.SetXY(15, 8)
	pdf.CellFormat(120, 8, tr(studio), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetX(15)
	contact := strings.Trim(profile.Phone+"  "+profile.Email, " ")
	pdf.CellFormat(120, 5, tr(contact), "", 1, "L", false, 0, "")

	// Right-aligned title and metadata
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 14)
	pdf.SetXY(135, 8)
	pdf.CellFormat(60, 8, tr("ORÇAMENTO"), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetXY(135, 16)
	pdf.CellFormat(60, 5, tr("Nº "+quote.Number), "", 1, "R", false, 0, "")

	pdf.SetTextColor(60, 60, 60)
	pdf.SetY(36)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(90, 6, tr("Emissão: "+format.DateBR(quote.Date)), "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 6, tr("Válido até: "+format.DateBR(quote.ValidUntil)), "", 1, "R", false, 0, "")

	// Status badge
	r, g, b := statusBadgeColor(quote.Status)
	pdf.SetFillColor(r, g, b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(35, 7, tr(string(quote.Status)), "", 1, "C", true, 0, "")
	pdf.Ln(4)

	// Client block
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFillColor(243, 244, 246)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(180, 7, "Cliente", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	clientName := "Cliente removido"
	if client != nil {
		clientName = client.Name
	}
	pdf.CellFormat(90, 6, tr(clientName), "LB", 0, "L", false, 0, "")
	if client != nil && client.Email != "" {
		pdf.CellFormat(90, 6, tr(client.Email), "RB", 1, "R", false, 0, "")
	} else {
		pdf.CellFormat(90, 6, "", "RB", 1, "R", false, 0, "")
	}
	if client != nil && (client.Phone != "" || client.TaxID != "") {
		pdf.CellFormat(90, 6, tr(client.Phone), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(90, 6, tr(client.TaxID), "RB", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Item table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(79, 70, 229)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(90, 8, tr("Serviço"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qtd", "1", 0, "C", true, 0, "")
	pdf.CellFormat(32, 8, tr("Valor unitário"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(33, 8, "Subtotal", "1", 1, "R", true, 0, "")

	pdf.SetTextColor(60, 60, 60)
	for i, item := range quote.Items {
		if i%2 == 1 {
			pdf.SetFillColor(249, 250, 251)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetFont("Arial", "", 10)
		label := item.Name
		if item.Description != "" {
			label += " - " + item.Description
		}
		qty := fmt.Sprintf("%d %s", item.Quantity, itemUnit(item.Type))
		pdf.CellFormat(90, 7, tr(truncate(label, 60)), "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 7, tr(qty), "1", 0, "C", true, 0, "")
		pdf.CellFormat(32, 7, tr(format.BRL(item.UnitPrice)), "1", 0, "R", true, 0, "")
		lineTotal := item.UnitPrice * float64(item.Quantity)
		pdf.CellFormat(33, 7, tr(format.BRL(lineTotal)), "1", 1, "R", true, 0, "")
	}
	pdf.Ln(4)

	// Totals block. The rendered subtotal is reconstructed from the stored
	// total plus the discount, so it stays consistent with the clamp at 0.
	subtotal := quote.Total + quote.Discount
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(147, 6, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(33, 6, tr(format.BRL(subtotal)), "", 1, "R", false, 0, "")
	if quote.Discount > 0 {
		pdf.CellFormat(147, 6, "Desconto", "", 0, "R", false, 0, "")
		pdf.CellFormat(33, 6, tr("-"+format.BRL(quote.Discount)), "", 1, "R", false, 0, "")
	}
	if quote.ExtraFees > 0 {
		pdf.CellFormat(147, 6, "Taxas adicionais", "", 0, "R", false, 0, "")
		pdf.CellFormat(33, 6, tr(format.BRL(quote.ExtraFees)), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(147, 8, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(33, 8, tr(format.BRL(quote.Total)), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	// Payment box
	pdf.SetFillColor(243, 244, 246)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(180, 7, "Pagamento", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(180, 6, tr("Forma: "+string(quote.PaymentMethod)), "LR", 1, "L", false, 0, "")
	conditions := quote.PaymentConditions
	if conditions == "" {
		conditions = profile.DefaultTerms
	}
	if conditions != "" {
		pdf.MultiCell(180, 5, tr(conditions), "LRB", "L", false)
	} else {
		pdf.CellFormat(180, 4, "", "LRB", 1, "L", false, 0, "")
	}
	pdf.Ln(14)

	// Signature line
	pdf.SetFont("Arial", "", 9)
	pdf.Line(65, pdf.GetY(), 145, pdf.GetY())
	pdf.Ln(2)
	pdf.CellFormat(180, 5, tr(profile.Name), "", 1, "C", false, 0, "")
	pdf.CellFormat(180, 5, tr("Assinatura"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	metrics.QuotePDFsGenerated.Inc()
	return buf.Bytes(), nil
}

func itemUnit(t models.ServiceType) string {
	switch t {
	case models.ServiceTypeHourly:
		return "h"
	case models.ServiceTypeDaily:
		return "diária(s)"
	default:
		return "un"
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
