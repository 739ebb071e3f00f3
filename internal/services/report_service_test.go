package services

import (
	"strings"
	"testing"

	"focusquote-backend/internal/models"
	"focusquote-backend/internal/repositories"
)

func TestComputeReportStats(t *testing.T) {
	rows := []*repositories.ReportRow{
		{Status: models.QuoteStatusApproved, Total: 1000},
		{Status: models.QuoteStatusApproved, Total: 500},
		{Status: models.QuoteStatusDraft, Total: 300},
		{Status: models.QuoteStatusSent, Total: 200},
		{Status: models.QuoteStatusViewed, Total: 100},
		{Status: models.QuoteStatusDeclined, Total: 999},
	}

	stats := ComputeReportStats(rows)

	if stats.Count != 6 {
		t.Errorf("count = %d, want 6", stats.Count)
	}
	if stats.ApprovedCount != 2 {
		t.Errorf("approved = %d, want 2", stats.ApprovedCount)
	}
	// Declined is neither pending nor revenue
	if stats.PendingCount != 3 {
		t.Errorf("pending = %d, want 3", stats.PendingCount)
	}
	if stats.Revenue != 1500 {
		t.Errorf("revenue = %v, want 1500", stats.Revenue)
	}
}

func TestComputeReportStatsEmpty(t *testing.T) {
	stats := ComputeReportStats(nil)
	if stats.Count != 0 || stats.Revenue != 0 {
		t.Errorf("empty report should be all zeros, got %+v", stats)
	}
}

func TestWriteCSV(t *testing.T) {
	s := NewReportService(nil, nil)
	report := &QuoteReport{
		Rows: []*repositories.ReportRow{
			{Number: "150820261030", ClientName: "Maria da Silva", Date: "2026-08-15", Status: models.QuoteStatusApproved, Total: 1234.5},
			{Number: "200820261400", ClientName: "Cliente removido", Date: "2026-08-20", Status: models.QuoteStatusSent, Total: 300},
		},
	}

	data, err := s.WriteCSV(report)
	if err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Numero,Cliente,Data,Status,Total" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "1234.50") {
		t.Errorf("totals should have two decimals, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "Cliente removido") {
		t.Errorf("missing client placeholder, got %q", lines[2])
	}
}
