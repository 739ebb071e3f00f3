package timeutil

import (
	"testing"
	"time"
)

func TestQuoteNumber(t *testing.T) {
	// 2026-08-15 10:30 BRT
	instant := time.Date(2026, 8, 15, 10, 30, 45, 0, BRT)
	if got := QuoteNumber(instant); got != "150820261030" {
		t.Errorf("QuoteNumber() = %q, want %q", got, "150820261030")
	}

	// UTC input must be converted to the BRT wall clock first:
	// 2026-08-16 01:30 UTC is still 22:30 on the 15th in BRT.
	utc := time.Date(2026, 8, 16, 1, 30, 0, 0, time.UTC)
	if got := QuoteNumber(utc); got != "150820262230" {
		t.Errorf("QuoteNumber(utc) = %q, want %q", got, "150820262230")
	}
}

func TestQuoteNumberPadding(t *testing.T) {
	instant := time.Date(2026, 1, 2, 3, 4, 0, 0, BRT)
	if got := QuoteNumber(instant); got != "020120260304" {
		t.Errorf("QuoteNumber() = %q, want %q", got, "020120260304")
	}
}

func TestStartOfMonth(t *testing.T) {
	instant := time.Date(2026, 8, 15, 23, 59, 0, 0, BRT)
	start := StartOfMonth(instant)

	if start.Format(DateLayout) != "2026-08-01" {
		t.Errorf("StartOfMonth() = %s, want 2026-08-01", start.Format(DateLayout))
	}
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("StartOfMonth() should be midnight, got %s", start)
	}
}

func TestParseInBRT(t *testing.T) {
	got, err := ParseInBRT(DateLayout, "2026-08-15")
	if err != nil {
		t.Fatalf("ParseInBRT() error: %v", err)
	}
	if got.Location() != BRT {
		t.Errorf("parsed time not in BRT: %s", got.Location())
	}

	if _, err := ParseInBRT(DateLayout, "15/08/2026"); err == nil {
		t.Error("expected error for wrong layout")
	}
}
