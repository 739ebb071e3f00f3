package timeutil

import (
	"time"
)

// BRT is the Brasília time location (UTC-3). Quote numbers and all
// user-facing dates are derived from this wall clock.
var BRT *time.Location

func init() {
	var err error
	BRT, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// Fallback: create fixed zone if America/Sao_Paulo not available
		BRT = time.FixedZone("BRT", -3*60*60) // UTC-3
	}
}

// Now returns the current time in BRT
func Now() time.Time {
	return time.Now().In(BRT)
}

// ToBRT converts any time to BRT
func ToBRT(t time.Time) time.Time {
	return t.In(BRT)
}

// ParseInBRT parses a time string and returns it in BRT
func ParseInBRT(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, BRT)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatBRT formats a time in BRT using the given layout
func FormatBRT(t time.Time, layout string) string {
	return t.In(BRT).Format(layout)
}

// StartOfMonth returns the first day of the month (00:00:00) in BRT
func StartOfMonth(t time.Time) time.Time {
	brt := t.In(BRT)
	return time.Date(brt.Year(), brt.Month(), 1, 0, 0, 0, 0, BRT)
}

// Common layouts
const (
	DateLayout        = "2006-01-02"
	DisplayDateLayout = "02/01/2006"
)

// QuoteNumber derives a quote number from the given instant: day, month,
// year, hour and minute concatenated (DDMMYYYYHHmm).
func QuoteNumber(t time.Time) string {
	return t.In(BRT).Format("020120061504")
}
