package format

import (
	"fmt"
	"strings"
	"time"

	"focusquote-backend/internal/timeutil"
)

// BRL formats a value as Brazilian Real: R$ 1.234,56
func BRL(value float64) string {
	neg := value < 0
	if neg {
		value = -value
	}

	s := fmt.Sprintf("%.2f", value)
	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	// Insert thousands separators
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "R$ " + b.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}

// DateBR renders an ISO date (YYYY-MM-DD) as DD/MM/YYYY.
// Unparseable input is returned unchanged.
func DateBR(isoDate string) string {
	t, err := time.ParseInLocation(timeutil.DateLayout, isoDate, timeutil.BRT)
	if err != nil {
		return isoDate
	}
	return t.Format(timeutil.DisplayDateLayout)
}
