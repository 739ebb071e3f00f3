package format

import "testing"

func TestBRL(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "R$ 0,00"},
		{1, "R$ 1,00"},
		{10.5, "R$ 10,50"},
		{999.99, "R$ 999,99"},
		{1000, "R$ 1.000,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.89, "R$ 1.234.567,89"},
		{-350.75, "-R$ 350,75"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := BRL(tt.value); got != tt.want {
				t.Errorf("BRL(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestDateBR(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"2026-08-15", "15/08/2026"},
		{"2026-01-01", "01/01/2026"},
		{"not-a-date", "not-a-date"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DateBR(tt.iso); got != tt.want {
			t.Errorf("DateBR(%q) = %q, want %q", tt.iso, got, tt.want)
		}
	}
}
