package render

import (
	"testing"
)

func TestMoneyFormat(t *testing.T) {
	money := NewMoney("ko", "원")

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{
			name:   "millions grouped",
			amount: 10000000,
			want:   "10,000,000원",
		},
		{
			name:   "fraction rounded to whole",
			amount: 1860000.4,
			want:   "1,860,000원",
		},
		{
			name:   "zero",
			amount: 0,
			want:   "0원",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.Format(tt.amount)
			if got != tt.want {
				t.Errorf("Format(%f) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestMoneyPlain(t *testing.T) {
	money := NewMoney("ko", "원")
	if got := money.Plain(22860000); got != "22,860,000" {
		t.Errorf("Plain() = %q, want 22,860,000", got)
	}
}

func TestMoneyUnknownLocale(t *testing.T) {
	// Нераспознанная локаль не должна ломать форматирование
	money := NewMoney("??bogus??", "₩")
	if got := money.Format(1000); got == "" {
		t.Error("Format() returned empty string")
	}
}
