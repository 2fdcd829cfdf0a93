package services

import (
	"testing"
)

func TestPriceToCents(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{1, 100},
		{24.99, 2499},
		{0.5, 50},
		{10.999, 1099}, // truncates, never rounds up
	}
	for _, tt := range tests {
		if got := PriceToCents(tt.price); got != tt.want {
			t.Errorf("PriceToCents(%v) = %d, want %d", tt.price, got, tt.want)
		}
	}
}
