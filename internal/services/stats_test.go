package services

import (
	"testing"

	"zakat_app_echo/internal/models"
)

func TestTotalPaid(t *testing.T) {
	tests := []struct {
		name     string
		totals   []float64
		expected float64
	}{
		{name: "empty log", totals: nil, expected: 0},
		{name: "three payments", totals: []float64{50000, 75000, 100000}, expected: 225000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payments []models.Payment
			for _, total := range tt.totals {
				payments = append(payments, models.Payment{TotalBayar: total})
			}
			if got := TotalPaid(payments); got != tt.expected {
				t.Errorf("TotalPaid() = %v; want %v", got, tt.expected)
			}
		})
	}
}

func TestRicePriceStats(t *testing.T) {
	var prices []models.RicePrice
	for i, harga := range []float64{10000, 15000, 20000, 17000, 13500} {
		prices = append(prices, models.RicePrice{ID: i + 1, Harga: harga})
	}

	avg, min, max, ok := RicePriceStats(prices)
	if !ok {
		t.Fatal("ok = false for non-empty table")
	}
	if avg != 15100 {
		t.Errorf("avg = %v; want 15100", avg)
	}
	if min != 10000 {
		t.Errorf("min = %v; want 10000", min)
	}
	if max != 20000 {
		t.Errorf("max = %v; want 20000", max)
	}
}

func TestRicePriceStatsEmpty(t *testing.T) {
	if _, _, _, ok := RicePriceStats(nil); ok {
		t.Error("ok = true for empty table; callers must be able to guard")
	}
}
