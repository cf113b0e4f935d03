package services

import "zakat_app_echo/internal/models"

// TotalPaid sums total_bayar over the payment log. Zero when empty.
func TotalPaid(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.TotalBayar
	}
	return total
}

// RicePriceStats reports the mean, lowest and highest price in the
// table. ok is false when the table is empty; callers must guard before
// rendering the stat cards.
func RicePriceStats(prices []models.RicePrice) (avg, min, max float64, ok bool) {
	if len(prices) == 0 {
		return 0, 0, 0, false
	}

	min = prices[0].Harga
	max = prices[0].Harga
	var sum float64
	for _, rp := range prices {
		sum += rp.Harga
		if rp.Harga < min {
			min = rp.Harga
		}
		if rp.Harga > max {
			max = rp.Harga
		}
	}
	return sum / float64(len(prices)), min, max, true
}
