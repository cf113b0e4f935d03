package models

import "time"

// Payment represents one recorded zakat transaction
type Payment struct {
	ID               int       `json:"id"`
	Nama             string    `json:"nama"`
	JumlahJiwa       int       `json:"jumlah_jiwa"`
	JenisZakat       string    `json:"jenis_zakat"`
	MetodePembayaran string    `json:"metode_pembayaran"`
	TotalBayar       float64   `json:"total_bayar"`
	NominalDibayar   float64   `json:"nominal_dibayar"`
	Kembalian        float64   `json:"kembalian"`
	TanggalBayar     time.Time `json:"tanggal_bayar"`
	TanggalInput     time.Time `json:"tanggal_input"`
}

// PaymentDraft holds operator input for a new or edited payment.
// Nama must be trimmed before validation; `required` does not strip whitespace.
type PaymentDraft struct {
	Nama             string  `validate:"required"`
	JumlahJiwa       int     `validate:"gte=1"`
	JenisZakat       string
	MetodePembayaran string
	TotalBayar       float64 `validate:"gt=0"`
	NominalDibayar   float64 `validate:"gt=0"`
	TanggalBayar     time.Time
}

// Kembalian calculates the change due for the draft's amounts.
// Change is only meaningful once both amounts are filled in.
func (d PaymentDraft) Kembalian() float64 {
	if d.NominalDibayar <= 0 || d.TotalBayar <= 0 {
		return 0
	}
	if d.NominalDibayar < d.TotalBayar {
		return 0
	}
	return d.NominalDibayar - d.TotalBayar
}
