package handlers

import (
	"github.com/labstack/echo/v4"

	"zakat_app_echo/internal/middleware"
	"zakat_app_echo/internal/models"
	"zakat_app_echo/internal/services"
)

// storeFromContext pulls the session's record store placed on the
// context by the session middleware.
func storeFromContext(c echo.Context) *services.Store {
	store, _ := c.Get(middleware.StoreContextKey).(*services.Store)
	return store
}

// paymentRow is a payment prepared for display: amounts formatted as
// Rupiah, dates rendered as strings.
type paymentRow struct {
	ID               int
	Nama             string
	JumlahJiwa       int
	JenisZakat       string
	MetodePembayaran string
	TotalBayar       string
	NominalDibayar   string
	Kembalian        string
	TanggalBayar     string
	TanggalInput     string
}

func toPaymentRow(p models.Payment) paymentRow {
	return paymentRow{
		ID:               p.ID,
		Nama:             p.Nama,
		JumlahJiwa:       p.JumlahJiwa,
		JenisZakat:       p.JenisZakat,
		MetodePembayaran: p.MetodePembayaran,
		TotalBayar:       services.FormatRupiah(p.TotalBayar),
		NominalDibayar:   services.FormatRupiah(p.NominalDibayar),
		Kembalian:        services.FormatRupiah(p.Kembalian),
		TanggalBayar:     p.TanggalBayar.Format("2006-01-02"),
		TanggalInput:     p.TanggalInput.Format("2006-01-02 15:04:05"),
	}
}

func toPaymentRows(payments []models.Payment) []paymentRow {
	rows := make([]paymentRow, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, toPaymentRow(p))
	}
	return rows
}

// ConfirmDeleteProps drives the shared confirm/cancel page used by the
// bulk delete flows.
type ConfirmDeleteProps struct {
	Title      string
	ActiveNav  string
	Prompt     string
	ConfirmURL string
	CancelURL  string
}
