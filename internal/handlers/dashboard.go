package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"zakat_app_echo/internal/services"
)

// DashboardHandler handles the landing screen.
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// DashboardProps is the payload for the dashboard template.
type DashboardProps struct {
	Title              string
	ActiveNav          string
	TotalPembayaran    string
	JumlahTransaksi    int
	TerakhirDiperbarui string
	RecentPayments     []paymentRow
	HasPayments        bool
}

// Dashboard renders the stat cards and the five most recent payments.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	store := storeFromContext(c)
	payments := store.Payments()

	props := DashboardProps{
		Title:              "Dashboard Pembayaran Zakat Lebaran",
		ActiveNav:          "dashboard",
		TotalPembayaran:    services.FormatRupiah(services.TotalPaid(payments)),
		JumlahTransaksi:    len(payments),
		TerakhirDiperbarui: time.Now().UTC().Format(http.TimeFormat),
		RecentPayments:     toPaymentRows(store.RecentPayments(5)),
		HasPayments:        len(payments) > 0,
	}

	return c.Render(http.StatusOK, "dashboard.html", props)
}
