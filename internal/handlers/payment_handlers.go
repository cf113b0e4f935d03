package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"zakat_app_echo/internal/models"
	"zakat_app_echo/internal/services"
)

// PaymentHandler handles the Tambah Pembayaran and Riwayat Pembayaran screens.
type PaymentHandler struct{}

func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

// paymentFormValues echoes the operator's raw input back into the form,
// so a rejected submission loses nothing.
type paymentFormValues struct {
	Nama             string
	JumlahJiwa       string
	JenisZakat       string
	MetodePembayaran string
	TotalBayar       string
	NominalDibayar   string
	TanggalBayar     string
}

// PaymentFormProps is the payload for the payment form template, shared
// by the add and edit flows.
type PaymentFormProps struct {
	Title             string
	ActiveNav         string
	IsEdit            bool
	EditID            int
	Flash             string
	Errors            []string
	Values            paymentFormValues
	ZakatTypes        []string
	PaymentMethods    []string
	TypePlaceholder   string
	MethodPlaceholder string
}

// HistoryProps is the payload for the payment history template.
type HistoryProps struct {
	Title       string
	ActiveNav   string
	Flash       string
	Count       int
	Payments    []paymentRow
	HasPayments bool
}

func defaultFormValues() paymentFormValues {
	return paymentFormValues{
		JumlahJiwa:       "1",
		JenisZakat:       models.ZakatTypePlaceholder,
		MetodePembayaran: models.PaymentMethodPlaceholder,
		TanggalBayar:     time.Now().Format("2006-01-02"),
	}
}

func formValuesFromRequest(c echo.Context) paymentFormValues {
	return paymentFormValues{
		Nama:             c.FormValue("nama"),
		JumlahJiwa:       c.FormValue("jumlah_jiwa"),
		JenisZakat:       c.FormValue("jenis_zakat"),
		MetodePembayaran: c.FormValue("metode_pembayaran"),
		TotalBayar:       c.FormValue("total_bayar"),
		NominalDibayar:   c.FormValue("nominal_dibayar"),
		TanggalBayar:     c.FormValue("tanggal_bayar"),
	}
}

func formValuesFromPayment(p models.Payment) paymentFormValues {
	return paymentFormValues{
		Nama:             p.Nama,
		JumlahJiwa:       strconv.Itoa(p.JumlahJiwa),
		JenisZakat:       p.JenisZakat,
		MetodePembayaran: p.MetodePembayaran,
		TotalBayar:       strconv.FormatFloat(p.TotalBayar, 'f', 2, 64),
		NominalDibayar:   strconv.FormatFloat(p.NominalDibayar, 'f', 2, 64),
		TanggalBayar:     p.TanggalBayar.Format("2006-01-02"),
	}
}

// bindPaymentDraft parses the submitted form into a draft. Parse
// failures fall back to zero values so validation reports them; the
// family size defaults to 1 like the original form widget.
func bindPaymentDraft(c echo.Context) models.PaymentDraft {
	jumlahJiwa, err := strconv.Atoi(c.FormValue("jumlah_jiwa"))
	if err != nil || jumlahJiwa < 1 {
		jumlahJiwa = 1
	}

	totalBayar, _ := strconv.ParseFloat(c.FormValue("total_bayar"), 64)
	nominalDibayar, _ := strconv.ParseFloat(c.FormValue("nominal_dibayar"), 64)

	tanggalBayar, err := timeFromForm(c.FormValue("tanggal_bayar"))
	if err != nil {
		tanggalBayar = time.Now()
	}

	return models.PaymentDraft{
		Nama:             strings.TrimSpace(c.FormValue("nama")),
		JumlahJiwa:       jumlahJiwa,
		JenisZakat:       c.FormValue("jenis_zakat"),
		MetodePembayaran: c.FormValue("metode_pembayaran"),
		TotalBayar:       totalBayar,
		NominalDibayar:   nominalDibayar,
		TanggalBayar:     tanggalBayar,
	}
}

// timeFromForm parses a date from an HTML input type="date".
func timeFromForm(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func (h *PaymentHandler) formProps() PaymentFormProps {
	return PaymentFormProps{
		Title:             "Melakukan Pembayaran Zakat",
		ActiveNav:         "payments-new",
		Values:            defaultFormValues(),
		ZakatTypes:        models.ZakatTypes(),
		PaymentMethods:    models.PaymentMethods(),
		TypePlaceholder:   models.ZakatTypePlaceholder,
		MethodPlaceholder: models.PaymentMethodPlaceholder,
	}
}

// NewPaymentPage renders the Tambah Pembayaran form.
func (h *PaymentHandler) NewPaymentPage(c echo.Context) error {
	props := h.formProps()
	if c.QueryParam("saved") == "1" {
		props.Flash = "Alhamdulillah! Pembayaran zakat berhasil disimpan. Barakallahu fiikum!"
	}
	return c.Render(http.StatusOK, "payment_form.html", props)
}

// StorePayment validates and commits a new payment. A rejected draft
// re-renders the form with every violation and the input intact.
func (h *PaymentHandler) StorePayment(c echo.Context) error {
	draft := bindPaymentDraft(c)

	if errs := ValidatePaymentDraft(draft); len(errs) > 0 {
		props := h.formProps()
		props.Errors = errs
		props.Values = formValuesFromRequest(c)
		return c.Render(http.StatusOK, "payment_form.html", props)
	}

	storeFromContext(c).AddPayment(draft)
	return c.Redirect(http.StatusSeeOther, "/payments/new?saved=1")
}

func historyFlash(c echo.Context) string {
	switch {
	case c.QueryParam("updated") == "1":
		return "Pembayaran berhasil diperbarui!"
	case c.QueryParam("deleted") != "":
		return fmt.Sprintf("Pembayaran ID %s berhasil dihapus", c.QueryParam("deleted"))
	case c.QueryParam("cleared") == "1":
		return "Semua data pembayaran berhasil dihapus"
	case c.QueryParam("export") == "empty":
		return "Tidak ada data untuk diekspor"
	case c.QueryParam("notfound") != "":
		return "Pembayaran tidak ditemukan"
	}
	return ""
}

// ListPayments renders the Riwayat Pembayaran screen.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments := storeFromContext(c).Payments()

	props := HistoryProps{
		Title:       "Riwayat Pembayaran Zakat",
		ActiveNav:   "payments",
		Flash:       historyFlash(c),
		Count:       len(payments),
		Payments:    toPaymentRows(payments),
		HasPayments: len(payments) > 0,
	}
	return c.Render(http.StatusOK, "payments_list.html", props)
}

// EditPaymentPage renders the edit form pre-populated from the record.
func (h *PaymentHandler) EditPaymentPage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "ID pembayaran tidak valid")
	}

	payment, ok := storeFromContext(c).PaymentByID(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Pembayaran tidak ditemukan")
	}

	props := h.formProps()
	props.Title = fmt.Sprintf("Edit Pembayaran ID: %d", id)
	props.ActiveNav = "payments"
	props.IsEdit = true
	props.EditID = id
	props.Values = formValuesFromPayment(payment)
	return c.Render(http.StatusOK, "payment_form.html", props)
}

// UpdatePayment re-validates the edited draft and commits it, keeping
// the original id and input timestamp.
func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "ID pembayaran tidak valid")
	}

	draft := bindPaymentDraft(c)

	if errs := ValidatePaymentDraft(draft); len(errs) > 0 {
		props := h.formProps()
		props.Title = fmt.Sprintf("Edit Pembayaran ID: %d", id)
		props.ActiveNav = "payments"
		props.IsEdit = true
		props.EditID = id
		props.Errors = errs
		props.Values = formValuesFromRequest(c)
		return c.Render(http.StatusOK, "payment_form.html", props)
	}

	if _, ok := storeFromContext(c).UpdatePayment(id, draft); !ok {
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/payments?notfound=%d", id))
	}
	return c.Redirect(http.StatusSeeOther, "/payments?updated=1")
}

// DeletePayment removes a single payment and returns to the history.
func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "ID pembayaran tidak valid")
	}

	storeFromContext(c).DeletePayment(id)
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/payments?deleted=%d", id))
}

// DeleteAllPaymentsPage asks for confirmation before wiping the log.
func (h *PaymentHandler) DeleteAllPaymentsPage(c echo.Context) error {
	props := ConfirmDeleteProps{
		Title:      "Hapus Semua Pembayaran",
		ActiveNav:  "payments",
		Prompt:     "Apakah Anda yakin ingin menghapus semua data pembayaran?",
		ConfirmURL: "/payments/delete-all",
		CancelURL:  "/payments",
	}
	return c.Render(http.StatusOK, "confirm_delete.html", props)
}

// DeleteAllPayments wipes the payment log after confirmation.
func (h *PaymentHandler) DeleteAllPayments(c echo.Context) error {
	storeFromContext(c).DeleteAllPayments()
	return c.Redirect(http.StatusSeeOther, "/payments?cleared=1")
}

// ExportPayments streams the payment log as an xlsx download. An empty
// log redirects back with a notice instead of producing a file.
func (h *PaymentHandler) ExportPayments(c echo.Context) error {
	data, err := services.ExportPayments(storeFromContext(c).Payments())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Gagal membuat file export")
	}
	if data == nil {
		return c.Redirect(http.StatusSeeOther, "/payments?export=empty")
	}

	fileName := services.ExportFileName(time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Blob(http.StatusOK, services.ExportContentType, data)
}
