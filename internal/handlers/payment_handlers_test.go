package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"zakat_app_echo/internal/middleware"
	"zakat_app_echo/internal/services"
)

// stubRenderer writes only the template name; handler tests assert on
// status codes and store effects, not markup.
type stubRenderer struct{}

func (stubRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	_, err := io.WriteString(w, name)
	return err
}

func setupEcho() (*echo.Echo, *services.Store) {
	e := echo.New()
	e.Renderer = stubRenderer{}

	store := services.NewStore()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.StoreContextKey, store)
			return next(c)
		}
	})

	h := NewPaymentHandler()
	e.GET("/payments/new", h.NewPaymentPage)
	e.POST("/payments", h.StorePayment)
	e.GET("/payments", h.ListPayments)
	e.GET("/payments/export", h.ExportPayments)
	e.POST("/payments/delete-all", h.DeleteAllPayments)
	e.GET("/payments/:id/edit", h.EditPaymentPage)
	e.POST("/payments/:id/update", h.UpdatePayment)
	e.POST("/payments/:id/delete", h.DeletePayment)
	return e, store
}

func postForm(e *echo.Echo, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"nama":              {"Ahmad"},
		"jumlah_jiwa":       {"4"},
		"jenis_zakat":       {"Zakat Fitrah"},
		"metode_pembayaran": {"Tunai"},
		"total_bayar":       {"150000"},
		"nominal_dibayar":   {"200000"},
		"tanggal_bayar":     {"2025-04-01"},
	}
}

func TestStorePaymentSuccess(t *testing.T) {
	e, store := setupEcho()

	rec := postForm(e, "/payments", validForm())

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/payments/new?saved=1" {
		t.Errorf("redirect = %q; want /payments/new?saved=1", loc)
	}

	payments := store.Payments()
	if len(payments) != 1 {
		t.Fatalf("stored %d payments; want 1", len(payments))
	}
	if payments[0].Kembalian != 50000 {
		t.Errorf("Kembalian = %v; want 50000", payments[0].Kembalian)
	}
	if payments[0].TanggalBayar.Format("2006-01-02") != "2025-04-01" {
		t.Errorf("TanggalBayar = %v", payments[0].TanggalBayar)
	}
}

func TestStorePaymentRejectedKeepsStoreUnchanged(t *testing.T) {
	e, store := setupEcho()

	form := validForm()
	form.Set("total_bayar", "150000")
	form.Set("nominal_dibayar", "100000")

	// Submitting the same invalid draft twice never creates a record
	for i := 0; i < 2; i++ {
		rec := postForm(e, "/payments", form)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want %d (form re-render)", rec.Code, http.StatusOK)
		}
		if rec.Body.String() != "payment_form.html" {
			t.Errorf("rendered %q; want payment_form.html", rec.Body.String())
		}
	}

	if got := store.PaymentCount(); got != 0 {
		t.Errorf("PaymentCount() = %d; want 0", got)
	}
}

func TestUpdatePaymentRedirectsToHistory(t *testing.T) {
	e, store := setupEcho()
	p := store.AddPayment(validDraft())

	form := validForm()
	form.Set("nama", "Ahmad bin Umar")
	rec := postForm(e, "/payments/1/update", form)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/payments?updated=1" {
		t.Errorf("redirect = %q", loc)
	}

	updated, ok := store.PaymentByID(p.ID)
	if !ok || updated.Nama != "Ahmad bin Umar" {
		t.Errorf("payment not updated: %+v", updated)
	}
}

func TestUpdatePaymentUnknownID(t *testing.T) {
	e, _ := setupEcho()

	rec := postForm(e, "/payments/42/update", validForm())

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/payments?notfound=42" {
		t.Errorf("redirect = %q; want /payments?notfound=42", loc)
	}
}

func TestDeletePayment(t *testing.T) {
	e, store := setupEcho()
	store.AddPayment(validDraft())

	rec := postForm(e, "/payments/1/delete", url.Values{})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusSeeOther)
	}
	if got := store.PaymentCount(); got != 0 {
		t.Errorf("PaymentCount() = %d; want 0", got)
	}
}

func TestEditPageUnknownIDReturns404(t *testing.T) {
	e, _ := setupEcho()

	req := httptest.NewRequest(http.MethodGet, "/payments/99/edit", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusNotFound)
	}
}

func TestExportEmptyRedirectsWithNotice(t *testing.T) {
	e, _ := setupEcho()

	req := httptest.NewRequest(http.MethodGet, "/payments/export", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/payments?export=empty" {
		t.Errorf("redirect = %q", loc)
	}
}

func TestExportStreamsSpreadsheet(t *testing.T) {
	e, store := setupEcho()
	store.AddPayment(validDraft())

	req := httptest.NewRequest(http.MethodGet, "/payments/export", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != services.ExportContentType {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "pembayaran_zakat_lebaran_") {
		t.Errorf("content disposition = %q", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty body")
	}
}

func TestDeleteAllPayments(t *testing.T) {
	e, store := setupEcho()
	store.AddPayment(validDraft())
	store.AddPayment(validDraft())

	rec := postForm(e, "/payments/delete-all", url.Values{})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusSeeOther)
	}
	if got := store.PaymentCount(); got != 0 {
		t.Errorf("PaymentCount() = %d; want 0", got)
	}
}
