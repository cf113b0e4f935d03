package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"zakat_app_echo/internal/services"
)

// RicePriceHandler handles the Data Harga Beras screen.
type RicePriceHandler struct{}

func NewRicePriceHandler() *RicePriceHandler {
	return &RicePriceHandler{}
}

type ricePriceRow struct {
	ID    int
	Harga string
}

// RicePricesProps is the payload for the rice prices template.
type RicePricesProps struct {
	Title      string
	ActiveNav  string
	Flash      string
	Errors     []string
	HargaInput string
	HasPrices  bool
	AvgPrice   string
	MinPrice   string
	MaxPrice   string
	Prices     []ricePriceRow
}

func ricePriceFlash(c echo.Context) string {
	switch {
	case c.QueryParam("added") != "":
		if harga, err := strconv.ParseFloat(c.QueryParam("added"), 64); err == nil {
			return fmt.Sprintf("Harga beras %s berhasil ditambahkan!", services.FormatRupiah(harga))
		}
	case c.QueryParam("deleted") != "":
		return fmt.Sprintf("Harga dengan ID %s berhasil dihapus!", c.QueryParam("deleted"))
	case c.QueryParam("standard") == "1":
		return "Harga beras standar berhasil ditambahkan!"
	case c.QueryParam("cleared") == "1":
		return "Semua data harga beras berhasil dihapus"
	}
	return ""
}

func (h *RicePriceHandler) pageProps(c echo.Context) RicePricesProps {
	prices := storeFromContext(c).RicePrices()

	props := RicePricesProps{
		Title:     "Data Penerimaan Beras Zakat",
		ActiveNav: "rice-prices",
		Flash:     ricePriceFlash(c),
		HasPrices: len(prices) > 0,
	}

	if avg, min, max, ok := services.RicePriceStats(prices); ok {
		props.AvgPrice = services.FormatRupiah(avg)
		props.MinPrice = services.FormatRupiah(min)
		props.MaxPrice = services.FormatRupiah(max)
	}

	for _, rp := range prices {
		props.Prices = append(props.Prices, ricePriceRow{
			ID:    rp.ID,
			Harga: services.FormatRupiah(rp.Harga),
		})
	}
	return props
}

// ListRicePrices renders the rice price table with its stat cards.
func (h *RicePriceHandler) ListRicePrices(c echo.Context) error {
	return c.Render(http.StatusOK, "rice_prices.html", h.pageProps(c))
}

// StoreRicePrice adds one price point. A non-positive price re-renders
// the screen with the message and the input preserved.
func (h *RicePriceHandler) StoreRicePrice(c echo.Context) error {
	hargaStr := c.FormValue("harga")
	harga, _ := strconv.ParseFloat(hargaStr, 64)

	if errs := ValidateRicePrice(harga); len(errs) > 0 {
		props := h.pageProps(c)
		props.Errors = errs
		props.HargaInput = hargaStr
		return c.Render(http.StatusOK, "rice_prices.html", props)
	}

	storeFromContext(c).AddRicePrice(harga)
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/rice-prices?added=%s", strconv.FormatFloat(harga, 'f', -1, 64)))
}

// DeleteRicePrice removes a single price point.
func (h *RicePriceHandler) DeleteRicePrice(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "ID harga tidak valid")
	}

	storeFromContext(c).DeleteRicePrice(id)
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/rice-prices?deleted=%d", id))
}

// AddStandardPrices seeds the quick-action price set, skipping values
// already present. Running it twice adds nothing the second time.
func (h *RicePriceHandler) AddStandardPrices(c echo.Context) error {
	store := storeFromContext(c)

	// The empty table gets the initialization set, the populated one the
	// quick-action set, matching the two buttons on the screen.
	if len(store.RicePrices()) == 0 {
		store.AddStandardPrices(services.InitialRicePrices)
	} else {
		store.AddStandardPrices(services.StandardRicePrices)
	}
	return c.Redirect(http.StatusSeeOther, "/rice-prices?standard=1")
}

// DeleteAllRicePricesPage asks for confirmation before wiping the table.
func (h *RicePriceHandler) DeleteAllRicePricesPage(c echo.Context) error {
	props := ConfirmDeleteProps{
		Title:      "Hapus Semua Harga Beras",
		ActiveNav:  "rice-prices",
		Prompt:     "Apakah Anda yakin ingin menghapus semua data harga beras?",
		ConfirmURL: "/rice-prices/delete-all",
		CancelURL:  "/rice-prices",
	}
	return c.Render(http.StatusOK, "confirm_delete.html", props)
}

// DeleteAllRicePrices wipes the price table after confirmation.
func (h *RicePriceHandler) DeleteAllRicePrices(c echo.Context) error {
	storeFromContext(c).DeleteAllRicePrices()
	return c.Redirect(http.StatusSeeOther, "/rice-prices?cleared=1")
}
