package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorPageData is the payload for the error page template.
type ErrorPageData struct {
	Title        string
	ActiveNav    string
	ErrorTitle   string
	ErrorMessage string
}

// CustomErrorHandler renders failed requests as an error page with a
// plain-text fallback when the template itself cannot render.
func CustomErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	errorTitle := "Terjadi Kesalahan"
	errorMessage := ""

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code

		if msg, ok := he.Message.(string); ok && msg != "" {
			errorMessage = msg
		}

		switch code {
		case http.StatusNotFound:
			errorTitle = "Halaman Tidak Ditemukan"
			if errorMessage == "" {
				errorMessage = "Halaman yang Anda cari tidak ada."
			}
		case http.StatusBadRequest:
			errorTitle = "Permintaan Tidak Valid"
			if errorMessage == "" {
				errorMessage = "Permintaan tidak dapat diproses."
			}
		default:
			if errorMessage == "" {
				errorMessage = "Terjadi kesalahan. Silakan coba lagi."
			}
		}
	} else {
		errorMessage = "Terjadi kesalahan. Silakan coba lagi."
	}

	c.Logger().Error(err)

	c.Response().Status = code
	data := ErrorPageData{
		Title:        errorTitle,
		ErrorTitle:   errorTitle,
		ErrorMessage: errorMessage,
	}

	if renderErr := c.Render(code, "error.html", data); renderErr != nil {
		c.Logger().Error(fmt.Errorf("failed to render error page: %w", renderErr))
		c.String(code, errorMessage)
	}
}
