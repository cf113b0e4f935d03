package services

import (
	"bytes"
	"time"

	"github.com/xuri/excelize/v2"

	"zakat_app_echo/internal/models"
)

// ExportSheetName is the single worksheet in the exported workbook.
const ExportSheetName = "Pembayaran Zakat"

// ExportContentType identifies the export as an Office Open XML spreadsheet.
const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeaders = []string{
	"ID",
	"Nama",
	"Jumlah Jiwa",
	"Jenis Zakat",
	"Metode Pembayaran",
	"Total Bayar",
	"Nominal Dibayar",
	"Kembalian",
	"Tanggal Bayar",
	"Tanggal Input",
}

// ExportPayments encodes the full payment log as an xlsx workbook, one
// row per payment under localized headers. A nil result means there is
// nothing to export; callers should not treat it as an error.
func ExportPayments(payments []models.Payment) ([]byte, error) {
	if len(payments) == 0 {
		return nil, nil
	}

	f := excelize.NewFile()
	defer f.Close()

	// excelize starts every workbook with "Sheet1"; rename it in place
	if err := f.SetSheetName(f.GetSheetName(0), ExportSheetName); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(ExportSheetName, "A1", &exportHeaders); err != nil {
		return nil, err
	}

	for i, p := range payments {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			p.ID,
			p.Nama,
			p.JumlahJiwa,
			p.JenisZakat,
			p.MetodePembayaran,
			p.TotalBayar,
			p.NominalDibayar,
			p.Kembalian,
			p.TanggalBayar.Format("2006-01-02"),
			p.TanggalInput.Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(ExportSheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFileName builds the download name, embedding the generation time.
func ExportFileName(now time.Time) string {
	return "pembayaran_zakat_lebaran_" + now.Format("20060102_150405") + ".xlsx"
}
