package services

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount in the Indonesian convention:
// period for thousands, comma for decimals, two decimal places always.
// FormatRupiah(1000000) == "Rp 1.000.000,00".
func FormatRupiah(amount float64) string {
	return rupiahPrinter.Sprintf("Rp %v",
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
