package handlers

import (
	"github.com/go-playground/validator/v10"

	"zakat_app_echo/internal/models"
)

var validate = validator.New()

// Validation messages, in the order the form presents its fields.
const (
	msgNamaRequired     = "Nama harus diisi"
	msgJenisZakat       = "Pilih jenis zakat"
	msgMetodePembayaran = "Pilih metode pembayaran"
	msgTotalBayar       = "Total bayar harus lebih dari 0"
	msgNominalDibayar   = "Nominal dibayar harus lebih dari 0"
	msgNominalKurang    = "Nominal dibayar tidak boleh kurang dari total bayar"
	msgHargaBeras       = "Harga harus lebih dari 0"
)

var paymentMessageOrder = []string{
	msgNamaRequired,
	msgJenisZakat,
	msgMetodePembayaran,
	msgTotalBayar,
	msgNominalDibayar,
	msgNominalKurang,
}

// ValidatePaymentDraft checks every rule and reports the full list of
// violations; it never stops at the first failure. An empty result means
// the draft can be committed.
func ValidatePaymentDraft(d models.PaymentDraft) []string {
	failed := map[string]bool{}

	if err := validate.Struct(d); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				switch {
				case fe.StructField() == "Nama":
					failed[msgNamaRequired] = true
				case fe.StructField() == "TotalBayar":
					failed[msgTotalBayar] = true
				case fe.StructField() == "NominalDibayar":
					failed[msgNominalDibayar] = true
				}
			}
		}
	}

	// Enum membership is checked by hand: the values contain spaces and
	// the placeholders must be rejected along with anything unknown.
	if !models.IsZakatType(d.JenisZakat) {
		failed[msgJenisZakat] = true
	}
	if !models.IsPaymentMethod(d.MetodePembayaran) {
		failed[msgMetodePembayaran] = true
	}

	// Checked independently of gt=0 so a zero tender against a positive
	// total reports both violations.
	if d.NominalDibayar < d.TotalBayar {
		failed[msgNominalKurang] = true
	}

	var errs []string
	for _, msg := range paymentMessageOrder {
		if failed[msg] {
			errs = append(errs, msg)
		}
	}
	return errs
}

// ValidateRicePrice checks the single rice price rule.
func ValidateRicePrice(harga float64) []string {
	if harga <= 0 {
		return []string{msgHargaBeras}
	}
	return nil
}
