package models

// Placeholder options rendered as the first entry of each select.
// Submitting them counts as "nothing selected".
const (
	ZakatTypePlaceholder     = "Pilih Jenis Zakat"
	PaymentMethodPlaceholder = "Pilih Metode Pembayaran"
)

var zakatTypes = []string{
	"Zakat Fitrah",
	"Zakat Mal",
	"Zakat Profesi",
	"Zakat Emas",
	"Zakat Perak",
	"Zakat Perdagangan",
}

var paymentMethods = []string{
	"Tunai",
	"Transfer Bank",
	"E-Wallet",
	"Kartu Kredit",
}

// ZakatTypes returns the fixed zakat type enumeration in selector order.
func ZakatTypes() []string {
	return append([]string(nil), zakatTypes...)
}

// PaymentMethods returns the fixed payment method enumeration in selector order.
func PaymentMethods() []string {
	return append([]string(nil), paymentMethods...)
}

// IsZakatType reports whether s is a member of the zakat type enumeration.
func IsZakatType(s string) bool {
	for _, t := range zakatTypes {
		if t == s {
			return true
		}
	}
	return false
}

// IsPaymentMethod reports whether s is a member of the payment method enumeration.
func IsPaymentMethod(s string) bool {
	for _, m := range paymentMethods {
		if m == s {
			return true
		}
	}
	return false
}
