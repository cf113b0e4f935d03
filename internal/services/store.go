package services

import (
	"strings"
	"sync"
	"time"

	"zakat_app_echo/internal/models"
)

// DefaultRicePrices seeds every fresh session store (Rupiah per kg).
var DefaultRicePrices = []float64{10000, 15000, 20000, 17000, 13500}

// StandardRicePrices is the quick-action set offered while the price
// table is non-empty.
var StandardRicePrices = []float64{12000, 15000, 18000, 20000, 25000}

// InitialRicePrices backs the empty-state "Inisialisasi Harga Standar" action.
var InitialRicePrices = []float64{10000, 12000, 15000, 18000, 20000}

// Store holds all records belonging to a single operator session: the
// zakat payment log and the rice price reference table. Records live in
// memory only and disappear with the session.
//
// A browser can fire overlapping requests for the same session, so all
// mutation happens under the lock.
type Store struct {
	mu            sync.Mutex
	payments      []models.Payment
	ricePrices    []models.RicePrice
	nextPaymentID int
}

// NewStore creates a store seeded with the default rice prices.
func NewStore() *Store {
	s := &Store{nextPaymentID: 1}
	for _, harga := range DefaultRicePrices {
		s.addRicePriceLocked(harga)
	}
	return s
}

// AddPayment commits a validated draft. Ids come from a monotonic
// counter so a deleted payment's id is never reassigned.
func (s *Store) AddPayment(d models.PaymentDraft) models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Payment{
		ID:               s.nextPaymentID,
		Nama:             strings.TrimSpace(d.Nama),
		JumlahJiwa:       d.JumlahJiwa,
		JenisZakat:       d.JenisZakat,
		MetodePembayaran: d.MetodePembayaran,
		TotalBayar:       d.TotalBayar,
		NominalDibayar:   d.NominalDibayar,
		Kembalian:        d.Kembalian(),
		TanggalBayar:     d.TanggalBayar,
		TanggalInput:     time.Now(),
	}
	s.nextPaymentID++
	s.payments = append(s.payments, p)
	return p
}

// UpdatePayment replaces the payment's fields wholesale, preserving the
// original id and input timestamp. The second return value reports
// whether the id was found.
func (s *Store) UpdatePayment(id int, d models.PaymentDraft) (models.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID != id {
			continue
		}
		p := models.Payment{
			ID:               id,
			Nama:             strings.TrimSpace(d.Nama),
			JumlahJiwa:       d.JumlahJiwa,
			JenisZakat:       d.JenisZakat,
			MetodePembayaran: d.MetodePembayaran,
			TotalBayar:       d.TotalBayar,
			NominalDibayar:   d.NominalDibayar,
			Kembalian:        d.Kembalian(),
			TanggalBayar:     d.TanggalBayar,
			TanggalInput:     s.payments[i].TanggalInput,
		}
		s.payments[i] = p
		return p, true
	}
	return models.Payment{}, false
}

// DeletePayment removes the payment with the given id. Deleting an
// unknown id is a no-op.
func (s *Store) DeletePayment(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID == id {
			s.payments = append(s.payments[:i], s.payments[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteAllPayments wipes the payment log.
func (s *Store) DeleteAllPayments() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = nil
}

// Payments returns the payment log in insertion order.
func (s *Store) Payments() []models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Payment(nil), s.payments...)
}

// PaymentByID looks up a single payment, for the edit screen.
func (s *Store) PaymentByID(id int) (models.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.payments {
		if p.ID == id {
			return p, true
		}
	}
	return models.Payment{}, false
}

// RecentPayments returns up to n of the most recently added payments,
// oldest first.
func (s *Store) RecentPayments(n int) []models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n > len(s.payments) {
		n = len(s.payments)
	}
	return append([]models.Payment(nil), s.payments[len(s.payments)-n:]...)
}

// PaymentCount returns the number of recorded payments.
func (s *Store) PaymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}

// AddRicePrice appends a price point, assigning id = max existing + 1.
func (s *Store) AddRicePrice(harga float64) models.RicePrice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addRicePriceLocked(harga)
}

func (s *Store) addRicePriceLocked(harga float64) models.RicePrice {
	maxID := 0
	for _, rp := range s.ricePrices {
		if rp.ID > maxID {
			maxID = rp.ID
		}
	}
	rp := models.RicePrice{ID: maxID + 1, Harga: harga}
	s.ricePrices = append(s.ricePrices, rp)
	return rp
}

// AddStandardPrices inserts the given prices, skipping any value already
// present in the table. It returns how many were actually added, so the
// action is idempotent.
func (s *Store) AddStandardPrices(prices []float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, harga := range prices {
		exists := false
		for _, rp := range s.ricePrices {
			if rp.Harga == harga {
				exists = true
				break
			}
		}
		if !exists {
			s.addRicePriceLocked(harga)
			added++
		}
	}
	return added
}

// DeleteRicePrice removes the price with the given id. Unknown ids are
// a no-op.
func (s *Store) DeleteRicePrice(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.ricePrices {
		if s.ricePrices[i].ID == id {
			s.ricePrices = append(s.ricePrices[:i], s.ricePrices[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteAllRicePrices wipes the price table.
func (s *Store) DeleteAllRicePrices() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ricePrices = nil
}

// RicePrices returns the price table in insertion order.
func (s *Store) RicePrices() []models.RicePrice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.RicePrice(nil), s.ricePrices...)
}
