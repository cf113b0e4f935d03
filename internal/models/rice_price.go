package models

// RicePrice is one reference price point for in-kind Zakat Fitrah,
// in Rupiah per kilogram.
type RicePrice struct {
	ID    int     `json:"id"`
	Harga float64 `json:"harga"`
}
