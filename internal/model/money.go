package model

import (
	"fmt"
	"math"
)

// DefaultCurrency is the currency used across the catalogue and all pricing.
const DefaultCurrency = "SAR"

// minorPerMajor is the number of minor units (halalas) in one major unit.
const minorPerMajor = 100

// Amount is a tagged currency amount stored in integer minor units.
// Prices are never carried as formatted strings; parsing happens once at
// the boundary, if at all.
type Amount struct {
	Units    int64  `json:"units" db:"units"`
	Currency string `json:"currency" db:"currency"`
}

// NewAmount creates an amount from whole major currency units.
func NewAmount(major int64, currency string) Amount {
	return Amount{Units: major * minorPerMajor, Currency: currency}
}

// NewAmountFromMinor creates an amount from minor units.
func NewAmountFromMinor(units int64, currency string) Amount {
	return Amount{Units: units, Currency: currency}
}

// RoundToAmount rounds a major-unit value to the nearest whole currency
// unit (round half away from zero, not truncation).
func RoundToAmount(major float64, currency string) Amount {
	return NewAmount(int64(math.Round(major)), currency)
}

// Major returns the amount in major units, discarding any minor remainder.
func (a Amount) Major() int64 {
	return a.Units / minorPerMajor
}

// MajorFloat returns the amount in major units as a float.
func (a Amount) MajorFloat() float64 {
	return float64(a.Units) / minorPerMajor
}

// Mul scales the amount by an integer quantity.
func (a Amount) Mul(quantity int) Amount {
	return Amount{Units: a.Units * int64(quantity), Currency: a.Currency}
}

// Add sums two amounts. Amounts entering the system share a single
// currency; an empty-currency zero value adopts the other side's currency.
func (a Amount) Add(b Amount) Amount {
	currency := a.Currency
	if currency == "" {
		currency = b.Currency
	}
	return Amount{Units: a.Units + b.Units, Currency: currency}
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.Units < 0
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.Units == 0
}

// Equal reports whether two amounts carry the same value and currency.
func (a Amount) Equal(b Amount) bool {
	return a.Units == b.Units && a.Currency == b.Currency
}

// String renders the amount for display, e.g. "349 SAR" or "348.50 SAR".
func (a Amount) String() string {
	if a.Units%minorPerMajor == 0 {
		return fmt.Sprintf("%d %s", a.Major(), a.Currency)
	}
	return fmt.Sprintf("%.2f %s", a.MajorFloat(), a.Currency)
}
