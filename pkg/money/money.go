// Package money fixes the precision rules for monetary and rating values:
// money is 4 fractional digits, ratings are 2, both rounded half-up.
package money

import "github.com/shopspring/decimal"

const (
	moneyPlaces  = 4
	ratingPlaces = 2
)

// Quantize rounds a monetary amount to 4 decimal places half-up.
func Quantize(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// QuantizeRating rounds a rating to 2 decimal places half-up.
func QuantizeRating(d decimal.Decimal) decimal.Decimal {
	return d.Round(ratingPlaces)
}

// Format renders a monetary amount with a fixed 4-digit fraction.
func Format(d decimal.Decimal) string {
	return Quantize(d).StringFixed(moneyPlaces)
}

// FormatRating renders a rating with a fixed 2-digit fraction.
func FormatRating(d decimal.Decimal) string {
	return QuantizeRating(d).StringFixed(ratingPlaces)
}
