package money

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit amount (e.g. dollars) to minor units
// (cents), rounding half away from zero: 12.345 -> 1235.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(hundred).Round(0).IntPart()
}

// FormatMinorUnits renders a minor-unit amount as a fixed two-decimal
// major-unit string: 1235 -> "12.35".
func FormatMinorUnits(amount int64) string {
	return decimal.NewFromInt(amount).Div(hundred).StringFixed(2)
}
