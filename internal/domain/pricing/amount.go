package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MaxAmountIntegerDigits bounds checkout amounts to R$ 99.999.999,99, the
// largest value the 10-digit boleto value block can carry.
const MaxAmountIntegerDigits = 8

var ErrAmountOutOfRange = errors.New("amount out of range")

// MaxAmount is the largest amount accepted at checkout.
var MaxAmount = decimal.RequireFromString("99999999.99")

// ValidAmount reports whether v is a non-negative amount in whole cents not
// above MaxAmount. Only the coefficient length and exponent are inspected, so
// inputs like "1e999999999" are rejected without being expanded.
func ValidAmount(v decimal.Decimal) bool {
	if v.IsNegative() || v.Exponent() < -2 {
		return false
	}
	return v.NumDigits()+int(v.Exponent()) <= MaxAmountIntegerDigits
}
