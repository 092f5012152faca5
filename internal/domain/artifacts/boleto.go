package artifacts

import (
	"fmt"
	"math/rand/v2"

	"geds_checkout/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

const boletoSegmentSpace = 100000

// BoletoBarcode renders the display line of a simulated boleto for base.
//
// Two random 5-digit segments are drawn from intn (math/rand/v2 when nil) and
// the value block carries base in whole cents, zero padded to 10 digits. No
// check digits are computed. Amounts outside pricing.ValidAmount do not fit the
// value block and are refused with pricing.ErrAmountOutOfRange.
func BoletoBarcode(base decimal.Decimal, intn func(int) int) (string, error) {
	if !pricing.ValidAmount(base) {
		return "", fmt.Errorf("boleto value: %w", pricing.ErrAmountOutOfRange)
	}
	if intn == nil {
		intn = rand.IntN
	}
	cents := base.Shift(2).IntPart()
	return fmt.Sprintf("23790.12345 %05d.678901 %05d.123456 1 9999%010d",
		intn(boletoSegmentSpace), intn(boletoSegmentSpace), cents), nil
}
