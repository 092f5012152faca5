package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// VoucherCode is the only voucher accepted at checkout.
const VoucherCode = "OUT31/10"

var (
	highTierThreshold = decimal.NewFromInt(100)
	midTierThreshold  = decimal.NewFromInt(40)
)

// Result is the outcome of a discount computation.
type Result struct {
	Payable decimal.Decimal
	Percent int
}

// IsRecognizedVoucher reports whether code matches the accepted voucher,
// ignoring case. Blank codes never match.
func IsRecognizedVoucher(code string) bool {
	if strings.TrimSpace(code) == "" {
		return false
	}
	return strings.EqualFold(code, VoucherCode)
}

// ComputeDiscount returns the payable amount for base once voucher is applied.
//
// Tiers (recognized voucher only):
//   - base > 100.00  => 30% off
//   - base >= 40.00  => 20% off
//   - otherwise      => 5% off
//
// The payable amount is rounded to cents. Unrecognized or blank vouchers, and
// negative bases, return base unchanged with a zero percent.
func ComputeDiscount(base decimal.Decimal, voucher string) Result {
	if !IsRecognizedVoucher(voucher) || base.IsNegative() {
		return Result{Payable: base, Percent: 0}
	}

	percent := tierPercent(base)
	factor := decimal.New(int64(100-percent), -2)
	return Result{
		Payable: base.Mul(factor).Round(2),
		Percent: percent,
	}
}

func tierPercent(base decimal.Decimal) int {
	switch {
	case base.GreaterThan(highTierThreshold):
		return 30
	case base.GreaterThanOrEqual(midTierThreshold):
		return 20
	default:
		return 5
	}
}
