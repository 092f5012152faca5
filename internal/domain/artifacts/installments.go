package artifacts

import (
	"fmt"

	"geds_checkout/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

const MaxInstallments = 3

// InstallmentOption is one entry of the card installments selector.
type InstallmentOption struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
	Label  string          `json:"label"`
}

// InstallmentOptions splits payable into 1..MaxInstallments interest-free parcels.
func InstallmentOptions(payable decimal.Decimal) []InstallmentOption {
	out := make([]InstallmentOption, 0, MaxInstallments)
	for n := 1; n <= MaxInstallments; n++ {
		each := payable.Div(decimal.NewFromInt(int64(n))).Round(2)
		out = append(out, InstallmentOption{
			Count:  n,
			Amount: each,
			Label:  fmt.Sprintf("%dx de %s", n, pricing.FormatBRL(each)),
		})
	}
	return out
}
