package request

import (
	"geds_checkout/internal/usecase"
)

// SelectMethodRequest switches the active payment tab.
type SelectMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

// FormPatchRequest carries the editable checkout form. Omitted fields are kept.
type FormPatchRequest struct {
	VoucherCode  *string `json:"voucher_code"`
	CardNumber   *string `json:"card_number"`
	CardName     *string `json:"card_name"`
	CardExpiry   *string `json:"card_expiry"`
	CardCVV      *string `json:"card_cvv"`
	Installments *int    `json:"installments"`
	Terms        *bool   `json:"terms"`
}

func (r FormPatchRequest) ToPatch() usecase.FormPatch {
	return usecase.FormPatch{
		VoucherInput:  r.VoucherCode,
		CardNumber:    r.CardNumber,
		CardHolder:    r.CardName,
		CardExpiry:    r.CardExpiry,
		CardCVV:       r.CardCVV,
		Installments:  r.Installments,
		TermsAccepted: r.Terms,
	}
}

// IsEmpty reports whether the patch would change nothing.
func (r FormPatchRequest) IsEmpty() bool {
	return r.VoucherCode == nil && r.CardNumber == nil && r.CardName == nil &&
		r.CardExpiry == nil && r.CardCVV == nil && r.Installments == nil && r.Terms == nil
}

// ApplyVoucherRequest optionally replaces the voucher text before applying it.
type ApplyVoucherRequest struct {
	Code *string `json:"code"`
}
