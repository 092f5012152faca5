package response

import (
	"geds_checkout/internal/domain/artifacts"
	"geds_checkout/internal/domain/entities"
	"geds_checkout/internal/domain/pricing"
	"geds_checkout/internal/usecase"
	"time"

	"github.com/shopspring/decimal"
)

// Money is an amount rendered both as a plain decimal and as BRL text.
type Money struct {
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
}

func NewMoney(v decimal.Decimal) Money {
	return Money{Value: v.StringFixed(2), Formatted: pricing.FormatBRL(v)}
}

type CardFormResponse struct {
	LastFour     string `json:"last_four,omitempty"`
	HolderName   string `json:"holder_name,omitempty"`
	Expiry       string `json:"expiry,omitempty"`
	Installments int    `json:"installments,omitempty"`
}

type InstallmentOptionResponse struct {
	Count  int    `json:"count"`
	Amount Money  `json:"amount"`
	Label  string `json:"label"`
}

type VoucherFeedbackResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

type CheckoutSessionResponse struct {
	ID                 string                      `json:"id"`
	Plan               string                      `json:"plan"`
	BasePrice          Money                       `json:"base_price"`
	PayableAmount      Money                       `json:"payable_amount"`
	DiscountApplied    bool                        `json:"discount_applied"`
	DiscountPercent    int                         `json:"discount_percent"`
	DiscountAmount     Money                       `json:"discount_amount"`
	SelectedMethod     string                      `json:"selected_method"`
	State              string                      `json:"state"`
	Finalized          bool                        `json:"finalized"`
	Confirmation       string                      `json:"confirmation,omitempty"`
	VoucherInput       string                      `json:"voucher_input"`
	VoucherFeedback    *VoucherFeedbackResponse    `json:"voucher_feedback,omitempty"`
	Card               CardFormResponse            `json:"card"`
	InstallmentOptions []InstallmentOptionResponse `json:"installment_options"`
	TermsAccepted      bool                        `json:"terms_accepted"`
	BoletoBarcode      string                      `json:"boleto_barcode"`
	ReceiptAvailable   bool                        `json:"receipt_available"`
	LedgerRecordID     int64                       `json:"ledger_record_id,omitempty"`
	RedirectTo         string                      `json:"redirect_to,omitempty"`
	RedirectAt         *time.Time                  `json:"redirect_at,omitempty"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

// FromCheckoutSession maps a session to its client view. The card number and
// CVV never leave the server; only the last four digits are echoed.
func FromCheckoutSession(s entities.CheckoutSession) CheckoutSessionResponse {
	res := CheckoutSessionResponse{
		ID:               s.ID,
		Plan:             s.PlanName,
		BasePrice:        NewMoney(s.BasePrice),
		PayableAmount:    NewMoney(s.PayableAmount),
		DiscountApplied:  s.DiscountApplied,
		DiscountPercent:  s.DiscountPercent,
		DiscountAmount:   NewMoney(s.DiscountAmount()),
		SelectedMethod:   string(s.SelectedMethod),
		State:            string(s.State),
		Finalized:        s.IsFinalized(),
		Confirmation:     s.Confirmation(),
		VoucherInput:     s.VoucherInput,
		TermsAccepted:    s.TermsAccepted,
		BoletoBarcode:    s.BoletoBarcode,
		ReceiptAvailable: s.Receipt != nil,
		LedgerRecordID:   s.LedgerRecordID,
		RedirectTo:       s.RedirectTo,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
		Card: CardFormResponse{
			HolderName:   s.Card.HolderName,
			Expiry:       s.Card.Expiry,
			Installments: s.Card.Installments,
		},
	}
	if s.Card.Number != "" {
		res.Card.LastFour = s.Card.LastFour()
	}
	if s.VoucherFeedback != nil {
		res.VoucherFeedback = &VoucherFeedbackResponse{Message: s.VoucherFeedback.Message, Kind: string(s.VoucherFeedback.Kind)}
	}
	if !s.RedirectAt.IsZero() {
		at := s.RedirectAt
		res.RedirectAt = &at
	}
	for _, o := range artifacts.InstallmentOptions(s.PayableAmount) {
		res.InstallmentOptions = append(res.InstallmentOptions, InstallmentOptionResponse{
			Count:  o.Count,
			Amount: NewMoney(o.Amount),
			Label:  o.Label,
		})
	}
	return res
}

type VoucherResponse struct {
	Feedback VoucherFeedbackResponse `json:"feedback"`
	Session  CheckoutSessionResponse `json:"session"`
}

func FromVoucher(s entities.CheckoutSession, fb entities.VoucherFeedback) VoucherResponse {
	return VoucherResponse{
		Feedback: VoucherFeedbackResponse{Message: fb.Message, Kind: string(fb.Kind)},
		Session:  FromCheckoutSession(s),
	}
}

type PixResponse struct {
	Payload   string `json:"payload"`
	QRCodeURL string `json:"qr_code_url"`
	Amount    Money  `json:"amount"`
	Copied    bool   `json:"copied"`
}

func FromPixCode(p usecase.PixCode) PixResponse {
	return PixResponse{
		Payload:   p.Payload,
		QRCodeURL: p.QRCodeURL,
		Amount:    NewMoney(p.Amount),
		Copied:    p.Copied,
	}
}
