package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"geds_checkout/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var ErrCheckoutFinalized = errors.New("checkout session already finalized")

// PaymentMethod is the payment rail chosen on the checkout page.
type PaymentMethod string

const (
	PaymentMethodPix    PaymentMethod = "pix"
	PaymentMethodBoleto PaymentMethod = "boleto"
	PaymentMethodCard   PaymentMethod = "card"
)

// ParsePaymentMethod accepts the canonical names plus the Portuguese "cartao"
// used by older clients.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pix":
		return PaymentMethodPix, true
	case "boleto":
		return PaymentMethodBoleto, true
	case "card", "cartao", "cartão":
		return PaymentMethodCard, true
	}
	return "", false
}

// StorageName is the value written to the record store's metodo_pagamento column.
func (m PaymentMethod) StorageName() string {
	if m == PaymentMethodCard {
		return "cartao"
	}
	return string(m)
}

// CheckoutState tracks the session lifecycle: editing -> submitting -> finalized.
// finalized is terminal.
type CheckoutState string

const (
	CheckoutStateEditing    CheckoutState = "editing"
	CheckoutStateSubmitting CheckoutState = "submitting"
	CheckoutStateFinalized  CheckoutState = "finalized"
)

type FeedbackKind string

const (
	FeedbackSuccess FeedbackKind = "success"
	FeedbackError   FeedbackKind = "error"
)

const (
	VoucherMessageEmpty   = "Insira um código"
	VoucherMessageInvalid = "Voucher inválido"

	ConfirmationMessage = "Pagamento concluído!"
)

// VoucherFeedback is the inline message shown next to the voucher field.
type VoucherFeedback struct {
	Message string       `json:"message"`
	Kind    FeedbackKind `json:"kind"`
}

// CardDetails holds the card form as typed by the user. Only the last four
// digits of Number ever leave the session.
type CardDetails struct {
	Number       string `json:"number"`
	HolderName   string `json:"holder_name"`
	Expiry       string `json:"expiry"`
	CVV          string `json:"cvv"`
	Installments int    `json:"installments"`
}

func (c CardDetails) LastFour() string {
	n := strings.ReplaceAll(c.Number, " ", "")
	if len(n) <= 4 {
		return n
	}
	return n[len(n)-4:]
}

// Receipt is a generated boleto receipt offered as a download.
type Receipt struct {
	FileName    string
	ContentType string
	Content     []byte
	GeneratedAt time.Time
}

// CheckoutSession is the server-side state of one payment page.
//
// Invariants:
//   - PayableAmount == pricing.ComputeDiscount(BasePrice, AppliedVoucher if DiscountApplied).Payable
//   - PayableAmount <= BasePrice
//   - once State is finalized no mutator succeeds.
//
// VoucherInput is the voucher text field; it only affects pricing through ApplyVoucher.
type CheckoutSession struct {
	ID              string
	PlanName        string
	BasePrice       decimal.Decimal
	SelectedMethod  PaymentMethod
	VoucherInput    string
	AppliedVoucher  string
	DiscountApplied bool
	DiscountPercent int
	PayableAmount   decimal.Decimal
	VoucherFeedback *VoucherFeedback
	Card            CardDetails
	TermsAccepted   bool
	BoletoBarcode   string
	State           CheckoutState
	PixCopiedUntil  time.Time
	Receipt         *Receipt
	LedgerRecordID  int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	FinalizedAt     time.Time
	RedirectTo      string
	RedirectAt      time.Time
}

// NewCheckoutSession builds a session in the editing state with pix selected.
func NewCheckoutSession(id, planName string, basePrice decimal.Decimal, boletoBarcode string, now time.Time) CheckoutSession {
	return CheckoutSession{
		ID:             id,
		PlanName:       planName,
		BasePrice:      basePrice,
		SelectedMethod: PaymentMethodPix,
		PayableAmount:  basePrice,
		BoletoBarcode:  boletoBarcode,
		State:          CheckoutStateEditing,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (s *CheckoutSession) IsFinalized() bool {
	return s.State == CheckoutStateFinalized
}

// SelectMethod switches the active payment tab. Data typed for other methods
// is kept.
func (s *CheckoutSession) SelectMethod(m PaymentMethod) error {
	if s.IsFinalized() {
		return ErrCheckoutFinalized
	}
	if _, ok := ParsePaymentMethod(string(m)); !ok {
		return fmt.Errorf("unknown payment method %q", m)
	}
	s.SelectedMethod = m
	return nil
}

// ApplyVoucher evaluates VoucherInput and updates the pricing state.
//
// Empty input leaves pricing untouched. An unrecognized code clears any
// discount previously applied.
func (s *CheckoutSession) ApplyVoucher() (VoucherFeedback, error) {
	if s.IsFinalized() {
		return VoucherFeedback{}, ErrCheckoutFinalized
	}

	var fb VoucherFeedback
	switch {
	case strings.TrimSpace(s.VoucherInput) == "":
		fb = VoucherFeedback{Message: VoucherMessageEmpty, Kind: FeedbackError}
	case !pricing.IsRecognizedVoucher(s.VoucherInput):
		s.AppliedVoucher = ""
		s.DiscountApplied = false
		s.recompute()
		fb = VoucherFeedback{Message: VoucherMessageInvalid, Kind: FeedbackError}
	default:
		s.AppliedVoucher = s.VoucherInput
		s.DiscountApplied = true
		s.recompute()
		fb = VoucherFeedback{Message: fmt.Sprintf("Voucher aplicado! %d%% de desc.", s.DiscountPercent), Kind: FeedbackSuccess}
	}
	s.VoucherFeedback = &fb
	return fb, nil
}

func (s *CheckoutSession) recompute() {
	code := ""
	if s.DiscountApplied {
		code = s.AppliedVoucher
	}
	res := pricing.ComputeDiscount(s.BasePrice, code)
	s.PayableAmount = res.Payable
	s.DiscountPercent = res.Percent
}

// DiscountAmount is the value taken off the base price.
func (s *CheckoutSession) DiscountAmount() decimal.Decimal {
	return s.BasePrice.Sub(s.PayableAmount)
}

// BeginSubmit moves the session to submitting.
func (s *CheckoutSession) BeginSubmit() error {
	if s.IsFinalized() {
		return ErrCheckoutFinalized
	}
	s.State = CheckoutStateSubmitting
	return nil
}

// AbortSubmit returns a submitting session to editing.
func (s *CheckoutSession) AbortSubmit() {
	if s.State == CheckoutStateSubmitting {
		s.State = CheckoutStateEditing
	}
}

// Finalize marks the session as completed. It cannot be undone.
func (s *CheckoutSession) Finalize(now time.Time) error {
	if s.IsFinalized() {
		return ErrCheckoutFinalized
	}
	s.State = CheckoutStateFinalized
	s.FinalizedAt = now
	return nil
}

// PixCopied reports whether the "copied" indicator is still showing at now.
func (s *CheckoutSession) PixCopied(now time.Time) bool {
	return !s.PixCopiedUntil.IsZero() && now.Before(s.PixCopiedUntil)
}

func (s *CheckoutSession) Confirmation() string {
	if s.IsFinalized() {
		return ConfirmationMessage
	}
	return ""
}
