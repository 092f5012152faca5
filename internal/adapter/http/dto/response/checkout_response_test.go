package response

import (
	"testing"
	"time"

	"geds_checkout/internal/domain/entities"
	"geds_checkout/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromCheckoutSession(t *testing.T) {
	now := time.Date(2025, 10, 31, 14, 5, 0, 0, time.UTC)
	s := entities.NewCheckoutSession("s-1", "Plano Premium", decimal.RequireFromString("150"), "barcode", now)
	s.VoucherInput = "OUT31/10"
	if _, err := s.ApplyVoucher(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	s.Card = entities.CardDetails{Number: "4111 1111 1111 4242", HolderName: "JOAO", CVV: "999", Installments: 2}

	res := FromCheckoutSession(s)
	if res.PayableAmount.Value != "105.00" || res.PayableAmount.Formatted != "R$ 105,00" {
		t.Fatalf("unexpected payable: %+v", res.PayableAmount)
	}
	if res.DiscountAmount.Value != "45.00" || res.DiscountPercent != 30 || !res.DiscountApplied {
		t.Fatalf("unexpected discount fields: %+v", res)
	}
	if res.Card.LastFour != "4242" || res.Card.HolderName != "JOAO" {
		t.Fatalf("unexpected card view: %+v", res.Card)
	}
	if res.VoucherFeedback == nil || res.VoucherFeedback.Kind != "success" {
		t.Fatalf("expected feedback, got %+v", res.VoucherFeedback)
	}
	if len(res.InstallmentOptions) != 3 || res.InstallmentOptions[2].Label != "3x de R$ 35,00" {
		t.Fatalf("unexpected installments: %+v", res.InstallmentOptions)
	}
	if res.RedirectAt != nil || res.Finalized || res.Confirmation != "" {
		t.Fatalf("unexpected finalization fields: %+v", res)
	}

	if err := s.Finalize(now); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	s.RedirectTo, s.RedirectAt = "/", now.Add(3*time.Second)
	res = FromCheckoutSession(s)
	if !res.Finalized || res.Confirmation != entities.ConfirmationMessage || res.RedirectAt == nil || res.RedirectTo != "/" {
		t.Fatalf("unexpected finalized view: %+v", res)
	}
}

func TestFromPixCodeAndTransactions(t *testing.T) {
	p := FromPixCode(usecase.PixCode{Payload: "000201", QRCodeURL: "https://x", Amount: decimal.RequireFromString("39.99"), Copied: true})
	if p.Amount.Formatted != "R$ 39,99" || !p.Copied {
		t.Fatalf("unexpected pix response: %+v", p)
	}

	h := FromTransactions([]entities.TransactionRecord{{ID: 2, Method: entities.PaymentMethodBoleto, Amount: decimal.NewFromInt(20)}, {ID: 1}})
	if h.Count != 2 || h.Transactions[0].Method != "boleto" || h.Transactions[0].Amount.Value != "20.00" {
		t.Fatalf("unexpected history: %+v", h)
	}

	empty := FromTransactions(nil)
	if empty.Count != 0 || empty.Transactions == nil {
		t.Fatalf("expected empty non-nil list: %+v", empty)
	}
}
