package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newSession(price string) CheckoutSession {
	return NewCheckoutSession("s-1", "Plano Premium", decimal.RequireFromString(price), "23790.12345 00001.678901 00002.123456 1 99990000004999", time.Unix(0, 0))
}

func TestCheckoutSession_ApplyVoucher(t *testing.T) {
	t.Run("empty input leaves pricing untouched", func(t *testing.T) {
		s := newSession("150")
		s.VoucherInput = "OUT31/10"
		if _, err := s.ApplyVoucher(); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		s.VoucherInput = "  "
		fb, err := s.ApplyVoucher()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if fb.Message != VoucherMessageEmpty || fb.Kind != FeedbackError {
			t.Fatalf("unexpected feedback: %+v", fb)
		}
		if !s.DiscountApplied || s.PayableAmount.StringFixed(2) != "105.00" {
			t.Fatalf("expected discount kept, got applied=%v payable=%s", s.DiscountApplied, s.PayableAmount)
		}
	})

	t.Run("invalid code clears discount", func(t *testing.T) {
		s := newSession("150")
		s.VoucherInput = "out31/10"
		_, _ = s.ApplyVoucher()
		s.VoucherInput = "PROMO"
		fb, _ := s.ApplyVoucher()
		if fb.Message != VoucherMessageInvalid {
			t.Fatalf("unexpected feedback: %+v", fb)
		}
		if s.DiscountApplied || s.AppliedVoucher != "" || !s.PayableAmount.Equal(s.BasePrice) {
			t.Fatalf("expected discount cleared: %+v", s)
		}
	})

	t.Run("valid code applies tier", func(t *testing.T) {
		s := newSession("49.99")
		s.VoucherInput = "OUT31/10"
		fb, _ := s.ApplyVoucher()
		if fb.Kind != FeedbackSuccess || fb.Message != "Voucher aplicado! 20% de desc." {
			t.Fatalf("unexpected feedback: %+v", fb)
		}
		if s.PayableAmount.StringFixed(2) != "39.99" {
			t.Fatalf("unexpected payable %s", s.PayableAmount)
		}
		if s.DiscountAmount().StringFixed(2) != "10.00" {
			t.Fatalf("unexpected discount amount %s", s.DiscountAmount())
		}
	})

	t.Run("editing input does not reprice", func(t *testing.T) {
		s := newSession("150")
		s.VoucherInput = "OUT31/10"
		_, _ = s.ApplyVoucher()
		s.VoucherInput = "other"
		if s.PayableAmount.StringFixed(2) != "105.00" {
			t.Fatalf("payable changed without apply: %s", s.PayableAmount)
		}
	})
}

func TestCheckoutSession_Lifecycle(t *testing.T) {
	s := newSession("20")
	if s.State != CheckoutStateEditing || s.SelectedMethod != PaymentMethodPix {
		t.Fatalf("unexpected initial state: %s %s", s.State, s.SelectedMethod)
	}

	if err := s.SelectMethod(PaymentMethodCard); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.SelectMethod("cheque"); err == nil {
		t.Fatalf("expected error for unknown method")
	}

	if err := s.BeginSubmit(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	s.AbortSubmit()
	if s.State != CheckoutStateEditing {
		t.Fatalf("expected editing after abort, got %s", s.State)
	}

	now := time.Unix(100, 0)
	if err := s.Finalize(now); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !s.IsFinalized() || s.Confirmation() != ConfirmationMessage || !s.FinalizedAt.Equal(now) {
		t.Fatalf("unexpected finalized session: %+v", s)
	}

	if err := s.Finalize(now); !errors.Is(err, ErrCheckoutFinalized) {
		t.Fatalf("expected ErrCheckoutFinalized, got %v", err)
	}
	if err := s.SelectMethod(PaymentMethodPix); !errors.Is(err, ErrCheckoutFinalized) {
		t.Fatalf("expected ErrCheckoutFinalized, got %v", err)
	}
	if _, err := s.ApplyVoucher(); !errors.Is(err, ErrCheckoutFinalized) {
		t.Fatalf("expected ErrCheckoutFinalized, got %v", err)
	}
	if err := s.BeginSubmit(); !errors.Is(err, ErrCheckoutFinalized) {
		t.Fatalf("expected ErrCheckoutFinalized, got %v", err)
	}
	s.AbortSubmit()
	if !s.IsFinalized() {
		t.Fatalf("abort must not leave finalized")
	}
}

func TestParsePaymentMethod(t *testing.T) {
	cases := map[string]PaymentMethod{"pix": PaymentMethodPix, " BOLETO ": PaymentMethodBoleto, "cartao": PaymentMethodCard, "card": PaymentMethodCard}
	for in, want := range cases {
		got, ok := ParsePaymentMethod(in)
		if !ok || got != want {
			t.Fatalf("ParsePaymentMethod(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := ParsePaymentMethod("ted"); ok {
		t.Fatalf("expected ted to be rejected")
	}
}

func TestCardDetails_LastFour(t *testing.T) {
	if got := (CardDetails{Number: "4111 1111 1111 1234"}).LastFour(); got != "1234" {
		t.Fatalf("got %q", got)
	}
	if got := (CardDetails{Number: "12"}).LastFour(); got != "12" {
		t.Fatalf("got %q", got)
	}
}

func TestCheckoutSession_PixCopied(t *testing.T) {
	s := newSession("20")
	base := time.Unix(1000, 0)
	if s.PixCopied(base) {
		t.Fatalf("indicator should start off")
	}
	s.PixCopiedUntil = base.Add(2 * time.Second)
	if !s.PixCopied(base.Add(time.Second)) {
		t.Fatalf("indicator should be on")
	}
	if s.PixCopied(base.Add(2 * time.Second)) {
		t.Fatalf("indicator should be off after 2s")
	}
}

func TestPaymentMethod_StorageName(t *testing.T) {
	if PaymentMethodCard.StorageName() != "cartao" || PaymentMethodPix.StorageName() != "pix" || PaymentMethodBoleto.StorageName() != "boleto" {
		t.Fatalf("unexpected storage names")
	}
}
