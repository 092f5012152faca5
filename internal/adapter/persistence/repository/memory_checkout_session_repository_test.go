package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"geds_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCheckoutSessionMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCheckoutSessionMemoryRepository()
	s := entities.NewCheckoutSession("s-1", "Plano Premium", decimal.NewFromInt(20), "barcode", time.Unix(0, 0))

	t.Run("get unknown returns zero", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero session, got %+v err=%v", got, err)
		}
	})

	t.Run("create and duplicate", func(t *testing.T) {
		if _, err := repo.Create(ctx, s); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, err := repo.Create(ctx, s); !errors.Is(err, ErrCheckoutSessionExists) {
			t.Fatalf("expected ErrCheckoutSessionExists, got %v", err)
		}
		if _, err := repo.Create(ctx, entities.CheckoutSession{}); err == nil {
			t.Fatalf("expected error for empty id")
		}
	})

	t.Run("update stores a copy", func(t *testing.T) {
		cur, _ := repo.GetByID(ctx, "s-1")
		cur.VoucherFeedback = &entities.VoucherFeedback{Message: "x", Kind: entities.FeedbackError}
		cur.Receipt = &entities.Receipt{FileName: "f.pdf", Content: []byte("pdf")}
		if _, err := repo.Update(ctx, cur); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		cur.VoucherFeedback.Message = "mutated"
		cur.Receipt.Content[0] = 'X'

		got, _ := repo.GetByID(ctx, "s-1")
		if got.VoucherFeedback.Message != "x" || string(got.Receipt.Content) != "pdf" {
			t.Fatalf("stored session was aliased: %+v", got)
		}
	})

	t.Run("update unknown returns zero", func(t *testing.T) {
		got, err := repo.Update(ctx, entities.CheckoutSession{ID: "ghost"})
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero session, got %+v err=%v", got, err)
		}
	})
}

func TestCheckoutSessionMemoryRepository_Eviction(t *testing.T) {
	ctx := context.Background()
	repo := NewCheckoutSessionMemoryRepository()
	base := time.Date(2025, 10, 31, 14, 0, 0, 0, time.UTC)
	for i, id := range []string{"old-1", "old-2", "fresh"} {
		s := entities.NewCheckoutSession(id, "Plano Pro", decimal.NewFromInt(10), "barcode", base.Add(time.Duration(i)*20*time.Minute))
		if _, err := repo.Create(ctx, s); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}

	t.Run("delete removes the session", func(t *testing.T) {
		if err := repo.Delete(ctx, "old-1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got, _ := repo.GetByID(ctx, "old-1"); got.ID != "" {
			t.Fatalf("expected old-1 gone, got %+v", got)
		}
		if repo.Len() != 2 {
			t.Fatalf("expected 2 sessions, got %d", repo.Len())
		}
	})

	t.Run("delete unknown is a no-op", func(t *testing.T) {
		if err := repo.Delete(ctx, "ghost"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("delete idle keeps recent sessions", func(t *testing.T) {
		n, err := repo.DeleteIdle(ctx, base.Add(30*time.Minute))
		if err != nil || n != 1 {
			t.Fatalf("expected 1 removed, got %d err=%v", n, err)
		}
		if got, _ := repo.GetByID(ctx, "old-2"); got.ID != "" {
			t.Fatalf("expected old-2 swept, got %+v", got)
		}
		if got, _ := repo.GetByID(ctx, "fresh"); got.ID != "fresh" {
			t.Fatalf("expected fresh kept, got %+v", got)
		}
	})

	t.Run("cutoff equal to updated at keeps the session", func(t *testing.T) {
		n, _ := repo.DeleteIdle(ctx, base.Add(40*time.Minute))
		if n != 0 || repo.Len() != 1 {
			t.Fatalf("expected nothing removed, got %d len=%d", n, repo.Len())
		}
	})
}
