package routes

import (
	"context"
	"testing"
	"time"

	"geds_checkout/internal/adapter/persistence/repository"
	"geds_checkout/internal/infrastructure/ledger"
	"geds_checkout/internal/infrastructure/scheduler"
	"geds_checkout/internal/usecase"
)

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSessionReleaser_DropsSessionAfterRedirect(t *testing.T) {
	repo := repository.NewCheckoutSessionMemoryRepository()
	releaser := &sessionReleaser{}
	redirects := scheduler.NewRedirectScheduler(releaser.onRedirect)
	t.Cleanup(redirects.Stop)

	cfg := usecase.DefaultCheckoutConfig()
	cfg.RedirectDelay = 10 * time.Millisecond
	history := usecase.NewHistoryLedger(ledger.NewMemorySlot(), 0, nil)
	uc := usecase.NewCheckoutUseCase(repo, history, nil, nil, nil, redirects, cfg)
	releaser.checkout = uc

	ctx := context.Background()
	s, err := uc.Start(ctx, usecase.NavigationParams{Plan: "Plano Pro", Price: "20"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	yes := true
	if _, err := uc.EditForm(ctx, s.ID, usecase.FormPatch{TermsAccepted: &yes}); err != nil {
		t.Fatalf("edit form: %v", err)
	}
	if _, err := uc.Submit(ctx, s.ID); err != nil {
		t.Fatalf("submit: %v", err)
	}

	waitFor(t, "session release", func() bool { return repo.Len() == 0 })
	if redirects.Pending() != 0 {
		t.Fatalf("expected no pending redirect, got %d", redirects.Pending())
	}
	list, _ := history.List(ctx)
	if len(list) != 1 {
		t.Fatalf("history must survive the release, got %d records", len(list))
	}
}

func TestSessionReleaser_WithoutCheckout(t *testing.T) {
	(&sessionReleaser{}).onRedirect("sess-1", "/")
}

func TestSweepIdleSessions(t *testing.T) {
	t.Run("removes abandoned sessions", func(t *testing.T) {
		repo := repository.NewCheckoutSessionMemoryRepository()
		uc := usecase.NewCheckoutUseCase(repo, nil, nil, nil, nil, nil, usecase.DefaultCheckoutConfig())
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if _, err := uc.Start(ctx, usecase.NavigationParams{}); err != nil {
			t.Fatalf("start: %v", err)
		}
		go sweepIdleSessions(ctx, uc, 20*time.Millisecond, 5*time.Millisecond)
		waitFor(t, "idle sweep", func() bool { return repo.Len() == 0 })
	})

	t.Run("stops with the context", func(t *testing.T) {
		uc := usecase.NewCheckoutUseCase(repository.NewCheckoutSessionMemoryRepository(), nil, nil, nil, nil, nil, usecase.DefaultCheckoutConfig())
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			sweepIdleSessions(ctx, uc, time.Minute, time.Millisecond)
			close(done)
		}()
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("sweep did not stop")
		}
	})

	t.Run("disabled returns at once", func(t *testing.T) {
		sweepIdleSessions(context.Background(), nil, 0, time.Minute)
		sweepIdleSessions(context.Background(), nil, time.Minute, 0)
	})
}
