package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"geds_checkout/internal/domain/entities"
	"geds_checkout/internal/usecase/interfaces"
)

var ErrCheckoutSessionExists = errors.New("checkout session already exists")

// CheckoutSessionMemoryRepository keeps checkout sessions in process memory.
//
// Sessions are copied in and out so callers never share mutable state with
// the store.

type CheckoutSessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.CheckoutSession
}

var _ interfaces.ICheckoutSessionRepository = (*CheckoutSessionMemoryRepository)(nil)

func NewCheckoutSessionMemoryRepository() *CheckoutSessionMemoryRepository {
	return &CheckoutSessionMemoryRepository{sessions: map[string]entities.CheckoutSession{}}
}

func (r *CheckoutSessionMemoryRepository) Create(_ context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	if s.ID == "" {
		return entities.CheckoutSession{}, errors.New("checkout session id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; ok {
		return entities.CheckoutSession{}, ErrCheckoutSessionExists
	}
	r.sessions[s.ID] = clone(s)
	return clone(s), nil
}

func (r *CheckoutSessionMemoryRepository) GetByID(_ context.Context, id string) (entities.CheckoutSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return entities.CheckoutSession{}, nil
	}
	return clone(s), nil
}

// Update replaces a stored session. Unknown ids yield a zero session.
func (r *CheckoutSessionMemoryRepository) Update(_ context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; !ok {
		return entities.CheckoutSession{}, nil
	}
	r.sessions[s.ID] = clone(s)
	return clone(s), nil
}

func (r *CheckoutSessionMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *CheckoutSessionMemoryRepository) DeleteIdle(_ context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(before) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

// Len reports how many sessions are held.
func (r *CheckoutSessionMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func clone(s entities.CheckoutSession) entities.CheckoutSession {
	if s.VoucherFeedback != nil {
		fb := *s.VoucherFeedback
		s.VoucherFeedback = &fb
	}
	if s.Receipt != nil {
		rc := *s.Receipt
		rc.Content = append([]byte(nil), s.Receipt.Content...)
		s.Receipt = &rc
	}
	return s
}
