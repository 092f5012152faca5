package interfaces

import (
	"context"
	"geds_checkout/internal/domain/entities"
	"time"
)

// ICheckoutSessionRepository stores checkout sessions by value.
//
// GetByID returns a zero session (empty ID) when the id is unknown.
// Delete is a no-op for unknown ids. DeleteIdle removes every session whose
// UpdatedAt is before the cutoff and reports how many went.

type ICheckoutSessionRepository interface {
	Create(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutSession, error)
	Update(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error)
	Delete(ctx context.Context, id string) error
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
}
