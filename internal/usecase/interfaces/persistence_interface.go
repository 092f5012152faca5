package interfaces

import (
	"context"
	"geds_checkout/internal/domain/entities"
)

// IPaymentRecorder mirrors a finalized checkout into the record store.
//
// TryPersist never fails the caller: every result, including errors, is
// reported through the returned outcome.

type IPaymentRecorder interface {
	TryPersist(ctx context.Context, req entities.PersistRequest) entities.PersistOutcome
}

// IPersistenceObserver receives the outcome of each persistence attempt.
type IPersistenceObserver interface {
	Observe(ctx context.Context, outcome entities.PersistOutcome)
}
