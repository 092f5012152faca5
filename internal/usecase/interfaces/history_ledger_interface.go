package interfaces

import (
	"context"
	"geds_checkout/internal/domain/entities"
)

// IHistoryLedger is the local, newest-first list of completed transactions.

type IHistoryLedger interface {
	Append(ctx context.Context, rec entities.TransactionRecord) (entities.TransactionRecord, error)
	List(ctx context.Context) ([]entities.TransactionRecord, error)
}
