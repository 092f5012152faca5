package interfaces

import (
	"context"
	"geds_checkout/internal/domain/entities"
)

// IRecordStore abstracts the external record store that mirrors completed payments.
//
// Lookups return a zero value (empty ID) when nothing matches. Implementations
// exist for DynamoDB and Postgres.

type IRecordStore interface {
	FindUserByEmail(ctx context.Context, email string) (entities.UserRef, error)
	FindPlanByName(ctx context.Context, name string) (entities.PlanRef, error)
	InsertPayment(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
}
