package usecase

import (
	"context"
	"errors"
	"geds_checkout/internal/domain/entities"
	"geds_checkout/internal/usecase/interfaces"
	"log"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("record store user not found")
	ErrPlanNotFound = errors.New("record store plan not found")
)

// PaymentRecorder mirrors a finalized checkout into the external record store.
//
// Flow (best effort, no retries):
//   - resolve the demo user by email
//   - resolve the plan by name
//   - insert a "concluido" payment row
//
// Any failure short-circuits into a failed outcome. A nil store means the mirror
// is not configured and every attempt is skipped.

type PaymentRecorder struct {
	store     interfaces.IRecordStore
	userEmail string
	newID     func() string
}

var _ interfaces.IPaymentRecorder = (*PaymentRecorder)(nil)

func NewPaymentRecorder(store interfaces.IRecordStore, userEmail string) *PaymentRecorder {
	return &PaymentRecorder{store: store, userEmail: strings.TrimSpace(userEmail), newID: uuid.NewString}
}

func (r *PaymentRecorder) TryPersist(ctx context.Context, req entities.PersistRequest) entities.PersistOutcome {
	out := entities.PersistOutcome{SessionID: req.SessionID}
	if r.store == nil {
		out.Status = entities.PersistStatusSkipped
		out.Reason = "record store not configured"
		return out
	}

	user, err := r.store.FindUserByEmail(ctx, r.userEmail)
	if err == nil && user.ID == "" {
		err = ErrUserNotFound
	}
	if err != nil {
		return failed(out, "user lookup", err)
	}
	out.UserID = user.ID

	plan, err := r.store.FindPlanByName(ctx, req.PlanName)
	if err == nil && plan.ID == "" {
		err = ErrPlanNotFound
	}
	if err != nil {
		return failed(out, "plan lookup", err)
	}
	out.PlanID = plan.ID

	rec := entities.PaymentRecord{
		ID:           r.newID(),
		UserID:       user.ID,
		PlanID:       plan.ID,
		Amount:       req.Amount,
		Method:       req.Method,
		Status:       entities.PaymentStatusConcluido,
		Installments: 1,
		PaidAt:       req.PaidAt.UTC(),
	}
	if req.VoucherCode != "" {
		code := req.VoucherCode
		rec.VoucherCode = &code
	}
	if req.Method == entities.PaymentMethodCard {
		if req.Installments > 0 {
			rec.Installments = req.Installments
		}
		last := req.CardLastFour
		rec.CardLastFour = &last
	}

	created, err := r.store.InsertPayment(ctx, rec)
	if err != nil {
		return failed(out, "insert payment", err)
	}
	out.Status = entities.PersistStatusPersisted
	out.PaymentID = created.ID
	return out
}

func failed(out entities.PersistOutcome, step string, err error) entities.PersistOutcome {
	out.Status = entities.PersistStatusFailed
	out.Reason = step
	out.Err = err
	return out
}

// LogObserver writes every persistence outcome to the process log.
type LogObserver struct{}

var _ interfaces.IPersistenceObserver = LogObserver{}

func (LogObserver) Observe(_ context.Context, o entities.PersistOutcome) {
	switch o.Status {
	case entities.PersistStatusPersisted:
		log.Printf("[checkout][persist] persisted session_id=%s payment_id=%s user_id=%s plan_id=%s", o.SessionID, o.PaymentID, o.UserID, o.PlanID)
	case entities.PersistStatusSkipped:
		log.Printf("[checkout][persist] skipped session_id=%s reason=%q", o.SessionID, o.Reason)
	default:
		log.Printf("[checkout][persist] failed session_id=%s step=%q err=%v", o.SessionID, o.Reason, o.Err)
	}
}
