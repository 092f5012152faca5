package usecase

import (
	"context"
	"errors"
	"fmt"
	"geds_checkout/internal/domain/artifacts"
	"geds_checkout/internal/domain/entities"
	"geds_checkout/internal/domain/pricing"
	"geds_checkout/internal/usecase/interfaces"
	"log"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCheckoutSessionNotFound  = errors.New("checkout session not found")
	ErrInvalidCheckoutID        = errors.New("invalid checkout session id")
	ErrCheckoutAlreadyFinalized = entities.ErrCheckoutFinalized
	ErrInvalidPaymentMethod     = errors.New("invalid payment method")
	ErrReceiptGeneration        = errors.New("receipt generation failed")
	ErrReceiptNotAvailable      = errors.New("receipt not available")
)

const (
	DefaultPlanName = "Plano Premium"

	ReceiptFileName    = "boleto-geds.pdf"
	ReceiptContentType = "application/pdf"

	maxPriceParamLen = 32
)

var DefaultBasePrice = decimal.RequireFromString("49.99")

// ValidationError carries every form rule that failed on submit.
type ValidationError struct {
	Fields []entities.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NavigationParams are the raw query parameters the checkout page is opened with.
type NavigationParams struct {
	Plan  string
	Price string
}

// FormPatch updates the editable fields of a session. Nil fields are left as is.
type FormPatch struct {
	VoucherInput  *string
	CardNumber    *string
	CardHolder    *string
	CardExpiry    *string
	CardCVV       *string
	Installments  *int
	TermsAccepted *bool
}

// PixCode is the PIX "copia e cola" view of a session.
type PixCode struct {
	Payload   string
	QRCodeURL string
	Amount    decimal.Decimal
	Copied    bool
}

// CheckoutConfig holds the tunables of the checkout flow.
type CheckoutConfig struct {
	Organization   string
	Merchant       artifacts.PixMerchant
	RedirectTarget string
	RedirectDelay  time.Duration
	PixCopiedFor   time.Duration
}

func DefaultCheckoutConfig() CheckoutConfig {
	return CheckoutConfig{
		Organization:   "GEDS INOVAÇÃO",
		Merchant:       artifacts.DefaultPixMerchant,
		RedirectTarget: "/",
		RedirectDelay:  3 * time.Second,
		PixCopiedFor:   2 * time.Second,
	}
}

// ICheckoutUseCase drives a checkout session from page mount to completion.
//
// Lifecycle: editing -> submitting -> finalized. finalized is terminal and
// rejects every mutation with ErrCheckoutAlreadyFinalized.

type ICheckoutUseCase interface {
	Start(ctx context.Context, nav NavigationParams) (entities.CheckoutSession, error)
	Get(ctx context.Context, id string) (entities.CheckoutSession, error)
	SelectMethod(ctx context.Context, id string, method string) (entities.CheckoutSession, error)
	EditForm(ctx context.Context, id string, patch FormPatch) (entities.CheckoutSession, error)
	ApplyVoucher(ctx context.Context, id string, code *string) (entities.CheckoutSession, entities.VoucherFeedback, error)
	PixPayload(ctx context.Context, id string) (PixCode, error)
	CopyPix(ctx context.Context, id string) (PixCode, error)
	Receipt(ctx context.Context, id string) (entities.Receipt, error)
	Submit(ctx context.Context, id string) (entities.CheckoutSession, error)
	Release(ctx context.Context, id string) error
	SweepIdle(ctx context.Context, maxIdle time.Duration) (int, error)
}

type CheckoutUseCase struct {
	repo      interfaces.ICheckoutSessionRepository
	ledger    interfaces.IHistoryLedger
	recorder  interfaces.IPaymentRecorder
	observer  interfaces.IPersistenceObserver
	exporter  interfaces.IReceiptExporter
	scheduler interfaces.IRedirectScheduler
	cfg       CheckoutConfig

	mu       sync.Mutex
	now      func() time.Time
	intn     func(int) int
	newID    func() string
	dispatch func(func())
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	repo interfaces.ICheckoutSessionRepository,
	ledger interfaces.IHistoryLedger,
	recorder interfaces.IPaymentRecorder,
	observer interfaces.IPersistenceObserver,
	exporter interfaces.IReceiptExporter,
	scheduler interfaces.IRedirectScheduler,
	cfg CheckoutConfig,
) *CheckoutUseCase {
	if observer == nil {
		observer = LogObserver{}
	}
	return &CheckoutUseCase{
		repo:      repo,
		ledger:    ledger,
		recorder:  recorder,
		observer:  observer,
		exporter:  exporter,
		scheduler: scheduler,
		cfg:       cfg,
		now:       time.Now,
		intn:      rand.IntN,
		newID:     uuid.NewString,
		dispatch:  func(fn func()) { go fn() },
	}
}

func (u *CheckoutUseCase) Start(ctx context.Context, nav NavigationParams) (entities.CheckoutSession, error) {
	plan := strings.TrimSpace(nav.Plan)
	if plan == "" {
		plan = DefaultPlanName
	}
	price := parseBasePrice(nav.Price)
	now := u.now()

	barcode, err := artifacts.BoletoBarcode(price, u.intn)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	s := entities.NewCheckoutSession(u.newID(), plan, price, barcode, now)
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[checkout][usecase] create session failed plan=%q err=%v", plan, err)
		return entities.CheckoutSession{}, err
	}
	log.Printf("[checkout][usecase] session started session_id=%s plan=%q base=%s", created.ID, created.PlanName, created.BasePrice.StringFixed(2))
	return created, nil
}

// parseBasePrice falls back to DefaultBasePrice for absent, malformed or
// negative input, for more than two decimal places and above pricing.MaxAmount.
func parseBasePrice(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultBasePrice
	}
	if len(raw) > maxPriceParamLen {
		log.Printf("[checkout][usecase] price param too long len=%d; using default", len(raw))
		return DefaultBasePrice
	}
	p, err := decimal.NewFromString(raw)
	if err != nil || !pricing.ValidAmount(p) {
		log.Printf("[checkout][usecase] invalid price param %q; using default", raw)
		return DefaultBasePrice
	}
	return p
}

func (u *CheckoutUseCase) Get(ctx context.Context, id string) (entities.CheckoutSession, error) {
	return u.load(ctx, id)
}

func (u *CheckoutUseCase) SelectMethod(ctx context.Context, id string, method string) (entities.CheckoutSession, error) {
	m, ok := entities.ParsePaymentMethod(method)
	if !ok {
		return entities.CheckoutSession{}, ErrInvalidPaymentMethod
	}
	return u.mutate(ctx, id, func(s *entities.CheckoutSession) error {
		return s.SelectMethod(m)
	})
}

func (u *CheckoutUseCase) EditForm(ctx context.Context, id string, patch FormPatch) (entities.CheckoutSession, error) {
	return u.mutate(ctx, id, func(s *entities.CheckoutSession) error {
		if s.IsFinalized() {
			return ErrCheckoutAlreadyFinalized
		}
		if patch.VoucherInput != nil {
			s.VoucherInput = *patch.VoucherInput
		}
		if patch.CardNumber != nil {
			s.Card.Number = *patch.CardNumber
		}
		if patch.CardHolder != nil {
			s.Card.HolderName = *patch.CardHolder
		}
		if patch.CardExpiry != nil {
			s.Card.Expiry = *patch.CardExpiry
		}
		if patch.CardCVV != nil {
			s.Card.CVV = *patch.CardCVV
		}
		if patch.Installments != nil {
			s.Card.Installments = *patch.Installments
		}
		if patch.TermsAccepted != nil {
			s.TermsAccepted = *patch.TermsAccepted
		}
		return nil
	})
}

func (u *CheckoutUseCase) ApplyVoucher(ctx context.Context, id string, code *string) (entities.CheckoutSession, entities.VoucherFeedback, error) {
	var fb entities.VoucherFeedback
	s, err := u.mutate(ctx, id, func(s *entities.CheckoutSession) error {
		if s.IsFinalized() {
			return ErrCheckoutAlreadyFinalized
		}
		if code != nil {
			s.VoucherInput = *code
		}
		var err error
		fb, err = s.ApplyVoucher()
		return err
	})
	if err != nil {
		return entities.CheckoutSession{}, entities.VoucherFeedback{}, err
	}
	log.Printf("[checkout][usecase] voucher evaluated session_id=%s kind=%s percent=%d payable=%s", s.ID, fb.Kind, s.DiscountPercent, s.PayableAmount.StringFixed(2))
	return s, fb, nil
}

func (u *CheckoutUseCase) PixPayload(ctx context.Context, id string) (PixCode, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return PixCode{}, err
	}
	return u.pixCode(s)
}

func (u *CheckoutUseCase) CopyPix(ctx context.Context, id string) (PixCode, error) {
	s, err := u.mutate(ctx, id, func(s *entities.CheckoutSession) error {
		s.PixCopiedUntil = u.now().Add(u.cfg.PixCopiedFor)
		return nil
	})
	if err != nil {
		return PixCode{}, err
	}
	return u.pixCode(s)
}

func (u *CheckoutUseCase) pixCode(s entities.CheckoutSession) (PixCode, error) {
	payload, err := artifacts.PixPayload(u.cfg.Merchant, s.PayableAmount)
	if err != nil {
		log.Printf("[checkout][usecase] pix payload failed session_id=%s err=%v", s.ID, err)
		return PixCode{}, err
	}
	return PixCode{
		Payload:   payload,
		QRCodeURL: artifacts.PixQRCodeURL(payload),
		Amount:    s.PayableAmount,
		Copied:    s.PixCopied(u.now()),
	}, nil
}

func (u *CheckoutUseCase) Receipt(ctx context.Context, id string) (entities.Receipt, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return entities.Receipt{}, err
	}
	if s.Receipt == nil {
		return entities.Receipt{}, ErrReceiptNotAvailable
	}
	return *s.Receipt, nil
}

// Submit finalizes the session.
//
// Steps, in order:
//   - guards: not finalized, terms accepted, card rules when paying by card
//   - boleto only: render the receipt PDF; a failure returns the session to editing
//   - finalize and store the finalized session; a store failure leaves it editing
//     and runs no side effect
//   - dispatch the record store mirror in the background
//   - append to the history ledger (failure is logged only)
//   - schedule the redirect
func (u *CheckoutUseCase) Submit(ctx context.Context, id string) (entities.CheckoutSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CheckoutSession{}, ErrInvalidCheckoutID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	log.Printf("[checkout][usecase] submit start session_id=%s", id)
	s, err := u.getLocked(ctx, id)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if s.IsFinalized() {
		log.Printf("[checkout][usecase] submit rejected; already finalized session_id=%s", id)
		return entities.CheckoutSession{}, ErrCheckoutAlreadyFinalized
	}

	if fields := submitErrors(s); len(fields) > 0 {
		log.Printf("[checkout][usecase] submit validation failed session_id=%s fields=%d", id, len(fields))
		return entities.CheckoutSession{}, &ValidationError{Fields: fields}
	}

	if err := s.BeginSubmit(); err != nil {
		return entities.CheckoutSession{}, err
	}
	now := u.now()

	if s.SelectedMethod == entities.PaymentMethodBoleto {
		receipt, err := u.renderReceipt(s, now)
		if err != nil {
			s.AbortSubmit()
			log.Printf("[checkout][usecase] receipt generation failed session_id=%s err=%v", id, err)
			return entities.CheckoutSession{}, fmt.Errorf("%w: %v", ErrReceiptGeneration, err)
		}
		s.Receipt = &receipt
	}

	if err := s.Finalize(now); err != nil {
		return entities.CheckoutSession{}, err
	}
	s.RedirectTo = u.cfg.RedirectTarget
	s.RedirectAt = now.Add(u.cfg.RedirectDelay)
	s.UpdatedAt = now

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		log.Printf("[checkout][usecase] session update failed; finalize not stored session_id=%s err=%v", id, err)
		return entities.CheckoutSession{}, err
	}
	if updated.ID == "" {
		return entities.CheckoutSession{}, ErrCheckoutSessionNotFound
	}

	u.dispatchPersistence(ctx, persistRequest(updated))

	if u.ledger != nil {
		rec, err := u.ledger.Append(ctx, entities.TransactionRecord{
			Method:   updated.SelectedMethod,
			Amount:   updated.PayableAmount,
			PlanName: updated.PlanName,
		})
		if err != nil {
			log.Printf("[checkout][usecase] ledger append failed session_id=%s err=%v", id, err)
		} else {
			updated.LedgerRecordID = rec.ID
			if saved, err := u.repo.Update(ctx, updated); err != nil {
				log.Printf("[checkout][usecase] ledger id not stored session_id=%s record_id=%d err=%v", id, rec.ID, err)
			} else {
				updated = saved
			}
		}
	}

	if u.scheduler != nil {
		u.scheduler.Schedule(updated.ID, u.cfg.RedirectTarget, u.cfg.RedirectDelay)
	}
	log.Printf("[checkout][usecase] submit success session_id=%s method=%s amount=%s", id, updated.SelectedMethod, updated.PayableAmount.StringFixed(2))
	return updated, nil
}

// Release drops a session once its page is gone, e.g. after the redirect fired.
func (u *CheckoutUseCase) Release(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCheckoutID
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[checkout][usecase] release failed session_id=%s err=%v", id, err)
		return err
	}
	log.Printf("[checkout][usecase] session released session_id=%s", id)
	return nil
}

// SweepIdle drops every session untouched for longer than maxIdle, covering
// pages abandoned before submit.
func (u *CheckoutUseCase) SweepIdle(ctx context.Context, maxIdle time.Duration) (int, error) {
	if maxIdle <= 0 {
		return 0, nil
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	n, err := u.repo.DeleteIdle(ctx, u.now().Add(-maxIdle))
	if err != nil {
		log.Printf("[checkout][usecase] idle sweep failed err=%v", err)
		return 0, err
	}
	if n > 0 {
		log.Printf("[checkout][usecase] idle sweep removed=%d", n)
	}
	return n, nil
}

func submitErrors(s entities.CheckoutSession) []entities.FieldError {
	var fields []entities.FieldError
	if !s.TermsAccepted {
		fields = append(fields, entities.FieldError{Field: entities.FieldTerms, Message: entities.TermsRequiredMessage})
	}
	if s.SelectedMethod == entities.PaymentMethodCard {
		fields = append(fields, artifacts.ValidateCard(s.Card)...)
	}
	return fields
}

func (u *CheckoutUseCase) renderReceipt(s entities.CheckoutSession, now time.Time) (entities.Receipt, error) {
	if u.exporter == nil {
		return entities.Receipt{}, errors.New("receipt exporter not configured")
	}
	content, err := u.exporter.Export(entities.ReceiptData{
		Organization: u.cfg.Organization,
		PlanName:     s.PlanName,
		Amount:       s.PayableAmount,
		Barcode:      s.BoletoBarcode,
	})
	if err != nil {
		return entities.Receipt{}, err
	}
	return entities.Receipt{
		FileName:    ReceiptFileName,
		ContentType: ReceiptContentType,
		Content:     content,
		GeneratedAt: now,
	}, nil
}

func persistRequest(s entities.CheckoutSession) entities.PersistRequest {
	req := entities.PersistRequest{
		SessionID:    s.ID,
		PlanName:     s.PlanName,
		Amount:       s.PayableAmount,
		Method:       s.SelectedMethod,
		Installments: 1,
		PaidAt:       s.FinalizedAt,
	}
	if s.DiscountApplied {
		req.VoucherCode = s.AppliedVoucher
	}
	if s.SelectedMethod == entities.PaymentMethodCard {
		req.Installments = s.Card.Installments
		req.CardLastFour = s.Card.LastFour()
	}
	return req
}

// dispatchPersistence runs the record store mirror detached from the request.
// Its outcome only reaches the observer.
func (u *CheckoutUseCase) dispatchPersistence(ctx context.Context, req entities.PersistRequest) {
	if u.recorder == nil {
		u.observer.Observe(ctx, entities.PersistOutcome{SessionID: req.SessionID, Status: entities.PersistStatusSkipped, Reason: "recorder not configured"})
		return
	}
	detached := context.WithoutCancel(ctx)
	recorder, observer := u.recorder, u.observer
	u.dispatch(func() {
		observer.Observe(detached, recorder.TryPersist(detached, req))
	})
}

func (u *CheckoutUseCase) load(ctx context.Context, id string) (entities.CheckoutSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CheckoutSession{}, ErrInvalidCheckoutID
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.getLocked(ctx, id)
}

func (u *CheckoutUseCase) getLocked(ctx context.Context, id string) (entities.CheckoutSession, error) {
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[checkout][usecase] load session failed session_id=%s err=%v", id, err)
		return entities.CheckoutSession{}, err
	}
	if s.ID == "" {
		return entities.CheckoutSession{}, ErrCheckoutSessionNotFound
	}
	return s, nil
}

// mutate runs fn on the stored session and writes the result back.
func (u *CheckoutUseCase) mutate(ctx context.Context, id string, fn func(*entities.CheckoutSession) error) (entities.CheckoutSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CheckoutSession{}, ErrInvalidCheckoutID
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.getLocked(ctx, id)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if err := fn(&s); err != nil {
		return entities.CheckoutSession{}, err
	}
	s.UpdatedAt = u.now()
	return u.repo.Update(ctx, s)
}
