package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"geds_checkout/internal/domain/entities"
	"geds_checkout/internal/usecase/interfaces"
	"log"
	"sync"
	"time"
)

const (
	ledgerDateLayout = "02/01/2006"
	ledgerTimeLayout = "15:04"
)

// HistoryLedger keeps the newest-first list of completed transactions in a
// single ledger slot.
//
// Each Append reads the whole list, prepends and writes it back. The mutex
// serializes writers of this process only; two processes sharing a slot can
// still lose an update.
//
// capacity <= 0 keeps every record.

type HistoryLedger struct {
	slot     interfaces.ILedgerSlot
	capacity int
	loc      *time.Location
	now      func() time.Time
	mu       sync.Mutex
}

var _ interfaces.IHistoryLedger = (*HistoryLedger)(nil)

func NewHistoryLedger(slot interfaces.ILedgerSlot, capacity int, loc *time.Location) *HistoryLedger {
	if loc == nil {
		loc = time.Local
	}
	return &HistoryLedger{slot: slot, capacity: capacity, loc: loc, now: time.Now}
}

// Append stamps rec with id, date, time and status, stores it at the head of
// the ledger and returns the stored record.
func (h *HistoryLedger) Append(ctx context.Context, rec entities.TransactionRecord) (entities.TransactionRecord, error) {
	if h.slot == nil {
		return entities.TransactionRecord{}, errors.New("ledger slot not configured")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	records, err := h.load(ctx)
	if err != nil {
		log.Printf("[checkout][ledger] load failed err=%v", err)
		return entities.TransactionRecord{}, err
	}

	now := h.now().In(h.loc)
	rec.ID = now.UnixMilli()
	if len(records) > 0 && rec.ID <= records[0].ID {
		rec.ID = records[0].ID + 1
	}
	rec.Date = now.Format(ledgerDateLayout)
	rec.Time = now.Format(ledgerTimeLayout)
	rec.Status = entities.TransactionStatusConcluido

	records = append([]entities.TransactionRecord{rec}, records...)
	if h.capacity > 0 && len(records) > h.capacity {
		records = records[:h.capacity]
	}

	data, err := json.Marshal(records)
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	if err := h.slot.Store(ctx, data); err != nil {
		log.Printf("[checkout][ledger] store failed id=%d err=%v", rec.ID, err)
		return entities.TransactionRecord{}, err
	}
	log.Printf("[checkout][ledger] appended id=%d method=%s amount=%s size=%d", rec.ID, rec.Method, rec.Amount.StringFixed(2), len(records))
	return rec, nil
}

// List returns the ledger newest-first. An absent or unreadable ledger is empty.
func (h *HistoryLedger) List(ctx context.Context) ([]entities.TransactionRecord, error) {
	if h.slot == nil {
		return nil, errors.New("ledger slot not configured")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load(ctx)
}

func (h *HistoryLedger) load(ctx context.Context) ([]entities.TransactionRecord, error) {
	data, err := h.slot.Load(ctx)
	if err != nil {
		return nil, err
	}
	records := []entities.TransactionRecord{}
	if len(data) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("[checkout][ledger] corrupt ledger treated as empty len=%d err=%v", len(data), err)
		return []entities.TransactionRecord{}, nil
	}
	return records, nil
}
