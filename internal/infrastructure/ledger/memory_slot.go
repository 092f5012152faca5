package ledger

import (
	"context"
	"sync"

	"geds_checkout/internal/usecase/interfaces"
)

// MemorySlot keeps the ledger in process memory. Contents are lost on restart.
type MemorySlot struct {
	mu   sync.RWMutex
	data []byte
}

var _ interfaces.ILedgerSlot = (*MemorySlot)(nil)

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (s *MemorySlot) Load(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, nil
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemorySlot) Store(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}
