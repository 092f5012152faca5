package interfaces

import "context"

// ILedgerSlot is a single named key-value slot holding the serialized history ledger.
//
// Load returns (nil, nil) when the slot has never been written.

type ILedgerSlot interface {
	Load(ctx context.Context) ([]byte, error)
	Store(ctx context.Context, data []byte) error
}
