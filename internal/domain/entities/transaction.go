package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionStatusConcluido = "Concluído"
	PaymentStatusConcluido     = "concluido"
)

// TransactionRecord is one entry of the local history ledger.
//
// JSON field names follow the ledger slot format shared with the web client
// (key "historicoPagamentos").
type TransactionRecord struct {
	ID       int64           `json:"id"`
	Date     string          `json:"data"`
	Time     string          `json:"hora"`
	Method   PaymentMethod   `json:"metodo"`
	Amount   decimal.Decimal `json:"valor"`
	PlanName string          `json:"plano"`
	Status   string          `json:"status"`
}

// MarshalJSON writes valor as a number with two decimals. Both numeric and
// quoted valor values decode.
func (r TransactionRecord) MarshalJSON() ([]byte, error) {
	type plain TransactionRecord
	return json.Marshal(struct {
		plain
		Amount json.Number `json:"valor"`
	}{plain(r), json.Number(r.Amount.StringFixed(2))})
}

// UserRef and PlanRef are the ids resolved from the record store. An empty ID
// means the lookup found nothing.
type UserRef struct {
	ID string
}

type PlanRef struct {
	ID string
}

// PaymentRecord is the row mirrored to the external record store.
//
// Storage model:
//   - DynamoDB table pagamentos, PK: id
//   - Postgres table pagamentos (usuario_id, plano_id, valor, metodo_pagamento, status,
//     codigo_voucher, parcelas, cartao_final, data_pagamento)
//
// VoucherCode is set only when a discount was applied. CardLastFour only for card payments.

type PaymentRecord struct {
	ID           string
	UserID       string
	PlanID       string
	Amount       decimal.Decimal
	Method       PaymentMethod
	Status       string
	VoucherCode  *string
	Installments int
	CardLastFour *string
	PaidAt       time.Time
}

// PersistRequest carries what the persistence step needs from a finalized session.
type PersistRequest struct {
	SessionID    string
	PlanName     string
	Amount       decimal.Decimal
	Method       PaymentMethod
	VoucherCode  string
	Installments int
	CardLastFour string
	PaidAt       time.Time
}

type PersistStatus string

const (
	PersistStatusPersisted PersistStatus = "persisted"
	PersistStatusSkipped   PersistStatus = "skipped"
	PersistStatusFailed    PersistStatus = "failed"
)

// PersistOutcome reports what happened to the best-effort record store mirror.
type PersistOutcome struct {
	SessionID string
	Status    PersistStatus
	PaymentID string
	UserID    string
	PlanID    string
	Reason    string
	Err       error
}

// ReceiptData is the content printed on a boleto receipt.
type ReceiptData struct {
	Organization string
	PlanName     string
	Amount       decimal.Decimal
	Barcode      string
}
