package repository

import (
	"context"
	"database/sql"
	"errors"

	"geds_checkout/internal/domain/entities"
	"geds_checkout/internal/usecase/interfaces"
)

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const (
	queryUserIDByEmail = `SELECT id::text FROM usuarios WHERE email = $1 LIMIT 1`
	queryPlanIDByName  = `SELECT id::text FROM planos WHERE nome = $1 LIMIT 1`
	insertPayment      = `INSERT INTO pagamentos
		(id, usuario_id, plano_id, valor, metodo_pagamento, status, codigo_voucher, parcelas, cartao_final, data_pagamento)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
)

// RecordStorePostgresRepository mirrors completed payments into the Postgres
// schema shared with the web front end (usuarios, planos, pagamentos).

type RecordStorePostgresRepository struct {
	db Querier
}

var _ interfaces.IRecordStore = (*RecordStorePostgresRepository)(nil)

func NewRecordStorePostgresRepository(db Querier) *RecordStorePostgresRepository {
	return &RecordStorePostgresRepository{db: db}
}

func (r *RecordStorePostgresRepository) FindUserByEmail(ctx context.Context, email string) (entities.UserRef, error) {
	id, err := r.scanID(ctx, queryUserIDByEmail, email)
	if err != nil {
		return entities.UserRef{}, err
	}
	return entities.UserRef{ID: id}, nil
}

func (r *RecordStorePostgresRepository) FindPlanByName(ctx context.Context, name string) (entities.PlanRef, error) {
	id, err := r.scanID(ctx, queryPlanIDByName, name)
	if err != nil {
		return entities.PlanRef{}, err
	}
	return entities.PlanRef{ID: id}, nil
}

func (r *RecordStorePostgresRepository) scanID(ctx context.Context, query, arg string) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return id, err
}

func (r *RecordStorePostgresRepository) InsertPayment(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	_, err := r.db.ExecContext(ctx, insertPayment,
		p.ID,
		p.UserID,
		p.PlanID,
		p.Amount,
		p.Method.StorageName(),
		p.Status,
		p.VoucherCode,
		p.Installments,
		p.CardLastFour,
		p.PaidAt.UTC(),
	)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return p, nil
}
