package repository

import (
	"context"
	"time"

	"geds_checkout/internal/domain/entities"
	"geds_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName    = "usuarios"
	defaultPlansTableName    = "planos"
	defaultPaymentsTableName = "pagamentos"
	defaultUsersEmailIndex   = "email-index"
	defaultPlansNameIndex    = "nome-index"
)

// dynamoAPI is the subset of *dynamodb.Client the record store needs.
type dynamoAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type refItem struct {
	ID string `dynamodbav:"id"`
}

type paymentItem struct {
	ID              string  `dynamodbav:"id"`
	UsuarioID       string  `dynamodbav:"usuario_id"`
	PlanoID         string  `dynamodbav:"plano_id"`
	Valor           string  `dynamodbav:"valor"`
	MetodoPagamento string  `dynamodbav:"metodo_pagamento"`
	Status          string  `dynamodbav:"status"`
	CodigoVoucher   *string `dynamodbav:"codigo_voucher"`
	Parcelas        int     `dynamodbav:"parcelas"`
	CartaoFinal     *string `dynamodbav:"cartao_final"`
	DataPagamento   string  `dynamodbav:"data_pagamento"`
}

// RecordStoreDynamoRepository mirrors completed payments into DynamoDB.
//
// Table requirements:
//   - usuarios: PK id, GSI email-index (email)
//   - planos: PK id, GSI nome-index (nome)
//   - pagamentos: PK id

type RecordStoreDynamoRepository struct {
	ddb           dynamoAPI
	usersTable    string
	plansTable    string
	paymentsTable string
	emailIndex    string
	nameIndex     string
}

var _ interfaces.IRecordStore = (*RecordStoreDynamoRepository)(nil)

func NewRecordStoreDynamoRepository(ddb dynamoAPI) *RecordStoreDynamoRepository {
	return &RecordStoreDynamoRepository{
		ddb:           ddb,
		usersTable:    getenvDefault("USERS_TABLE", defaultUsersTableName),
		plansTable:    getenvDefault("PLANS_TABLE", defaultPlansTableName),
		paymentsTable: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		emailIndex:    getenvDefault("USERS_EMAIL_INDEX", defaultUsersEmailIndex),
		nameIndex:     getenvDefault("PLANS_NAME_INDEX", defaultPlansNameIndex),
	}
}

func (r *RecordStoreDynamoRepository) FindUserByEmail(ctx context.Context, email string) (entities.UserRef, error) {
	id, err := r.findID(ctx, r.usersTable, r.emailIndex, "email", email)
	if err != nil {
		return entities.UserRef{}, err
	}
	return entities.UserRef{ID: id}, nil
}

func (r *RecordStoreDynamoRepository) FindPlanByName(ctx context.Context, name string) (entities.PlanRef, error) {
	id, err := r.findID(ctx, r.plansTable, r.nameIndex, "nome", name)
	if err != nil {
		return entities.PlanRef{}, err
	}
	return entities.PlanRef{ID: id}, nil
}

func (r *RecordStoreDynamoRepository) findID(ctx context.Context, table, index, attr, value string) (string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return "", err
	}
	if len(out.Items) == 0 {
		return "", nil
	}
	var it refItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return "", err
	}
	return it.ID, nil
}

func (r *RecordStoreDynamoRepository) InsertPayment(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.paymentsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func toPaymentItem(p entities.PaymentRecord) paymentItem {
	return paymentItem{
		ID:              p.ID,
		UsuarioID:       p.UserID,
		PlanoID:         p.PlanID,
		Valor:           p.Amount.StringFixed(2),
		MetodoPagamento: p.Method.StorageName(),
		Status:          p.Status,
		CodigoVoucher:   p.VoucherCode,
		Parcelas:        p.Installments,
		CartaoFinal:     p.CardLastFour,
		DataPagamento:   p.PaidAt.UTC().Format(time.RFC3339Nano),
	}
}
