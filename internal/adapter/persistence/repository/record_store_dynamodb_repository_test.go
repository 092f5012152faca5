package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"geds_checkout/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	queries  []*dynamodb.QueryInput
	puts     []*dynamodb.PutItemInput
	items    map[string][]map[string]types.AttributeValue
	queryErr error
	putErr   error
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	items := f.items[*in.TableName]
	return &dynamodb.QueryOutput{Items: items, Count: int32(len(items))}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func idItem(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
}

func TestRecordStoreDynamo_Lookups(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDynamo{items: map[string][]map[string]types.AttributeValue{
		defaultUsersTableName: {idItem("u-1")},
	}}
	store := NewRecordStoreDynamoRepository(fake)

	u, err := store.FindUserByEmail(ctx, "edmilson@gedsinovacao.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)

	q := fake.queries[0]
	assert.Equal(t, defaultUsersEmailIndex, *q.IndexName)
	assert.Equal(t, "email", q.ExpressionAttributeNames["#k"])
	assert.Equal(t, "edmilson@gedsinovacao.com", q.ExpressionAttributeValues[":v"].(*types.AttributeValueMemberS).Value)

	p, err := store.FindPlanByName(ctx, "Plano Premium")
	require.NoError(t, err)
	assert.Empty(t, p.ID)
	assert.Equal(t, defaultPlansNameIndex, *fake.queries[1].IndexName)

	fake.queryErr = errors.New("throttled")
	_, err = store.FindUserByEmail(ctx, "x")
	assert.EqualError(t, err, "throttled")
}

func TestRecordStoreDynamo_InsertPayment(t *testing.T) {
	fake := &fakeDynamo{}
	store := NewRecordStoreDynamoRepository(fake)
	rec := entities.PaymentRecord{
		ID:           "pay-1",
		UserID:       "u-1",
		PlanID:       "p-1",
		Amount:       decimal.RequireFromString("39.992"),
		Method:       entities.PaymentMethodBoleto,
		Status:       entities.PaymentStatusConcluido,
		Installments: 1,
		PaidAt:       time.Date(2025, 10, 31, 17, 5, 0, 0, time.UTC),
	}

	_, err := store.InsertPayment(context.Background(), rec)
	require.NoError(t, err)
	require.Len(t, fake.puts, 1)
	assert.Equal(t, defaultPaymentsTableName, *fake.puts[0].TableName)

	var it paymentItem
	require.NoError(t, attributevalue.UnmarshalMap(fake.puts[0].Item, &it))
	assert.Equal(t, "39.99", it.Valor)
	assert.Equal(t, "boleto", it.MetodoPagamento)
	assert.Equal(t, "concluido", it.Status)
	assert.Nil(t, it.CodigoVoucher)
	assert.Nil(t, it.CartaoFinal)
	assert.Equal(t, "2025-10-31T17:05:00Z", it.DataPagamento)

	fake.putErr = errors.New("conditional check failed")
	_, err = store.InsertPayment(context.Background(), rec)
	assert.Error(t, err)
}
