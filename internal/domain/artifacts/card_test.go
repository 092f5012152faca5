package artifacts

import (
	"testing"

	"geds_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validCard() entities.CardDetails {
	return entities.CardDetails{
		Number:       "4111 1111 1111 1111",
		HolderName:   "JOAO SILVA",
		Expiry:       "12/29",
		CVV:          "123",
		Installments: 2,
	}
}

func fields(errs []entities.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateCard(t *testing.T) {
	t.Run("valid card", func(t *testing.T) {
		assert.Empty(t, ValidateCard(validCard()))
	})

	t.Run("every rule reported together", func(t *testing.T) {
		errs := ValidateCard(entities.CardDetails{})
		assert.Equal(t, []entities.FieldError{
			{Field: entities.FieldCardNumber, Message: "Número do cartão inválido"},
			{Field: entities.FieldCardName, Message: "Nome no cartão é obrigatório"},
			{Field: entities.FieldCardExpiry, Message: "Data inválida (MM/AA)"},
			{Field: entities.FieldCardCVV, Message: "CVV inválido"},
			{Field: entities.FieldInstallments, Message: "Parcelas obrigatórias"},
		}, errs)
	})

	cases := []struct {
		name   string
		mutate func(*entities.CardDetails)
		field  string
	}{
		{name: "short number", mutate: func(c *entities.CardDetails) { c.Number = "4111 1111 1111" }, field: entities.FieldCardNumber},
		{name: "short holder", mutate: func(c *entities.CardDetails) { c.HolderName = "Jo" }, field: entities.FieldCardName},
		{name: "month 13", mutate: func(c *entities.CardDetails) { c.Expiry = "13/25" }, field: entities.FieldCardExpiry},
		{name: "month 00", mutate: func(c *entities.CardDetails) { c.Expiry = "00/25" }, field: entities.FieldCardExpiry},
		{name: "four digit year", mutate: func(c *entities.CardDetails) { c.Expiry = "12/2025" }, field: entities.FieldCardExpiry},
		{name: "short cvv", mutate: func(c *entities.CardDetails) { c.CVV = "12" }, field: entities.FieldCardCVV},
		{name: "installments missing", mutate: func(c *entities.CardDetails) { c.Installments = 0 }, field: entities.FieldInstallments},
		{name: "installments above 3", mutate: func(c *entities.CardDetails) { c.Installments = 4 }, field: entities.FieldInstallments},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCard()
			tc.mutate(&c)
			assert.Equal(t, []string{tc.field}, fields(ValidateCard(c)))
		})
	}

	t.Run("sixteen digits without spaces", func(t *testing.T) {
		c := validCard()
		c.Number = "4111111111111111"
		c.CVV = "1234"
		assert.Empty(t, ValidateCard(c))
	})
}

func TestInstallmentOptions(t *testing.T) {
	opts := InstallmentOptions(decimal.RequireFromString("100"))
	assert.Len(t, opts, 3)
	assert.Equal(t, "1x de R$ 100,00", opts[0].Label)
	assert.Equal(t, "2x de R$ 50,00", opts[1].Label)
	assert.Equal(t, "3x de R$ 33,33", opts[2].Label)
	assert.Equal(t, "33.33", opts[2].Amount.StringFixed(2))
}
