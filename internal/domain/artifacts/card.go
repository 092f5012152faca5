package artifacts

import (
	"errors"
	"regexp"

	"geds_checkout/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

// cardForm mirrors entities.CardDetails with the rules applied on submit.
type cardForm struct {
	Number       string `validate:"min=16"`
	HolderName   string `validate:"min=3"`
	Expiry       string `validate:"card_expiry"`
	CVV          string `validate:"min=3"`
	Installments int    `validate:"oneof=1 2 3"`
}

var cardFieldErrors = map[string]entities.FieldError{
	"Number":       {Field: entities.FieldCardNumber, Message: "Número do cartão inválido"},
	"HolderName":   {Field: entities.FieldCardName, Message: "Nome no cartão é obrigatório"},
	"Expiry":       {Field: entities.FieldCardExpiry, Message: "Data inválida (MM/AA)"},
	"CVV":          {Field: entities.FieldCardCVV, Message: "CVV inválido"},
	"Installments": {Field: entities.FieldInstallments, Message: "Parcelas obrigatórias"},
}

var cardValidator = newCardValidator()

func newCardValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("card_expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidateCard checks every card rule independently and returns one error per
// failing field, in form order. A nil result means the card is acceptable.
func ValidateCard(c entities.CardDetails) []entities.FieldError {
	err := cardValidator.Struct(cardForm{
		Number:       c.Number,
		HolderName:   c.HolderName,
		Expiry:       c.Expiry,
		CVV:          c.CVV,
		Installments: c.Installments,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []entities.FieldError{{Field: "card", Message: err.Error()}}
	}

	out := make([]entities.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		if m, ok := cardFieldErrors[fe.StructField()]; ok {
			out = append(out, m)
		}
	}
	return out
}
