package entities

// FieldError is a form validation failure tied to one input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	FieldTerms        = "terms"
	FieldCardNumber   = "card_number"
	FieldCardName     = "card_name"
	FieldCardExpiry   = "card_expiry"
	FieldCardCVV      = "card_cvv"
	FieldInstallments = "installments"
	FieldMethod       = "payment_method"

	TermsRequiredMessage = "Você deve aceitar os termos e condições"
)
