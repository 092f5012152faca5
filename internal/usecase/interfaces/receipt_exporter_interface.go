package interfaces

import "geds_checkout/internal/domain/entities"

// IReceiptExporter renders a boleto receipt document.
type IReceiptExporter interface {
	Export(data entities.ReceiptData) ([]byte, error)
}
