package receipt

import (
	"bytes"
	"io"
	"testing"

	"geds_checkout/internal/domain/entities"

	"github.com/ledongthuc/pdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFExporter_Export(t *testing.T) {
	out, err := NewPDFExporter().Export(entities.ReceiptData{
		Organization: "GEDS INOVAÇÃO",
		PlanName:     "Plano Pro",
		Amount:       decimal.RequireFromString("1234.5"),
		Barcode:      "23790.12345 00042.678901 12345.123456 1 99990000123450",
	})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "not a pdf")

	r, err := pdf.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	assert.Equal(t, 1, r.NumPage())

	plain, err := r.GetPlainText()
	require.NoError(t, err)
	text, err := io.ReadAll(plain)
	require.NoError(t, err)
	assert.Contains(t, string(text), "DETALHES DO PEDIDO")
	assert.Contains(t, string(text), "Plano Pro")
	assert.Contains(t, string(text), "99990000123450")
}
