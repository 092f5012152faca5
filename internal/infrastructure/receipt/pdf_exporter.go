package receipt

import (
	"bytes"
	"fmt"

	"geds_checkout/internal/domain/entities"
	"geds_checkout/internal/domain/pricing"
	"geds_checkout/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

// PDFExporter renders the single-page boleto receipt.
//
// Layout (A4, mm):
//   - black header band 210x40 with the organization name in white, 22pt
//   - "DETALHES DO PEDIDO" at y=60
//   - plan, amount and barcode lines at y=75, 85, 100
type PDFExporter struct{}

var _ interfaces.IReceiptExporter = PDFExporter{}

func NewPDFExporter() PDFExporter {
	return PDFExporter{}
}

func (PDFExporter) Export(d entities.ReceiptData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(d.Organization+" - boleto"), false)
	pdf.AddPage()

	pdf.SetFillColor(0, 0, 0)
	pdf.Rect(0, 0, 210, 40, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(50, 20, tr(d.Organization))

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, 60, "DETALHES DO PEDIDO")

	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(20, 75, tr("Plano: "+d.PlanName))
	pdf.Text(20, 85, tr("Valor: "+pricing.FormatBRL(d.Amount)))
	pdf.Text(20, 100, tr("Código de Barras:"))
	// The full line does not fit after the label at 14pt.
	pdf.SetFont("Courier", "", 12)
	pdf.Text(20, 108, d.Barcode)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write receipt: %w", err)
	}
	return buf.Bytes(), nil
}
