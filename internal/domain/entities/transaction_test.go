package entities

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransactionRecord_JSON(t *testing.T) {
	rec := TransactionRecord{
		ID:       1761919500000,
		Date:     "31/10/2025",
		Time:     "14:05",
		Method:   PaymentMethodPix,
		Amount:   decimal.RequireFromString("105"),
		PlanName: "Plano Pro",
		Status:   TransactionStatusConcluido,
	}

	t.Run("valor is a number with cents", func(t *testing.T) {
		b, err := json.Marshal(rec)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !strings.Contains(string(b), `"valor":105.00`) {
			t.Fatalf("expected numeric valor, got %s", b)
		}
		if strings.Count(string(b), `"valor"`) != 1 {
			t.Fatalf("valor written twice: %s", b)
		}
		var raw map[string]any
		if err := json.Unmarshal(b, &raw); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if v, ok := raw["valor"].(float64); !ok || v != 105 {
			t.Fatalf("expected float valor, got %#v", raw["valor"])
		}
		if raw["plano"] != "Plano Pro" || raw["metodo"] != "pix" || raw["hora"] != "14:05" {
			t.Fatalf("unexpected fields %v", raw)
		}
	})

	t.Run("round trip keeps the amount", func(t *testing.T) {
		b, _ := json.Marshal([]TransactionRecord{rec})
		var got []TransactionRecord
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(got) != 1 || !got[0].Amount.Equal(rec.Amount) || got[0].ID != rec.ID {
			t.Fatalf("unexpected records %+v", got)
		}
	})

	t.Run("quoted valor still decodes", func(t *testing.T) {
		var got TransactionRecord
		if err := json.Unmarshal([]byte(`{"id":5,"valor":"39.99","metodo":"boleto"}`), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.Amount.StringFixed(2) != "39.99" || got.Method != PaymentMethodBoleto {
			t.Fatalf("unexpected record %+v", got)
		}
	})
}
