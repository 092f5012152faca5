package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"geds_checkout/internal/adapter/persistence/repository"
	"geds_checkout/internal/config"
	"geds_checkout/internal/infrastructure/ledger"
	"geds_checkout/internal/infrastructure/receipt"
	"geds_checkout/internal/infrastructure/scheduler"
	"geds_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	redirects := scheduler.NewRedirectScheduler(nil)
	t.Cleanup(redirects.Stop)

	history := usecase.NewHistoryLedger(ledger.NewMemorySlot(), 0, nil)
	uc := usecase.NewCheckoutUseCase(
		repository.NewCheckoutSessionMemoryRepository(),
		history,
		usecase.NewPaymentRecorder(nil, ""),
		nil,
		receipt.NewPDFExporter(),
		redirects,
		usecase.DefaultCheckoutConfig(),
	)
	return NewRouter(Dependencies{Checkout: uc, Ledger: history})
}

func call(t *testing.T, r http.Handler, method, path, body string, out any) int {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil && w.Code < 300 {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: invalid json: %v", method, path, err)
		}
	}
	return w.Code
}

type sessionView struct {
	ID            string `json:"id"`
	State         string `json:"state"`
	PayableAmount struct {
		Value string `json:"value"`
	} `json:"payable_amount"`
	ReceiptAvailable bool `json:"receipt_available"`
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)
	var body map[string]string
	if code := call(t, r, http.MethodGet, "/v1/ping", "", &body); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["message"] != "pong" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCheckoutFlow_PixWithVoucher(t *testing.T) {
	r := newTestRouter(t)

	var s sessionView
	if code := call(t, r, http.MethodPost, "/v1/checkout?plan=Plano%20Premium&price=150", "", &s); code != http.StatusCreated {
		t.Fatalf("start: expected 201, got %d", code)
	}
	base := "/v1/checkout/" + s.ID

	var v struct {
		Session sessionView `json:"session"`
	}
	if code := call(t, r, http.MethodPost, base+"/voucher", `{"code":"out31/10"}`, &v); code != http.StatusOK {
		t.Fatalf("voucher: expected 200, got %d", code)
	}
	if v.Session.PayableAmount.Value != "105.00" {
		t.Fatalf("expected 105.00, got %s", v.Session.PayableAmount.Value)
	}

	if code := call(t, r, http.MethodPost, base+"/submit", "", nil); code != http.StatusUnprocessableEntity {
		t.Fatalf("submit without terms: expected 422, got %d", code)
	}

	if code := call(t, r, http.MethodPatch, base+"/form", `{"terms":true}`, nil); code != http.StatusOK {
		t.Fatalf("form: expected 200, got %d", code)
	}
	if code := call(t, r, http.MethodPost, base+"/submit", "", &s); code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d", code)
	}
	if s.State != "finalized" || s.ReceiptAvailable {
		t.Fatalf("unexpected session after submit: %+v", s)
	}

	if code := call(t, r, http.MethodPost, base+"/submit", "", nil); code != http.StatusConflict {
		t.Fatalf("resubmit: expected 409, got %d", code)
	}
	if code := call(t, r, http.MethodGet, base+"/receipt", "", nil); code != http.StatusNotFound {
		t.Fatalf("receipt: expected 404, got %d", code)
	}

	var h struct {
		Count        int `json:"count"`
		Transactions []struct {
			Method string `json:"metodo"`
			Amount struct {
				Value string `json:"value"`
			} `json:"valor"`
		} `json:"transactions"`
	}
	if code := call(t, r, http.MethodGet, "/v1/history", "", &h); code != http.StatusOK {
		t.Fatalf("history: expected 200, got %d", code)
	}
	if h.Count != 1 || h.Transactions[0].Method != "pix" || h.Transactions[0].Amount.Value != "105.00" {
		t.Fatalf("unexpected history: %+v", h)
	}
}

func TestCheckoutFlow_BoletoReceipt(t *testing.T) {
	r := newTestRouter(t)

	var s sessionView
	if code := call(t, r, http.MethodPost, "/v1/checkout", "", &s); code != http.StatusCreated {
		t.Fatalf("start: expected 201, got %d", code)
	}
	base := "/v1/checkout/" + s.ID

	if code := call(t, r, http.MethodPut, base+"/method", `{"method":"boleto"}`, nil); code != http.StatusOK {
		t.Fatalf("method: expected 200, got %d", code)
	}
	if code := call(t, r, http.MethodPatch, base+"/form", `{"terms":true}`, nil); code != http.StatusOK {
		t.Fatalf("form: expected 200, got %d", code)
	}
	if code := call(t, r, http.MethodPost, base+"/submit", "", &s); code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d", code)
	}
	if !s.ReceiptAvailable {
		t.Fatalf("expected receipt to be available")
	}

	req := httptest.NewRequest(http.MethodGet, base+"/receipt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("receipt: expected 200, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/pdf" || !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected a pdf, got %q", w.Header().Get("Content-Type"))
	}
}

func TestCheckoutConfig_FromEnvConfig(t *testing.T) {
	t.Setenv("CHECKOUT_ORGANIZATION", "ACME")
	t.Setenv("PIX_KEY", "chave@pix")
	t.Setenv("PIX_MERCHANT_CITY", "RECIFE")

	got := checkoutConfig(config.Load().Checkout)
	if got.Merchant.Key != "chave@pix" || got.Merchant.City != "RECIFE" || got.Organization != "ACME" {
		t.Fatalf("unexpected checkout config: %+v", got)
	}
}
