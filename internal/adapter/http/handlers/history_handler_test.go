package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"geds_checkout/internal/domain/entities"
	mock_interfaces "geds_checkout/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestHistoryHandler_ListHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIHistoryLedger(ctrl)
		h := NewHistoryHandler(ledger)
		r := gin.New()
		r.GET("/v1/history", h.ListHistory)

		ledger.EXPECT().List(gomock.Any()).Return([]entities.TransactionRecord{
			{ID: 2, Date: "31/10/2025", Time: "14:05", Method: entities.PaymentMethodPix, Amount: decimal.RequireFromString("39.99"), PlanName: "Plano Premium", Status: entities.TransactionStatusConcluido},
			{ID: 1, Date: "30/10/2025", Time: "09:00", Method: entities.PaymentMethodBoleto, Amount: decimal.RequireFromString("49.99"), PlanName: "Plano Premium", Status: entities.TransactionStatusConcluido},
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/history", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Count        int `json:"count"`
			Transactions []struct {
				ID     int64  `json:"id"`
				Status string `json:"status"`
			} `json:"transactions"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Count != 2 || body.Transactions[0].ID != 2 || body.Transactions[0].Status != "Concluído" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledger := mock_interfaces.NewMockIHistoryLedger(ctrl)
		h := NewHistoryHandler(ledger)
		r := gin.New()
		r.GET("/v1/history", h.ListHistory)

		ledger.EXPECT().List(gomock.Any()).Return(nil, errors.New("redis down"))

		w := doRequest(r, http.MethodGet, "/v1/history", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
