package handlers

import (
	response "geds_checkout/internal/adapter/http/dto/response"
	"geds_checkout/internal/usecase/interfaces"
	"geds_checkout/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves the payment history ledger, newest first.
type HistoryHandler struct {
	ledger interfaces.IHistoryLedger
}

func NewHistoryHandler(ledger interfaces.IHistoryLedger) *HistoryHandler {
	return &HistoryHandler{ledger: ledger}
}

// ListHistory
//
// @Summary      List completed payments
// @Tags         history
// @Produce      json
// @Success      200  {object}  response.HistoryResponse
// @Router       /history [get]
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	recs, err := h.ledger.List(c.Request.Context())
	if err != nil {
		log.Printf("[history][handler] list failed err=%v", err)
		appErr := pkg.NewDomainError("HISTORY_UNAVAILABLE", "Payment history unavailable", err, http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(recs))
}
