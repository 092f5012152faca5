package routes

import (
	"geds_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathHistory  = "/history"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("", checkoutHandler.StartCheckout)
		checkout.GET("/:id", checkoutHandler.GetCheckout)
		checkout.PUT("/:id/method", checkoutHandler.SelectMethod)
		checkout.PATCH("/:id/form", checkoutHandler.EditForm)
		checkout.POST("/:id/voucher", checkoutHandler.ApplyVoucher)
		checkout.GET("/:id/pix", checkoutHandler.GetPix)
		checkout.POST("/:id/pix/copy", checkoutHandler.CopyPix)
		checkout.POST("/:id/submit", checkoutHandler.Submit)
		checkout.GET("/:id/receipt", checkoutHandler.DownloadReceipt)
	}
}

func addHistoryRoutes(rg *gin.RouterGroup, historyHandler *handlers.HistoryHandler) {
	rg.GET(PathHistory, historyHandler.ListHistory)
}
