package handlers

import (
	"errors"
	request "geds_checkout/internal/adapter/http/dto/request"
	response "geds_checkout/internal/adapter/http/dto/response"
	"geds_checkout/internal/usecase"
	"geds_checkout/pkg"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler exposes the checkout session over HTTP.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// StartCheckout opens a session from the navigation query (?plan=&price=).
//
// @Summary      Start a checkout session
// @Tags         checkout
// @Produce      json
// @Param        plan   query     string  false  "Plan name"
// @Param        price  query     string  false  "Base price"
// @Success      201    {object}  response.CheckoutSessionResponse
// @Router       /checkout [post]
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	nav := usecase.NavigationParams{Plan: c.Query("plan"), Price: c.Query("price")}
	log.Printf("[checkout][handler] start plan=%q price=%q", nav.Plan, nav.Price)

	s, err := h.usecase.Start(c.Request.Context(), nav)
	if err != nil {
		log.Printf("[checkout][handler] start failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckoutSession(s))
}

// GetCheckout returns the current view of a session.
//
// @Summary      Get a checkout session
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.CheckoutSessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkout/{id} [get]
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(s))
}

// SelectMethod switches the payment tab.
//
// @Summary      Select the payment method
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Session ID"
// @Param        payload  body      request.SelectMethodRequest  true  "pix, boleto or card"
// @Success      200      {object}  response.CheckoutSessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /checkout/{id}/method [put]
func (h *CheckoutHandler) SelectMethod(c *gin.Context) {
	var payload request.SelectMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SelectMethod(c.Request.Context(), c.Param("id"), payload.Method)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(s))
}

// EditForm updates voucher text, card fields, installments or terms. A patch
// that sets no field is rejected.
//
// @Summary      Edit the checkout form
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Session ID"
// @Param        payload  body      request.FormPatchRequest  true  "Fields to change"
// @Success      200      {object}  response.CheckoutSessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /checkout/{id}/form [patch]
func (h *CheckoutHandler) EditForm(c *gin.Context) {
	var payload request.FormPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsEmpty() {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.EditForm(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(s))
}

// ApplyVoucher evaluates the voucher field. An empty body reuses the text
// already stored on the session.
//
// @Summary      Apply a voucher
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true   "Session ID"
// @Param        payload  body      request.ApplyVoucherRequest  false  "Voucher code"
// @Success      200      {object}  response.VoucherResponse
// @Failure      409      {object}  pkg.HTTPError
// @Router       /checkout/{id}/voucher [post]
func (h *CheckoutHandler) ApplyVoucher(c *gin.Context) {
	var payload request.ApplyVoucherRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	s, fb, err := h.usecase.ApplyVoucher(c.Request.Context(), c.Param("id"), payload.Code)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVoucher(s, fb))
}

// GetPix returns the PIX copia-e-cola payload for the payable amount.
//
// @Summary      Get the PIX payload
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.PixResponse
// @Router       /checkout/{id}/pix [get]
func (h *CheckoutHandler) GetPix(c *gin.Context) {
	p, err := h.usecase.PixPayload(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPixCode(p))
}

// CopyPix marks the payload as copied for the indicator window.
//
// @Summary      Mark the PIX payload as copied
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.PixResponse
// @Router       /checkout/{id}/pix/copy [post]
func (h *CheckoutHandler) CopyPix(c *gin.Context) {
	p, err := h.usecase.CopyPix(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPixCode(p))
}

// Submit finalizes the checkout.
//
// @Summary      Submit the checkout
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.CheckoutSessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /checkout/{id}/submit [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[checkout][handler] submit start session_id=%s", id)

	s, err := h.usecase.Submit(c.Request.Context(), id)
	if err != nil {
		log.Printf("[checkout][handler] submit failed session_id=%s err=%v", id, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] submit success session_id=%s method=%s amount=%s", s.ID, s.SelectedMethod, s.PayableAmount.StringFixed(2))
	c.JSON(http.StatusOK, response.FromCheckoutSession(s))
}

// DownloadReceipt serves the boleto PDF of a finalized session.
//
// @Summary      Download the boleto receipt
// @Tags         checkout
// @Produce      application/pdf
// @Param        id   path  string  true  "Session ID"
// @Success      200  {file}  file
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkout/{id}/receipt [get]
func (h *CheckoutHandler) DownloadReceipt(c *gin.Context) {
	rc, err := h.usecase.Receipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+rc.FileName+`"`)
	c.Data(http.StatusOK, rc.ContentType, rc.Content)
}

func mapCheckoutError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("CHECKOUT_VALIDATION_FAILED", "Checkout form is incomplete", err, http.StatusUnprocessableEntity).WithDetails(verr.Fields)
	case errors.Is(err, usecase.ErrInvalidCheckoutID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Payment method must be pix, boleto or card", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutSessionNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutAlreadyFinalized):
		return pkg.NewDomainErrorSimple("CHECKOUT_FINALIZED", "Checkout session already finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrReceiptNotAvailable):
		return pkg.NewDomainErrorSimple("RECEIPT_NOT_AVAILABLE", "No receipt for this checkout session", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReceiptGeneration):
		return pkg.NewDomainError("RECEIPT_GENERATION_FAILED", "Erro ao gerar PDF", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
