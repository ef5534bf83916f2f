package handlers

import (
	"net/http"

	"fulfillment_engine/internal/adapter/http/dto/response"
	"fulfillment_engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler serves invoices and the commissions they produce.
type InvoiceHandler struct {
	orders      usecase.IOrderUseCase
	commissions usecase.ICommissionUseCase
}

func NewInvoiceHandler(orders usecase.IOrderUseCase, commissions usecase.ICommissionUseCase) *InvoiceHandler {
	return &InvoiceHandler{orders: orders, commissions: commissions}
}

// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 200 {object} response.InvoiceResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.orders.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// MarkPaid records payment outside the provider flow and returns the
// commissions created for it.
//
// @Summary Mark an invoice paid and create its commissions
// @Tags invoices
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 200 {array} response.CommissionResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /invoices/{id}/paid [post]
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	cs, err := h.commissions.MarkInvoicePaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCommissions(cs))
}

// @Summary Commissions of an invoice
// @Tags commissions
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 200 {array} response.CommissionResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /invoices/{id}/commissions [get]
func (h *InvoiceHandler) ListCommissions(c *gin.Context) {
	cs, err := h.commissions.ListByInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCommissions(cs))
}

// @Summary Commissions earned by a user
// @Tags commissions
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 200 {array} response.CommissionResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /users/{id}/commissions [get]
func (h *InvoiceHandler) ListUserCommissions(c *gin.Context) {
	cs, err := h.commissions.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCommissions(cs))
}
