package handlers

import (
	"net/http"

	"fulfillment_engine/internal/adapter/http/dto/request"
	"fulfillment_engine/internal/adapter/http/dto/response"
	"fulfillment_engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for orders and their invoices.
type OrderHandler struct {
	orders usecase.IOrderUseCase
	items  usecase.ILifecycleUseCase
}

func NewOrderHandler(orders usecase.IOrderUseCase, items usecase.ILifecycleUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, items: items}
}

// @Summary Create an order with its lines
// @Tags orders
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body request.CreateOrderRequest true "payload"
// @Success 201 {object} response.OrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	details, err := h.orders.CreateOrder(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrderDetails(details))
}

// @Summary Get an order with items and progress
// @Tags orders
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 200 {object} response.OrderResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	details, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDetails(details))
}

// @Summary Get order progress
// @Tags orders
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 200 {object} response.ProgressResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /orders/{id}/progress [get]
func (h *OrderHandler) GetProgress(c *gin.Context) {
	progress, err := h.orders.GetProgress(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProgress(progress))
}

// @Summary List order items
// @Tags orders
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 200 {array} response.OrderItemResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /orders/{id}/items [get]
func (h *OrderHandler) ListItems(c *gin.Context) {
	items, err := h.items.ListOrderItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderItems(items))
}

// IssueInvoice bills a fully processed order.
//
// @Summary Issue the invoice of a fully processed order
// @Tags invoices
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 201 {object} response.InvoiceResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /orders/{id}/invoice [post]
func (h *OrderHandler) IssueInvoice(c *gin.Context) {
	inv, err := h.orders.IssueInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}
