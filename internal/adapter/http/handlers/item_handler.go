package handlers

import (
	"net/http"

	"fulfillment_engine/internal/adapter/http/dto/request"
	"fulfillment_engine/internal/adapter/http/dto/response"
	"fulfillment_engine/internal/adapter/http/middleware"
	"fulfillment_engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ItemHandler exposes the per-item state machine and routing.
type ItemHandler struct {
	lifecycle usecase.ILifecycleUseCase
	routing   usecase.IRoutingUseCase
}

func NewItemHandler(lifecycle usecase.ILifecycleUseCase, routing usecase.IRoutingUseCase) *ItemHandler {
	return &ItemHandler{lifecycle: lifecycle, routing: routing}
}

// @Summary Get an order item
// @Tags order-items
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 200 {object} response.OrderItemResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /order-items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	item, err := h.lifecycle.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderItem(item))
}

// @Summary Assign department and technicians
// @Tags order-items
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Param request body request.AssignItemRequest true "payload"
// @Success 200 {object} response.OrderItemResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /order-items/{id}/assign [post]
func (h *ItemHandler) Assign(c *gin.Context) {
	var req request.AssignItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	item, err := h.lifecycle.Assign(c.Request.Context(), c.Param("id"), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderItem(item))
}

// @Summary Start work on an item
// @Tags order-items
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 200 {object} response.OrderItemResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /order-items/{id}/start [post]
func (h *ItemHandler) Start(c *gin.Context) {
	item, err := h.lifecycle.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderItem(item))
}

// Complete finishes a batch of items; either all of them complete or none.
//
// @Summary Complete a batch of items, all or nothing
// @Tags order-items
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body request.CompleteItemsRequest true "payload"
// @Success 200 {array} response.OrderItemResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /order-items/complete [post]
func (h *ItemHandler) Complete(c *gin.Context) {
	var req request.CompleteItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	items, err := h.lifecycle.Complete(c.Request.Context(), req.ItemIDs, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderItems(items))
}

// @Summary Mark an item failed
// @Tags order-items
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Param request body request.ReasonRequest true "payload"
// @Success 200 {object} response.OrderItemResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /order-items/{id}/fail [post]
func (h *ItemHandler) Fail(c *gin.Context) {
	var req request.ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	item, err := h.lifecycle.Fail(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderItem(item))
}

// @Summary Skip an item
// @Tags order-items
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Param request body request.ReasonRequest true "payload"
// @Success 200 {object} response.OrderItemResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /order-items/{id}/skip [post]
func (h *ItemHandler) Skip(c *gin.Context) {
	var req request.ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	item, err := h.lifecycle.Skip(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderItem(item))
}

// @Summary Route an item to a department
// @Tags routing
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Param request body request.MoveItemRequest true "payload"
// @Success 201 {object} response.RoutingEventResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /order-items/{id}/move [post]
func (h *ItemHandler) Move(c *gin.Context) {
	var req request.MoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ev, err := h.routing.MoveToDepartment(c.Request.Context(), req.ToCommand(c.Param("id"), middleware.PrincipalID(c)))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRoutingEvent(ev))
}

// Advance moves the item to the next step of its workflow.
//
// @Summary Advance an item to its next workflow step
// @Tags routing
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 201 {object} response.RoutingEventResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /order-items/{id}/advance [post]
func (h *ItemHandler) Advance(c *gin.Context) {
	ev, err := h.routing.AdvanceWorkflow(c.Request.Context(), c.Param("id"), middleware.PrincipalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRoutingEvent(ev))
}

// SkipStep passes over the next workflow step when it is optional.
//
// @Summary Skip an optional workflow step
// @Tags routing
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Param request body request.ReasonRequest true "payload"
// @Success 200 {object} response.OrderItemResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /order-items/{id}/skip-step [post]
func (h *ItemHandler) SkipStep(c *gin.Context) {
	var req request.ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	item, err := h.routing.SkipWorkflowStep(c.Request.Context(), c.Param("id"), req.Reason, middleware.PrincipalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderItem(item))
}

// @Summary Routing history of an item
// @Tags routing
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 200 {array} response.RoutingEventResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /order-items/{id}/routing [get]
func (h *ItemHandler) ListRouting(c *gin.Context) {
	events, err := h.routing.ListItemRouting(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRoutingEvents(events))
}
