package handlers

import (
	"net/http"

	"fulfillment_engine/internal/adapter/http/dto/request"
	"fulfillment_engine/internal/adapter/http/dto/response"
	"fulfillment_engine/internal/adapter/http/middleware"
	"fulfillment_engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ExtensionHandler struct {
	usecase usecase.IExtensionUseCase
}

func NewExtensionHandler(uc usecase.IExtensionUseCase) *ExtensionHandler {
	return &ExtensionHandler{usecase: uc}
}

// RequestExtension opens a due-date extension for the order in the path.
//
// @Summary Request a due date extension
// @Tags extensions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Param request body request.RequestExtensionRequest true "payload"
// @Success 201 {object} response.ExtensionRequestResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /orders/{id}/extensions [post]
func (h *ExtensionHandler) RequestExtension(c *gin.Context) {
	var req request.RequestExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ext, err := h.usecase.RequestExtension(c.Request.Context(), usecase.RequestExtensionCommand{
		OrderID:     c.Param("id"),
		Reason:      req.Reason,
		RequestedBy: middleware.PrincipalID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromExtensionRequest(ext))
}

// @Summary List extension requests of an order
// @Tags extensions
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 200 {array} response.ExtensionRequestResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /orders/{id}/extensions [get]
func (h *ExtensionHandler) ListByOrder(c *gin.Context) {
	reqs, err := h.usecase.ListByOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExtensionRequests(reqs))
}

// @Summary Approve or reject an extension request
// @Tags extensions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Param request body request.ResolveExtensionRequest true "payload"
// @Success 200 {object} response.ExtensionRequestResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /extension-requests/{id}/resolve [post]
func (h *ExtensionHandler) Resolve(c *gin.Context) {
	var req request.ResolveExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ext, err := h.usecase.ResolveExtension(c.Request.Context(), req.ToCommand(c.Param("id"), middleware.PrincipalID(c)))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExtensionRequest(ext))
}
