package handlers

import (
	"net/http"

	"fulfillment_engine/internal/adapter/http/dto/request"
	"fulfillment_engine/internal/adapter/http/dto/response"
	"fulfillment_engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

// @Summary Create a workflow definition
// @Tags workflows
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body request.CreateWorkflowRequest true "payload"
// @Success 201 {object} response.WorkflowResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /workflows [post]
func (h *WorkflowHandler) CreateWorkflow(c *gin.Context) {
	var req request.CreateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	wf, err := h.usecase.CreateWorkflow(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkflow(wf))
}

// @Summary Get a workflow definition
// @Tags workflows
// @Produce json
// @Security Bearer
// @Param id path string true "ID"
// @Success 200 {object} response.WorkflowResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /workflows/{id} [get]
func (h *WorkflowHandler) GetWorkflow(c *gin.Context) {
	wf, err := h.usecase.GetWorkflow(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkflow(wf))
}

// @Summary List workflow definitions
// @Tags workflows
// @Produce json
// @Security Bearer
// @Success 200 {array} response.WorkflowResponse
// @Router /workflows [get]
func (h *WorkflowHandler) ListWorkflows(c *gin.Context) {
	wfs, err := h.usecase.ListWorkflows(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkflows(wfs))
}
