package handlers

import (
	"errors"
	"net/http"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase"
	"fulfillment_engine/pkg"

	"github.com/gin-gonic/gin"
)

var notFoundErrors = []struct {
	err  error
	code string
	msg  string
}{
	{usecase.ErrOrderNotFound, "ORDER_NOT_FOUND", "Order not found"},
	{usecase.ErrOrderItemNotFound, "ORDER_ITEM_NOT_FOUND", "Order item not found"},
	{usecase.ErrRoutingEventNotFound, "ROUTING_EVENT_NOT_FOUND", "Routing event not found"},
	{usecase.ErrExtensionRequestNotFound, "EXTENSION_REQUEST_NOT_FOUND", "Extension request not found"},
	{usecase.ErrInvoiceNotFound, "INVOICE_NOT_FOUND", "Invoice not found"},
	{usecase.ErrWorkflowNotFound, "WORKFLOW_NOT_FOUND", "Workflow not found"},
}

func mapDomainError(err error) *pkg.AppError {
	for _, nf := range notFoundErrors {
		if errors.Is(err, nf.err) {
			return pkg.NewDomainError(nf.code, nf.msg, err, http.StatusNotFound)
		}
	}

	var (
		validation *entities.ValidationError
		transition *entities.InvalidTransitionError
		batch      *entities.PartialBatchRejectedError
		commission *entities.InvalidCommissionConfigurationError
	)
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainError("VALIDATION_ERROR", validation.Message, err, http.StatusBadRequest).
			WithDetails(map[string]any{"field": validation.Field})
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid request", err, http.StatusBadRequest)
	case errors.As(err, &batch):
		rejected := make([]map[string]any, 0, len(batch.Rejected))
		for _, r := range batch.Rejected {
			rejected = append(rejected, map[string]any{"item_id": r.EntityID, "status": r.From})
		}
		return pkg.NewDomainError("PARTIAL_BATCH_REJECTED", "Some items cannot be completed; nothing was changed", err, http.StatusConflict).
			WithDetails(map[string]any{"rejected": rejected})
	case errors.As(err, &transition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Operation not allowed in the current status", err, http.StatusConflict).
			WithDetails(map[string]any{"id": transition.EntityID, "from": transition.From, "attempted": transition.Attempted})
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Operation not allowed in the current status", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", "The resource was changed by another request, retry", err, http.StatusConflict)
	case errors.As(err, &commission):
		return pkg.NewDomainError("INVALID_COMMISSION_CONFIGURATION", commission.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidCommissionConfiguration):
		return pkg.NewDomainError("INVALID_COMMISSION_CONFIGURATION", "Invalid commission configuration", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayMissing):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// respondError renders err and records it on the context for the request log.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	appErr := mapDomainError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidRequest(c *gin.Context, err error) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if err != nil {
		appErr = appErr.WithDetails(map[string]any{"error": err.Error()})
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
