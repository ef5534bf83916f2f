package handlers

import (
	"errors"
	"net/http"
	"testing"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase"

	pkgerrors "github.com/pkg/errors"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"order not found", usecase.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND"},
		{"wrapped item not found", pkgerrors.Wrap(usecase.ErrOrderItemNotFound, "load"), http.StatusNotFound, "ORDER_ITEM_NOT_FOUND"},
		{"workflow not found", usecase.ErrWorkflowNotFound, http.StatusNotFound, "WORKFLOW_NOT_FOUND"},
		{"validation", entities.NewValidationError("quantity", "must be positive"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"invalid transition", entities.NewInvalidTransitionError("item-1", "completed", "in_progress"), http.StatusConflict, "INVALID_TRANSITION"},
		{"conflict", entities.NewConflictError("order", "o-1", "pending extension exists"), http.StatusConflict, "CONFLICT"},
		{"concurrent", pkgerrors.Wrap(entities.ErrConcurrentModification, "save"), http.StatusConflict, "CONCURRENT_MODIFICATION"},
		{"batch", &entities.PartialBatchRejectedError{}, http.StatusConflict, "PARTIAL_BATCH_REJECTED"},
		{"commission", &entities.InvalidCommissionConfigurationError{LineItemID: "l", Total: 120}, http.StatusUnprocessableEntity, "INVALID_COMMISSION_CONFIGURATION"},
		{"gateway", usecase.ErrPaymentGatewayMissing, http.StatusServiceUnavailable, "PAYMENT_GATEWAY_UNAVAILABLE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := mapDomainError(tt.err)
			if appErr.HTTPStatus != tt.status || appErr.Code != tt.code {
				t.Fatalf("expected %d %s, got %d %s", tt.status, tt.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}
}

func TestMapDomainError_Details(t *testing.T) {
	appErr := mapDomainError(entities.NewValidationError("items", "at least one item is required"))
	if appErr.Details["field"] != "items" || appErr.Message != "at least one item is required" {
		t.Fatalf("unexpected validation mapping: %+v", appErr)
	}

	batch := &entities.PartialBatchRejectedError{Rejected: []entities.InvalidTransitionError{
		*entities.NewInvalidTransitionError("item-2", "pending", "completed"),
	}}
	appErr = mapDomainError(batch)
	rejected, ok := appErr.Details["rejected"].([]map[string]any)
	if !ok || len(rejected) != 1 || rejected[0]["item_id"] != "item-2" || rejected[0]["status"] != "pending" {
		t.Fatalf("unexpected batch details: %+v", appErr.Details)
	}
}
