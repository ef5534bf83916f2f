package usecase

import (
	"errors"

	"fulfillment_engine/internal/domain/entities"
)

var (
	ErrOrderNotFound            = errors.New("order not found")
	ErrOrderItemNotFound        = errors.New("order item not found")
	ErrRoutingEventNotFound     = errors.New("routing event not found")
	ErrExtensionRequestNotFound = errors.New("extension request not found")
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrWorkflowNotFound         = errors.New("workflow not found")
	ErrPaymentGatewayMissing    = errors.New("payment gateway not configured")
)

// Re-exported so callers can match use case errors without importing entities.
var (
	ErrValidation                     = entities.ErrValidation
	ErrInvalidTransition              = entities.ErrInvalidTransition
	ErrConflict                       = entities.ErrConflict
	ErrInvalidCommissionConfiguration = entities.ErrInvalidCommissionConfiguration
	ErrPartialBatchRejected           = entities.ErrPartialBatchRejected
	ErrConcurrentModification         = entities.ErrConcurrentModification
)
