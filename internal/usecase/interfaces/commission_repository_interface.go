package interfaces

import (
	"context"
	"fulfillment_engine/internal/domain/entities"
)

type ICommissionRepository interface {
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Commission, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Commission, error)
}
