package interfaces

import (
	"context"
	"fulfillment_engine/internal/domain/entities"
)

// IInvoiceRepository persists invoices.
//
// MarkPaid flips the invoice to paid and inserts the commissions in one
// atomic write. It is conditioned on the invoice being unpaid at
// inv.Version; losing that race yields entities.ErrConcurrentModification
// and nothing is written.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetActiveByOrderID(ctx context.Context, orderID string) (entities.Invoice, error)
	MarkPaid(ctx context.Context, inv entities.Invoice, commissions []entities.Commission) error
}
