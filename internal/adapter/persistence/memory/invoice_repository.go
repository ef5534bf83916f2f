package memory

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"
)

type InvoiceRepository struct{ s *Store }

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

func (r *InvoiceRepository) Create(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.orders[inv.OrderID]
	if !ok {
		return entities.Invoice{}, entities.ErrConcurrentModification
	}
	if order.ActiveInvoiceID != "" {
		return entities.Invoice{}, entities.NewConflictError("invoice", inv.OrderID, "order already has an active invoice")
	}
	order.ActiveInvoiceID = inv.ID
	order.Version++
	r.s.orders[order.ID] = order
	r.s.invoices[inv.ID] = inv
	return inv, nil
}

func (r *InvoiceRepository) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.invoices[id], nil
}

func (r *InvoiceRepository) GetActiveByOrderID(_ context.Context, orderID string) (entities.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	order, ok := r.s.orders[orderID]
	if !ok || order.ActiveInvoiceID == "" {
		return entities.Invoice{}, nil
	}
	return r.s.invoices[order.ActiveInvoiceID], nil
}

func (r *InvoiceRepository) MarkPaid(_ context.Context, inv entities.Invoice, commissions []entities.Commission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.invoices[inv.ID]
	if !ok || stored.Version != inv.Version || stored.Status != entities.InvoiceStatusIssued {
		return entities.ErrConcurrentModification
	}
	for _, c := range commissions {
		if _, exists := r.s.commissions[c.ID]; exists {
			return entities.ErrConcurrentModification
		}
	}

	inv.Version++
	r.s.invoices[inv.ID] = inv
	for _, c := range commissions {
		r.s.commissions[c.ID] = c
	}
	return nil
}
