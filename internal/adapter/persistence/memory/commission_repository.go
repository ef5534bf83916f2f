package memory

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"
)

type CommissionRepository struct{ s *Store }

var _ interfaces.ICommissionRepository = (*CommissionRepository)(nil)

func (r *CommissionRepository) ListByInvoiceID(_ context.Context, invoiceID string) ([]entities.Commission, error) {
	return r.filter(func(c entities.Commission) bool { return c.InvoiceID == invoiceID }), nil
}

func (r *CommissionRepository) ListByUserID(_ context.Context, userID string) ([]entities.Commission, error) {
	return r.filter(func(c entities.Commission) bool { return c.UserID == userID }), nil
}

func (r *CommissionRepository) filter(keep func(entities.Commission) bool) []entities.Commission {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Commission, 0)
	for _, c := range r.s.commissions {
		if keep(c) {
			out = append(out, c)
		}
	}
	entities.SortCommissions(out)
	return out
}
