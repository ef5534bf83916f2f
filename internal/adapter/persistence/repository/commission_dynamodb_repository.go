package repository

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"
)

// CommissionDynamoRepository reads commission rows. They are written by
// InvoiceDynamoRepository.MarkPaid.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
//   - GSI: user_id-index (PK: user_id)
type CommissionDynamoRepository struct {
	s *DynamoStore
}

var _ interfaces.ICommissionRepository = (*CommissionDynamoRepository)(nil)

func (r *CommissionDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Commission, error) {
	return r.list(ctx, invoiceIDIndex, "invoice_id", invoiceID)
}

func (r *CommissionDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Commission, error) {
	return r.list(ctx, userIDIndex, "user_id", userID)
}

func (r *CommissionDynamoRepository) list(ctx context.Context, index, attr, value string) ([]entities.Commission, error) {
	rows, err := r.s.queryIndex(ctx, r.s.tables.Commissions, index, attr, value)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Commission, 0, len(rows))
	for _, row := range rows {
		var rec commissionRecord
		if err := unmarshalMap(row, &rec); err != nil {
			return nil, err
		}
		out = append(out, fromCommissionRecord(rec))
	}
	entities.SortCommissions(out)
	return out, nil
}
