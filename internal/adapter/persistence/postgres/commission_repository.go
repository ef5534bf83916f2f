package postgres

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

type CommissionRepository struct {
	s *Store
}

var _ interfaces.ICommissionRepository = (*CommissionRepository)(nil)

const commissionColumns = `id, user_id, invoice_id, order_id, line_item_id, commission_type,
	base_amount, percentage, amount, status, created_at`

// Sale rows sort ahead of line rows created at the same instant.
const commissionOrder = ` ORDER BY created_at, (commission_type <> 'sale'), line_item_id NULLS FIRST, user_id`

func (r *CommissionRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Commission, error) {
	return r.list(ctx, `SELECT `+commissionColumns+` FROM commissions WHERE invoice_id = $1`+commissionOrder, invoiceID)
}

func (r *CommissionRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Commission, error) {
	return r.list(ctx, `SELECT `+commissionColumns+` FROM commissions WHERE user_id = $1`+commissionOrder, userID)
}

func (r *CommissionRepository) list(ctx context.Context, query, arg string) ([]entities.Commission, error) {
	rows, err := r.s.db.Query(ctx, query, arg)
	if err != nil {
		return nil, errors.Wrap(err, "list commissions")
	}
	defer rows.Close()

	var out []entities.Commission
	for rows.Next() {
		var (
			c             entities.Commission
			lineItem      *string
			ctype, status string
		)
		err := rows.Scan(&c.ID, &c.UserID, &c.InvoiceID, &c.OrderID, &lineItem, &ctype,
			&c.BaseAmount, &c.Percentage, &c.Amount, &status, &c.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "scan commission")
		}
		c.LineItemID = derefString(lineItem)
		c.CommissionType = entities.CommissionType(ctype)
		c.Status = entities.CommissionStatus(status)
		out = append(out, c)
	}
	return out, errors.Wrap(rows.Err(), "list commissions")
}
