package postgres

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type InvoiceRepository struct {
	s *Store
}

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

const invoiceColumns = `id, order_id, amount, status, paid_at, version, created_at, updated_at`

func (r *InvoiceRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	err := r.s.InTransaction(ctx, func(tx pgx.Tx) error {
		order, err := getOrder(ctx, tx, inv.OrderID, true)
		if err != nil {
			return err
		}
		if order.ID == "" {
			return entities.ErrConcurrentModification
		}
		if order.ActiveInvoiceID != "" {
			return entities.NewConflictError("invoice", inv.OrderID, "order already has an active invoice")
		}
		_, err = tx.Exec(ctx, `INSERT INTO invoices (`+invoiceColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			inv.ID, inv.OrderID, inv.Amount, string(inv.Status), inv.PaidAt, inv.Version, inv.CreatedAt, inv.UpdatedAt)
		if err != nil {
			return err
		}
		order.ActiveInvoiceID = inv.ID
		order.UpdatedAt = inv.CreatedAt
		return updateOrder(ctx, tx, order)
	})
	switch {
	case err == nil:
		return inv, nil
	case isUniqueViolation(err):
		return entities.Invoice{}, entities.NewConflictError("invoice", inv.OrderID, "order already has an active invoice")
	case errors.Is(err, entities.ErrConflict), errors.Is(err, entities.ErrConcurrentModification):
		return entities.Invoice{}, err
	default:
		return entities.Invoice{}, errors.Wrap(err, "create invoice")
	}
}

func scanInvoice(row pgx.Row) (entities.Invoice, error) {
	var (
		inv    entities.Invoice
		status string
	)
	if err := row.Scan(&inv.ID, &inv.OrderID, &inv.Amount, &status, &inv.PaidAt, &inv.Version, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return entities.Invoice{}, err
	}
	inv.Status = entities.InvoiceStatus(status)
	return inv, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	return r.one(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

func (r *InvoiceRepository) GetActiveByOrderID(ctx context.Context, orderID string) (entities.Invoice, error) {
	return r.one(ctx, `SELECT i.id, i.order_id, i.amount, i.status, i.paid_at, i.version, i.created_at, i.updated_at
		FROM invoices i JOIN orders o ON o.active_invoice_id = i.id
		WHERE o.id = $1`, orderID)
}

func (r *InvoiceRepository) one(ctx context.Context, query string, arg string) (entities.Invoice, error) {
	inv, err := scanInvoice(r.s.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Invoice{}, nil
	}
	if err != nil {
		return entities.Invoice{}, errors.Wrap(err, "get invoice")
	}
	return inv, nil
}

func (r *InvoiceRepository) MarkPaid(ctx context.Context, inv entities.Invoice, commissions []entities.Commission) error {
	err := r.s.InTransaction(ctx, func(tx pgx.Tx) error {
		err := requireOne(tx.Exec(ctx, `UPDATE invoices SET status = $2, paid_at = $3, updated_at = $4, version = version + 1
			WHERE id = $1 AND version = $5 AND status = 'issued'`,
			inv.ID, string(inv.Status), inv.PaidAt, inv.UpdatedAt, inv.Version))
		if err != nil {
			return err
		}
		for _, c := range commissions {
			_, err := tx.Exec(ctx, `INSERT INTO commissions (`+commissionColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
				c.ID, c.UserID, c.InvoiceID, c.OrderID, nullString(c.LineItemID), string(c.CommissionType),
				c.BaseAmount, c.Percentage, c.Amount, string(c.Status), c.CreatedAt)
			if err != nil {
				return err
			}
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entities.ErrConcurrentModification), isUniqueViolation(err):
		return entities.ErrConcurrentModification
	default:
		return errors.Wrap(err, "mark invoice paid")
	}
}
