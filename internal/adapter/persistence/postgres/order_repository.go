package postgres

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type OrderRepository struct {
	s *Store
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

const orderColumns = `id, customer_id, sales_rep_id, workflow_id, total_amount, due_at,
	pending_extension_id, active_invoice_id, version, created_at, updated_at`

func (r *OrderRepository) Create(ctx context.Context, order entities.Order, items []entities.OrderItem) (entities.Order, error) {
	err := r.s.InTransaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO orders (`+orderColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			order.ID, order.CustomerID, nullString(order.SalesRepID), nullString(order.WorkflowID),
			order.TotalAmount, order.DueAt, nullString(order.PendingExtensionID),
			nullString(order.ActiveInvoiceID), order.Version, order.CreatedAt, order.UpdatedAt)
		if err != nil {
			return err
		}
		for _, it := range items {
			if err := insertItem(ctx, tx, it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return entities.Order{}, entities.NewConflictError("order", order.ID, "already exists")
		}
		return entities.Order{}, errors.Wrap(err, "create order")
	}
	return order, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	return getOrder(ctx, r.s.db, id, false)
}

func getOrder(ctx context.Context, q querier, id string, forUpdate bool) (entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var (
		o                                             entities.Order
		salesRep, workflow, pendingExt, activeInvoice *string
	)
	err := q.QueryRow(ctx, query, id).Scan(&o.ID, &o.CustomerID, &salesRep, &workflow, &o.TotalAmount,
		&o.DueAt, &pendingExt, &activeInvoice, &o.Version, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, errors.Wrap(err, "get order")
	}
	o.SalesRepID = derefString(salesRep)
	o.WorkflowID = derefString(workflow)
	o.PendingExtensionID = derefString(pendingExt)
	o.ActiveInvoiceID = derefString(activeInvoice)
	return o, nil
}

// updateOrder stores o read at o.Version and bumps the version.
func updateOrder(ctx context.Context, q querier, o entities.Order) error {
	return requireOne(q.Exec(ctx, `UPDATE orders SET
			customer_id = $2, sales_rep_id = $3, workflow_id = $4, total_amount = $5, due_at = $6,
			pending_extension_id = $7, active_invoice_id = $8, updated_at = $9, version = version + 1
		WHERE id = $1 AND version = $10`,
		o.ID, o.CustomerID, nullString(o.SalesRepID), nullString(o.WorkflowID), o.TotalAmount, o.DueAt,
		nullString(o.PendingExtensionID), nullString(o.ActiveInvoiceID), o.UpdatedAt, o.Version))
}
