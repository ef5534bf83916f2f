package postgres

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type OrderItemRepository struct {
	s *Store
}

var _ interfaces.IOrderItemRepository = (*OrderItemRepository)(nil)

const itemColumns = `id, order_id, parent_item_id, line_number, item_type, item_code, name, quantity,
	unit_price, total_price, is_customer_supplied, status, current_department_id, open_routing_event_id,
	technicians, workflow_id, workflow_step_index, note, status_reason, started_at, completed_at,
	version, created_at, updated_at`

func insertItem(ctx context.Context, q querier, it entities.OrderItem) error {
	techs, err := toJSON(technicians(it))
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, `INSERT INTO order_items (`+itemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`,
		it.ID, it.OrderID, nullString(it.ParentItemID), it.LineNumber, string(it.ItemType), it.ItemCode, it.Name,
		it.Quantity, it.UnitPrice, it.TotalPrice, it.IsCustomerSupplied, string(it.Status),
		nullString(it.CurrentDepartmentID), nullString(it.OpenRoutingEventID), techs, nullString(it.WorkflowID),
		it.WorkflowStepIndex, nullString(it.Note), nullString(it.StatusReason), it.StartedAt, it.CompletedAt,
		it.Version, it.CreatedAt, it.UpdatedAt)
	return err
}

func technicians(it entities.OrderItem) []entities.TechnicianAssignment {
	if it.AssignedTechnicians == nil {
		return []entities.TechnicianAssignment{}
	}
	return it.AssignedTechnicians
}

func scanItem(row pgx.Row) (entities.OrderItem, error) {
	var (
		it                                              entities.OrderItem
		itemType, status                                string
		parent, dept, openEvent, workflow, note, reason *string
		techs                                           []byte
	)
	err := row.Scan(&it.ID, &it.OrderID, &parent, &it.LineNumber, &itemType, &it.ItemCode, &it.Name,
		&it.Quantity, &it.UnitPrice, &it.TotalPrice, &it.IsCustomerSupplied, &status, &dept, &openEvent,
		&techs, &workflow, &it.WorkflowStepIndex, &note, &reason, &it.StartedAt, &it.CompletedAt,
		&it.Version, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return entities.OrderItem{}, err
	}
	it.ItemType = entities.ItemType(itemType)
	it.Status = entities.ItemStatus(status)
	it.ParentItemID = derefString(parent)
	it.CurrentDepartmentID = derefString(dept)
	it.OpenRoutingEventID = derefString(openEvent)
	it.WorkflowID = derefString(workflow)
	it.Note = derefString(note)
	it.StatusReason = derefString(reason)
	if err := fromJSON(techs, &it.AssignedTechnicians); err != nil {
		return entities.OrderItem{}, err
	}
	return it, nil
}

func (r *OrderItemRepository) GetByID(ctx context.Context, id string) (entities.OrderItem, error) {
	it, err := scanItem(r.s.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM order_items WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.OrderItem{}, nil
	}
	if err != nil {
		return entities.OrderItem{}, errors.Wrap(err, "get order item")
	}
	return it, nil
}

func (r *OrderItemRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderItem, error) {
	rows, err := r.s.db.Query(ctx, `SELECT `+itemColumns+` FROM order_items WHERE order_id = $1 ORDER BY line_number`, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "list order items")
	}
	defer rows.Close()

	var out []entities.OrderItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan order item")
		}
		out = append(out, it)
	}
	return out, errors.Wrap(rows.Err(), "list order items")
}

func (r *OrderItemRepository) ApplyTransition(ctx context.Context, t interfaces.ItemTransition) error {
	err := r.s.InTransaction(ctx, func(tx pgx.Tx) error {
		for _, it := range t.Items {
			if err := updateItem(ctx, tx, it); err != nil {
				return err
			}
		}
		for _, ev := range t.CloseRouting {
			err := requireOne(tx.Exec(ctx, `UPDATE routing_events SET status = $2, closed_at = $3
				WHERE id = $1 AND status = 'open'`, ev.ID, string(ev.Status), ev.ClosedAt))
			if err != nil {
				return err
			}
		}
		if ev := t.OpenRouting; ev != nil {
			if err := insertRoutingEvent(ctx, tx, *ev); err != nil {
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
		return errors.Wrap(err, "apply item transition")
	}
}

func updateItem(ctx context.Context, q querier, it entities.OrderItem) error {
	techs, err := toJSON(technicians(it))
	if err != nil {
		return err
	}
	return requireOne(q.Exec(ctx, `UPDATE order_items SET
			status = $2, current_department_id = $3, open_routing_event_id = $4, technicians = $5,
			workflow_id = $6, workflow_step_index = $7, note = $8, status_reason = $9,
			started_at = $10, completed_at = $11, updated_at = $12, version = version + 1
		WHERE id = $1 AND version = $13`,
		it.ID, string(it.Status), nullString(it.CurrentDepartmentID), nullString(it.OpenRoutingEventID), techs,
		nullString(it.WorkflowID), it.WorkflowStepIndex, nullString(it.Note), nullString(it.StatusReason),
		it.StartedAt, it.CompletedAt, it.UpdatedAt, it.Version))
}
