package postgres

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type ExtensionRequestRepository struct {
	s *Store
}

var _ interfaces.IExtensionRequestRepository = (*ExtensionRequestRepository)(nil)

const extensionColumns = `id, order_id, requested_by, reason, status, current_due_at, new_due_at,
	customer_result, valid_reason, resolved_by, approved_by, approved_at, created_at, updated_at`

// Create locks the order row so the pending check and the insert see the
// same state.
func (r *ExtensionRequestRepository) Create(ctx context.Context, req entities.ExtensionRequest, order entities.Order) (entities.ExtensionRequest, error) {
	err := r.s.InTransaction(ctx, func(tx pgx.Tx) error {
		current, err := getOrder(ctx, tx, order.ID, true)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return entities.ErrConcurrentModification
		}
		if current.PendingExtensionID != "" {
			return entities.NewConflictError("extension_request", order.ID, "order already has a pending extension request")
		}
		if err := updateOrder(ctx, tx, order); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `INSERT INTO extension_requests (`+extensionColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			req.ID, req.OrderID, nullString(req.RequestedBy), req.Reason, string(req.Status), req.CurrentDueAt,
			req.NewDueAt, nullString(req.CustomerResult), req.ValidReason, nullString(req.ResolvedBy),
			nullString(req.ApprovedBy), req.ApprovedAt, req.CreatedAt, req.UpdatedAt)
		return err
	})
	switch {
	case err == nil:
		return req, nil
	case isUniqueViolation(err):
		return entities.ExtensionRequest{}, entities.NewConflictError("extension_request", order.ID, "order already has a pending extension request")
	case errors.Is(err, entities.ErrConflict), errors.Is(err, entities.ErrConcurrentModification):
		return entities.ExtensionRequest{}, err
	default:
		return entities.ExtensionRequest{}, errors.Wrap(err, "create extension request")
	}
}

func scanExtension(row pgx.Row) (entities.ExtensionRequest, error) {
	var (
		e                                                   entities.ExtensionRequest
		status                                              string
		requestedBy, customerResult, resolvedBy, approvedBy *string
	)
	err := row.Scan(&e.ID, &e.OrderID, &requestedBy, &e.Reason, &status, &e.CurrentDueAt, &e.NewDueAt,
		&customerResult, &e.ValidReason, &resolvedBy, &approvedBy, &e.ApprovedAt, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return entities.ExtensionRequest{}, err
	}
	e.Status = entities.ExtensionStatus(status)
	e.RequestedBy = derefString(requestedBy)
	e.CustomerResult = derefString(customerResult)
	e.ResolvedBy = derefString(resolvedBy)
	e.ApprovedBy = derefString(approvedBy)
	return e, nil
}

func (r *ExtensionRequestRepository) GetByID(ctx context.Context, id string) (entities.ExtensionRequest, error) {
	return getExtension(ctx, r.s.db, id, false)
}

func getExtension(ctx context.Context, q querier, id string, forUpdate bool) (entities.ExtensionRequest, error) {
	query := `SELECT ` + extensionColumns + ` FROM extension_requests WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	e, err := scanExtension(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.ExtensionRequest{}, nil
	}
	if err != nil {
		return entities.ExtensionRequest{}, errors.Wrap(err, "get extension request")
	}
	return e, nil
}

func (r *ExtensionRequestRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.ExtensionRequest, error) {
	rows, err := r.s.db.Query(ctx, `SELECT `+extensionColumns+` FROM extension_requests
		WHERE order_id = $1 ORDER BY created_at, id`, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "list extension requests")
	}
	defer rows.Close()

	var out []entities.ExtensionRequest
	for rows.Next() {
		e, err := scanExtension(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan extension request")
		}
		out = append(out, e)
	}
	return out, errors.Wrap(rows.Err(), "list extension requests")
}

func (r *ExtensionRequestRepository) Resolve(ctx context.Context, req entities.ExtensionRequest, order entities.Order) error {
	err := r.s.InTransaction(ctx, func(tx pgx.Tx) error {
		current, err := getExtension(ctx, tx, req.ID, true)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return entities.ErrConcurrentModification
		}
		if current.Status != entities.ExtensionStatusPending {
			return entities.NewInvalidTransitionError(req.ID, string(current.Status), string(req.Status))
		}
		_, err = tx.Exec(ctx, `UPDATE extension_requests SET
				status = $2, new_due_at = $3, customer_result = $4, valid_reason = $5,
				resolved_by = $6, approved_by = $7, approved_at = $8, updated_at = $9
			WHERE id = $1`,
			req.ID, string(req.Status), req.NewDueAt, nullString(req.CustomerResult), req.ValidReason,
			nullString(req.ResolvedBy), nullString(req.ApprovedBy), req.ApprovedAt, req.UpdatedAt)
		if err != nil {
			return err
		}
		return updateOrder(ctx, tx, order)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entities.ErrInvalidTransition), errors.Is(err, entities.ErrConcurrentModification):
		return err
	default:
		return errors.Wrap(err, "resolve extension request")
	}
}
