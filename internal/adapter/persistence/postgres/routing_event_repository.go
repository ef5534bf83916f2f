package postgres

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type RoutingEventRepository struct {
	s *Store
}

var _ interfaces.IRoutingEventRepository = (*RoutingEventRepository)(nil)

const routingColumns = `id, order_item_id, from_department_id, to_department_id, reason, deadline,
	status, created_by, created_at, closed_at`

func insertRoutingEvent(ctx context.Context, q querier, ev entities.RoutingEvent) error {
	_, err := q.Exec(ctx, `INSERT INTO routing_events (`+routingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		ev.ID, ev.OrderItemID, ev.FromDepartmentID, ev.ToDepartmentID, ev.Reason, ev.Deadline,
		string(ev.Status), nullString(ev.CreatedBy), ev.CreatedAt, ev.ClosedAt)
	return err
}

func scanRoutingEvent(row pgx.Row) (entities.RoutingEvent, error) {
	var (
		ev        entities.RoutingEvent
		status    string
		createdBy *string
	)
	err := row.Scan(&ev.ID, &ev.OrderItemID, &ev.FromDepartmentID, &ev.ToDepartmentID, &ev.Reason,
		&ev.Deadline, &status, &createdBy, &ev.CreatedAt, &ev.ClosedAt)
	if err != nil {
		return entities.RoutingEvent{}, err
	}
	ev.Status = entities.RoutingStatus(status)
	ev.CreatedBy = derefString(createdBy)
	return ev, nil
}

func (r *RoutingEventRepository) GetByID(ctx context.Context, id string) (entities.RoutingEvent, error) {
	ev, err := scanRoutingEvent(r.s.db.QueryRow(ctx, `SELECT `+routingColumns+` FROM routing_events WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.RoutingEvent{}, nil
	}
	if err != nil {
		return entities.RoutingEvent{}, errors.Wrap(err, "get routing event")
	}
	return ev, nil
}

func (r *RoutingEventRepository) ListByItemID(ctx context.Context, itemID string) ([]entities.RoutingEvent, error) {
	rows, err := r.s.db.Query(ctx, `SELECT `+routingColumns+` FROM routing_events
		WHERE order_item_id = $1 ORDER BY created_at, id`, itemID)
	if err != nil {
		return nil, errors.Wrap(err, "list routing events")
	}
	defer rows.Close()

	var out []entities.RoutingEvent
	for rows.Next() {
		ev, err := scanRoutingEvent(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan routing event")
		}
		out = append(out, ev)
	}
	return out, errors.Wrap(rows.Err(), "list routing events")
}
