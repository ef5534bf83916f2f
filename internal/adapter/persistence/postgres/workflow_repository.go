package postgres

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type WorkflowRepository struct {
	s *Store
}

var _ interfaces.IWorkflowRepository = (*WorkflowRepository)(nil)

func (r *WorkflowRepository) Create(ctx context.Context, wf entities.WorkflowDefinition) (entities.WorkflowDefinition, error) {
	steps, err := toJSON(wf.Steps)
	if err != nil {
		return entities.WorkflowDefinition{}, err
	}
	_, err = r.s.db.Exec(ctx, `INSERT INTO workflows (id, name, steps, created_at) VALUES ($1, $2, $3, $4)`,
		wf.ID, wf.Name, steps, wf.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.WorkflowDefinition{}, entities.NewConflictError("workflow", wf.ID, "already exists")
		}
		return entities.WorkflowDefinition{}, errors.Wrap(err, "create workflow")
	}
	return wf, nil
}

func scanWorkflow(row pgx.Row) (entities.WorkflowDefinition, error) {
	var (
		wf    entities.WorkflowDefinition
		steps []byte
	)
	if err := row.Scan(&wf.ID, &wf.Name, &steps, &wf.CreatedAt); err != nil {
		return entities.WorkflowDefinition{}, err
	}
	if err := fromJSON(steps, &wf.Steps); err != nil {
		return entities.WorkflowDefinition{}, err
	}
	return wf, nil
}

func (r *WorkflowRepository) GetByID(ctx context.Context, id string) (entities.WorkflowDefinition, error) {
	wf, err := scanWorkflow(r.s.db.QueryRow(ctx, `SELECT id, name, steps, created_at FROM workflows WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.WorkflowDefinition{}, nil
	}
	if err != nil {
		return entities.WorkflowDefinition{}, errors.Wrap(err, "get workflow")
	}
	return wf, nil
}

func (r *WorkflowRepository) List(ctx context.Context) ([]entities.WorkflowDefinition, error) {
	rows, err := r.s.db.Query(ctx, `SELECT id, name, steps, created_at FROM workflows ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.Wrap(err, "list workflows")
	}
	defer rows.Close()

	var out []entities.WorkflowDefinition
	for rows.Next() {
		wf, err := scanWorkflow(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan workflow")
		}
		out = append(out, wf)
	}
	return out, errors.Wrap(rows.Err(), "list workflows")
}
