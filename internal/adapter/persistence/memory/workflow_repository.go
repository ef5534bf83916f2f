package memory

import (
	"context"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"
)

type WorkflowRepository struct{ s *Store }

var _ interfaces.IWorkflowRepository = (*WorkflowRepository)(nil)

func (r *WorkflowRepository) Create(_ context.Context, wf entities.WorkflowDefinition) (entities.WorkflowDefinition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.workflows[wf.ID]; exists {
		return entities.WorkflowDefinition{}, entities.NewConflictError("workflow", wf.ID, "already exists")
	}
	r.s.workflows[wf.ID] = cloneWorkflow(wf)
	r.s.workflowIDs = append(r.s.workflowIDs, wf.ID)
	return wf, nil
}

func (r *WorkflowRepository) GetByID(_ context.Context, id string) (entities.WorkflowDefinition, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	wf, ok := r.s.workflows[id]
	if !ok {
		return entities.WorkflowDefinition{}, nil
	}
	return cloneWorkflow(wf), nil
}

func (r *WorkflowRepository) List(_ context.Context) ([]entities.WorkflowDefinition, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.WorkflowDefinition, 0, len(r.s.workflowIDs))
	for _, id := range r.s.workflowIDs {
		out = append(out, cloneWorkflow(r.s.workflows[id]))
	}
	return out, nil
}
