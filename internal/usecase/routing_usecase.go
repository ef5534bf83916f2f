package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// MoveCommand routes an item to another department.
type MoveCommand struct {
	ItemID             string
	TargetDepartmentID string
	Reason             string
	DeadlineDays       int
	CreatedBy          string
}

// IRoutingUseCase moves items between departments and keeps the audit trail.
type IRoutingUseCase interface {
	MoveToDepartment(ctx context.Context, cmd MoveCommand) (entities.RoutingEvent, error)
	AdvanceWorkflow(ctx context.Context, itemID, actor string) (entities.RoutingEvent, error)
	SkipWorkflowStep(ctx context.Context, itemID, reason, actor string) (entities.OrderItem, error)
	ListItemRouting(ctx context.Context, itemID string) ([]entities.RoutingEvent, error)
}

type RoutingUseCase struct {
	items     interfaces.IOrderItemRepository
	routing   interfaces.IRoutingEventRepository
	workflows interfaces.IWorkflowRepository
	log       zerolog.Logger
	now       func() time.Time
}

var _ IRoutingUseCase = (*RoutingUseCase)(nil)

func NewRoutingUseCase(items interfaces.IOrderItemRepository, routing interfaces.IRoutingEventRepository, workflows interfaces.IWorkflowRepository, log zerolog.Logger) *RoutingUseCase {
	return &RoutingUseCase{
		items:     items,
		routing:   routing,
		workflows: workflows,
		log:       log.With().Str("component", "routing").Logger(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *RoutingUseCase) MoveToDepartment(ctx context.Context, cmd MoveCommand) (entities.RoutingEvent, error) {
	target := strings.TrimSpace(cmd.TargetDepartmentID)
	if target == "" {
		return entities.RoutingEvent{}, entities.NewValidationError("target_department_id", "required")
	}
	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		return entities.RoutingEvent{}, entities.NewValidationError("reason", "required")
	}
	if cmd.DeadlineDays <= 0 {
		return entities.RoutingEvent{}, entities.NewValidationError("deadline_days", "must be greater than zero")
	}

	it, err := u.loadItem(ctx, cmd.ItemID)
	if err != nil {
		return entities.RoutingEvent{}, err
	}
	return u.move(ctx, it, target, reason, cmd.DeadlineDays, strings.TrimSpace(cmd.CreatedBy))
}

// AdvanceWorkflow routes a service item to the next step of its workflow.
func (u *RoutingUseCase) AdvanceWorkflow(ctx context.Context, itemID, actor string) (entities.RoutingEvent, error) {
	it, wf, err := u.loadWorkflowItem(ctx, itemID)
	if err != nil {
		return entities.RoutingEvent{}, err
	}

	next := it.WorkflowStepIndex + 1
	if next >= len(wf.Steps) {
		return entities.RoutingEvent{}, entities.NewInvalidTransitionError(
			it.ID,
			fmt.Sprintf("workflow_step_%d", it.WorkflowStepIndex),
			"next_workflow_step",
		)
	}
	step := wf.Steps[next]
	it.WorkflowStepIndex = next
	return u.move(ctx, it, step.DepartmentID, "workflow step: "+step.Name, step.DeadlineDays(), strings.TrimSpace(actor))
}

// SkipWorkflowStep passes over the item's next workflow step without routing
// it there. Only optional steps can be skipped; the item stays in its current
// department until the next AdvanceWorkflow.
func (u *RoutingUseCase) SkipWorkflowStep(ctx context.Context, itemID, reason, actor string) (entities.OrderItem, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.OrderItem{}, entities.NewValidationError("reason", "required")
	}
	it, wf, err := u.loadWorkflowItem(ctx, itemID)
	if err != nil {
		return entities.OrderItem{}, err
	}
	if it.Status.IsTerminal() {
		return entities.OrderItem{}, entities.NewInvalidTransitionError(it.ID, string(it.Status), "skip_workflow_step")
	}

	next := it.WorkflowStepIndex + 1
	from := fmt.Sprintf("workflow_step_%d", it.WorkflowStepIndex)
	if next >= len(wf.Steps) {
		return entities.OrderItem{}, entities.NewInvalidTransitionError(it.ID, from, "skip_workflow_step")
	}
	step := wf.Steps[next]
	if step.IsRequired {
		return entities.OrderItem{}, entities.NewInvalidTransitionError(it.ID, from, "skip_required_step")
	}

	it.WorkflowStepIndex = next
	it.UpdatedAt = u.now()
	if err := u.items.ApplyTransition(ctx, interfaces.ItemTransition{Items: []entities.OrderItem{it}}); err != nil {
		return entities.OrderItem{}, errors.Wrap(err, "apply workflow skip")
	}
	it.Version++

	u.log.Info().
		Str("item_id", it.ID).
		Str("step_id", step.ID).
		Str("step", step.Name).
		Str("reason", reason).
		Str("actor", strings.TrimSpace(actor)).
		Msg("workflow step skipped")
	return it, nil
}

func (u *RoutingUseCase) ListItemRouting(ctx context.Context, itemID string) ([]entities.RoutingEvent, error) {
	it, err := u.loadItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return u.routing.ListByItemID(ctx, it.ID)
}

func (u *RoutingUseCase) move(ctx context.Context, it entities.OrderItem, target, reason string, days int, actor string) (entities.RoutingEvent, error) {
	if it.Status.IsTerminal() {
		return entities.RoutingEvent{}, entities.NewInvalidTransitionError(it.ID, string(it.Status), "routed")
	}

	now := u.now()
	closed, err := closeOpenRouting(ctx, u.routing, &it, now)
	if err != nil {
		return entities.RoutingEvent{}, err
	}

	var from *string
	if it.CurrentDepartmentID != "" {
		prev := it.CurrentDepartmentID
		from = &prev
	}
	ev := entities.RoutingEvent{
		ID:               uuid.NewString(),
		OrderItemID:      it.ID,
		FromDepartmentID: from,
		ToDepartmentID:   target,
		Reason:           reason,
		Deadline:         now.AddDate(0, 0, days),
		Status:           entities.RoutingStatusOpen,
		CreatedBy:        actor,
		CreatedAt:        now,
	}

	it.CurrentDepartmentID = target
	it.OpenRoutingEventID = ev.ID
	if it.Status == entities.ItemStatusPending {
		it.Status = entities.ItemStatusAssigned
	}
	it.UpdatedAt = now

	tr := interfaces.ItemTransition{Items: []entities.OrderItem{it}, OpenRouting: &ev}
	if closed != nil {
		tr.CloseRouting = []entities.RoutingEvent{*closed}
	}
	if err := u.items.ApplyTransition(ctx, tr); err != nil {
		return entities.RoutingEvent{}, errors.Wrap(err, "apply routing transition")
	}

	u.log.Info().
		Str("item_id", it.ID).
		Str("to_department_id", target).
		Time("deadline", ev.Deadline).
		Msg("item routed")
	return ev, nil
}

func (u *RoutingUseCase) loadWorkflowItem(ctx context.Context, itemID string) (entities.OrderItem, entities.WorkflowDefinition, error) {
	it, err := u.loadItem(ctx, itemID)
	if err != nil {
		return entities.OrderItem{}, entities.WorkflowDefinition{}, err
	}
	if it.WorkflowID == "" {
		return entities.OrderItem{}, entities.WorkflowDefinition{}, entities.NewValidationError("workflow_id", "item does not follow a workflow")
	}
	wf, err := u.workflows.GetByID(ctx, it.WorkflowID)
	if err != nil {
		return entities.OrderItem{}, entities.WorkflowDefinition{}, err
	}
	if wf.ID == "" {
		return entities.OrderItem{}, entities.WorkflowDefinition{}, ErrWorkflowNotFound
	}
	return it, wf, nil
}

func (u *RoutingUseCase) loadItem(ctx context.Context, itemID string) (entities.OrderItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.OrderItem{}, entities.NewValidationError("item_id", "required")
	}
	it, err := u.items.GetByID(ctx, itemID)
	if err != nil {
		return entities.OrderItem{}, err
	}
	if it.ID == "" {
		return entities.OrderItem{}, ErrOrderItemNotFound
	}
	return it, nil
}
