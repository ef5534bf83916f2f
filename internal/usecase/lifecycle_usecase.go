package usecase

import (
	"context"
	"strings"
	"time"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// AssignCommand records who works a line and, optionally, where.
type AssignCommand struct {
	DepartmentID string
	Technicians  []entities.TechnicianAssignment
}

// ILifecycleUseCase drives the per-item state machine.
type ILifecycleUseCase interface {
	GetItem(ctx context.Context, itemID string) (entities.OrderItem, error)
	ListOrderItems(ctx context.Context, orderID string) ([]entities.OrderItem, error)
	Assign(ctx context.Context, itemID string, cmd AssignCommand) (entities.OrderItem, error)
	Start(ctx context.Context, itemID string) (entities.OrderItem, error)
	Complete(ctx context.Context, itemIDs []string, note string) ([]entities.OrderItem, error)
	Fail(ctx context.Context, itemID, reason string) (entities.OrderItem, error)
	Skip(ctx context.Context, itemID, reason string) (entities.OrderItem, error)
}

type LifecycleUseCase struct {
	items   interfaces.IOrderItemRepository
	routing interfaces.IRoutingEventRepository
	log     zerolog.Logger
	now     func() time.Time
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(items interfaces.IOrderItemRepository, routing interfaces.IRoutingEventRepository, log zerolog.Logger) *LifecycleUseCase {
	return &LifecycleUseCase{
		items:   items,
		routing: routing,
		log:     log.With().Str("component", "lifecycle").Logger(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *LifecycleUseCase) GetItem(ctx context.Context, itemID string) (entities.OrderItem, error) {
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

func (u *LifecycleUseCase) ListOrderItems(ctx context.Context, orderID string) ([]entities.OrderItem, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, entities.NewValidationError("order_id", "required")
	}
	return u.items.ListByOrderID(ctx, orderID)
}

func (u *LifecycleUseCase) Assign(ctx context.Context, itemID string, cmd AssignCommand) (entities.OrderItem, error) {
	dept := strings.TrimSpace(cmd.DepartmentID)
	if dept == "" && len(cmd.Technicians) == 0 {
		return entities.OrderItem{}, entities.NewValidationError("assignment", "department_id or technicians required")
	}
	techs, err := normalizeTechnicians(cmd.Technicians)
	if err != nil {
		return entities.OrderItem{}, err
	}

	it, err := u.GetItem(ctx, itemID)
	if err != nil {
		return entities.OrderItem{}, err
	}
	if len(techs) > 0 && !it.IsService() {
		return entities.OrderItem{}, entities.NewValidationError("technicians", "only service items take technicians")
	}
	if !it.Status.CanTransition(entities.ItemStatusAssigned) {
		return entities.OrderItem{}, entities.NewInvalidTransitionError(it.ID, string(it.Status), string(entities.ItemStatusAssigned))
	}

	if dept != "" {
		it.CurrentDepartmentID = dept
	}
	if len(techs) > 0 {
		it.AssignedTechnicians = techs
	}
	it.Status = entities.ItemStatusAssigned
	it.UpdatedAt = u.now()

	if err := u.items.ApplyTransition(ctx, interfaces.ItemTransition{Items: []entities.OrderItem{it}}); err != nil {
		return entities.OrderItem{}, err
	}
	it.Version++
	u.log.Info().Str("item_id", it.ID).Str("department_id", it.CurrentDepartmentID).Int("technicians", len(it.AssignedTechnicians)).Msg("item assigned")
	return it, nil
}

// Start is idempotent for an item already in progress; started_at is set once.
func (u *LifecycleUseCase) Start(ctx context.Context, itemID string) (entities.OrderItem, error) {
	it, err := u.GetItem(ctx, itemID)
	if err != nil {
		return entities.OrderItem{}, err
	}
	if it.Status == entities.ItemStatusInProgress {
		return it, nil
	}
	if !it.Status.CanTransition(entities.ItemStatusInProgress) {
		return entities.OrderItem{}, entities.NewInvalidTransitionError(it.ID, string(it.Status), string(entities.ItemStatusInProgress))
	}

	now := u.now()
	it.Status = entities.ItemStatusInProgress
	if it.StartedAt == nil {
		it.StartedAt = &now
	}
	it.UpdatedAt = now

	if err := u.items.ApplyTransition(ctx, interfaces.ItemTransition{Items: []entities.OrderItem{it}}); err != nil {
		return entities.OrderItem{}, err
	}
	it.Version++
	u.log.Info().Str("item_id", it.ID).Msg("item started")
	return it, nil
}

// Complete finishes every listed item or none of them.
func (u *LifecycleUseCase) Complete(ctx context.Context, itemIDs []string, note string) ([]entities.OrderItem, error) {
	ids := dedupeIDs(itemIDs)
	if len(ids) == 0 {
		return nil, entities.NewValidationError("item_ids", "at least one item id required")
	}

	items := make([]entities.OrderItem, 0, len(ids))
	var rejected []entities.InvalidTransitionError
	for _, id := range ids {
		it, err := u.GetItem(ctx, id)
		if err != nil {
			return nil, errors.Wrapf(err, "load item %s", id)
		}
		if len(items) > 0 && it.OrderID != items[0].OrderID {
			return nil, entities.NewValidationError("item_ids", "items must belong to the same order")
		}
		if !it.Status.CanTransition(entities.ItemStatusCompleted) {
			rejected = append(rejected, *entities.NewInvalidTransitionError(it.ID, string(it.Status), string(entities.ItemStatusCompleted)))
		}
		items = append(items, it)
	}
	if len(rejected) > 0 {
		if len(ids) == 1 {
			r := rejected[0]
			return nil, &r
		}
		return nil, &entities.PartialBatchRejectedError{Rejected: rejected}
	}

	now := u.now()
	note = strings.TrimSpace(note)
	tr := interfaces.ItemTransition{}
	for i := range items {
		items[i].Status = entities.ItemStatusCompleted
		items[i].CompletedAt = &now
		items[i].UpdatedAt = now
		if note != "" {
			items[i].Note = note
		}
		closed, err := u.closeOpenRouting(ctx, &items[i], now)
		if err != nil {
			return nil, err
		}
		if closed != nil {
			tr.CloseRouting = append(tr.CloseRouting, *closed)
		}
	}
	tr.Items = items

	if err := u.items.ApplyTransition(ctx, tr); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Version++
	}
	u.log.Info().Strs("item_ids", ids).Msg("items completed")
	return items, nil
}

func (u *LifecycleUseCase) Fail(ctx context.Context, itemID, reason string) (entities.OrderItem, error) {
	return u.terminate(ctx, itemID, reason, entities.ItemStatusFailed)
}

func (u *LifecycleUseCase) Skip(ctx context.Context, itemID, reason string) (entities.OrderItem, error) {
	return u.terminate(ctx, itemID, reason, entities.ItemStatusSkipped)
}

func (u *LifecycleUseCase) terminate(ctx context.Context, itemID, reason string, to entities.ItemStatus) (entities.OrderItem, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.OrderItem{}, entities.NewValidationError("reason", "required")
	}
	it, err := u.GetItem(ctx, itemID)
	if err != nil {
		return entities.OrderItem{}, err
	}
	if !it.Status.CanTransition(to) {
		return entities.OrderItem{}, entities.NewInvalidTransitionError(it.ID, string(it.Status), string(to))
	}

	now := u.now()
	it.Status = to
	it.StatusReason = reason
	it.CompletedAt = &now
	it.UpdatedAt = now

	closed, err := u.closeOpenRouting(ctx, &it, now)
	if err != nil {
		return entities.OrderItem{}, err
	}
	tr := interfaces.ItemTransition{Items: []entities.OrderItem{it}}
	if closed != nil {
		tr.CloseRouting = []entities.RoutingEvent{*closed}
	}

	if err := u.items.ApplyTransition(ctx, tr); err != nil {
		return entities.OrderItem{}, err
	}
	it.Version++
	u.log.Info().Str("item_id", it.ID).Str("status", string(to)).Str("reason", reason).Msg("item terminated")
	return it, nil
}

// closeOpenRouting clears the item's open event marker and returns the
// closed event to persist, or nil when nothing is open.
func (u *LifecycleUseCase) closeOpenRouting(ctx context.Context, it *entities.OrderItem, at time.Time) (*entities.RoutingEvent, error) {
	return closeOpenRouting(ctx, u.routing, it, at)
}

func closeOpenRouting(ctx context.Context, repo interfaces.IRoutingEventRepository, it *entities.OrderItem, at time.Time) (*entities.RoutingEvent, error) {
	if it.OpenRoutingEventID == "" {
		return nil, nil
	}
	ev, err := repo.GetByID(ctx, it.OpenRoutingEventID)
	if err != nil {
		return nil, errors.Wrap(err, "load open routing event")
	}
	it.OpenRoutingEventID = ""
	if ev.ID == "" || ev.Status == entities.RoutingStatusClosed {
		return nil, nil
	}
	closed := ev.Close(at)
	return &closed, nil
}

func normalizeTechnicians(in []entities.TechnicianAssignment) ([]entities.TechnicianAssignment, error) {
	out := make([]entities.TechnicianAssignment, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	var total float64
	for _, t := range in {
		id := strings.TrimSpace(t.TechnicianID)
		if id == "" {
			return nil, entities.NewValidationError("technician_id", "required")
		}
		if _, dup := seen[id]; dup {
			return nil, entities.NewValidationError("technician_id", "duplicate technician "+id)
		}
		seen[id] = struct{}{}
		if t.CommissionPercent < 0 || t.CommissionPercent > 100 {
			return nil, entities.NewValidationError("commission_percent", "must be between 0 and 100")
		}
		total += t.CommissionPercent
		out = append(out, entities.TechnicianAssignment{TechnicianID: id, CommissionPercent: t.CommissionPercent})
	}
	if total > 100 {
		return nil, entities.NewValidationError("commission_percent", "technician percentages exceed 100 in total")
	}
	return out, nil
}

func dedupeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
