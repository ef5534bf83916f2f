package usecase

import (
	"context"
	"strings"
	"time"

	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type RequestExtensionCommand struct {
	OrderID     string
	Reason      string
	RequestedBy string
}

// ResolveExtensionCommand approves or rejects a pending request. NewDueAt is
// required on approval; ValidReason defaults to false when omitted.
type ResolveExtensionCommand struct {
	RequestID      string
	Approve        bool
	NewDueAt       *time.Time
	ValidReason    *bool
	CustomerResult string
	ResolvedBy     string
}

type IExtensionUseCase interface {
	RequestExtension(ctx context.Context, cmd RequestExtensionCommand) (entities.ExtensionRequest, error)
	ResolveExtension(ctx context.Context, cmd ResolveExtensionCommand) (entities.ExtensionRequest, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.ExtensionRequest, error)
}

type ExtensionUseCase struct {
	orders     interfaces.IOrderRepository
	extensions interfaces.IExtensionRequestRepository
	log        zerolog.Logger
	now        func() time.Time
}

var _ IExtensionUseCase = (*ExtensionUseCase)(nil)

func NewExtensionUseCase(orders interfaces.IOrderRepository, extensions interfaces.IExtensionRequestRepository, log zerolog.Logger) *ExtensionUseCase {
	return &ExtensionUseCase{
		orders:     orders,
		extensions: extensions,
		log:        log.With().Str("component", "extension").Logger(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *ExtensionUseCase) RequestExtension(ctx context.Context, cmd RequestExtensionCommand) (entities.ExtensionRequest, error) {
	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		return entities.ExtensionRequest{}, entities.NewValidationError("reason", "required")
	}
	order, err := u.loadOrder(ctx, cmd.OrderID)
	if err != nil {
		return entities.ExtensionRequest{}, err
	}
	if order.PendingExtensionID != "" {
		return entities.ExtensionRequest{}, entities.NewConflictError("extension_request", order.ID, "order already has a pending extension request")
	}

	now := u.now()
	req := entities.ExtensionRequest{
		ID:           uuid.NewString(),
		OrderID:      order.ID,
		RequestedBy:  strings.TrimSpace(cmd.RequestedBy),
		Reason:       reason,
		Status:       entities.ExtensionStatusPending,
		CurrentDueAt: order.DueAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	order.PendingExtensionID = req.ID
	order.UpdatedAt = now

	created, err := u.extensions.Create(ctx, req, order)
	if err != nil {
		return entities.ExtensionRequest{}, err
	}
	u.log.Info().Str("order_id", order.ID).Str("request_id", req.ID).Msg("extension requested")
	return created, nil
}

func (u *ExtensionUseCase) ResolveExtension(ctx context.Context, cmd ResolveExtensionCommand) (entities.ExtensionRequest, error) {
	id := strings.TrimSpace(cmd.RequestID)
	if id == "" {
		return entities.ExtensionRequest{}, entities.NewValidationError("request_id", "required")
	}
	req, err := u.extensions.GetByID(ctx, id)
	if err != nil {
		return entities.ExtensionRequest{}, err
	}
	if req.ID == "" {
		return entities.ExtensionRequest{}, ErrExtensionRequestNotFound
	}

	target := entities.ExtensionStatusRejected
	if cmd.Approve {
		target = entities.ExtensionStatusApproved
	}
	if req.Status != entities.ExtensionStatusPending {
		return entities.ExtensionRequest{}, entities.NewInvalidTransitionError(req.ID, string(req.Status), string(target))
	}

	order, err := u.loadOrder(ctx, req.OrderID)
	if err != nil {
		return entities.ExtensionRequest{}, err
	}

	now := u.now()
	resolvedBy := strings.TrimSpace(cmd.ResolvedBy)
	if cmd.Approve {
		if cmd.NewDueAt == nil {
			return entities.ExtensionRequest{}, entities.NewValidationError("new_due_at", "required when approving")
		}
		if resolvedBy == "" {
			return entities.ExtensionRequest{}, entities.NewValidationError("approved_by", "required when approving")
		}
		newDue := cmd.NewDueAt.UTC()
		if order.DueAt != nil && newDue.Before(*order.DueAt) {
			return entities.ExtensionRequest{}, entities.NewValidationError("new_due_at", "must not be earlier than the current due date")
		}
		valid := false
		if cmd.ValidReason != nil {
			valid = *cmd.ValidReason
		}
		req.NewDueAt = &newDue
		req.ApprovedBy = resolvedBy
		req.ApprovedAt = &now
		req.ValidReason = &valid
		order.DueAt = &newDue
	}
	req.Status = target
	req.ResolvedBy = resolvedBy
	req.CustomerResult = strings.TrimSpace(cmd.CustomerResult)
	req.UpdatedAt = now
	order.PendingExtensionID = ""
	order.UpdatedAt = now

	if err := u.extensions.Resolve(ctx, req, order); err != nil {
		return entities.ExtensionRequest{}, err
	}
	u.log.Info().Str("request_id", req.ID).Str("status", string(req.Status)).Msg("extension resolved")
	return req, nil
}

func (u *ExtensionUseCase) ListByOrder(ctx context.Context, orderID string) ([]entities.ExtensionRequest, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return u.extensions.ListByOrderID(ctx, order.ID)
}

func (u *ExtensionUseCase) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, entities.NewValidationError("order_id", "required")
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}
