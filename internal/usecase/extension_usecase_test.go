package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment_engine/internal/domain/entities"
	mock_interfaces "fulfillment_engine/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func boolPtr(b bool) *bool { return &b }

func TestExtensionUseCase_Request(t *testing.T) {
	ctx := context.Background()
	due := fixedNow.AddDate(0, 0, 7)

	t.Run("reason required", func(t *testing.T) {
		f := newFixture(t)
		d := f.createOrder(t, CreateOrderCommand{DueAt: &due, Items: []CreateItemCommand{serviceLine("A", 1)}})
		if _, err := f.extension.RequestExtension(ctx, RequestExtensionCommand{OrderID: d.Order.ID, Reason: "  "}); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("second pending request conflicts", func(t *testing.T) {
		f := newFixture(t)
		d := f.createOrder(t, CreateOrderCommand{DueAt: &due, Items: []CreateItemCommand{serviceLine("A", 1)}})

		req, err := f.extension.RequestExtension(ctx, RequestExtensionCommand{OrderID: d.Order.ID, Reason: "parts late", RequestedBy: "u-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Status != entities.ExtensionStatusPending || req.CurrentDueAt == nil || !req.CurrentDueAt.Equal(due) {
			t.Fatalf("unexpected request: %+v", req)
		}
		_, err = f.extension.RequestExtension(ctx, RequestExtensionCommand{OrderID: d.Order.ID, Reason: "again"})
		var conflict *entities.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newFixture(t)
		if _, err := f.extension.RequestExtension(ctx, RequestExtensionCommand{OrderID: "nope", Reason: "r"}); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestExtensionUseCase_Resolve(t *testing.T) {
	ctx := context.Background()
	due := fixedNow.AddDate(0, 0, 7)

	setup := func(t *testing.T) (*fixture, OrderDetails, entities.ExtensionRequest) {
		f := newFixture(t)
		d := f.createOrder(t, CreateOrderCommand{DueAt: &due, Items: []CreateItemCommand{serviceLine("A", 1)}})
		req, err := f.extension.RequestExtension(ctx, RequestExtensionCommand{OrderID: d.Order.ID, Reason: "parts late"})
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		return f, d, req
	}

	t.Run("approve with an earlier date is rejected", func(t *testing.T) {
		f, d, req := setup(t)
		earlier := due.Add(-time.Hour)
		_, err := f.extension.ResolveExtension(ctx, ResolveExtensionCommand{RequestID: req.ID, Approve: true, NewDueAt: &earlier, ResolvedBy: "mgr"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		order, _ := f.store.Orders().GetByID(ctx, d.Order.ID)
		if !order.DueAt.Equal(due) || order.PendingExtensionID != req.ID {
			t.Fatalf("order mutated: %+v", order)
		}
	})

	t.Run("approve without a date is rejected", func(t *testing.T) {
		f, _, req := setup(t)
		_, err := f.extension.ResolveExtension(ctx, ResolveExtensionCommand{RequestID: req.ID, Approve: true, ResolvedBy: "mgr"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("approve moves the due date once", func(t *testing.T) {
		f, d, req := setup(t)
		later := due.AddDate(0, 0, 3)
		got, err := f.extension.ResolveExtension(ctx, ResolveExtensionCommand{
			RequestID: req.ID, Approve: true, NewDueAt: &later, ValidReason: boolPtr(true), ResolvedBy: "mgr", CustomerResult: "agreed",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ExtensionStatusApproved || got.ApprovedBy != "mgr" || got.ApprovedAt == nil || !*got.ValidReason {
			t.Fatalf("unexpected request: %+v", got)
		}
		order, _ := f.store.Orders().GetByID(ctx, d.Order.ID)
		if !order.DueAt.Equal(later) || order.PendingExtensionID != "" {
			t.Fatalf("unexpected order: %+v", order)
		}

		evenLater := later.AddDate(0, 0, 1)
		_, err = f.extension.ResolveExtension(ctx, ResolveExtensionCommand{RequestID: req.ID, Approve: true, NewDueAt: &evenLater, ResolvedBy: "mgr"})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition on re-resolve, got %v", err)
		}
		order, _ = f.store.Orders().GetByID(ctx, d.Order.ID)
		if !order.DueAt.Equal(later) {
			t.Fatalf("due date moved twice: %v", order.DueAt)
		}

		if _, err := f.extension.RequestExtension(ctx, RequestExtensionCommand{OrderID: d.Order.ID, Reason: "more"}); err != nil {
			t.Fatalf("a new request should be allowed after resolution, got %v", err)
		}
	})

	t.Run("approve defaults valid_reason to false", func(t *testing.T) {
		f, _, req := setup(t)
		later := due.AddDate(0, 0, 1)
		got, err := f.extension.ResolveExtension(ctx, ResolveExtensionCommand{RequestID: req.ID, Approve: true, NewDueAt: &later, ResolvedBy: "mgr"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ValidReason == nil || *got.ValidReason {
			t.Fatalf("expected valid_reason=false, got %v", got.ValidReason)
		}
	})

	t.Run("reject leaves the due date alone", func(t *testing.T) {
		f, d, req := setup(t)
		got, err := f.extension.ResolveExtension(ctx, ResolveExtensionCommand{RequestID: req.ID, Approve: false, ResolvedBy: "mgr"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ExtensionStatusRejected || got.NewDueAt != nil {
			t.Fatalf("unexpected request: %+v", got)
		}
		order, _ := f.store.Orders().GetByID(ctx, d.Order.ID)
		if !order.DueAt.Equal(due) || order.PendingExtensionID != "" {
			t.Fatalf("unexpected order: %+v", order)
		}
		if _, err := f.extension.ResolveExtension(ctx, ResolveExtensionCommand{RequestID: req.ID, Approve: false}); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		exts := mock_interfaces.NewMockIExtensionRequestRepository(ctrl)
		uc := NewExtensionUseCase(orders, exts, zerolog.Nop())

		exts.EXPECT().GetByID(gomock.Any(), "ext-1").Return(entities.ExtensionRequest{}, nil)

		_, err := uc.ResolveExtension(ctx, ResolveExtensionCommand{RequestID: "ext-1"})
		if !errors.Is(err, ErrExtensionRequestNotFound) {
			t.Fatalf("expected ErrExtensionRequestNotFound, got %v", err)
		}
	})
}
