package handlers

import (
	"net/http"
	"testing"
	"time"

	"fulfillment_engine/internal/adapter/http/handlers/mocks"
	"fulfillment_engine/internal/domain/entities"
	"fulfillment_engine/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestItemHandler_Assign(t *testing.T) {
	t.Run("single technician id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewItemHandler(lc, mocks.NewMockIRoutingUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/order-items/:id/assign", h.Assign)

		want := usecase.AssignCommand{
			DepartmentID: "dep-1",
			Technicians:  []entities.TechnicianAssignment{{TechnicianID: "t-1"}},
		}
		lc.EXPECT().Assign(gomock.Any(), "i-1", want).
			Return(entities.OrderItem{ID: "i-1", Status: entities.ItemStatusAssigned, AssignedTechnicians: want.Technicians}, nil)

		w := serve(r, http.MethodPost, "/v1/order-items/i-1/assign", `{"department_id":"dep-1","technician_id":"t-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeObject(t, w)
		techs, _ := body["technicians"].([]any)
		if body["status"] != "assigned" || len(techs) != 1 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("percentages over limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewItemHandler(lc, mocks.NewMockIRoutingUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/order-items/:id/assign", h.Assign)

		lc.EXPECT().Assign(gomock.Any(), "i-1", gomock.Any()).
			Return(entities.OrderItem{}, entities.NewValidationError("commission_percent", "technician percentages exceed 100 in total"))

		w := serve(r, http.MethodPost, "/v1/order-items/i-1/assign", `{"technicians":[{"technician_id":"a","commission_percent":70},{"technician_id":"b","commission_percent":60}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestItemHandler_StartAndTerminal(t *testing.T) {
	t.Run("start from wrong status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewItemHandler(lc, mocks.NewMockIRoutingUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/order-items/:id/start", h.Start)

		lc.EXPECT().Start(gomock.Any(), "i-1").Return(entities.OrderItem{}, entities.NewInvalidTransitionError("i-1", "pending", "in_progress"))

		w := serve(r, http.MethodPost, "/v1/order-items/i-1/start", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeObject(t, w)
		details, _ := body["details"].(map[string]any)
		if body["code"] != "INVALID_TRANSITION" || details["from"] != "pending" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("fail records reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewItemHandler(lc, mocks.NewMockIRoutingUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/order-items/:id/fail", h.Fail)

		lc.EXPECT().Fail(gomock.Any(), "i-1", "part broke").
			Return(entities.OrderItem{ID: "i-1", Status: entities.ItemStatusFailed, StatusReason: "part broke"}, nil)

		w := serve(r, http.MethodPost, "/v1/order-items/i-1/fail", `{"reason":"part broke"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeObject(t, w); body["status_reason"] != "part broke" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("skip without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewItemHandler(mocks.NewMockILifecycleUseCase(ctrl), mocks.NewMockIRoutingUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/order-items/:id/skip", h.Skip)

		w := serve(r, http.MethodPost, "/v1/order-items/i-1/skip", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestItemHandler_Complete(t *testing.T) {
	t.Run("partial batch rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewItemHandler(lc, mocks.NewMockIRoutingUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/order-items/complete", h.Complete)

		lc.EXPECT().Complete(gomock.Any(), []string{"i-1", "i-2"}, "done").
			Return(nil, &entities.PartialBatchRejectedError{Rejected: []entities.InvalidTransitionError{
				*entities.NewInvalidTransitionError("i-2", "pending", "completed"),
			}})

		w := serve(r, http.MethodPost, "/v1/order-items/complete", `{"item_ids":["i-1","i-2"],"note":"done"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeObject(t, w)
		details, _ := body["details"].(map[string]any)
		rejected, _ := details["rejected"].([]any)
		if body["code"] != "PARTIAL_BATCH_REJECTED" || len(rejected) != 1 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewItemHandler(lc, mocks.NewMockIRoutingUseCase(ctrl))

		r := newTestRouter()
		r.POST("/v1/order-items/complete", h.Complete)

		done := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		lc.EXPECT().Complete(gomock.Any(), []string{"i-1"}, "").
			Return([]entities.OrderItem{{ID: "i-1", Status: entities.ItemStatusCompleted, CompletedAt: &done}}, nil)

		w := serve(r, http.MethodPost, "/v1/order-items/complete", `{"item_ids":["i-1"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if list := decodeList(t, w); len(list) != 1 || list[0]["status"] != "completed" || list[0]["completed_at"] == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestItemHandler_Routing(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("move uses caller as creator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := mocks.NewMockIRoutingUseCase(ctrl)
		h := NewItemHandler(mocks.NewMockILifecycleUseCase(ctrl), rt)

		r := newTestRouter()
		r.POST("/v1/order-items/:id/move", asUser("mgr-1", "manager"), h.Move)

		rt.EXPECT().MoveToDepartment(gomock.Any(), usecase.MoveCommand{
			ItemID:             "i-1",
			TargetDepartmentID: "paint",
			Reason:             "rework",
			DeadlineDays:       2,
			CreatedBy:          "mgr-1",
		}).Return(entities.RoutingEvent{
			ID:             "ev-1",
			OrderItemID:    "i-1",
			ToDepartmentID: "paint",
			Reason:         "rework",
			Deadline:       created.Add(48 * time.Hour),
			Status:         entities.RoutingStatusOpen,
			CreatedBy:      "mgr-1",
			CreatedAt:      created,
		}, nil)

		w := serve(r, http.MethodPost, "/v1/order-items/i-1/move", `{"target_department_id":"paint","reason":"rework","deadline_days":2}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeObject(t, w)
		if body["status"] != "open" || body["from_department_id"] != nil || body["created_by"] != "mgr-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("advance past last step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := mocks.NewMockIRoutingUseCase(ctrl)
		h := NewItemHandler(mocks.NewMockILifecycleUseCase(ctrl), rt)

		r := newTestRouter()
		r.POST("/v1/order-items/:id/advance", h.Advance)

		rt.EXPECT().AdvanceWorkflow(gomock.Any(), "i-1", "").
			Return(entities.RoutingEvent{}, entities.NewInvalidTransitionError("i-1", "workflow_step_1", "next_workflow_step"))

		w := serve(r, http.MethodPost, "/v1/order-items/i-1/advance", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("skip optional step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := mocks.NewMockIRoutingUseCase(ctrl)
		h := NewItemHandler(mocks.NewMockILifecycleUseCase(ctrl), rt)

		r := newTestRouter()
		r.POST("/v1/order-items/:id/skip-step", h.SkipStep)

		rt.EXPECT().SkipWorkflowStep(gomock.Any(), "i-1", "customer declined", "").
			Return(entities.OrderItem{ID: "i-1", Status: entities.ItemStatusAssigned, WorkflowStepIndex: 1}, nil)

		w := serve(r, http.MethodPost, "/v1/order-items/i-1/skip-step", `{"reason":"customer declined"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if body := decodeObject(t, w); body["id"] != "i-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("skip required step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := mocks.NewMockIRoutingUseCase(ctrl)
		h := NewItemHandler(mocks.NewMockILifecycleUseCase(ctrl), rt)

		r := newTestRouter()
		r.POST("/v1/order-items/:id/skip-step", h.SkipStep)

		rt.EXPECT().SkipWorkflowStep(gomock.Any(), "i-1", "no time", "").
			Return(entities.OrderItem{}, entities.NewInvalidTransitionError("i-1", "workflow_step_0", "skip_required_step"))

		w := serve(r, http.MethodPost, "/v1/order-items/i-1/skip-step", `{"reason":"no time"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rt := mocks.NewMockIRoutingUseCase(ctrl)
		h := NewItemHandler(mocks.NewMockILifecycleUseCase(ctrl), rt)

		r := newTestRouter()
		r.GET("/v1/order-items/:id/routing", h.ListRouting)

		from := "wash"
		rt.EXPECT().ListItemRouting(gomock.Any(), "i-1").Return([]entities.RoutingEvent{
			{ID: "ev-1", OrderItemID: "i-1", ToDepartmentID: "wash", Status: entities.RoutingStatusClosed, CreatedAt: created},
			{ID: "ev-2", OrderItemID: "i-1", FromDepartmentID: &from, ToDepartmentID: "paint", Status: entities.RoutingStatusOpen, CreatedAt: created.Add(time.Hour)},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/order-items/i-1/routing", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		list := decodeList(t, w)
		if len(list) != 2 || list[1]["from_department_id"] != "wash" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewItemHandler(lc, mocks.NewMockIRoutingUseCase(ctrl))

		r := newTestRouter()
		r.GET("/v1/order-items/:id", h.GetItem)

		lc.EXPECT().GetItem(gomock.Any(), "nope").Return(entities.OrderItem{}, usecase.ErrOrderItemNotFound)

		w := serve(r, http.MethodGet, "/v1/order-items/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
