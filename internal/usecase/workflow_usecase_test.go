package usecase

import (
	"context"
	"errors"
	"testing"

	"fulfillment_engine/internal/domain/entities"
	mock_interfaces "fulfillment_engine/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWorkflowUseCase_CreateWorkflow(t *testing.T) {
	ctx := context.Background()

	t.Run("sorts steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkflowRepository(ctrl)
		uc := NewWorkflowUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, wf entities.WorkflowDefinition) (entities.WorkflowDefinition, error) {
				return wf, nil
			},
		)

		wf, err := uc.CreateWorkflow(ctx, CreateWorkflowCommand{Name: " Repair ", Steps: []entities.WorkflowStep{
			{StepOrder: 20, Name: "Paint", DepartmentID: "dep-paint"},
			{StepOrder: 10, Name: "Panel", DepartmentID: "dep-panel"},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wf.ID == "" || wf.Name != "Repair" || wf.Steps[0].Name != "Panel" || wf.Steps[1].Name != "Paint" {
			t.Fatalf("unexpected workflow: %+v", wf)
		}
		if wf.Steps[0].ID == "" || wf.Steps[0].ID == wf.Steps[1].ID {
			t.Fatalf("steps need distinct ids: %+v", wf.Steps)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewWorkflowUseCase(nil)
		cases := map[string]CreateWorkflowCommand{
			"no name":        {Steps: []entities.WorkflowStep{{StepOrder: 1, Name: "a", DepartmentID: "d"}}},
			"no steps":       {Name: "wf"},
			"duplicate":      {Name: "wf", Steps: []entities.WorkflowStep{{StepOrder: 1, Name: "a", DepartmentID: "d"}, {StepOrder: 1, Name: "b", DepartmentID: "d"}}},
			"no department":  {Name: "wf", Steps: []entities.WorkflowStep{{StepOrder: 1, Name: "a"}}},
			"no step name":   {Name: "wf", Steps: []entities.WorkflowStep{{StepOrder: 1, DepartmentID: "d"}}},
			"negative hours": {Name: "wf", Steps: []entities.WorkflowStep{{StepOrder: 1, Name: "a", DepartmentID: "d", EstimatedDurationHours: -1}}},
		}
		for name, cmd := range cases {
			t.Run(name, func(t *testing.T) {
				if _, err := uc.CreateWorkflow(ctx, cmd); !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
			})
		}
	})
}

func TestWorkflowUseCase_GetWorkflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIWorkflowRepository(ctrl)
	uc := NewWorkflowUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "wf-1").Return(entities.WorkflowDefinition{}, nil)
	if _, err := uc.GetWorkflow(context.Background(), "wf-1"); !errors.Is(err, ErrWorkflowNotFound) {
		t.Fatalf("expected ErrWorkflowNotFound, got %v", err)
	}

	repo.EXPECT().List(gomock.Any()).Return([]entities.WorkflowDefinition{{ID: "wf-2"}}, nil)
	list, err := uc.ListWorkflows(context.Background())
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected list: %+v %v", list, err)
	}
}
