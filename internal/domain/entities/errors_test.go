package entities

import (
	"errors"
	"fmt"
	"testing"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", NewValidationError("reason", "required"), ErrValidation},
		{"transition", NewInvalidTransitionError("it-1", "completed", "in_progress"), ErrInvalidTransition},
		{"conflict", NewConflictError("extension_request", "ord-1", "pending request exists"), ErrConflict},
		{"commission", &InvalidCommissionConfigurationError{LineItemID: "it-1", Total: 120}, ErrInvalidCommissionConfiguration},
		{"batch", &PartialBatchRejectedError{Rejected: []InvalidTransitionError{{EntityID: "it-2", From: "failed", Attempted: "completed"}}}, ErrPartialBatchRejected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tc.err)
			if !errors.Is(wrapped, tc.sentinel) {
				t.Fatalf("expected %v to match %v", wrapped, tc.sentinel)
			}
		})
	}
}

func TestPartialBatchRejectedErrorAs(t *testing.T) {
	err := fmt.Errorf("complete: %w", &PartialBatchRejectedError{Rejected: []InvalidTransitionError{
		{EntityID: "b", From: "skipped", Attempted: "completed"},
	}})
	var batch *PartialBatchRejectedError
	if !errors.As(err, &batch) {
		t.Fatalf("expected errors.As to succeed")
	}
	if len(batch.Rejected) != 1 || batch.Rejected[0].EntityID != "b" {
		t.Fatalf("unexpected rejected list: %+v", batch.Rejected)
	}
}
