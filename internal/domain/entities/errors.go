package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation                     = errors.New("validation failed")
	ErrInvalidTransition              = errors.New("invalid status transition")
	ErrConflict                       = errors.New("conflict")
	ErrInvalidCommissionConfiguration = errors.New("invalid commission configuration")
	ErrPartialBatchRejected           = errors.New("batch rejected")
	ErrConcurrentModification         = errors.New("concurrent modification")
)

// ValidationError reports a bad input field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// InvalidTransitionError reports a state-machine violation.
type InvalidTransitionError struct {
	EntityID  string
	From      string
	Attempted string
}

func NewInvalidTransitionError(entityID, from, attempted string) *InvalidTransitionError {
	return &InvalidTransitionError{EntityID: entityID, From: from, Attempted: attempted}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %s to %s", e.EntityID, e.From, e.Attempted)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// ConflictError reports a uniqueness violation such as a second pending
// extension request.
type ConflictError struct {
	Resource string
	Key      string
	Message  string
}

func NewConflictError(resource, key, message string) *ConflictError {
	return &ConflictError{Resource: resource, Key: key, Message: message}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Resource, e.Key, e.Message)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// InvalidCommissionConfigurationError reports technician percentages that
// cannot be paid out.
type InvalidCommissionConfigurationError struct {
	LineItemID   string
	TechnicianID string
	Percent      float64
	Total        float64
}

func (e *InvalidCommissionConfigurationError) Error() string {
	if e.TechnicianID != "" {
		return fmt.Sprintf("line %s: technician %s has %.2f%% (max 100)", e.LineItemID, e.TechnicianID, e.Percent)
	}
	return fmt.Sprintf("line %s: technician percentages sum to %.2f%% (max 100)", e.LineItemID, e.Total)
}

func (e *InvalidCommissionConfigurationError) Is(target error) bool {
	return target == ErrInvalidCommissionConfiguration
}

// PartialBatchRejectedError is returned when any member of an all-or-nothing
// batch is ineligible. Nothing in the batch was written.
type PartialBatchRejectedError struct {
	Rejected []InvalidTransitionError
}

func (e *PartialBatchRejectedError) Error() string {
	ids := make([]string, 0, len(e.Rejected))
	for _, r := range e.Rejected {
		ids = append(ids, r.EntityID+"("+r.From+")")
	}
	return "batch rejected, ineligible items: " + strings.Join(ids, ", ")
}

func (e *PartialBatchRejectedError) Is(target error) bool { return target == ErrPartialBatchRejected }
