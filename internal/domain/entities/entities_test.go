package entities

import (
	"errors"
	"math"
	"testing"
)

func TestItemStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ItemStatus
		ok       bool
	}{
		{ItemStatusPending, ItemStatusAssigned, true},
		{ItemStatusPending, ItemStatusInProgress, false},
		{ItemStatusPending, ItemStatusCompleted, false},
		{ItemStatusAssigned, ItemStatusInProgress, true},
		{ItemStatusAssigned, ItemStatusCompleted, true},
		{ItemStatusInProgress, ItemStatusCompleted, true},
		{ItemStatusInProgress, ItemStatusAssigned, false},
		{ItemStatusCompleted, ItemStatusInProgress, false},
		{ItemStatusSkipped, ItemStatusCompleted, false},
		{ItemStatusFailed, ItemStatusAssigned, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.ok {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
	for _, st := range []ItemStatus{ItemStatusCompleted, ItemStatusSkipped, ItemStatusFailed} {
		if !st.IsTerminal() {
			t.Errorf("%s should be terminal", st)
		}
	}
}

func TestComputeProgress(t *testing.T) {
	t.Run("all terminal with a completion is ready", func(t *testing.T) {
		p := ComputeProgress("o1", []OrderItem{
			{Status: ItemStatusCompleted},
			{Status: ItemStatusSkipped},
			{Status: ItemStatusFailed},
		})
		if !p.ReadyToInvoice || p.Terminal != 3 || p.ByStatus[ItemStatusCompleted] != 1 {
			t.Fatalf("unexpected progress: %+v", p)
		}
	})
	t.Run("nothing completed is not ready", func(t *testing.T) {
		p := ComputeProgress("o1", []OrderItem{{Status: ItemStatusSkipped}})
		if p.ReadyToInvoice {
			t.Fatalf("expected not ready")
		}
	})
	t.Run("open line is not ready", func(t *testing.T) {
		p := ComputeProgress("o1", []OrderItem{{Status: ItemStatusCompleted}, {Status: ItemStatusInProgress}})
		if p.ReadyToInvoice {
			t.Fatalf("expected not ready")
		}
	})
	t.Run("empty order is not ready", func(t *testing.T) {
		if ComputeProgress("o1", nil).ReadyToInvoice {
			t.Fatalf("expected not ready")
		}
	})
}

func TestCommissionAmountRounding(t *testing.T) {
	cases := []struct {
		base    int64
		percent float64
		want    int64
	}{
		{1_000_000, 5, 50_000},
		{500_000, 10, 50_000},
		{999, 2.5, 25},   // 24.975
		{1001, 2.5, 25},  // 25.025
		{1, 50, 1},       // 0.5 rounds away from zero
		{300_000, 0, 0},
	}
	for _, tc := range cases {
		if got := CommissionAmount(tc.base, tc.percent); got != tc.want {
			t.Errorf("CommissionAmount(%d, %v) = %d, want %d", tc.base, tc.percent, got, tc.want)
		}
	}
}

func TestCommissionIDIsDeterministic(t *testing.T) {
	a := CommissionID("inv-1", "tech-1", "item-1")
	b := CommissionID("inv-1", "tech-1", "item-1")
	c := CommissionID("inv-1", "tech-1", "item-2")
	if a != b {
		t.Fatalf("expected stable id")
	}
	if a == c {
		t.Fatalf("expected distinct ids per line")
	}
}

func TestBillableTotalExcludesCustomerSupplied(t *testing.T) {
	total, err := BillableTotal([]OrderItem{
		{TotalPrice: 100},
		{TotalPrice: 50, IsCustomerSupplied: true},
		{TotalPrice: 25},
	})
	if err != nil || total != 125 {
		t.Fatalf("expected 125, got %d (%v)", total, err)
	}
}

func TestBillableTotalRejectsOverflow(t *testing.T) {
	_, err := BillableTotal([]OrderItem{{TotalPrice: math.MaxInt64 - 10}, {TotalPrice: 11}})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	total, err := BillableTotal([]OrderItem{{TotalPrice: math.MaxInt64 - 10}, {TotalPrice: 11, IsCustomerSupplied: true}})
	if err != nil || total != math.MaxInt64-10 {
		t.Fatalf("customer-supplied lines must not count, got %d (%v)", total, err)
	}
}

func TestLineTotal(t *testing.T) {
	if got, err := LineTotal(3, 250); err != nil || got != 750 {
		t.Fatalf("expected 750, got %d (%v)", got, err)
	}
	if _, err := LineTotal(2, math.MaxInt64/2+1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation on overflow, got %v", err)
	}
	if got, err := LineTotal(1, math.MaxInt64); err != nil || got != math.MaxInt64 {
		t.Fatalf("single max-priced unit fits, got %d (%v)", got, err)
	}
}

func TestWorkflowStepDeadlineDays(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 24: 1, 25: 2, 72: 3}
	for hours, want := range cases {
		if got := (WorkflowStep{EstimatedDurationHours: hours}).DeadlineDays(); got != want {
			t.Errorf("hours=%d: expected %d, got %d", hours, want, got)
		}
	}
}
