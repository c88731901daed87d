package workflow

import (
	"context"
	"errors"
	"testing"
)

func TestState_IsTerminal(t *testing.T) {
	tests := []struct {
		state    State
		expected bool
	}{
		{StatePending, false},
		{StateApproved, false},
		{StateRejected, true},
		{StateFulfilled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			if got := tt.state.IsTerminal(); got != tt.expected {
				t.Errorf("State.IsTerminal() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected bool
	}{
		{"pending", StatePending, true},
		{"fulfilled", StateFulfilled, true},
		{"unknown", State("cancelled"), false},
		{"empty", State(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.expected {
				t.Errorf("State.IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAutomationMachine_ApproveFromPending(t *testing.T) {
	m := NewAutomationMachine(StatePending)

	if err := m.Fire(context.Background(), TriggerApprove); err != nil {
		t.Fatalf("Fire(APPROVE) returned error: %v", err)
	}
	if m.State() != StateApproved {
		t.Errorf("State() = %v, want %v", m.State(), StateApproved)
	}
}

func TestAutomationMachine_ApproveIsNotRepeatable(t *testing.T) {
	m := NewAutomationMachine(StatePending)

	if err := m.Fire(context.Background(), TriggerApprove); err != nil {
		t.Fatalf("first Fire(APPROVE) returned error: %v", err)
	}

	err := m.Fire(context.Background(), TriggerApprove)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Fire(APPROVE) error = %v, want ErrInvalidTransition", err)
	}
	if m.State() != StateApproved {
		t.Errorf("State() = %v, want %v after failed re-approve", m.State(), StateApproved)
	}
}

func TestAutomationMachine_RejectedIsTerminal(t *testing.T) {
	m := NewAutomationMachine(StatePending)

	if err := m.Fire(context.Background(), TriggerReject); err != nil {
		t.Fatalf("Fire(REJECT) returned error: %v", err)
	}

	for _, trigger := range []Trigger{TriggerApprove, TriggerReject, TriggerFulfill} {
		if err := m.Fire(context.Background(), trigger); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("Fire(%s) from rejected error = %v, want ErrInvalidTransition", trigger, err)
		}
	}
}

func TestAutomationMachine_NoFulfill(t *testing.T) {
	m := NewAutomationMachine(StatePending)
	_ = m.Fire(context.Background(), TriggerApprove)

	if err := m.Fire(context.Background(), TriggerFulfill); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Fire(FULFILL) error = %v, want ErrInvalidTransition", err)
	}
}

func TestRedemptionMachine_FullLifecycle(t *testing.T) {
	m := NewRedemptionMachine(StatePending)

	if err := m.Fire(context.Background(), TriggerApprove); err != nil {
		t.Fatalf("Fire(APPROVE) returned error: %v", err)
	}
	if err := m.Fire(context.Background(), TriggerFulfill); err != nil {
		t.Fatalf("Fire(FULFILL) returned error: %v", err)
	}
	if m.State() != StateFulfilled {
		t.Errorf("State() = %v, want %v", m.State(), StateFulfilled)
	}

	if err := m.Fire(context.Background(), TriggerFulfill); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Fire(FULFILL) from fulfilled error = %v, want ErrInvalidTransition", err)
	}
}

func TestStateMachine_CanFire(t *testing.T) {
	m := NewRedemptionMachine(StatePending)

	if !m.CanFire(TriggerApprove) {
		t.Error("CanFire(APPROVE) = false, want true from pending")
	}
	if m.CanFire(TriggerFulfill) {
		t.Error("CanFire(FULFILL) = true, want false from pending")
	}

	_ = m.Fire(context.Background(), TriggerReject)
	if m.CanFire(TriggerApprove) {
		t.Error("CanFire(APPROVE) = true, want false from rejected")
	}
}

func TestStateMachine_PermittedTriggers(t *testing.T) {
	m := NewAutomationMachine(StatePending)
	if got := len(m.PermittedTriggers()); got != 2 {
		t.Errorf("PermittedTriggers() returned %d triggers, want 2", got)
	}

	_ = m.Fire(context.Background(), TriggerApprove)
	if got := len(m.PermittedTriggers()); got != 0 {
		t.Errorf("PermittedTriggers() returned %d triggers from approved, want 0", got)
	}
}

func TestStateMachine_GuardBlocksTransition(t *testing.T) {
	b := NewBuilder()
	b.PermitIf(StatePending, TriggerApprove, StateApproved, func(ctx context.Context) bool { return false })
	m := b.Build(StatePending)

	err := m.Fire(context.Background(), TriggerApprove)
	if !errors.Is(err, ErrGuardFailed) {
		t.Errorf("Fire(APPROVE) error = %v, want ErrGuardFailed", err)
	}
	if m.State() != StatePending {
		t.Errorf("State() = %v, want pending after failed guard", m.State())
	}
}

func TestBuilder_PanicsOnInvalidState(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Permit with invalid state did not panic")
		}
	}()

	NewBuilder().Permit(State("limbo"), TriggerApprove, StateApproved)
}
