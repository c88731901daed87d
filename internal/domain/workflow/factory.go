package workflow

// NewAutomationMachine builds the review lifecycle for automations:
// pending may be approved or rejected exactly once, both outcomes final.
func NewAutomationMachine(initial State) StateMachine {
	b := NewBuilder()
	b.Permit(StatePending, TriggerApprove, StateApproved)
	b.Permit(StatePending, TriggerReject, StateRejected)
	return b.Build(initial)
}

// NewRedemptionMachine builds the review lifecycle for redemptions:
// like automations, but an approved redemption can still be fulfilled.
func NewRedemptionMachine(initial State) StateMachine {
	b := NewBuilder()
	b.Permit(StatePending, TriggerApprove, StateApproved)
	b.Permit(StatePending, TriggerReject, StateRejected)
	b.Permit(StateApproved, TriggerFulfill, StateFulfilled)
	return b.Build(initial)
}
