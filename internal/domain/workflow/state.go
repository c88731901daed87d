package workflow

// State represents a lifecycle state of a reviewable submission
type State string

const (
	StatePending   State = "pending"
	StateApproved  State = "approved"
	StateRejected  State = "rejected"
	StateFulfilled State = "fulfilled"
)

var validStates = map[State]bool{
	StatePending:   true,
	StateApproved:  true,
	StateRejected:  true,
	StateFulfilled: true,
}

// terminalStates lists states with no outgoing transitions. Approved is
// terminal for automations but not for redemptions, which may still be
// fulfilled; terminality is therefore decided by the configured machine,
// and this set only covers the states no machine ever leaves.
var terminalStates = map[State]bool{
	StateRejected:  true,
	StateFulfilled: true,
}

// IsTerminal returns true if no machine permits transitions out of the state
func (s State) IsTerminal() bool {
	return terminalStates[s]
}

// IsValid returns true if the state is a known lifecycle state
func (s State) IsValid() bool {
	return validStates[s]
}

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}
