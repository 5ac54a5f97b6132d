package query

import "fmt"

// State of a query execution.
//
//	Created -> Submitted -> Running -> {Succeeded, Failed, Cancelled}
//
// Submitted may also go to Failed or Cancelled directly.
type State uint8

const (
	StateCreated State = iota
	StateSubmitted
	StateRunning
	StateSucceeded
	StateFailed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateSubmitted:
		return "Submitted"
	case StateRunning:
		return "Running"
	case StateSucceeded:
		return "Succeeded"
	case StateFailed:
		return "Failed"
	case StateCancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// IsTerminal reports whether no further transitions are possible from s.
func (s State) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateCancelled
}
