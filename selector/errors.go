package selector

import "errors"

var (
	// ErrNoFeasibleAction is returned when a SelectionRule has no breakpoint
	// at or below the requested energy level.
	ErrNoFeasibleAction = errors.New("selector: no feasible action for energy level")

	// ErrWrongCallOrder is returned when NextAction/UpdateState on a
	// CounterStrategy are not called in alternation.
	ErrWrongCallOrder = errors.New("selector: next action/update state calls out of order")

	// ErrInvalidOutcome is returned when UpdateState is given a state that is
	// not a successor of the action last returned by NextAction.
	ErrInvalidOutcome = errors.New("selector: outcome is not a valid successor of the last action")

	// ErrActionNotForState is returned by Update when the given action does
	// not belong to the given state.
	ErrActionNotForState = errors.New("selector: action does not belong to state")
)
