package cmdp

import "errors"

// Sentinel errors for CMDP store operations (spec §7).
var (
	// ErrUnknownState is returned when an operation references a state id
	// outside [0, num states).
	ErrUnknownState = errors.New("cmdp: unknown state")

	// ErrUnknownAction is returned when an operation references an action
	// id that was never issued, or that has since been removed.
	ErrUnknownAction = errors.New("cmdp: unknown action")

	// ErrDuplicateLabel is returned by AddAction when src already has an
	// action with the same label.
	ErrDuplicateLabel = errors.New("cmdp: duplicate action label for state")

	// ErrInvalidDistribution is returned when a distribution's
	// probabilities do not sum to exactly 1, or are empty. A successor
	// that names an unknown state yields ErrUnknownState instead.
	ErrInvalidDistribution = errors.New("cmdp: invalid distribution")

	// ErrNameTaken is returned by AddState when name is already in use.
	ErrNameTaken = errors.New("cmdp: state name already in use")
)
