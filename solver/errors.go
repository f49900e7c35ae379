package solver

import "errors"

// ErrInvalidObjective is returned when an Objective outside the public range
// MinInitCons..Buchi is passed to MinLevels or Selector.
var ErrInvalidObjective = errors.New("solver: invalid objective")
