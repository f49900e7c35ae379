package mincap

import "errors"

// ErrCapacityTooSmall is returned when no capacity within the configured
// search range satisfies the objective from the initial state (spec §7
// "CapacityTooSmall").
var ErrCapacityTooSmall = errors.New("mincap: no capacity in range satisfies the objective")

// ErrUnsupportedObjective is returned for any objective other than AsReach
// or Büchi, mirroring original_source/fimdp/mincap_solvers.py's bin_search,
// which only accepts those two.
var ErrUnsupportedObjective = errors.New("mincap: objective must be AsReach or Buchi")
