package mincap

import (
	"fmt"

	"github.com/katalvlaran/fimdpgo/cmdp"
	"github.com/katalvlaran/fimdpgo/fixpoint"
	"github.com/katalvlaran/fimdpgo/solver"
)

// config holds Search's tunables, set via Option.
type config struct {
	startingCapacity int
	maxStartingLoad  *int
	solverOpts       []solver.Option
}

// Option configures a Search call.
type Option func(*config)

// WithStartingCapacity sets the upper bound of the binary search range
// (default 100).
func WithStartingCapacity(c int) Option {
	return func(cfg *config) { cfg.startingCapacity = c }
}

// WithMaxStartingLoad caps how much initial energy is acceptable at the
// initial state: a capacity whose min level at initLoc exceeds load is
// treated as a failure even if the objective is otherwise satisfiable
// there (spec §4.9).
func WithMaxStartingLoad(load int) Option {
	return func(cfg *config) { cfg.maxStartingLoad = &load }
}

// WithSolverOption forwards an extra solver.Option (e.g. WithGoalLeaning)
// to every probe solver.
func WithSolverOption(o solver.Option) Option {
	return func(cfg *config) { cfg.solverOpts = append(cfg.solverOpts, o) }
}

// Search finds the smallest capacity C* in [1, startingCapacity] such that
// objective is satisfiable from initLoc against targets, by binary search,
// constructing a fresh solver.Solver per probe (spec §4.9). objective must
// be solver.AsReach or solver.Buchi.
//
// Returns ErrUnsupportedObjective for any other objective, and
// ErrCapacityTooSmall if no capacity in range suffices.
func Search(cm *cmdp.CMDP, initLoc cmdp.StateID, targets []cmdp.StateID, objective solver.Objective, opts ...Option) (int, error) {
	if objective != solver.AsReach && objective != solver.Buchi {
		return 0, fmt.Errorf("%w: got %v", ErrUnsupportedObjective, objective)
	}

	cfg := config{startingCapacity: 100}
	for _, o := range opts {
		o(&cfg)
	}

	low, high := 1, cfg.startingCapacity
	success := false

	for low < high {
		mid := (low + high) / 2

		s := solver.New(cm, fixpoint.Value(mid), targets, cfg.solverOpts...)
		levels, err := s.MinLevels(objective)
		if err != nil {
			return 0, err
		}

		maxLoad := mid
		if cfg.maxStartingLoad != nil {
			maxLoad = *cfg.maxStartingLoad
		}

		if int(levels[initLoc]) > maxLoad {
			low = mid + 1
		} else {
			high = mid
			success = true
		}
	}

	if !success {
		// The loop never probes its upper bound; test it once here.
		s := solver.New(cm, fixpoint.Value(low), targets, cfg.solverOpts...)
		levels, err := s.MinLevels(objective)
		if err != nil {
			return 0, err
		}
		maxLoad := low
		if cfg.maxStartingLoad != nil {
			maxLoad = *cfg.maxStartingLoad
		}
		success = low <= cfg.startingCapacity && int(levels[initLoc]) <= maxLoad
	}
	if !success {
		return 0, fmt.Errorf("%w: range [1,%d]", ErrCapacityTooSmall, cfg.startingCapacity)
	}
	return low, nil
}
