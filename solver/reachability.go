package solver

import (
	"github.com/katalvlaran/fimdpgo/cmdp"
	"github.com/katalvlaran/fimdpgo/fixpoint"
)

// computeSafe computes Safe, the minimal energy to never run out (spec
// §4.4), via the default reload-elimination largest fixpoint unless
// WithLeastFixpointSafe was set.
func (s *Solver) computeSafe() error {
	if s.leastFixpointSafe {
		return s.computeSafeLeastFixpoint()
	}

	values := make([]fixpoint.Value, s.cm.NumStates())
	allInf := func(cmdp.StateID) fixpoint.Value { return fixpoint.Inf }
	if err := s.sufficientLevels(values, nil, allInf, Safe); err != nil {
		return err
	}
	s.minLevels[Safe] = values
	return nil
}

// computeSafeLeastFixpoint is the supplemented alternate Safe computation
// (spec §4.4's "Supplemented Features" entry, WithLeastFixpointSafe): grow
// from MinInitCons upward via a least fixpoint instead of eliminating
// reloads from Inf downward. No strategy is tracked, mirroring
// original_source/fimdp/energy_solvers.py's LeastFixpointES, whose
// least_fixpoint call passes no on_update hook.
func (s *Solver) computeSafeLeastFixpoint() error {
	mic, err := s.MinLevels(MinInitCons)
	if err != nil {
		return err
	}
	values := append([]fixpoint.Value(nil), mic...)
	s.minLevels[Safe] = values

	zeroCond := func(succ cmdp.StateID) bool {
		return s.cm.IsReload(succ) && s.withinCapacity(values[succ])
	}
	if err := fixpoint.LeastFixpoint(s.cm, values, s.actionValue(zeroCond),
		fixpoint.WithValueAdjust(s.capAdjust),
	); err != nil {
		return err
	}

	for _, st := range s.cm.States() {
		if s.cm.IsReload(st) && s.withinCapacity(values[st]) {
			values[st] = 0
		}
	}

	s.newSelector(Safe)
	return nil
}

// computePosReach computes PosReach, the minimal energy to survive while
// keeping a positive probability of reaching a target (spec §4.5): target
// states are pinned at their Safe value, everything else navigates towards
// one via the directed action-value functional.
func (s *Solver) computePosReach() error {
	safe, err := s.MinLevels(Safe)
	if err != nil {
		return err
	}

	values := make([]fixpoint.Value, s.cm.NumStates())
	for i := range values {
		values[i] = fixpoint.Inf
	}
	for t := range s.targets {
		values[t] = safe[t]
	}
	s.newSelector(PosReach)

	survivalVal := func(st cmdp.StateID) fixpoint.Value { return safe[st] }
	av := s.actionValueT(survivalVal)
	skip := func(x cmdp.StateID) bool { return s.isTarget(x) }

	if err := s.runDirectedFixpoint(values, av, skip, PosReach, survivalVal); err != nil {
		return err
	}

	s.minLevels[PosReach] = values
	s.copyStrategy(Safe, PosReach, s.targets)
	return nil
}

// computeAsReach computes AsReach, the minimal energy to survive while
// reaching a target with probability 1 (spec §4.6): repeatedly compute a
// per-round Safe variant (helperLevels[AsReach]) that resets to Safe[t] at
// targets, navigate towards T using it for survival, and remove any reload
// that turns out unable to reach T, until a round removes nothing.
func (s *Solver) computeAsReach() error {
	safe, err := s.MinLevels(Safe)
	if err != nil {
		return err
	}

	removed := make(map[cmdp.StateID]bool)
	s.helperLevels[AsReach] = make([]fixpoint.Value, s.cm.NumStates())
	for i := range s.helperLevels[AsReach] {
		s.helperLevels[AsReach][i] = fixpoint.Inf
	}
	safeAfterT := func(st cmdp.StateID) fixpoint.Value {
		if s.isTarget(st) {
			return safe[st]
		}
		return fixpoint.Inf
	}

	var values []fixpoint.Value
	for {
		if err := s.sufficientLevels(s.helperLevels[AsReach], removed, safeAfterT, helperAsReach); err != nil {
			return err
		}

		values = make([]fixpoint.Value, s.cm.NumStates())
		for i := range values {
			values[i] = fixpoint.Inf
		}
		for t := range s.targets {
			values[t] = safe[t]
		}
		s.newSelector(AsReach)

		helper := s.helperLevels[AsReach]
		survivalVal := func(st cmdp.StateID) fixpoint.Value { return helper[st] }
		av := s.actionValueT(survivalVal)
		removedFn := func(x cmdp.StateID) bool { return removed[x] }
		skip := func(x cmdp.StateID) bool { return removedFn(x) || s.isTarget(x) }

		if err := s.runDirectedFixpoint(values, av, skip, AsReach, survivalVal); err != nil {
			return err
		}

		done := true
		for _, st := range s.cm.States() {
			if s.cm.IsReload(st) && values[st] == fixpoint.Inf && !removed[st] {
				removed[st] = true
				done = false
			}
		}
		s.copyStrategy(Safe, AsReach, s.targets)
		if done {
			break
		}
	}

	s.minLevels[AsReach] = values
	return nil
}
