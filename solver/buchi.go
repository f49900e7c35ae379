package solver

import (
	"github.com/katalvlaran/fimdpgo/cmdp"
	"github.com/katalvlaran/fimdpgo/fixpoint"
)

// computeBuchi computes Büchi, the minimal energy to survive while visiting
// the target set infinitely often with probability 1 (spec §4.6). It is
// shaped exactly like AsReach, except the per-round helper Safe
// (helperLevels[Buchi]) is never reset to Safe[t] at targets: after visiting
// T we must be able to leave and come back, so a target state only ever
// needs as much energy as Safe(M\removed) already requires there.
func (s *Solver) computeBuchi() error {
	removed := make(map[cmdp.StateID]bool)
	s.helperLevels[Buchi] = make([]fixpoint.Value, s.cm.NumStates())
	for i := range s.helperLevels[Buchi] {
		s.helperLevels[Buchi][i] = fixpoint.Inf
	}
	allInf := func(cmdp.StateID) fixpoint.Value { return fixpoint.Inf }

	var values []fixpoint.Value
	for {
		if err := s.sufficientLevels(s.helperLevels[Buchi], removed, allInf, helperBuchi); err != nil {
			return err
		}

		helper := s.helperLevels[Buchi]
		values = make([]fixpoint.Value, s.cm.NumStates())
		for i := range values {
			values[i] = fixpoint.Inf
		}
		for t := range s.targets {
			values[t] = helper[t]
		}
		s.newSelector(Buchi)

		survivalVal := func(st cmdp.StateID) fixpoint.Value { return helper[st] }
		av := s.actionValueT(survivalVal)
		skip := func(x cmdp.StateID) bool { return removed[x] || s.isTarget(x) }

		if err := s.runDirectedFixpoint(values, av, skip, Buchi, survivalVal); err != nil {
			return err
		}

		done := true
		for _, st := range s.cm.States() {
			if s.cm.IsReload(st) && values[st] == fixpoint.Inf && !removed[st] {
				removed[st] = true
				done = false
			}
		}
		s.copyStrategy(helperBuchi, Buchi, s.targets)
		if done {
			break
		}
	}

	s.minLevels[Buchi] = values
	return nil
}
