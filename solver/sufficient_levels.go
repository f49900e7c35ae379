package solver

import (
	"github.com/katalvlaran/fimdpgo/cmdp"
	"github.com/katalvlaran/fimdpgo/fixpoint"
)

// sufficientLevels computes survival values via repeated reload elimination
// (spec §4.4): run the largest fixpoint treating every reload not in removed
// as free, then add to removed any reload whose value came out unsatisfiable
// and try again, until a round removes nothing. Finally, every still-usable
// reload collapses to 0.
//
// initVal seeds each round's values (e.g. "Inf everywhere" for plain Safe and
// for Büchi's per-round helper Safe, or "Safe[t] at targets, Inf elsewhere"
// for AsReach's). objective names the strategy slot rebuilt each round.
func (s *Solver) sufficientLevels(values []fixpoint.Value, removed map[cmdp.StateID]bool, initVal func(cmdp.StateID) fixpoint.Value, objective Objective) error {
	if removed == nil {
		removed = make(map[cmdp.StateID]bool)
	}

	for {
		s.newSelector(objective)
		for _, st := range s.cm.States() {
			values[st] = initVal(st)
		}

		zeroCond := func(x cmdp.StateID) bool { return s.cm.IsReload(x) && !removed[x] }
		remActionValue := s.actionValue(zeroCond)
		skipCond := func(x cmdp.StateID) bool { return removed[x] }

		if err := fixpoint.LargestFixpoint(s.cm, values, remActionValue,
			fixpoint.WithValueAdjust(s.capAdjust),
			fixpoint.WithSkipState(skipCond),
			fixpoint.WithOnUpdate(s.updateFn(objective)),
		); err != nil {
			return err
		}

		done := true
		for _, st := range s.cm.States() {
			if s.cm.IsReload(st) && values[st] == fixpoint.Inf && !removed[st] {
				removed[st] = true
				done = false
			}
		}
		if done {
			break
		}
	}

	for _, st := range s.cm.States() {
		if s.cm.IsReload(st) && s.withinCapacity(values[st]) {
			values[st] = 0
		}
	}
	return nil
}
