package solver

import (
	"math/big"

	"github.com/katalvlaran/fimdpgo/cmdp"
	"github.com/katalvlaran/fimdpgo/fixpoint"
)

// goalLeaningArgMin implements pick_best_action (spec §4.10): among actions,
// pick the one minimizing actionValueT's value, breaking ties by the
// highest probability of hitting the chosen successor. It ignores the
// generic `value` function fixpoint.ArgMin is handed, recomputing both the
// value and the probability itself since the standard ActionValue signature
// cannot carry the probability alongside it.
func (s *Solver) goalLeaningArgMin(values []fixpoint.Value, survivalVal func(cmdp.StateID) fixpoint.Value) fixpoint.ArgMin {
	return func(actions []cmdp.Action, _ func(cmdp.Action) fixpoint.Value) (cmdp.Action, fixpoint.Value, bool) {
		var best cmdp.Action
		bestV := fixpoint.Inf
		bestP := big.NewRat(0, 1)
		found := false

		for _, a := range actions {
			v, p := s.actionValueTWithProb(a, values, survivalVal, s.threshold)
			if v < bestV || (v == bestV && p.Cmp(bestP) > 0) {
				best, bestV, bestP, found = a, v, p, true
			}
		}
		return best, bestV, found
	}
}

// runDirectedFixpoint runs actionValueT's largest fixpoint for one of the
// T-navigating objectives (PosReach, AsReach, Büchi), applying the
// goal-leaning argmin and its optional two-pass threshold run when enabled
// (spec §4.10's double_fixpoint).
func (s *Solver) runDirectedFixpoint(values []fixpoint.Value, av fixpoint.ActionValue, skip fixpoint.SkipState, objective Objective, survivalVal func(cmdp.StateID) fixpoint.Value) error {
	opts := []fixpoint.Option{
		fixpoint.WithValueAdjust(s.reloadCapper),
		fixpoint.WithSkipState(skip),
		fixpoint.WithOnUpdate(s.updateFn(objective)),
	}
	if s.goalLeaning {
		opts = append(opts, fixpoint.WithArgMin(s.goalLeaningArgMin(values, survivalVal)))
	}
	if err := fixpoint.LargestFixpoint(s.cm, values, av, opts...); err != nil {
		return err
	}

	if s.goalLeaning && s.threshold != nil && s.threshold.Sign() > 0 {
		saved := s.threshold
		s.threshold = big.NewRat(0, 1)
		opts2 := []fixpoint.Option{
			fixpoint.WithValueAdjust(s.reloadCapper),
			fixpoint.WithSkipState(skip),
			fixpoint.WithOnUpdate(s.updateFn(objective)),
			fixpoint.WithArgMin(s.goalLeaningArgMin(values, survivalVal)),
		}
		err := fixpoint.LargestFixpoint(s.cm, values, av, opts2...)
		s.threshold = saved
		if err != nil {
			return err
		}
	}
	return nil
}
