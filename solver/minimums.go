package solver

import "github.com/katalvlaran/fimdpgo/fixpoint"

// computeMinInitCons computes MinInitCons via a plain largest fixpoint
// bounded by capacity (spec §4.3).
func (s *Solver) computeMinInitCons() error {
	s.newSelector(MinInitCons)

	values := make([]fixpoint.Value, s.cm.NumStates())
	for i := range values {
		values[i] = fixpoint.Inf
	}

	err := fixpoint.LargestFixpoint(s.cm, values, s.actionValue(nil),
		fixpoint.WithValueAdjust(s.capAdjust),
		fixpoint.WithOnUpdate(s.updateFn(MinInitCons)),
	)
	if err != nil {
		return err
	}

	s.minLevels[MinInitCons] = values
	return nil
}
