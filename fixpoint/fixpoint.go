package fixpoint

import (
	"fmt"

	"github.com/katalvlaran/fimdpgo/cmdp"
)

// LargestFixpoint iterates values down to a largest fixpoint (spec §4.2.1):
// starting from the caller-supplied initial values (typically all Inf), it
// repeatedly visits every non-skipped state in ascending id order, computes
// the minimum action value among that state's live actions (tie-broken by
// the configured ArgMin, insertion order by default), adjusts it via
// ValueAdjust, and lowers values[s] to the adjusted candidate whenever that
// is strictly smaller — invoking OnUpdate on every such improvement. It
// terminates when a full pass makes no change.
//
// values is modified in place and must be indexed by cmdp.StateID (i.e. have
// length == cm.NumStates()).
func LargestFixpoint(cm *cmdp.CMDP, values []Value, actionValue ActionValue, opts ...Option) error {
	cfg := defaultSettings()
	for _, o := range opts {
		o(&cfg)
	}

	states := cm.States()
	if len(values) != len(states) {
		return fmt.Errorf("fixpoint: values has length %d, want %d", len(values), len(states))
	}

	pass := 0
	for changed := true; changed; {
		changed = false
		if cfg.onIterate != nil {
			cfg.onIterate(pass, values)
		}
		pass++

		for _, s := range states {
			if cfg.skip(s) {
				continue
			}
			acts, err := cm.ActionsFor(s)
			if err != nil {
				return err
			}

			value := func(a cmdp.Action) Value { return actionValue(a, values) }
			winner, candidate, ok := cfg.argmin(acts, value)
			if !ok {
				candidate = Inf
			}
			candidate = cfg.valueAdj(s, candidate)

			if candidate < values[s] {
				values[s] = candidate
				cfg.onUpdate(s, candidate, winner)
				changed = true
			}
		}
	}

	return nil
}

// LeastFixpoint iterates values up to a least fixpoint (spec §4.2.2): same
// skeleton as LargestFixpoint, but a state's value only ever increases.
// Callers seed values with a known lower bound (e.g. MinInitCons, which Safe
// is always at least as large as) rather than Inf, since the default skip
// condition freezes any state already at Inf — an already-hopeless state
// cannot be rescued by growing some other state's value.
func LeastFixpoint(cm *cmdp.CMDP, values []Value, actionValue ActionValue, opts ...Option) error {
	cfg := defaultSettings()
	cfg.skip = func(s cmdp.StateID) bool { return values[s] == Inf }
	for _, o := range opts {
		o(&cfg)
	}

	states := cm.States()
	if len(values) != len(states) {
		return fmt.Errorf("fixpoint: values has length %d, want %d", len(values), len(states))
	}

	pass := 0
	for changed := true; changed; {
		changed = false
		if cfg.onIterate != nil {
			cfg.onIterate(pass, values)
		}
		pass++

		for _, s := range states {
			if cfg.skip(s) {
				continue
			}
			acts, err := cm.ActionsFor(s)
			if err != nil {
				return err
			}
			if len(acts) == 0 {
				continue
			}

			candidate := Inf
			for _, a := range acts {
				candidate = min(candidate, actionValue(a, values))
			}
			candidate = cfg.valueAdj(s, candidate)

			if candidate > values[s] {
				values[s] = candidate
				changed = true
			}
		}
	}

	return nil
}
