package mec

import "github.com/katalvlaran/fimdpgo/cmdp"

// probAttractor extends attr (in place) to the set of states from which no
// action can fully avoid attr: repeatedly add any state all of whose
// actions have at least one successor in attr (including, vacuously, a
// state with no actions at all), until a full pass adds nothing. Grounded
// on original_source/fimdp/explicit.py's _prob_attractor; operates over the
// full CMDP rather than the reduced graph, since an action's successors may
// include states already removed from a prior round.
func probAttractor(cm *cmdp.CMDP, attr map[cmdp.StateID]bool) error {
	for {
		changed := false
		for _, s := range cm.States() {
			if attr[s] {
				continue
			}

			acts, err := cm.ActionsFor(s)
			if err != nil {
				return err
			}

			safe := false
			for _, a := range acts {
				disjoint := true
				for _, succ := range a.Distribution.Successors() {
					if attr[succ] {
						disjoint = false
						break
					}
				}
				if disjoint {
					safe = true
					break
				}
			}

			if !safe {
				attr[s] = true
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}
}
