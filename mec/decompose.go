package mec

import (
	"sort"

	"github.com/katalvlaran/fimdpgo/cmdp"
)

// Decompose computes the maximal end-component decomposition of cm (spec
// §4.8), ignoring consumption. Each round finds the strongly connected
// components of what remains of the graph, keeps every bottom, non-trivial
// SCC as an MEC, removes the probabilistic attractor of everything emitted
// so far, and repeats until the graph is empty.
func Decompose(cm *cmdp.CMDP) ([]MEC, error) {
	g, err := buildGraph(cm)
	if err != nil {
		return nil, err
	}

	var mecs []MEC
	removed := make(map[cmdp.StateID]bool)

	for !g.empty() {
		toRemove := make(map[cmdp.StateID]bool)

		for _, scc := range g.sccs() {
			if g.checkBSCC(scc) && !g.checkTrivial(scc) {
				for _, s := range scc {
					toRemove[s] = true
				}
				sorted := append([]cmdp.StateID(nil), scc...)
				sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
				mecs = append(mecs, MEC{States: sorted})
			}
		}

		attr := make(map[cmdp.StateID]bool, len(removed)+len(toRemove))
		for s := range removed {
			attr[s] = true
		}
		for s := range toRemove {
			attr[s] = true
		}
		if err := probAttractor(cm, attr); err != nil {
			return nil, err
		}

		g.removeVertices(attr)
		removed = attr
	}

	return mecs, nil
}
