package mec

import "github.com/katalvlaran/fimdpgo/cmdp"

// MEC is one maximal end-component: a set of states closed under at least
// one action per state and strongly connected in the induced graph (spec
// §4.8, §9 invariant 8 "MEC soundness").
type MEC struct {
	States []cmdp.StateID
}
