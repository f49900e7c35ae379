// Package fixpoint implements the generic largest- and least-fixpoint
// iteration engine shared by every energy-level computation in package
// solver (spec §4.2), plus the action-value functionals the solvers plug
// into it.
//
// Both LargestFixpoint and LeastFixpoint iterate a state-indexed integer
// vector to convergence, calling a pluggable ActionValue for every live
// action of every non-skipped state, a ValueAdjust to cap/adjust the winning
// candidate, and (for LargestFixpoint) an OnUpdate hook used by package
// selector to record the winning action. States are visited in ascending id
// order and actions in insertion order, matching spec §5's ordering
// guarantee: this determines which action wins a tie and is therefore part
// of the solver's observable contract.
//
// Complexity: LargestFixpoint terminates in at most |S|·(C+1) passes (§4.2.1);
// LeastFixpoint is bounded the same way.
package fixpoint
