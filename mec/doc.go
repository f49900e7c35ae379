// Package mec computes the maximal end-component (MEC) decomposition of a
// CMDP's underlying graph (spec §4.8), ignoring consumption entirely.
//
// An end-component is a set of states closed under at least one action per
// state and strongly connected in the induced graph; a MEC is an
// inclusion-maximal such set. Decomposition proceeds in rounds: find the
// strongly connected components (Tarjan, explicit-stack to avoid recursion
// depth on large CMDPs — see the teacher's dfs package for the same
// non-recursive discipline), keep the bottom non-trivial ones as MEC
// candidates, compute the probabilistic attractor of everything emitted so
// far (states that cannot avoid reaching it regardless of action choice),
// and remove the attractor from the graph before the next round. The
// algorithm terminates when the graph is empty.
//
// Grounded on original_source/fimdp/explicit.py's _Graph/_SCCUtil/
// _prob_attractor/get_MECs, reshaped into Go idiom and an explicit stack in
// the manner of dfs/cycle.go's three-color DFS.
package mec
