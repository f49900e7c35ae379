// Package mincap searches for the smallest capacity under which a chosen
// reachability-style objective is satisfiable from a given initial state
// (spec §4.9).
//
// Search is a binary search over [1, startingCapacity], constructing a
// fresh solver.Solver at each probe (a Solver's min-levels are tied to one
// capacity, so there is no way to reuse a single instance across probes).
// Grounded on original_source/fimdp/mincap_solvers.py's bin_search, kept in
// the teacher's single-file-package style (e.g. the teacher's dijkstra
// package).
package mincap
