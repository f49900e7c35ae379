// Package fimdpgo synthesizes resource-aware controllers for Consumption
// Markov Decision Processes (CMDPs): finite-state probabilistic models in
// which every action consumes a nonnegative integer amount of energy and
// designated reload states replenish energy to a fixed capacity.
//
// Given a qualitative objective over a target set (survival, reachability,
// Büchi), a Solver computes, for every state, the minimum initial energy
// that permits satisfying the objective without the stored energy ever
// going negative or exceeding the capacity, plus a counter selector: a
// finite (state, energy) → action strategy realizing it.
//
// Everything lives under focused subpackages:
//
//	cmdp/       — the in-memory CMDP store: states, actions, exact-rational distributions
//	fixpoint/   — the generic largest/least fixpoint engine and action-value functionals
//	solver/     — MinInitCons, Safe, PosReach, AsReach and Büchi, plus the goal-leaning variant
//	selector/   — the counter selector and its online CounterStrategy wrapper
//	mec/        — maximal end-component decomposition
//	mincap/     — binary search for the smallest satisfying capacity
//	serialize/  — JSON / PRISM-like / YAML import-export boundary
//	obslog/     — structured logging façade used by solver and cmd/fimdpctl
//	cmd/fimdpctl/ — a thin CLI wrapping solver
//
//	go get github.com/katalvlaran/fimdpgo
package fimdpgo
