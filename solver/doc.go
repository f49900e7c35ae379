// Package solver computes the minimal initial energy levels and counter
// selectors for the five qualitative objectives of spec §4:
// MinInitCons, Safe, PosReach, AsReach and Büchi, plus the goal-leaning
// heuristic of spec §4.10. Every objective is built on top of package
// fixpoint's largest/least fixpoint engine; the solver's job is supplying
// the right action-value functional, value adjustment, skip predicate and
// update hook for each one, in the same order the underlying equations
// depend on each other (Safe before PosReach, PosReach-shaped iteration
// before AsReach and Büchi).
//
// A Solver is built once per (CMDP, capacity, targets) triple with New, and
// memoizes each objective's result the first time it is requested through
// MinLevels or Selector. Objectives that depend on another (PosReach and
// AsReach on Safe; AsReach and Büchi on a per-run helper Safe) trigger that
// dependency's computation automatically.
package solver
