// Package cmdp defines the Consumption Markov Decision Process (CMDP) data
// model: States with an optional reload flag, Actions carrying an integer
// energy consumption and a successor Distribution, and the CMDP store that
// owns them.
//
// A CMDP is built incrementally with New, AddState and AddAction, then handed
// to a solver (see package solver). Structural edits — AddState, AddAction,
// RemoveAction, SetReload — bump a generation counter; the CMDP itself does
// not cache anything. Package solver does not read that counter: a Solver's
// memoized results are not invalidated by later edits.
//
// Concurrency: CMDP uses a single sync.RWMutex guarding both the state
// catalog and the per-state action lists, mirroring the locking discipline of
// a thread-safe graph store — safe to build across goroutines, but a CMDP is
// meant to be frozen (no further structural edits) once a solver starts
// reading it.
//
// Complexity: AddState is O(1) amortized. AddAction is O(deg(src)) to check
// for a duplicate label. RemoveAction is O(number of actions ever added),
// since it scans every state's action list for the id. Successors and
// action iteration are O(1) amortized per step.
//
// Errors:
//
//	ErrUnknownState      - a referenced state id (source or successor) is out of range.
//	ErrUnknownAction     - a referenced action id does not exist (or was removed).
//	ErrDuplicateLabel    - two actions at the same source share a label.
//	ErrInvalidDistribution - a distribution is empty or its probabilities do not sum to exactly 1.
package cmdp
