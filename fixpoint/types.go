package fixpoint

import (
	"math"

	"github.com/katalvlaran/fimdpgo/cmdp"
)

// Value is an element of ℕ₀ ∪ {∞}. Inf represents unsatisfiability; ordinary
// values are non-negative ints.
type Value = int

// Inf is the sentinel for "unsatisfiable" / "unbounded". Arithmetic on Value
// must go through Add, which saturates at Inf instead of overflowing.
const Inf Value = math.MaxInt

// Add returns a+b, saturating to Inf if either operand is Inf (or the sum
// would overflow).
func Add(a, b Value) Value {
	if a == Inf || b == Inf {
		return Inf
	}
	sum := a + b
	if sum < a { // overflow
		return Inf
	}
	return sum
}

// Max returns the larger of a and b.
func Max(a, b Value) Value {
	if a > b {
		return a
	}
	return b
}

// ActionValue computes the value of action a given the current values
// vector, indexed by cmdp.StateID.
type ActionValue func(a cmdp.Action, values []Value) Value

// ValueAdjust rewrites the fixpoint's candidate value for state s (e.g. a
// capacity cap, or collapsing reload states to 0).
type ValueAdjust func(s cmdp.StateID, v Value) Value

// SkipState reports whether s should be left untouched by the fixpoint.
type SkipState func(s cmdp.StateID) bool

// OnUpdate is invoked whenever the fixpoint strictly improves the value of a
// state, naming the winning action. Used by package selector to build the
// counter selector in lockstep with the fixpoint (spec §4.7).
type OnUpdate func(s cmdp.StateID, v Value, a cmdp.Action)

// ArgMin picks, among actions, the one minimizing value, breaking ties by
// the order actions appear in (spec §4.2.1: "ties broken by insertion order
// for the basic solver or by the pluggable argmin for variants"). ok is
// false when actions is empty.
type ArgMin func(actions []cmdp.Action, value func(cmdp.Action) Value) (winner cmdp.Action, v Value, ok bool)

// DefaultArgMin breaks ties by insertion order: the first action achieving
// the minimum wins.
func DefaultArgMin(actions []cmdp.Action, value func(cmdp.Action) Value) (cmdp.Action, Value, bool) {
	var (
		best    cmdp.Action
		bestV   = Inf
		anyBest bool
	)
	for _, a := range actions {
		v := value(a)
		if v < bestV {
			best, bestV, anyBest = a, v, true
		}
	}
	return best, bestV, anyBest
}

func identityAdjust(_ cmdp.StateID, v Value) Value { return v }
func noSkip(_ cmdp.StateID) bool                    { return false }
func noUpdate(_ cmdp.StateID, _ Value, _ cmdp.Action) {}
