package cmdp

import (
	"math/big"
	"sort"
)

// StateID identifies a state. IDs are assigned sequentially starting at 0 and
// are stable for the lifetime of a CMDP.
type StateID int

// State is a node of the CMDP: an optional display Name and a Reload flag.
// Outgoing actions are not stored on State itself; use CMDP.ActionsFor.
type State struct {
	ID     StateID
	Name   string
	Reload bool
}

// ActionID identifies an action within a CMDP. IDs are assigned sequentially
// and remain valid (as a lookup key) even after the action is removed, so
// that a caller holding a stale ID gets ErrUnknownAction rather than silently
// addressing a different action.
type ActionID int

// Action is an immutable record: a source state, an energy consumption, a
// successor Distribution, and a label unique among actions of the same Src.
type Action struct {
	ID           ActionID
	Src          StateID
	Consumption  int
	Distribution Distribution
	Label        string
}

// Distribution is a finite, exact-rational probability distribution over
// successor states. Probabilities are big.Rat so that "sums to exactly 1"
// never suffers floating-point drift (spec §3, §8.7).
type Distribution map[StateID]*big.Rat

// NewDistribution builds a Distribution from numerator/denominator pairs,
// e.g. NewDistribution(map[StateID][2]int64{1: {1, 2}, 2: {1, 2}}).
func NewDistribution(parts map[StateID][2]int64) Distribution {
	d := make(Distribution, len(parts))
	for s, frac := range parts {
		d[s] = big.NewRat(frac[0], frac[1])
	}
	return d
}

// UniformDistribution splits probability 1 exactly evenly across states.
// Grounded on original_source/fimdp/distribution.py's `uniform` helper;
// unlike that helper's decimal-rounding correction, big.Rat needs no
// remainder trick since 1/n is represented exactly.
func UniformDistribution(states ...StateID) Distribution {
	d := make(Distribution, len(states))
	n := int64(len(states))
	for _, s := range states {
		d[s] = big.NewRat(1, n)
	}
	return d
}

// sumsToOne reports whether d's probabilities sum to exactly 1.
func (d Distribution) sumsToOne() bool {
	sum := new(big.Rat)
	for _, p := range d {
		sum.Add(sum, p)
	}
	return sum.Cmp(big.NewRat(1, 1)) == 0
}

// Successors returns the support of d in ascending state-id order.
func (d Distribution) Successors() []StateID {
	out := make([]StateID, 0, len(d))
	for s := range d {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Prob returns the probability of s under d (the zero Rat if s is not in the
// support).
func (d Distribution) Prob(s StateID) *big.Rat {
	if p, ok := d[s]; ok {
		return p
	}
	return new(big.Rat)
}
