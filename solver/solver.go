package solver

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/fimdpgo/cmdp"
	"github.com/katalvlaran/fimdpgo/fixpoint"
	"github.com/katalvlaran/fimdpgo/obslog"
	"github.com/katalvlaran/fimdpgo/selector"
)

// Solver computes minimal initial energy levels and counter selectors for a
// fixed (CMDP, capacity, targets) triple (spec §4). Results are memoized per
// Objective the first time they are requested and are not recomputed after
// later structural edits to the CMDP.
type Solver struct {
	cm       *cmdp.CMDP
	capacity fixpoint.Value
	targets  map[cmdp.StateID]bool

	minLevels    map[Objective][]fixpoint.Value
	helperLevels map[Objective][]fixpoint.Value
	strategies   map[Objective]*selector.CounterSelector

	goalLeaning      bool
	threshold        *big.Rat
	leastFixpointSafe bool

	log obslog.Logger
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithGoalLeaning enables the goal-leaning heuristic for PosReach, AsReach
// and Büchi (spec §4.10): among actions achieving the minimal energy value,
// prefer the one most likely to reach its chosen successor. threshold, if
// positive, runs a first fixpoint pass ignoring successors less likely than
// threshold, then a second pass without the threshold to correct any
// resulting gaps.
func WithGoalLeaning(threshold *big.Rat) Option {
	return func(s *Solver) {
		s.goalLeaning = true
		if threshold == nil {
			threshold = big.NewRat(0, 1)
		}
		s.threshold = threshold
	}
}

// WithLeastFixpointSafe switches Safe's computation from the default
// reload-elimination largest fixpoint to the alternate least-fixpoint
// iteration that grows from MinInitCons upward (spec §4.4, supplemented
// feature). Same results; its cost grows with the largest finite value
// rather than with the number of reloads, so it is the cheaper choice when
// that value is small relative to the number of states.
func WithLeastFixpointSafe() Option {
	return func(s *Solver) { s.leastFixpointSafe = true }
}

// WithLogger attaches a logger used to trace objective computations.
func WithLogger(l obslog.Logger) Option {
	return func(s *Solver) { s.log = l }
}

// New returns a Solver over cm with the given capacity and target set.
func New(cm *cmdp.CMDP, capacity fixpoint.Value, targets []cmdp.StateID, opts ...Option) *Solver {
	targetSet := make(map[cmdp.StateID]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}
	s := &Solver{
		cm:           cm,
		capacity:     capacity,
		targets:      targetSet,
		minLevels:    make(map[Objective][]fixpoint.Value),
		helperLevels: make(map[Objective][]fixpoint.Value),
		strategies:   make(map[Objective]*selector.CounterSelector),
		log:          obslog.Noop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// MinLevels returns the minimal initial energy level for every state under
// objective, computing it (and any objective it depends on) on first use.
func (s *Solver) MinLevels(objective Objective) ([]fixpoint.Value, error) {
	if !objective.valid(false) {
		return nil, fmt.Errorf("solver: %v: %w", objective, ErrInvalidObjective)
	}
	if err := s.compute(objective); err != nil {
		return nil, err
	}
	return s.minLevels[objective], nil
}

// Selector returns the counter selector realizing objective's minimal
// levels, computing it on first use.
func (s *Solver) Selector(objective Objective) (*selector.CounterSelector, error) {
	if !objective.valid(false) {
		return nil, fmt.Errorf("solver: %v: %w", objective, ErrInvalidObjective)
	}
	if err := s.compute(objective); err != nil {
		return nil, err
	}
	return s.strategies[objective], nil
}

func (s *Solver) compute(objective Objective) error {
	if _, ok := s.minLevels[objective]; ok {
		return nil
	}
	s.log.Info("computing objective", "objective", objective.String())
	switch objective {
	case MinInitCons:
		return s.computeMinInitCons()
	case Safe:
		return s.computeSafe()
	case PosReach:
		return s.computePosReach()
	case AsReach:
		return s.computeAsReach()
	case Buchi:
		return s.computeBuchi()
	default:
		return fmt.Errorf("solver: %v: %w", objective, ErrInvalidObjective)
	}
}

func (s *Solver) newSelector(objective Objective) {
	s.strategies[objective] = selector.NewCounterSelector(s.cm)
}

func (s *Solver) copyStrategy(from, to Objective, states map[cmdp.StateID]bool) {
	src, ok := s.strategies[from]
	if !ok {
		return
	}
	dst := s.strategies[to]
	for st := range states {
		rule := src.Rule(st)
		for _, lb := range rule.Breakpoints() {
			a, err := rule.SelectAction(lb)
			if err != nil {
				continue
			}
			_ = dst.Update(st, lb, a)
		}
	}
}

func (s *Solver) updateFn(objective Objective) func(cmdp.StateID, fixpoint.Value, cmdp.Action) {
	return func(st cmdp.StateID, v fixpoint.Value, a cmdp.Action) {
		_ = s.strategies[objective].Update(st, v, a)
	}
}

// actionValue is the basic action-value functional (spec §4.3): the
// consumption of a plus the worst case over a's successors that do not
// satisfy zeroCond (treated as free/0), defaulting to "is a reload".
func (s *Solver) actionValue(zeroCond func(cmdp.StateID) bool) fixpoint.ActionValue {
	if zeroCond == nil {
		zeroCond = s.cm.IsReload
	}
	return func(a cmdp.Action, values []fixpoint.Value) fixpoint.Value {
		worst := 0
		for _, succ := range a.Distribution.Successors() {
			if zeroCond(succ) {
				continue
			}
			worst = fixpoint.Max(worst, values[succ])
		}
		return fixpoint.Add(a.Consumption, worst)
	}
}

// actionValueT is the directed action-value functional (spec §4.5): picks
// the cheapest successor t to aim for, using survivalVal for the energy
// needed to merely survive through the other successors of a.
func (s *Solver) actionValueT(survivalVal func(cmdp.StateID) fixpoint.Value) fixpoint.ActionValue {
	return func(a cmdp.Action, values []fixpoint.Value) fixpoint.Value {
		v, _ := s.actionValueTWithProb(a, values, survivalVal, nil)
		return v
	}
}

// actionValueTWithProb is actionValueT extended to also report the
// probability of hitting the picked successor, and to ignore successors
// whose probability is below threshold (nil or non-positive disables
// filtering). Used by the goal-leaning argmin (spec §4.10).
func (s *Solver) actionValueTWithProb(a cmdp.Action, values []fixpoint.Value, survivalVal func(cmdp.StateID) fixpoint.Value, threshold *big.Rat) (fixpoint.Value, *big.Rat) {
	candidate := fixpoint.Inf
	prob := big.NewRat(0, 1)
	succs := a.Distribution.Successors()

	for _, t := range succs {
		tp := a.Distribution.Prob(t)
		if threshold != nil && threshold.Sign() > 0 && tp.Cmp(threshold) < 0 {
			continue
		}
		worst := values[t]
		for _, other := range succs {
			if other == t {
				continue
			}
			worst = fixpoint.Max(worst, survivalVal(other))
		}
		if worst < candidate || (worst == candidate && tp.Cmp(prob) > 0) {
			candidate, prob = worst, tp
		}
	}
	return fixpoint.Add(a.Consumption, candidate), prob
}

// reloadCapper is the default ValueAdjust (spec §4.5/§4.6): values beyond
// capacity become unsatisfiable, and reload states that are still within
// capacity collapse to 0.
func (s *Solver) reloadCapper(st cmdp.StateID, v fixpoint.Value) fixpoint.Value {
	if s.overCapacity(v) {
		return fixpoint.Inf
	}
	if s.cm.IsReload(st) {
		return 0
	}
	return v
}

func (s *Solver) capAdjust(_ cmdp.StateID, v fixpoint.Value) fixpoint.Value {
	if s.capacity != fixpoint.Inf && v > s.capacity {
		return fixpoint.Inf
	}
	return v
}

// overCapacity reports whether v exceeds the capacity, handling an unbounded
// (Inf) capacity without integer overflow.
func (s *Solver) overCapacity(v fixpoint.Value) bool {
	if s.capacity == fixpoint.Inf {
		return false
	}
	return v > s.capacity
}

// withinCapacity reports whether v is a finite value achievable within the
// capacity. Mirrors the original's "v < cap+1" reload-collapse test, which
// relies on cap+1 staying ∞ under Python's unbounded arithmetic; here the
// ∞ case is excluded explicitly instead, since fixpoint.Inf+1 would overflow.
func (s *Solver) withinCapacity(v fixpoint.Value) bool {
	return v != fixpoint.Inf && !s.overCapacity(v)
}

func (s *Solver) isTarget(st cmdp.StateID) bool { return s.targets[st] }
