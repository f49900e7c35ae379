package fixpoint

// Option configures a fixpoint run.
type Option func(*settings)

type settings struct {
	valueAdj  ValueAdjust
	skip      SkipState
	onUpdate  OnUpdate
	argmin    ArgMin
	onIterate func(pass int, values []Value)
}

func defaultSettings() settings {
	return settings{
		valueAdj: identityAdjust,
		skip:     noSkip,
		onUpdate: noUpdate,
		argmin:   DefaultArgMin,
	}
}

// WithValueAdjust sets the per-state value adjustment (capacity cap, reload
// collapse, ...), applied to the fixpoint's candidate value before it is
// compared against the current value.
func WithValueAdjust(f ValueAdjust) Option {
	return func(s *settings) { s.valueAdj = f }
}

// WithSkipState marks states that the fixpoint must leave untouched, e.g.
// removed reloads or pinned targets.
func WithSkipState(f SkipState) Option {
	return func(s *settings) { s.skip = f }
}

// WithOnUpdate registers a callback fired whenever a state's value strictly
// improves, naming the winning action.
func WithOnUpdate(f OnUpdate) Option {
	return func(s *settings) { s.onUpdate = f }
}

// WithArgMin overrides how ties among actions achieving the same value are
// broken (e.g. package solver's goal-leaning probability tie-break).
func WithArgMin(f ArgMin) Option {
	return func(s *settings) { s.argmin = f }
}

// WithIterationObserver registers a callback invoked at the start of every
// pass with the current values vector, for tracing/logging only.
func WithIterationObserver(f func(pass int, values []Value)) Option {
	return func(s *settings) { s.onIterate = f }
}
