package selector

import (
	"fmt"

	"github.com/katalvlaran/fimdpgo/cmdp"
)

// CounterSelector holds one SelectionRule per state of an underlying CMDP.
// It is built incrementally by a fixpoint run (via Update, wired as an
// fixpoint.OnUpdate hook) and queried at runtime by CounterStrategy.
type CounterSelector struct {
	cm    *cmdp.CMDP
	rules []*SelectionRule
}

// NewCounterSelector returns a selector with one empty SelectionRule per
// state currently in cm.
func NewCounterSelector(cm *cmdp.CMDP) *CounterSelector {
	states := cm.States()
	rules := make([]*SelectionRule, len(states))
	for i := range rules {
		rules[i] = NewSelectionRule()
	}
	return &CounterSelector{cm: cm, rules: rules}
}

// Update registers action as the choice for state at every energy level >=
// lowerBound. Returns ErrActionNotForState if action does not belong to
// state in the underlying CMDP.
func (c *CounterSelector) Update(state cmdp.StateID, lowerBound int, action cmdp.Action) error {
	acts, err := c.cm.ActionsFor(state)
	if err != nil {
		return err
	}
	belongs := false
	for _, a := range acts {
		if a.ID == action.ID {
			belongs = true
			break
		}
	}
	if !belongs {
		return fmt.Errorf("selector: state %d, action %d: %w", state, action.ID, ErrActionNotForState)
	}
	c.rules[state].Set(lowerBound, action)
	return nil
}

// SelectAction returns the action selected for state at the given energy
// level.
func (c *CounterSelector) SelectAction(state cmdp.StateID, energy int) (cmdp.Action, error) {
	if int(state) < 0 || int(state) >= len(c.rules) {
		return cmdp.Action{}, fmt.Errorf("selector: state %d: %w", state, cmdp.ErrUnknownState)
	}
	return c.rules[state].SelectAction(energy)
}

// Rule returns the SelectionRule for state, for inspection/printing.
func (c *CounterSelector) Rule(state cmdp.StateID) *SelectionRule {
	return c.rules[state]
}

// OnUpdate returns a fixpoint.OnUpdate-shaped callback (see package
// fixpoint) that records every fixpoint improvement as a selector
// breakpoint: state s gains action a at lower bound v.
func (c *CounterSelector) OnUpdate() func(s cmdp.StateID, v int, a cmdp.Action) {
	return func(s cmdp.StateID, v int, a cmdp.Action) {
		_ = c.Update(s, v, a)
	}
}
