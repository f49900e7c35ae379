package selector

import (
	"fmt"

	"github.com/katalvlaran/fimdpgo/cmdp"
)

// ActionSelector is anything that can pick an action for a state and energy
// level; satisfied by *CounterSelector.
type ActionSelector interface {
	SelectAction(state cmdp.StateID, energy int) (cmdp.Action, error)
}

// CounterStrategy plays a CMDP online: it tracks the current state and
// energy level in memory and delegates the actual choice of action to an
// ActionSelector. NextAction and UpdateState must alternate (spec §4.7,
// "Supplemented Features" — ungrounded in spec.md itself, this wrapper
// mirrors original_source/fimdp/strategy.py's Strategy/CounterStrategy).
type CounterStrategy struct {
	cm       *cmdp.CMDP
	selector ActionSelector
	capacity int

	state         cmdp.StateID
	energy        int
	havePending   bool
	pendingAction cmdp.Action
}

// NewCounterStrategy returns a strategy starting at initState with
// initEnergy (used as given, not capped), recharging to capacity at reloads.
func NewCounterStrategy(cm *cmdp.CMDP, sel ActionSelector, capacity, initEnergy int, initState cmdp.StateID) *CounterStrategy {
	return &CounterStrategy{
		cm:       cm,
		selector: sel,
		capacity: capacity,
		state:    initState,
		energy:   initEnergy,
	}
}

// CurrentState returns the strategy's current state.
func (cs *CounterStrategy) CurrentState() cmdp.StateID { return cs.state }

// CurrentEnergy returns the strategy's current energy level.
func (cs *CounterStrategy) CurrentEnergy() int { return cs.energy }

// NextAction picks the next action to play from the current state and
// energy level. It must not be called twice in a row without an intervening
// UpdateState.
func (cs *CounterStrategy) NextAction() (cmdp.Action, error) {
	if cs.havePending {
		return cmdp.Action{}, fmt.Errorf("selector: outcome of the last action is not known yet: %w", ErrWrongCallOrder)
	}
	a, err := cs.selector.SelectAction(cs.state, cs.energy)
	if err != nil {
		return cmdp.Action{}, err
	}
	cs.pendingAction, cs.havePending = a, true
	return a, nil
}

// UpdateState tells the strategy that the action picked by the last call to
// NextAction resolved to outcome. It recharges energy to capacity if the
// previous state was a reload, then subtracts the consumption of the action
// just played, and moves the current state to outcome.
func (cs *CounterStrategy) UpdateState(outcome cmdp.StateID) error {
	if !cs.havePending {
		return fmt.Errorf("selector: UpdateState called without a preceding NextAction: %w", ErrWrongCallOrder)
	}
	if _, ok := cs.pendingAction.Distribution[outcome]; !ok {
		return fmt.Errorf("selector: outcome %d not among %v: %w", outcome, cs.pendingAction.Distribution.Successors(), ErrInvalidOutcome)
	}

	if cs.cm.IsReload(cs.state) {
		cs.energy = cs.capacity
	}
	cs.energy -= cs.pendingAction.Consumption

	cs.state = outcome
	cs.havePending = false
	return nil
}

// NextActionAfter is a shorthand for UpdateState(outcome) followed by
// NextAction().
func (cs *CounterStrategy) NextActionAfter(outcome cmdp.StateID) (cmdp.Action, error) {
	if err := cs.UpdateState(outcome); err != nil {
		return cmdp.Action{}, err
	}
	return cs.NextAction()
}

// Reset restarts the strategy at initState with initEnergy, discarding
// history.
func (cs *CounterStrategy) Reset(initState cmdp.StateID, initEnergy int) {
	cs.state = initState
	cs.energy = initEnergy
	cs.havePending = false
}
