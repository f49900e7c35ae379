package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fimdpgo/cmdp"
	"github.com/katalvlaran/fimdpgo/selector"
)

func buildTinyCMDP(t *testing.T) (*cmdp.CMDP, cmdp.StateID, cmdp.Action, cmdp.Action) {
	t.Helper()
	c := cmdp.New()
	reload, err := c.AddState(true, "reload")
	require.NoError(t, err)
	s1, err := c.AddState(false, "s1")
	require.NoError(t, err)

	waitID, err := c.AddAction(s1, cmdp.UniformDistribution(s1), "wait", 1)
	require.NoError(t, err)
	goID, err := c.AddAction(s1, cmdp.UniformDistribution(reload), "go", 5)
	require.NoError(t, err)

	acts, err := c.ActionsFor(s1)
	require.NoError(t, err)
	var wait, goAction cmdp.Action
	for _, a := range acts {
		switch a.ID {
		case waitID:
			wait = a
		case goID:
			goAction = a
		}
	}
	return c, s1, wait, goAction
}

func TestSelectionRule_selectsLargestApplicableBreakpoint(t *testing.T) {
	_, _, wait, goAction := buildTinyCMDP(t)

	rule := selector.NewSelectionRule()
	rule.Set(0, wait)
	rule.Set(5, goAction)

	a, err := rule.SelectAction(0)
	require.NoError(t, err)
	assert.Equal(t, "wait", a.Label)

	a, err = rule.SelectAction(4)
	require.NoError(t, err)
	assert.Equal(t, "wait", a.Label)

	a, err = rule.SelectAction(5)
	require.NoError(t, err)
	assert.Equal(t, "go", a.Label)

	a, err = rule.SelectAction(100)
	require.NoError(t, err)
	assert.Equal(t, "go", a.Label)
}

func TestSelectionRule_belowEveryBreakpointErrors(t *testing.T) {
	_, _, _, goAction := buildTinyCMDP(t)
	rule := selector.NewSelectionRule()
	rule.Set(5, goAction)

	_, err := rule.SelectAction(0)
	assert.ErrorIs(t, err, selector.ErrNoFeasibleAction)
}

func TestSelectionRule_emptyAlwaysErrors(t *testing.T) {
	rule := selector.NewSelectionRule()
	_, err := rule.SelectAction(1000)
	assert.ErrorIs(t, err, selector.ErrNoFeasibleAction)
}

func TestCounterSelector_updateRejectsForeignAction(t *testing.T) {
	c, s1, _, _ := buildTinyCMDP(t)
	other := cmdp.New()
	reload, err := other.AddState(true, "r")
	require.NoError(t, err)
	_, err = other.AddAction(reload, cmdp.UniformDistribution(reload), "loop", 1)
	require.NoError(t, err)
	foreignActs, err := other.ActionsFor(reload)
	require.NoError(t, err)
	foreign := foreignActs[0]

	sel := selector.NewCounterSelector(c)
	err = sel.Update(s1, 0, foreign)
	assert.ErrorIs(t, err, selector.ErrActionNotForState)
}

func TestCounterSelector_roundTrip(t *testing.T) {
	c, s1, wait, goAction := buildTinyCMDP(t)
	sel := selector.NewCounterSelector(c)

	require.NoError(t, sel.Update(s1, 0, wait))
	require.NoError(t, sel.Update(s1, 5, goAction))

	a, err := sel.SelectAction(s1, 3)
	require.NoError(t, err)
	assert.Equal(t, "wait", a.Label)

	a, err = sel.SelectAction(s1, 5)
	require.NoError(t, err)
	assert.Equal(t, "go", a.Label)
}

func TestCounterStrategy_alternationEnforced(t *testing.T) {
	c, s1, wait, _ := buildTinyCMDP(t)
	sel := selector.NewCounterSelector(c)
	require.NoError(t, sel.Update(s1, 0, wait))

	cs := selector.NewCounterStrategy(c, sel, 10, 10, s1)

	_, err := cs.NextAction()
	require.NoError(t, err)

	_, err = cs.NextAction()
	assert.ErrorIs(t, err, selector.ErrWrongCallOrder)

	err = cs.UpdateState(s1)
	require.NoError(t, err)

	err = cs.UpdateState(s1)
	assert.ErrorIs(t, err, selector.ErrWrongCallOrder)
}

func TestCounterStrategy_rechargesOnReload(t *testing.T) {
	c, s1, _, goAction := buildTinyCMDP(t)
	reload, ok := c.StateWithName("reload")
	require.True(t, ok)

	sel := selector.NewCounterSelector(c)
	require.NoError(t, sel.Update(s1, 0, goAction))
	require.NoError(t, sel.Update(reload, 0, mustReloadLoop(t, c, reload)))

	cs := selector.NewCounterStrategy(c, sel, 10, 10, s1)

	a, err := cs.NextAction()
	require.NoError(t, err)
	assert.Equal(t, "go", a.Label)

	require.NoError(t, cs.UpdateState(reload))
	assert.Equal(t, 5, cs.CurrentEnergy()) // 10 - cons(5)

	a, err = cs.NextAction()
	require.NoError(t, err)
	require.NoError(t, cs.UpdateState(reload))
	// was at a reload when the loop action was played: recharge to capacity
	// before subtracting its consumption.
	assert.Equal(t, 10-a.Consumption, cs.CurrentEnergy())
}

func TestCounterStrategy_rejectsInvalidOutcome(t *testing.T) {
	c, s1, wait, _ := buildTinyCMDP(t)
	sel := selector.NewCounterSelector(c)
	require.NoError(t, sel.Update(s1, 0, wait))

	cs := selector.NewCounterStrategy(c, sel, 10, 10, s1)
	_, err := cs.NextAction()
	require.NoError(t, err)

	reload, ok := c.StateWithName("reload")
	require.True(t, ok)
	err = cs.UpdateState(reload)
	assert.ErrorIs(t, err, selector.ErrInvalidOutcome)
}

func mustReloadLoop(t *testing.T, c *cmdp.CMDP, reload cmdp.StateID) cmdp.Action {
	t.Helper()
	acts, err := c.ActionsFor(reload)
	require.NoError(t, err)
	if len(acts) > 0 {
		return acts[0]
	}
	id, err := c.AddAction(reload, cmdp.UniformDistribution(reload), "loop", 1)
	require.NoError(t, err)
	acts, err = c.ActionsFor(reload)
	require.NoError(t, err)
	for _, a := range acts {
		if a.ID == id {
			return a
		}
	}
	t.Fatal("loop action not found")
	return cmdp.Action{}
}
