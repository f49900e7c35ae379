package fixpoint_test

import (
	"fmt"

	"github.com/katalvlaran/fimdpgo/cmdp"
	"github.com/katalvlaran/fimdpgo/fixpoint"
)

// ExampleLargestFixpoint runs a largest fixpoint over the Scenario B CMDP
// with a value adjustment that collapses reload states to 0: the minimum
// initial energy every other state needs to reach a reload. Unlike package
// solver's MinInitCons, which gives this reload 1 (its self-loop's cost),
// the adjustment pins the reload at 0.
func ExampleLargestFixpoint() {
	c := cmdp.New()
	reload, _ := c.AddState(true, "reload")
	s1, _ := c.AddState(false, "s1")
	s2, _ := c.AddState(false, "s2")

	_, _ = c.AddAction(reload, cmdp.UniformDistribution(reload), "loop", 1)
	_, _ = c.AddAction(s1, cmdp.UniformDistribution(reload), "a", 1000)
	_, _ = c.AddAction(s1, cmdp.UniformDistribution(s2), "b", 1)
	_, _ = c.AddAction(s2, cmdp.UniformDistribution(s1), "b", 1)

	values := make([]fixpoint.Value, c.NumStates())
	for i := range values {
		values[i] = fixpoint.Inf
	}

	actionValue := func(a cmdp.Action, values []fixpoint.Value) fixpoint.Value {
		worst := 0
		for _, t := range a.Distribution.Successors() {
			worst = fixpoint.Max(worst, values[t])
		}
		return fixpoint.Add(a.Consumption, worst)
	}
	collapseReloads := func(s cmdp.StateID, v fixpoint.Value) fixpoint.Value {
		if c.IsReload(s) {
			return 0
		}
		return v
	}

	_ = fixpoint.LargestFixpoint(c, values, actionValue, fixpoint.WithValueAdjust(collapseReloads))

	fmt.Println(values[reload], values[s1], values[s2])
	// Output:
	// 0 1000 1001
}
