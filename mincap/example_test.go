package mincap_test

import (
	"fmt"

	"github.com/katalvlaran/fimdpgo/cmdp"
	"github.com/katalvlaran/fimdpgo/mincap"
	"github.com/katalvlaran/fimdpgo/solver"
)

func ExampleSearch() {
	c := cmdp.New()
	reload, _ := c.AddState(true, "reload")
	target, _ := c.AddState(false, "target")

	_, _ = c.AddAction(reload, cmdp.UniformDistribution(target), "go", 4)
	_, _ = c.AddAction(target, cmdp.UniformDistribution(reload), "back", 1)

	capacity, err := mincap.Search(c, reload, []cmdp.StateID{target}, solver.Buchi, mincap.WithStartingCapacity(10))
	if err != nil {
		panic(err)
	}
	fmt.Println(capacity)
	// Output: 5
}
