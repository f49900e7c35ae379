package serialize_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fimdpgo/serialize"
)

func ExampleImportPRISM() {
	const desc = `state 0 reload
state 1 target
action 0 go 2 0=1/2 1=1/2
`
	c, targets, err := serialize.ImportPRISM(strings.NewReader(desc))
	if err != nil {
		panic(err)
	}
	fmt.Println(c.NumStates(), targets)
	// Output: 2 [1]
}
