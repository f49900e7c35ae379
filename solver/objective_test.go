package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fimdpgo/solver"
)

func TestParseObjective_acceptsKnownSpellings(t *testing.T) {
	cases := map[string]solver.Objective{
		"MIN_INIT_CONS": solver.MinInitCons,
		"mic":           solver.MinInitCons,
		"safe":          solver.Safe,
		"pos-reach":     solver.PosReach,
		"AS_REACH":      solver.AsReach,
		"Buchi":         solver.Buchi,
	}
	for in, want := range cases {
		got, err := solver.ParseObjective(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseObjective_rejectsUnknownSpelling(t *testing.T) {
	_, err := solver.ParseObjective("quantitative")
	assert.ErrorIs(t, err, solver.ErrInvalidObjective)
}
