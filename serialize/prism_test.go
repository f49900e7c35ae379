package serialize_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fimdpgo/cmdp"
	"github.com/katalvlaran/fimdpgo/serialize"
)

const samplePRISM = `# a tiny reload/target loop
state 0 reload
state 1 target
action 0 go 2 0=1/2 1=1/2
action 1 back 1 0=1/1
`

func TestImportPRISM_parsesStatesAndActions(t *testing.T) {
	c, targets, err := serialize.ImportPRISM(strings.NewReader(samplePRISM))
	require.NoError(t, err)
	require.Equal(t, 2, c.NumStates())
	assert.True(t, c.IsReload(0))
	assert.False(t, c.IsReload(1))
	assert.Equal(t, []cmdp.StateID{1}, targets)

	acts, err := c.ActionsFor(0)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, "go", acts[0].Label)
	assert.Equal(t, 2, acts[0].Consumption)
}

func TestImportPRISM_rejectsActionBeforeState(t *testing.T) {
	_, _, err := serialize.ImportPRISM(strings.NewReader("action 0 a 1 0=1/1\n"))
	assert.ErrorIs(t, err, serialize.ErrMalformed)
}

func TestImportPRISM_rejectsUnknownDirective(t *testing.T) {
	_, _, err := serialize.ImportPRISM(strings.NewReader("bogus 0\n"))
	assert.ErrorIs(t, err, serialize.ErrMalformed)
}

func TestPRISM_roundTrip(t *testing.T) {
	c, targets, err := serialize.ImportPRISM(strings.NewReader(samplePRISM))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, serialize.ExportPRISM(&buf, c, targets))

	c2, targets2, err := serialize.ImportPRISM(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.NumStates(), c2.NumStates())
	assert.Equal(t, targets, targets2)
}
