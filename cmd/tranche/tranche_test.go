package tranche

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finflow/dealrecon/internal/query"
)

func TestCommandMetadata(t *testing.T) {
	assert.Equal(t, "tranche", Cmd.Use)
	assert.Contains(t, Cmd.Short, "tranche standing")
	assert.NotNil(t, Cmd.Run)
	assert.NotNil(t, Cmd.Flags().Lookup("op"))
}

func TestWriteKnownOperation(t *testing.T) {
	var buf bytes.Buffer
	err := write(&buf, "op-7", &query.TrancheStatus{TrancheIndex: 2, IsDealClosed: true})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Operation:\top-7")
	assert.Contains(t, out, "Tranche:\t2")
	assert.Contains(t, out, "Deal closed:\ttrue")
}

func TestWriteUnknownOperation(t *testing.T) {
	var buf bytes.Buffer
	err := write(&buf, "ghost", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ghost was not processed")
}
