package reconcile

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finflow/dealrecon/internal/engine"
	"finflow/dealrecon/internal/models"
)

func testResult() *engine.Result {
	ops := []models.Operation{
		{
			ID:              "op-1",
			Type:            models.TypeIncome,
			Date:            time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			Amount:          decimal.NewFromInt(400),
			ProjectID:       "p1",
			CategoryID:      "c1",
			ContractorID:    "acme",
			TotalDealAmount: decimal.NewFromInt(1000),
		},
		{
			ID:           "op-2",
			Type:         models.TypeExpense,
			Date:         time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
			Amount:       decimal.NewFromInt(-150),
			ProjectID:    "p1",
			CategoryID:   "c1",
			ContractorID: "acme",
		},
	}
	return engine.Recompute(ops, "retail-1")
}

func TestCommandMetadata(t *testing.T) {
	assert.Equal(t, "reconcile", Cmd.Use)
	assert.Contains(t, Cmd.Short, "Reconcile an operations feed")
	assert.NotNil(t, Cmd.Run)
	assert.NotNil(t, Cmd.Flags().Lookup("csv"))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	err := write(&buf, testResult(), time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), false)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "deal_p1_c1_acme")
	assert.Contains(t, out, "600")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := write(&buf, testResult(), time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), true)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "GroupKey")
	assert.Contains(t, lines[1], "deal_p1_c1_acme")
}
