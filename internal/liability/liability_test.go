package liability

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"finflow/dealrecon/internal/engine"
	"finflow/dealrecon/internal/models"
)

const retailID = "retail-individual"

func day(n int) time.Time {
	return time.Date(2025, 1, n, 0, 0, 0, 0, time.UTC)
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestSummarizeBudgetedDealSettled(t *testing.T) {
	// Fully paid and fully worked out: contributes nothing on either side.
	tranche1 := models.Operation{
		ID: "op-1", Type: models.TypeIncome, Date: day(1), Amount: dec(600),
		ProjectID: "P", CategoryID: "C", ContractorID: "X",
		TotalDealAmount: dec(1000), IsDealTranche: true, IsClosed: true,
	}
	tranche2 := models.Operation{
		ID: "op-2", Type: models.TypeIncome, Date: day(2), Amount: dec(400),
		ProjectID: "P", CategoryID: "C", ContractorID: "X",
		IsDealTranche: true, IsClosed: true,
	}
	work := models.Operation{
		ID: "op-3", Type: models.TypeExpense, Date: day(3), Amount: dec(-1000),
		ProjectID: "P", CategoryID: "C", ContractorID: "X",
	}

	res := engine.Recompute([]models.Operation{tranche1, tranche2, work}, retailID)
	sum := Summarize(res, day(30))

	assert.Equal(t, "0", sum.TheyOweTotal.String())
	assert.Equal(t, "0", sum.WeOweTotal.String())
	assert.Equal(t, "0", sum.TheyOweCurrent.String())
	assert.Equal(t, "0", sum.WeOweCurrent.String())
}

func TestSummarizeBudgetedDealOutstanding(t *testing.T) {
	tranche := models.Operation{
		ID: "op-1", Type: models.TypeIncome, Date: day(1), Amount: dec(600),
		ProjectID: "P", CategoryID: "C", ContractorID: "X",
		TotalDealAmount: dec(1000), IsDealTranche: true,
	}

	res := engine.Recompute([]models.Operation{tranche}, retailID)
	sum := Summarize(res, day(30))

	// They still owe the remaining budget; we owe the unearned prepayment.
	assert.Equal(t, "400", sum.TheyOweTotal.String())
	assert.Equal(t, "600", sum.WeOweTotal.String())
	assert.Equal(t, "400", sum.TheyOweCurrent.String())
	assert.Equal(t, "600", sum.WeOweCurrent.String())
}

func TestSummarizeRetailBox(t *testing.T) {
	in1 := models.Operation{
		ID: "op-1", Type: models.TypeIncome, Date: day(1), Amount: dec(500),
		ProjectID: "P", CategoryID: "C", CounterpartyIndividualID: retailID,
	}
	in2 := models.Operation{
		ID: "op-2", Type: models.TypeIncome, Date: day(2), Amount: dec(300),
		ProjectID: "P", CategoryID: "C", CounterpartyIndividualID: retailID,
		IsPrepayment: true, IsClosed: true,
	}
	out := models.Operation{
		ID: "op-3", Type: models.TypeExpense, Date: day(3), Amount: dec(-400),
		ProjectID: "P", CategoryID: "C", CounterpartyIndividualID: retailID,
	}

	res := engine.Recompute([]models.Operation{in1, in2, out}, retailID)
	sum := Summarize(res, day(30))

	assert.Equal(t, "0", sum.TheyOweTotal.String())
	assert.Equal(t, "400", sum.WeOweTotal.String())
}

func TestSummarizeCurrentCutsOffFutureOperations(t *testing.T) {
	tranche1 := models.Operation{
		ID: "op-1", Type: models.TypeIncome, Date: day(1), Amount: dec(600),
		ProjectID: "P", CategoryID: "C", ContractorID: "X",
		TotalDealAmount: dec(1000), IsDealTranche: true,
	}
	// Future tranche: included in totals, excluded from current figures.
	tranche2 := models.Operation{
		ID: "op-2", Type: models.TypeIncome, Date: day(20), Amount: dec(400),
		ProjectID: "P", CategoryID: "C", ContractorID: "X", IsDealTranche: true,
	}

	res := engine.Recompute([]models.Operation{tranche1, tranche2}, retailID)
	sum := Summarize(res, day(10))

	assert.Equal(t, "0", sum.TheyOweTotal.String(), "budget fully paid over the whole period")
	assert.Equal(t, "1000", sum.WeOweTotal.String())

	// As of day 10 only tranche1 exists: debt against the original budget.
	assert.Equal(t, "400", sum.TheyOweCurrent.String())
	assert.Equal(t, "600", sum.WeOweCurrent.String())
}

func TestSummarizeSkipsDealsWithNoCurrentOperations(t *testing.T) {
	tranche := models.Operation{
		ID: "op-1", Type: models.TypeIncome, Date: day(20), Amount: dec(600),
		ProjectID: "P", CategoryID: "C", ContractorID: "X",
		TotalDealAmount: dec(1000), IsDealTranche: true,
	}

	res := engine.Recompute([]models.Operation{tranche}, retailID)
	sum := Summarize(res, day(10))

	// The budgeted deal exists but has no qualifying operations as of day 10;
	// it must not leak its budget into the current figures.
	assert.Equal(t, "400", sum.TheyOweTotal.String())
	assert.Equal(t, "0", sum.TheyOweCurrent.String())
	assert.Equal(t, "0", sum.WeOweCurrent.String())
}

func TestSummarizeExcludesInactiveDeals(t *testing.T) {
	// Deal 1 fully cycles, then deal 2 opens with an outstanding tranche.
	in1 := models.Operation{
		ID: "op-1", Type: models.TypeIncome, Date: day(1), Amount: dec(200),
		ProjectID: "P", CategoryID: "C", ContractorID: "X",
		IsDealTranche: true, IsClosed: true,
	}
	work1 := models.Operation{
		ID: "op-2", Type: models.TypeExpense, Date: day(2), Amount: dec(-200),
		ProjectID: "P", CategoryID: "C", ContractorID: "X",
	}
	in2 := models.Operation{
		ID: "op-3", Type: models.TypeIncome, Date: day(3), Amount: dec(150),
		ProjectID: "P", CategoryID: "C", ContractorID: "X", IsDealTranche: true,
	}

	res := engine.Recompute([]models.Operation{in1, work1, in2}, retailID)
	sum := Summarize(res, day(30))

	// Only the second deal contributes: 150 received, nothing worked out.
	assert.Equal(t, "0", sum.TheyOweTotal.String())
	assert.Equal(t, "150", sum.WeOweTotal.String())
}

func TestSummarizeEmptyResult(t *testing.T) {
	res := engine.Recompute(nil, retailID)
	sum := Summarize(res, day(1))

	assert.True(t, sum.TheyOweTotal.IsZero())
	assert.True(t, sum.WeOweTotal.IsZero())
	assert.True(t, sum.TheyOweCurrent.IsZero())
	assert.True(t, sum.WeOweCurrent.IsZero())
}
