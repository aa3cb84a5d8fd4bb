package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vsinha/stocksim/pkg/domain/collections"
	"github.com/vsinha/stocksim/pkg/domain/entities"
	"github.com/vsinha/stocksim/pkg/domain/services/sorting"
	"github.com/vsinha/stocksim/pkg/infrastructure/generator"
	testhelpers "github.com/vsinha/stocksim/pkg/infrastructure/testing"
)

func defaultParams() Params {
	return Params{
		Supplies:   25,
		Days:       14,
		MeanEvents: 8,
		MaxQty:     15,
		Seed:       42,
		KLast:      5,
		StartDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestOrchestrator_RunContract(t *testing.T) {
	orchestrator := NewOrchestrator(nil)

	report, err := orchestrator.Run(context.Background(), defaultParams())
	require.NoError(t, err)

	// draining empties the queue and keeps every generated event
	assert.True(t, report.QueueDrained)
	assert.Len(t, report.Ledger, report.GeneratedEvents)
	drawn := 0
	for _, d := range report.Draws {
		drawn += d.Events
	}
	assert.Equal(t, drawn, len(report.Ledger))

	// the stack mirrors the ledger with the newest event on top
	require.NotEmpty(t, report.Ledger)
	assert.Equal(t, len(report.Ledger), report.StackSize)
	require.Len(t, report.Recent, 5)
	assert.Equal(t, report.Ledger[len(report.Ledger)-1], report.Recent[0])
	assert.Equal(t, report.Ledger[len(report.Ledger)-5], report.Recent[4])

	// both searches agree on the first supply
	assert.Equal(t, entities.SupplyCode("INS-001"), report.TargetCode)
	assert.Equal(t, report.LinearMatches, report.BinaryMatches)
	if len(report.BinaryMatches) > 0 {
		assert.NotEqual(t, -1, report.BinaryIndex)
	}

	// totals cover the ledger and sort results agree
	var total entities.Quantity
	for _, e := range report.Totals {
		total += e.Total
	}
	assert.Equal(t, report.Summary.TotalQuantity, total)
	assert.True(t, report.TopConsumers.KeysAgree, spew.Sdump(report.TopConsumers))
	assert.True(t, report.ByExpiry.KeysAgree, spew.Sdump(report.ByExpiry))
	assert.True(t, sorting.IsSorted(report.TopConsumers.Merge, sorting.ByTotalDesc))
	assert.True(t, sorting.IsSorted(report.ByExpiry.Quick, sorting.ByExpiry))
	assert.Len(t, report.ByExpiry.Merge, 25)
	assert.NotEmpty(t, report.Complexity)
}

func TestOrchestrator_Deterministic(t *testing.T) {
	orchestrator := NewOrchestrator(nil)

	first, err := orchestrator.Run(context.Background(), defaultParams())
	require.NoError(t, err)
	second, err := orchestrator.Run(context.Background(), defaultParams())
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, first.Supplies, second.Supplies)
	assert.Equal(t, first.Ledger, second.Ledger)
	assert.Equal(t, first.TopConsumers, second.TopConsumers)
}

func TestOrchestrator_ExplicitTarget(t *testing.T) {
	params := defaultParams()
	params.TargetCode = "INS-404"

	report, err := NewOrchestrator(nil).Run(context.Background(), params)
	require.NoError(t, err)

	assert.Empty(t, report.LinearMatches)
	assert.Empty(t, report.BinaryMatches)
	assert.Equal(t, -1, report.BinaryIndex)
}

func TestOrchestrator_EmptyRun(t *testing.T) {
	params := defaultParams()
	params.Supplies = 0
	params.Days = 0

	report, err := NewOrchestrator(nil).Run(context.Background(), params)
	require.NoError(t, err)

	assert.Empty(t, report.Ledger)
	assert.Empty(t, report.Recent)
	assert.Empty(t, report.Totals)
	assert.Equal(t, entities.SupplyCode(""), report.TargetCode)
}

func TestOrchestrator_InvalidParameters(t *testing.T) {
	params := defaultParams()
	params.MaxQty = 0

	_, err := NewOrchestrator(nil).Run(context.Background(), params)
	assert.ErrorIs(t, err, generator.ErrInvalidParameter)
	assert.ErrorContains(t, err, "failed to simulate consumption")
}

func TestOrchestrator_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOrchestrator(nil).Run(ctx, defaultParams())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOrchestrator_RunIDFailure(t *testing.T) {
	orchestrator := NewOrchestrator(nil)
	orchestrator.newRunID = func() (uuid.UUID, error) { return uuid.Nil, assert.AnError }

	_, err := orchestrator.Run(context.Background(), defaultParams())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestOrchestrator_LogsPhases(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	orchestrator := NewOrchestrator(zap.New(core))

	_, err := orchestrator.Run(context.Background(), defaultParams())
	require.NoError(t, err)

	var messages []string
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
		assert.Contains(t, entry.ContextMap(), "run_id")
	}
	assert.Equal(t, []string{
		"simulation started",
		"data generated",
		"queue drained",
		"stack built",
		"searches completed",
		"simulation finished",
	}, messages)
}

func TestProcessQueue_PreservesOrder(t *testing.T) {
	ledger := testhelpers.BuildLedger()
	q := collections.NewQueue[entities.ConsumptionEvent](len(ledger))
	for _, e := range ledger {
		q.Enqueue(e)
	}

	got, err := ProcessQueue(q)
	require.NoError(t, err)

	assert.Equal(t, ledger, got)
	assert.True(t, q.Empty())
}

func TestBuildStack_TopIsLastProcessed(t *testing.T) {
	ledger := testhelpers.BuildLedger()

	stack := BuildStack(ledger)

	top, ok := stack.Peek()
	require.True(t, ok)
	assert.Equal(t, ledger[len(ledger)-1], top)
	assert.Equal(t, len(ledger), stack.Len())

	for i := len(ledger) - 1; i >= 0; i-- {
		e, err := stack.Pop()
		require.NoError(t, err)
		assert.Equal(t, ledger[i], e)
	}
	_, err := stack.Pop()
	assert.ErrorIs(t, err, collections.ErrStackUnderflow)
}

func TestCompareSorts(t *testing.T) {
	totals := []entities.TotalsEntry{
		{SupplyCode: "INS-002", Total: 6},
		{SupplyCode: "INS-001", Total: 10},
		{SupplyCode: "INS-003", Total: 7},
	}

	got := compareSorts(totals, sorting.ByTotalDesc)

	assert.True(t, got.KeysAgree)
	assert.Equal(t, entities.SupplyCode("INS-001"), got.Merge[0].SupplyCode)
	assert.Equal(t, got.Merge, got.Quick)
}
