// Package simulation sequences the generator, containers, searches and sorts into one run.
package simulation

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vsinha/stocksim/pkg/application/dto"
	"github.com/vsinha/stocksim/pkg/domain/collections"
	"github.com/vsinha/stocksim/pkg/domain/entities"
	"github.com/vsinha/stocksim/pkg/domain/services/aggregation"
	"github.com/vsinha/stocksim/pkg/domain/services/search"
	"github.com/vsinha/stocksim/pkg/domain/services/sorting"
	"github.com/vsinha/stocksim/pkg/infrastructure/generator"
)

// Params configures a simulation run
type Params struct {
	Supplies   int
	Days       int
	MeanEvents int
	MaxQty     int
	Seed       int64
	KLast      int
	StartDate  time.Time
	// TargetCode is the supply searched for; empty selects the first generated supply
	TargetCode entities.SupplyCode
}

// Orchestrator runs the simulation phases in a fixed order
type Orchestrator struct {
	logger   *zap.Logger
	newRunID func() (uuid.UUID, error)
}

// NewOrchestrator creates an orchestrator; a nil logger disables logging
func NewOrchestrator(logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{logger: logger, newRunID: uuid.NewV7}
}

// Run executes: generate supplies, simulate consumption into a queue, drain the
// queue into a ledger, build a stack and take the last K, linear search, merge
// sort by code then binary search, aggregate totals, sort totals descending and
// supplies by expiry with both algorithms.
func (o *Orchestrator) Run(ctx context.Context, params Params) (*dto.SimulationReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID, err := o.newRunID()
	if err != nil {
		return nil, fmt.Errorf("failed to create run id: %w", err)
	}
	logger := o.logger.With(zap.String("run_id", runID.String()))
	logger.Info("simulation started",
		zap.Int("supplies", params.Supplies),
		zap.Int("days", params.Days),
		zap.Int64("seed", params.Seed))

	report := &dto.SimulationReport{
		RunID: runID,
		Parameters: dto.RunSettings{
			Supplies:   params.Supplies,
			Days:       params.Days,
			MeanEvents: params.MeanEvents,
			MaxQty:     params.MaxQty,
			Seed:       params.Seed,
			KLast:      params.KLast,
			StartDate:  entities.CalendarDate(params.StartDate),
		},
		Complexity: dto.ComplexityNotes,
	}

	// Generate
	supplies, err := generator.GenerateSupplies(params.Supplies, params.StartDate, params.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate supplies: %w", err)
	}
	sim, err := generator.SimulateDailyConsumption(generator.ConsumptionParams{
		Days:             params.Days,
		MeanEventsPerDay: params.MeanEvents,
		MaxQty:           params.MaxQty,
		Seed:             params.Seed,
		Reference:        params.StartDate,
	}, supplies)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate consumption: %w", err)
	}
	report.Supplies = supplies
	report.Draws = sim.Draws
	report.GeneratedEvents = sim.Queue.Len()
	logger.Debug("data generated", zap.Int("supplies", len(supplies)), zap.Int("events", report.GeneratedEvents))

	// Queue -> ledger
	ledger, err := ProcessQueue(sim.Queue)
	if err != nil {
		return nil, fmt.Errorf("failed to process queue: %w", err)
	}
	report.Ledger = ledger
	report.QueueDrained = sim.Queue.Empty()
	logger.Debug("queue drained", zap.Int("ledger", len(ledger)))

	// Ledger -> stack
	stack := BuildStack(ledger)
	report.StackSize = stack.Len()
	report.Recent = stack.LastK(params.KLast)
	logger.Debug("stack built", zap.Int("size", stack.Len()), zap.Int("recent", len(report.Recent)))

	// Searches
	report.TargetCode = params.TargetCode
	if report.TargetCode == "" && len(supplies) > 0 {
		report.TargetCode = supplies[0].Code
	}
	report.LinearMatches = search.Linear(ledger, search.BySupply(report.TargetCode))

	byCode := sorting.MergeSort(ledger, sorting.BySupplyCode)
	report.BinaryIndex = search.BinarySearchLeftmost(byCode, sorting.BySupplyCode, report.TargetCode)
	report.BinaryMatches = search.FindEventsBySupply(byCode, report.TargetCode)
	logger.Debug("searches completed",
		zap.String("target", string(report.TargetCode)),
		zap.Int("linear", len(report.LinearMatches)),
		zap.Int("binary", len(report.BinaryMatches)))

	// Aggregate and sort
	report.Totals = aggregation.TotalsBySupply(ledger)
	report.TopConsumers = compareSorts(report.Totals, sorting.ByTotalDesc)
	report.ByExpiry = compareSorts(supplies, sorting.ByExpiry)
	report.Summary = aggregation.Summarize(ledger, report.Totals, params.Days)

	if !report.TopConsumers.KeysAgree || !report.ByExpiry.KeysAgree {
		logger.Warn("sort algorithms disagree",
			zap.Bool("top_consumers", report.TopConsumers.KeysAgree),
			zap.Bool("by_expiry", report.ByExpiry.KeysAgree))
	}

	logger.Info("simulation finished",
		zap.Int("events", len(ledger)),
		zap.Int("distinct_supplies", len(report.Totals)))

	return report, nil
}

// ProcessQueue dequeues every event into a ledger, preserving arrival order
func ProcessQueue(q *collections.ConsumptionQueue) ([]entities.ConsumptionEvent, error) {
	ledger := make([]entities.ConsumptionEvent, 0, q.Len())
	for !q.Empty() {
		event, err := q.Dequeue()
		if err != nil {
			return nil, err
		}
		ledger = append(ledger, event)
	}
	return ledger, nil
}

// BuildStack pushes the ledger in order, leaving the most recently processed event on top
func BuildStack(ledger []entities.ConsumptionEvent) *collections.ConsumptionStack {
	stack := collections.NewStack[entities.ConsumptionEvent](len(ledger))
	for _, event := range ledger {
		stack.Push(event)
	}
	return stack
}

func compareSorts[T any, K cmp.Ordered](seq []T, key sorting.KeyFunc[T, K]) dto.SortComparison[T] {
	merged := sorting.MergeSort(seq, key)
	quick := sorting.QuickSort(seq, key)
	return dto.SortComparison[T]{
		Merge:     merged,
		Quick:     quick,
		KeysAgree: sorting.KeysEqual(merged, quick, key),
	}
}
