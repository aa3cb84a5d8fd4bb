package main

import (
	"fmt"
	"time"

	"github.com/vsinha/stocksim/pkg/application/services/simulation"
	"github.com/vsinha/stocksim/pkg/domain/services/aggregation"
	"github.com/vsinha/stocksim/pkg/domain/services/search"
	"github.com/vsinha/stocksim/pkg/domain/services/sorting"
	"github.com/vsinha/stocksim/pkg/infrastructure/generator"
)

func main() {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// Generate a small reproducible dataset
	supplies, err := generator.GenerateSupplies(5, start, 7)
	if err != nil {
		fmt.Printf("❌ Supply generation failed: %v\n", err)
		return
	}
	sim, err := generator.SimulateDailyConsumption(generator.ConsumptionParams{
		Days:             3,
		MeanEventsPerDay: 4,
		MaxQty:           10,
		Seed:             7,
		Reference:        start,
	}, supplies)
	if err != nil {
		fmt.Printf("❌ Consumption simulation failed: %v\n", err)
		return
	}

	fmt.Printf("📦 %d supplies, %d events queued\n", len(supplies), sim.Queue.Len())

	// Drain the queue into a chronological ledger
	ledger, err := simulation.ProcessQueue(sim.Queue)
	if err != nil {
		fmt.Printf("❌ Queue processing failed: %v\n", err)
		return
	}

	// The stack answers "what happened most recently?"
	stack := simulation.BuildStack(ledger)
	fmt.Println("\n📚 Last 3 events:")
	for _, e := range stack.LastK(3) {
		fmt.Printf("  %s\n", e)
	}

	// Binary search needs the ledger ordered by the search key
	target := supplies[0].Code
	byCode := sorting.MergeSort(ledger, sorting.BySupplyCode)
	fmt.Printf("\n🔎 %s: %d events (linear), %d events (binary)\n",
		target,
		len(search.Linear(ledger, search.BySupply(target))),
		len(search.FindEventsBySupply(byCode, target)))

	// Rank consumers
	fmt.Println("\n📊 Top consumers:")
	for _, t := range sorting.QuickSort(aggregation.TotalsBySupply(ledger), sorting.ByTotalDesc) {
		fmt.Printf("  %s: %d\n", t.SupplyCode, t.Total)
	}

	// First-expiring-first-out view
	fmt.Println("\n📅 Expiring first:")
	for _, s := range sorting.MergeSort(supplies, sorting.ByExpiry) {
		fmt.Printf("  %s expires %s\n", s.Code, s.Expiry.Format("2006-01-02"))
	}
}
