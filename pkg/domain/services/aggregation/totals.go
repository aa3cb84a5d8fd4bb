// Package aggregation reduces a consumption ledger into per-supply totals and run statistics.
package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/stocksim/pkg/domain/entities"
)

// TotalsBySupply sums consumed quantity per supply code in a single pass.
// Entries are returned in first-occurrence order; no sorting is applied.
func TotalsBySupply(ledger []entities.ConsumptionEvent) []entities.TotalsEntry {
	index := make(map[entities.SupplyCode]int)
	totals := make([]entities.TotalsEntry, 0)

	for _, e := range ledger {
		i, seen := index[e.SupplyCode]
		if !seen {
			i = len(totals)
			index[e.SupplyCode] = i
			totals = append(totals, entities.TotalsEntry{SupplyCode: e.SupplyCode})
		}
		totals[i].Total += e.Quantity
	}

	return totals
}

// Share is a supply's fraction of total consumption, as a percentage
type Share struct {
	SupplyCode entities.SupplyCode `json:"supply_code"`
	Percent    decimal.Decimal     `json:"percent"`
}

// Summary holds aggregate statistics for a ledger
type Summary struct {
	Events           int               `json:"events"`
	TotalQuantity    entities.Quantity `json:"total_quantity"`
	DistinctSupplies int               `json:"distinct_supplies"`
	MeanQtyPerEvent  decimal.Decimal   `json:"mean_qty_per_event"`
	MeanEventsPerDay decimal.Decimal   `json:"mean_events_per_day"`
	Shares           []Share           `json:"shares"`
}

const statPrecision = 2

// Summarize computes ledger statistics over a span of days.
// Means are zero when their denominator is zero. Shares follow the order of totals.
func Summarize(ledger []entities.ConsumptionEvent, totals []entities.TotalsEntry, days int) Summary {
	summary := Summary{
		Events:           len(ledger),
		DistinctSupplies: len(totals),
		MeanQtyPerEvent:  decimal.Zero,
		MeanEventsPerDay: decimal.Zero,
		Shares:           make([]Share, 0, len(totals)),
	}

	for _, t := range totals {
		summary.TotalQuantity += t.Total
	}

	total := decimal.NewFromInt(int64(summary.TotalQuantity))
	if summary.Events > 0 {
		summary.MeanQtyPerEvent = total.DivRound(decimal.NewFromInt(int64(summary.Events)), statPrecision)
	}
	if days > 0 {
		summary.MeanEventsPerDay = decimal.NewFromInt(int64(summary.Events)).
			DivRound(decimal.NewFromInt(int64(days)), statPrecision)
	}

	hundred := decimal.NewFromInt(100)
	for _, t := range totals {
		percent := decimal.Zero
		if !total.IsZero() {
			percent = decimal.NewFromInt(int64(t.Total)).Mul(hundred).DivRound(total, statPrecision)
		}
		summary.Shares = append(summary.Shares, Share{SupplyCode: t.SupplyCode, Percent: percent})
	}

	return summary
}
