package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vsinha/stocksim/pkg/application/dto"
	"github.com/vsinha/stocksim/pkg/domain/entities"
)

const ruleWidth = 72

// textWriter remembers the first write error so sections can print unconditionally
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) header(title string) {
	rule := strings.Repeat("═", ruleWidth)
	t.printf("\n%s\n%s\n%s\n", rule, title, rule)
}

func (t *textWriter) events(events []entities.ConsumptionEvent, limit int) {
	for i, e := range events {
		if i >= limit {
			t.printf("... (+%d events)\n", len(events)-limit)
			break
		}
		t.printf("%s\n", e)
	}
}

func (t *textWriter) totals(totals []entities.TotalsEntry, shares map[entities.SupplyCode]string, limit int) {
	for i, e := range totals {
		if i >= limit {
			t.printf("... (+%d supplies)\n", len(totals)-limit)
			break
		}
		t.printf("%-8s | total=%-5d | share=%s%%\n", e.SupplyCode, e.Total, shares[e.SupplyCode])
	}
}

func (t *textWriter) supplies(supplies []entities.Supply, limit int) {
	for i, s := range supplies {
		if i >= limit {
			t.printf("... (+%d supplies)\n", len(supplies)-limit)
			break
		}
		t.printf("%s | %s | expiry=%s\n", s.Code, s.Name, s.Expiry.Format(entities.DateLayout))
	}
}

func agreement(ok bool) string {
	if ok {
		return "✅ merge and quick sort agree on key order"
	}
	return "⚠️  merge and quick sort disagree on key order"
}

// generateTextOutput creates human-readable text output, one section per phase
func generateTextOutput(w io.Writer, report *dto.SimulationReport, limits Limits) error {
	if limits == (Limits{}) {
		limits = DefaultLimits
	}
	t := &textWriter{w: w}

	t.header("🎲 GENERATED DATA")
	t.printf("Run: %s | Seed: %d | Start date: %s\n",
		report.RunID, report.Parameters.Seed, report.Parameters.StartDate.Format(entities.DateLayout))
	t.printf("Supplies: %d | Events queued: %d | Days: %d\n",
		len(report.Supplies), report.GeneratedEvents, len(report.Draws))

	t.header("📥 QUEUE (FIFO) -> CHRONOLOGICAL LEDGER")
	t.printf("Ledger size: %d | Queue drained: %t\n", len(report.Ledger), report.QueueDrained)
	t.events(report.Ledger, limits.Events)

	t.header("📚 STACK (LIFO): MOST RECENT EVENTS")
	t.printf("Stack size: %d | Showing last %d\n", report.StackSize, len(report.Recent))
	t.events(report.Recent, len(report.Recent))

	t.header("🔍 LINEAR SEARCH")
	t.printf("Events for supply %s found: %d\n", report.TargetCode, len(report.LinearMatches))
	t.events(report.LinearMatches, limits.Matches)

	t.header("🔎 BINARY SEARCH (ledger sorted by supply code)")
	t.printf("Events for supply %s found: %d | Leftmost index: %d\n",
		report.TargetCode, len(report.BinaryMatches), report.BinaryIndex)
	t.events(report.BinaryMatches, limits.Matches)

	shares := make(map[entities.SupplyCode]string, len(report.Summary.Shares))
	for _, s := range report.Summary.Shares {
		shares[s.SupplyCode] = s.Percent.StringFixed(2)
	}

	t.header("📊 SORTING: TOP SUPPLIES BY CONSUMPTION (DESC)")
	t.printf("Merge Sort:\n")
	t.totals(report.TopConsumers.Merge, shares, limits.Pairs)
	t.printf("\nQuick Sort:\n")
	t.totals(report.TopConsumers.Quick, shares, limits.Pairs)
	t.printf("\n%s\n", agreement(report.TopConsumers.KeysAgree))

	t.header("📅 SORTING: SUPPLIES BY NEAREST EXPIRY (FEFO)")
	t.printf("Merge Sort:\n")
	t.supplies(report.ByExpiry.Merge, limits.Supplies)
	t.printf("\nQuick Sort:\n")
	t.supplies(report.ByExpiry.Quick, limits.Supplies)
	t.printf("\n%s\n", agreement(report.ByExpiry.KeysAgree))

	t.header("📈 SUMMARY")
	s := report.Summary
	t.printf("Events: %d | Total consumed: %d | Distinct supplies: %d\n", s.Events, s.TotalQuantity, s.DistinctSupplies)
	t.printf("Mean quantity per event: %s | Mean events per day: %s\n",
		s.MeanQtyPerEvent.StringFixed(2), s.MeanEventsPerDay.StringFixed(2))

	t.header("⏱️  COMPLEXITY")
	for _, note := range report.Complexity {
		t.printf("- %s: %s\n", note.Subject, note.Complexity)
	}

	return t.err
}

func writeSuppliesText(w io.Writer, supplies []entities.Supply, limit int) error {
	t := &textWriter{w: w}
	t.supplies(supplies, limit)
	return t.err
}

func writeEventsText(w io.Writer, events []entities.ConsumptionEvent, limit int) error {
	t := &textWriter{w: w}
	t.events(events, limit)
	return t.err
}
