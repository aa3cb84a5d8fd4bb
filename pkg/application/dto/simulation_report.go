package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/vsinha/stocksim/pkg/domain/entities"
	"github.com/vsinha/stocksim/pkg/domain/services/aggregation"
	"github.com/vsinha/stocksim/pkg/infrastructure/generator"
)

// SimulationReport contains the complete output of a simulation run, one field group per phase
type SimulationReport struct {
	RunID      uuid.UUID   `json:"run_id"`
	Parameters RunSettings `json:"parameters"`

	Supplies        []entities.Supply           `json:"supplies"`
	Draws           []generator.DailyDraw       `json:"daily_draws"`
	GeneratedEvents int                         `json:"generated_events"`
	Ledger          []entities.ConsumptionEvent `json:"ledger"`
	QueueDrained    bool                        `json:"queue_drained"`

	StackSize int                         `json:"stack_size"`
	Recent    []entities.ConsumptionEvent `json:"recent"`

	TargetCode    entities.SupplyCode         `json:"target_code"`
	LinearMatches []entities.ConsumptionEvent `json:"linear_matches"`
	BinaryIndex   int                         `json:"binary_index"`
	BinaryMatches []entities.ConsumptionEvent `json:"binary_matches"`

	Totals       []entities.TotalsEntry               `json:"totals"`
	TopConsumers SortComparison[entities.TotalsEntry] `json:"top_consumers"`
	ByExpiry     SortComparison[entities.Supply]      `json:"by_expiry"`
	Summary      aggregation.Summary                  `json:"summary"`
	Complexity   []ComplexityNote                     `json:"complexity"`
}

// RunSettings echoes the parameters a report was produced with
type RunSettings struct {
	Supplies   int       `json:"supplies"`
	Days       int       `json:"days"`
	MeanEvents int       `json:"mean_events"`
	MaxQty     int       `json:"max_qty"`
	Seed       int64     `json:"seed"`
	KLast      int       `json:"k_last"`
	StartDate  time.Time `json:"start_date"`
}

// SortComparison holds the same input sorted by both algorithms
type SortComparison[T any] struct {
	Merge     []T  `json:"merge"`
	Quick     []T  `json:"quick"`
	KeysAgree bool `json:"keys_agree"`
}

// ComplexityNote describes the cost of one operation
type ComplexityNote struct {
	Subject    string `json:"subject"`
	Complexity string `json:"complexity"`
}

// ComplexityNotes summarizes the structures and algorithms exercised by a run
var ComplexityNotes = []ComplexityNote{
	{"Queue/Stack", "enqueue/push and dequeue/pop O(1) amortized"},
	{"Linear search", "O(n)"},
	{"Binary search", "O(log n) after an O(n log n) sort"},
	{"Merge sort", "O(n log n) time, O(n) space, stable"},
	{"Quick sort", "O(n log n) average, O(n^2) worst case, copy-based partition with O(n) space per level"},
}
