// Package generator produces deterministic synthetic supplies and consumption events.
//
// Every call owns its random source, seeded from its arguments, so identical
// parameters always reproduce identical output regardless of other calls.
// Random values are drawn in a fixed order: validity days for each supply in
// code order, then per simulated day the event count followed by a supply pick
// and a quantity for each event of that day.
package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vsinha/stocksim/pkg/domain/collections"
	"github.com/vsinha/stocksim/pkg/domain/entities"
)

// ErrInvalidParameter is returned for negative counts and non-positive bounds
var ErrInvalidParameter = errors.New("invalid generator parameter")

const (
	minValidityDays = 30
	maxValidityDays = 365

	// Daily event counts use a standard deviation of max(1, mean*stdDevRatio)
	stdDevRatio = 0.25
	minStdDev   = 1.0
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// GenerateSupplies creates count supplies coded INS-001, INS-002, ... each
// expiring a uniform 30 to 365 days after start. count == 0 yields an empty list.
func GenerateSupplies(count int, start time.Time, seed int64) ([]entities.Supply, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: supply count cannot be negative, got %d", ErrInvalidParameter, count)
	}

	r := newRand(seed)
	supplies := make([]entities.Supply, 0, count)

	for i := 1; i <= count; i++ {
		validityDays := minValidityDays + r.Intn(maxValidityDays-minValidityDays+1)
		supply, err := entities.NewSupply(
			entities.SupplyCode(fmt.Sprintf("INS-%03d", i)),
			fmt.Sprintf("Insumo %03d", i),
			entities.AddDays(start, validityDays),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create supply %d: %w", i, err)
		}
		supplies = append(supplies, *supply)
	}

	return supplies, nil
}

// ConsumptionParams configures SimulateDailyConsumption
type ConsumptionParams struct {
	Days             int
	MeanEventsPerDay int
	MaxQty           int
	Seed             int64
	// Reference is the last simulated day; day 1 is Reference - Days + 1
	Reference time.Time
}

// Validate checks params against the generator's rejection policy
func (p ConsumptionParams) Validate(supplyCount int) error {
	switch {
	case p.Days < 0:
		return fmt.Errorf("%w: day count cannot be negative, got %d", ErrInvalidParameter, p.Days)
	case p.MeanEventsPerDay < 0:
		return fmt.Errorf("%w: mean events per day cannot be negative, got %d", ErrInvalidParameter, p.MeanEventsPerDay)
	case p.MaxQty < 1:
		return fmt.Errorf("%w: max quantity must be positive, got %d", ErrInvalidParameter, p.MaxQty)
	case p.Days > 0 && supplyCount == 0:
		return fmt.Errorf("%w: cannot simulate %d days without supplies", ErrInvalidParameter, p.Days)
	}
	return nil
}

// DailyDraw records how many events were drawn for one simulated day
type DailyDraw struct {
	Day    time.Time `json:"day"`
	Events int       `json:"events"`
}

// Simulation is the output of SimulateDailyConsumption
type Simulation struct {
	Queue *collections.ConsumptionQueue
	Draws []DailyDraw
}

// TotalEvents returns the sum of the per-day event counts
func (s *Simulation) TotalEvents() int {
	total := 0
	for _, d := range s.Draws {
		total += d.Events
	}
	return total
}

// SimulateDailyConsumption enqueues a chronological stream of consumption events.
//
// Each day draws its event count from a normal distribution centred on
// MeanEventsPerDay, truncated to an integer and floored at zero. Each event
// consumes a uniformly chosen supply in a uniform quantity in [1, MaxQty].
func SimulateDailyConsumption(params ConsumptionParams, supplies []entities.Supply) (*Simulation, error) {
	if err := params.Validate(len(supplies)); err != nil {
		return nil, err
	}

	r := newRand(params.Seed)
	mean := float64(params.MeanEventsPerDay)
	stdDev := math.Max(minStdDev, mean*stdDevRatio)
	startDay := entities.AddDays(params.Reference, -params.Days)

	sim := &Simulation{
		Queue: collections.NewQueue[entities.ConsumptionEvent](params.Days * params.MeanEventsPerDay),
		Draws: make([]DailyDraw, 0, params.Days),
	}

	for d := 0; d < params.Days; d++ {
		when := startDay.AddDate(0, 0, d+1)
		eventsToday := max(0, int(r.NormFloat64()*stdDev+mean))

		for i := 0; i < eventsToday; i++ {
			supply := supplies[r.Intn(len(supplies))]
			qty := 1 + r.Intn(params.MaxQty)

			event, err := entities.NewConsumptionEvent(when, supply.Code, entities.Quantity(qty))
			if err != nil {
				return nil, fmt.Errorf("failed to create event on %s: %w", when.Format(entities.DateLayout), err)
			}
			sim.Queue.Enqueue(*event)
		}

		sim.Draws = append(sim.Draws, DailyDraw{Day: when, Events: eventsToday})
	}

	return sim, nil
}
