package entities

import (
	"fmt"
	"time"
)

// ConsumptionEvent records a quantity of a supply consumed on a given day.
// SupplyCode is a weak reference: nothing checks that the supply exists.
type ConsumptionEvent struct {
	When       time.Time  `json:"when"`
	SupplyCode SupplyCode `json:"supply_code"`
	Quantity   Quantity   `json:"quantity"`
}

// NewConsumptionEvent creates a validated ConsumptionEvent
func NewConsumptionEvent(when time.Time, code SupplyCode, quantity Quantity) (*ConsumptionEvent, error) {
	if string(code) == "" {
		return nil, fmt.Errorf("supply code cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	return &ConsumptionEvent{
		When:       CalendarDate(when),
		SupplyCode: code,
		Quantity:   quantity,
	}, nil
}

// String formats the event as a single ledger line
func (e ConsumptionEvent) String() string {
	return fmt.Sprintf("%s | %s | qty=%d", e.When.Format(DateLayout), e.SupplyCode, e.Quantity)
}

// TotalsEntry is the total quantity consumed for one supply code, derived from a ledger
type TotalsEntry struct {
	SupplyCode SupplyCode `json:"supply_code"`
	Total      Quantity   `json:"total"`
}
