package entities

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used across reports
const DateLayout = "2006-01-02"

// SupplyCode represents a unique supply identifier within a generated batch
type SupplyCode string

// Quantity represents an integer quantity of consumed units
type Quantity int64

// Supply represents a consumable inventory input with an expiry date
type Supply struct {
	Code   SupplyCode `json:"code"`
	Name   string     `json:"name"`
	Expiry time.Time  `json:"expiry"`
}

// NewSupply creates a validated Supply. The expiry is normalized to a calendar date.
func NewSupply(code SupplyCode, name string, expiry time.Time) (*Supply, error) {
	if string(code) == "" {
		return nil, fmt.Errorf("supply code cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("supply name cannot be empty")
	}
	if expiry.IsZero() {
		return nil, fmt.Errorf("expiry date cannot be zero")
	}

	return &Supply{
		Code:   code,
		Name:   name,
		Expiry: CalendarDate(expiry),
	}, nil
}

// CalendarDate truncates t to midnight UTC of its calendar day
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar date n days after t
func AddDays(t time.Time, n int) time.Time {
	return CalendarDate(t).AddDate(0, 0, n)
}
