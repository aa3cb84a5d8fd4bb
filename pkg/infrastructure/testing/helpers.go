// Package testing provides shared fixtures for simulator tests.
package testing

import (
	"fmt"
	"time"

	"github.com/vsinha/stocksim/pkg/domain/entities"
)

// BaseDate is the reference day used by fixtures
var BaseDate = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

// Event builds a consumption event dayOffset days after BaseDate
func Event(dayOffset int, code entities.SupplyCode, qty entities.Quantity) entities.ConsumptionEvent {
	return entities.ConsumptionEvent{
		When:       BaseDate.AddDate(0, 0, dayOffset),
		SupplyCode: code,
		Quantity:   qty,
	}
}

// BuildSupplies builds supplies with the given expiry offsets from BaseDate,
// coded INS-001, INS-002, ... in argument order
func BuildSupplies(expiryOffsets ...int) []entities.Supply {
	supplies := make([]entities.Supply, len(expiryOffsets))
	for i, offset := range expiryOffsets {
		supplies[i] = entities.Supply{
			Code:   entities.SupplyCode(fmt.Sprintf("INS-%03d", i+1)),
			Name:   fmt.Sprintf("Insumo %03d", i+1),
			Expiry: BaseDate.AddDate(0, 0, offset),
		}
	}
	return supplies
}

// BuildLedger builds a small chronological ledger over three supplies:
//
//	day 0: INS-002 x4, INS-001 x3
//	day 1: INS-003 x1, INS-001 x5
//	day 2: INS-002 x2, INS-001 x2, INS-003 x6
//
// Totals in first-occurrence order: INS-002=6, INS-001=10, INS-003=7.
func BuildLedger() []entities.ConsumptionEvent {
	return []entities.ConsumptionEvent{
		Event(0, "INS-002", 4),
		Event(0, "INS-001", 3),
		Event(1, "INS-003", 1),
		Event(1, "INS-001", 5),
		Event(2, "INS-002", 2),
		Event(2, "INS-001", 2),
		Event(2, "INS-003", 6),
	}
}
