package sorting

import "github.com/vsinha/stocksim/pkg/domain/entities"

// BySupplyCode keys a consumption event by its supply code
func BySupplyCode(e entities.ConsumptionEvent) entities.SupplyCode {
	return e.SupplyCode
}

// ByDate keys a consumption event by its calendar day
func ByDate(e entities.ConsumptionEvent) int64 {
	return e.When.Unix()
}

// ByExpiry keys a supply by its expiry date, earliest first
func ByExpiry(s entities.Supply) int64 {
	return s.Expiry.Unix()
}

// ByTotalDesc keys a totals entry by its negated total, so ascending order lists the largest consumers first
func ByTotalDesc(t entities.TotalsEntry) entities.Quantity {
	return -t.Total
}
