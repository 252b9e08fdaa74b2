package domain

import "github.com/shopspring/decimal"

// Observation is a single dated mid-rate published by the upstream rates API.
// Field tags mirror the NBP payload so API responses decode straight into it.
type Observation struct {
	EffectiveDate string          `json:"effectiveDate"` // Calendar date, YYYY-MM-DD
	Mid           decimal.Decimal `json:"mid"`           // Official mid-market rate
}

// PairSeries couples a currency pair column name (e.g. "EUR/PLN") with the
// observations fetched for it in one cycle. A slice of PairSeries keeps the
// pair order stable so table columns appear in the order pairs were added.
type PairSeries struct {
	Pair         string        `json:"pair"`
	Observations []Observation `json:"observations"`
}
