package domain

import "github.com/shopspring/decimal"

// SummaryStatistic aggregates one rate column over all persisted rows.
// Every field is rounded to RatePrecision decimal places; missing cells are
// ignored when computing it.
type SummaryStatistic struct {
	Average decimal.Decimal `json:"average"`
	Median  decimal.Decimal `json:"median"`
	Min     decimal.Decimal `json:"min"`
	Max     decimal.Decimal `json:"max"`
}
