package services

import (
	"time"

	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildRateTable assembles the wide rate table for one fetch cycle: a full
// calendar-date axis for the window, one column per fetched pair joined on
// effective date, then the derived cross-rate columns. Dates the upstream API
// did not publish stay as missing cells. Derived columns are registered even
// when their inputs are absent, so the persisted schema is stable across
// partial cycles.
func BuildRateTable(now time.Time, window domain.DateWindow, series []domain.PairSeries, crossRates []domain.CrossRate) *domain.RateTable {
	table := domain.NewRateTable(window.Axis(now))

	for _, s := range series {
		byDate := make(map[string]decimal.Decimal, len(s.Observations))
		for _, obs := range s.Observations {
			byDate[obs.EffectiveDate] = obs.Mid
		}
		table.AddColumn(s.Pair, byDate)
	}

	for _, cross := range crossRates {
		table.ApplyCrossRate(cross)
	}

	return table
}
