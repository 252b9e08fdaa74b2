// Package stats provides summary statistics over decimal rate series.
package stats

import (
	"sort"

	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Summarize computes average, median, min and max over the valid entries of a
// series, each rounded to the table precision. Missing (invalid) entries are
// skipped. The second return value is false when the series holds no valid
// entry at all, in which case the statistic is unusable.
func Summarize(series []decimal.NullDecimal) (domain.SummaryStatistic, bool) {
	values := make([]decimal.Decimal, 0, len(series))
	for _, v := range series {
		if v.Valid {
			values = append(values, v.Decimal)
		}
	}
	if len(values) == 0 {
		return domain.SummaryStatistic{}, false
	}

	sum := decimal.Zero
	min := values[0]
	max := values[0]
	for _, v := range values {
		sum = sum.Add(v)
		if v.LessThan(min) {
			min = v
		}
		if v.GreaterThan(max) {
			max = v
		}
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(values))))

	return domain.SummaryStatistic{
		Average: avg.Round(domain.RatePrecision),
		Median:  median(values).Round(domain.RatePrecision),
		Min:     min.Round(domain.RatePrecision),
		Max:     max.Round(domain.RatePrecision),
	}, true
}

// median returns the middle value of the series, or the mean of the two middle
// values for an even-length series. The input slice is sorted in place.
func median(values []decimal.Decimal) decimal.Decimal {
	sort.Slice(values, func(i, j int) bool {
		return values[i].LessThan(values[j])
	})
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return values[mid-1].Add(values[mid]).Div(two)
}
