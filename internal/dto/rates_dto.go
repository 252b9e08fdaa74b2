package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
)

// MessageResponse is the envelope for endpoints that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// CurrencyTypesResponse lists the currency pair columns available to query.
type CurrencyTypesResponse struct {
	Message        string   `json:"message"`
	CurrenciesList []string `json:"currencies_list"`
}

// ExchangeRatesResponse carries raw rate series keyed by currency pair, in
// persisted row order. Missing cells marshal as null.
type ExchangeRatesResponse struct {
	Message       string                           `json:"message"`
	ExchangeRates map[string][]decimal.NullDecimal `json:"exchange_rates"`
}

// AnalyzedColumn holds the summary statistics of one currency pair column.
type AnalyzedColumn struct {
	AverageValue decimal.Decimal `json:"average_value"`
	MedianValue  decimal.Decimal `json:"median_value"`
	MinValue     decimal.Decimal `json:"min_value"`
	MaxValue     decimal.Decimal `json:"max_value"`
}

// AnalyzedDataResponse carries summary statistics keyed by currency pair.
type AnalyzedDataResponse struct {
	Message      string                    `json:"message"`
	AnalyzedData map[string]AnalyzedColumn `json:"analyzed_data"`
}

// SaveExchangeRatesRequest asks for a filtered export of the named pairs.
type SaveExchangeRatesRequest struct {
	CurrencyPairs []string `json:"currency_pairs" binding:"required,min=1,dive,currencypair"`
}

// ToAnalyzedDataMap converts per-pair domain statistics to response columns
func ToAnalyzedDataMap(summaries map[string]domain.SummaryStatistic) map[string]AnalyzedColumn {
	analyzed := make(map[string]AnalyzedColumn, len(summaries))
	for pair, statistic := range summaries {
		analyzed[pair] = AnalyzedColumn{
			AverageValue: statistic.Average,
			MedianValue:  statistic.Median,
			MinValue:     statistic.Min,
			MaxValue:     statistic.Max,
		}
	}
	return analyzed
}
