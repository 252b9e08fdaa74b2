package services

import (
	"context"

	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSyncSvcFacade defines the fetch-and-persist cycle for exchange rates
type RateSyncSvcFacade interface {
	// RunCycle fetches the configured currencies from the upstream source,
	// builds the wide rate table and merges it into the persisted one.
	// Per-currency fetch failures are logged and skipped; an empty fetch
	// result skips the save entirely.
	RunCycle(ctx context.Context) error
}

// RateQuerySvcFacade defines read operations over the persisted rate table
type RateQuerySvcFacade interface {
	// ListCurrencies retrieves the currency pair columns available in the
	// persisted table, excluding the date column.
	ListCurrencies(ctx context.Context) ([]string, error)

	// GetRates retrieves the rate series for the requested currency pairs,
	// keyed by pair, values in persisted row order. Pairs not present in
	// the table are omitted from the result.
	GetRates(ctx context.Context, currencies []string) (map[string][]decimal.NullDecimal, error)

	// GetSummary computes summary statistics for the requested currency
	// pairs, keyed by pair. Pairs not present in the table, or with no
	// values at all, are omitted from the result.
	GetSummary(ctx context.Context, currencies []string) (map[string]domain.SummaryStatistic, error)
}

// RateExportSvcFacade defines the filtered export of the persisted table
type RateExportSvcFacade interface {
	// Export writes the requested currency pair columns to the configured
	// export file. Unlike the query operations it is strict: any unknown
	// pair fails the whole export with apperrors.UnknownColumnsError and
	// nothing is written.
	Export(ctx context.Context, currencies []string) error
}
