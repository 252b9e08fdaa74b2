package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
	portsrepo "github.com/pbialczyk/nbp_rates_app/internal/core/ports/repositories"
	portssvc "github.com/pbialczyk/nbp_rates_app/internal/core/ports/services"
	"github.com/pbialczyk/nbp_rates_app/internal/utils/stats"
)

// rateQueryService implements the RateQuerySvcFacade interface
type rateQueryService struct {
	BaseService
	tableRepo portsrepo.RateTableReader
}

// NewRateQueryService creates a new query service over the persisted table
func NewRateQueryService(tableRepo portsrepo.RateTableReader) portssvc.RateQuerySvcFacade {
	return &rateQueryService{tableRepo: tableRepo}
}

// ListCurrencies returns the currency pair columns of the persisted table.
func (s *rateQueryService) ListCurrencies(ctx context.Context) ([]string, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	return table.Columns(), nil
}

// GetRates returns the rate series for the requested pairs, keyed by pair.
// Pairs the table does not know are left out, mirroring a column filter.
func (s *rateQueryService) GetRates(ctx context.Context, currencies []string) (map[string][]decimal.NullDecimal, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}

	rates := make(map[string][]decimal.NullDecimal, len(currencies))
	for _, pair := range currencies {
		if values, ok := table.Column(pair); ok {
			rates[pair] = values
		}
	}
	return rates, nil
}

// GetSummary returns summary statistics for the requested pairs, keyed by
// pair. Unknown pairs and pairs with no values at all are left out.
func (s *rateQueryService) GetSummary(ctx context.Context, currencies []string) (map[string]domain.SummaryStatistic, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]domain.SummaryStatistic, len(currencies))
	for _, pair := range currencies {
		values, ok := table.Column(pair)
		if !ok {
			continue
		}
		if statistic, ok := stats.Summarize(values); ok {
			summaries[pair] = statistic
		}
	}
	return summaries, nil
}

func (s *rateQueryService) loadTable(ctx context.Context) (*domain.RateTable, error) {
	table, err := s.tableRepo.LoadTable(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load rate table")
		return nil, fmt.Errorf("failed to load rate table: %w", err)
	}
	return table, nil
}
