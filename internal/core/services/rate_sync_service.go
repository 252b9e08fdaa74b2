package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
	portsrepo "github.com/pbialczyk/nbp_rates_app/internal/core/ports/repositories"
	portssvc "github.com/pbialczyk/nbp_rates_app/internal/core/ports/services"
)

const defaultFetchWorkers = 3

// rateSyncService implements the RateSyncSvcFacade interface
type rateSyncService struct {
	BaseService
	source     portsrepo.RateSource
	tableRepo  portsrepo.RateTableWriter
	currencies []string
	window     domain.DateWindow
	crossRates []domain.CrossRate
	workers    int
	now        func() time.Time
}

// RateSyncServiceOption is a functional option for configuring the sync service
type RateSyncServiceOption func(*rateSyncService)

// WithFetchWorkers sets the concurrency of per-currency upstream fetches.
func WithFetchWorkers(n int) RateSyncServiceOption {
	return func(s *rateSyncService) {
		s.workers = n
	}
}

// WithCrossRates overrides the derived cross-rate columns computed per cycle.
func WithCrossRates(crossRates []domain.CrossRate) RateSyncServiceOption {
	return func(s *rateSyncService) {
		s.crossRates = crossRates
	}
}

// WithSyncClock overrides the time source used to build the date axis.
func WithSyncClock(now func() time.Time) RateSyncServiceOption {
	return func(s *rateSyncService) {
		s.now = now
	}
}

// NewRateSyncService creates a new sync service with the provided options
func NewRateSyncService(source portsrepo.RateSource, tableRepo portsrepo.RateTableWriter, currencies []string, window domain.DateWindow, options ...RateSyncServiceOption) portssvc.RateSyncSvcFacade {
	svc := &rateSyncService{
		source:     source,
		tableRepo:  tableRepo,
		currencies: currencies,
		window:     window,
		crossRates: domain.DefaultCrossRates(),
		workers:    defaultFetchWorkers,
		now:        time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// RunCycle fetches all configured currencies, builds the wide table and
// merges it into the persisted one. A failed fetch drops that currency from
// the cycle; only a persistence failure makes the cycle itself fail.
func (s *rateSyncService) RunCycle(ctx context.Context) error {
	results := make([]domain.PairSeries, len(s.currencies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, code := range s.currencies {
		g.Go(func() error {
			observations, err := s.source.FetchSeries(gctx, code, s.window)
			if err != nil {
				s.LogError(ctx, err, "Failed to fetch exchange rates",
					slog.String("currency", code))
				return nil
			}
			results[i] = domain.PairSeries{
				Pair:         pairName(code),
				Observations: observations,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	series := make([]domain.PairSeries, 0, len(results))
	for _, r := range results {
		if len(r.Observations) == 0 {
			continue
		}
		series = append(series, r)
	}

	if len(series) == 0 {
		s.LogWarn(ctx, "No exchange rates to save")
		return nil
	}

	table := BuildRateTable(s.now(), s.window, series, s.crossRates)

	if err := s.tableRepo.SaveMerged(ctx, table); err != nil {
		s.LogError(ctx, err, "Failed to save rate table")
		return fmt.Errorf("failed to save rate table: %w", err)
	}

	s.LogInfo(ctx, "Rate table saved successfully",
		slog.Int("currencies", len(series)),
		slog.Int("rows", table.Len()))
	return nil
}

// pairName maps a currency code to its table column name, e.g. "eur" to
// "EUR/PLN". All NBP rates are quoted against the zloty.
func pairName(code string) string {
	return strings.ToUpper(code) + "/" + domain.BaseCurrency
}
