package services

import (
	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
	portsrepo "github.com/pbialczyk/nbp_rates_app/internal/core/ports/repositories"
	portssvc "github.com/pbialczyk/nbp_rates_app/internal/core/ports/services"
	"github.com/pbialczyk/nbp_rates_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	window := domain.DateWindow{
		DaysToStart: cfg.DaysToStart,
		DaysToEnd:   cfg.DaysToEnd,
	}

	container.RateSync = NewRateSyncService(
		repos.RateSource,
		repos.RateTableRepo,
		cfg.Currencies,
		window,
	)
	container.RateQuery = NewRateQueryService(repos.RateTableRepo)
	container.RateExport = NewRateExportService(repos.RateTableRepo, cfg.SelectedCurrencyCSVPath)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RateSyncSvcFacade   = (*rateSyncService)(nil)
	_ portssvc.RateQuerySvcFacade  = (*rateQueryService)(nil)
	_ portssvc.RateExportSvcFacade = (*rateExportService)(nil)
)
