package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pbialczyk/nbp_rates_app/internal/apperrors"
	portsrepo "github.com/pbialczyk/nbp_rates_app/internal/core/ports/repositories"
	portssvc "github.com/pbialczyk/nbp_rates_app/internal/core/ports/services"
)

// rateExportService implements the RateExportSvcFacade interface
type rateExportService struct {
	BaseService
	tableRepo  portsrepo.RateTableRepositoryFacade
	exportPath string
}

// NewRateExportService creates a new export service writing to exportPath
func NewRateExportService(tableRepo portsrepo.RateTableRepositoryFacade, exportPath string) portssvc.RateExportSvcFacade {
	return &rateExportService{tableRepo: tableRepo, exportPath: exportPath}
}

// Export writes the requested pair columns to the export file. All requested
// pairs must exist in the table; otherwise nothing is written and the unknown
// pairs are reported together.
func (s *rateExportService) Export(ctx context.Context, currencies []string) error {
	table, err := s.tableRepo.LoadTable(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load rate table")
		return fmt.Errorf("failed to load rate table: %w", err)
	}

	var unknown []string
	for _, pair := range currencies {
		if !table.HasColumn(pair) {
			unknown = append(unknown, pair)
		}
	}
	if len(unknown) > 0 {
		return &apperrors.UnknownColumnsError{Columns: unknown}
	}

	if err := s.tableRepo.WriteColumns(ctx, table, currencies, s.exportPath); err != nil {
		s.LogError(ctx, err, "Failed to write selected columns",
			slog.String("path", s.exportPath))
		return fmt.Errorf("failed to export selected columns: %w", err)
	}

	s.LogInfo(ctx, "Selected columns exported successfully",
		slog.Int("columns", len(currencies)),
		slog.String("path", s.exportPath))
	return nil
}
