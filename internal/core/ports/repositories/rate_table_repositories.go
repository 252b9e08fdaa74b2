package repositories

import (
	"context"

	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
)

// RateTableReader defines read operations for the persisted rate table
type RateTableReader interface {
	// LoadTable reads the full rate table from storage.
	// Returns apperrors.ErrNoData when nothing has been persisted yet.
	LoadTable(ctx context.Context) (*domain.RateTable, error)
}

// RateTableWriter defines write operations for the persisted rate table
type RateTableWriter interface {
	// SaveMerged merges a freshly built table into the persisted one and
	// writes the result back, replacing the previous file atomically.
	SaveMerged(ctx context.Context, fresh *domain.RateTable) error

	// WriteColumns writes the named columns of the table to path, in the
	// given order, using the same CSV conventions as the main table file.
	WriteColumns(ctx context.Context, table *domain.RateTable, columns []string, path string) error
}

// RateTableRepositoryFacade combines all rate table repository interfaces
// This is a facade for clients that need access to all operations
type RateTableRepositoryFacade interface {
	RateTableReader
	RateTableWriter
}
