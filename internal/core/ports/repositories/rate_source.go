package repositories

import (
	"context"

	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
)

// RateSource defines read operations against the upstream exchange rate
// provider. Implementations fetch one currency series per call so callers can
// fan out and tolerate per-currency failures.
type RateSource interface {
	// FetchSeries retrieves the mid-rate observations for a single currency
	// code over the window, ordered by effective date ascending.
	FetchSeries(ctx context.Context, currencyCode string, window domain.DateWindow) ([]domain.Observation, error)
}
