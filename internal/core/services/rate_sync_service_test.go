package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
	portsrepo "github.com/pbialczyk/nbp_rates_app/internal/core/ports/repositories"
	portssvc "github.com/pbialczyk/nbp_rates_app/internal/core/ports/services"
	"github.com/pbialczyk/nbp_rates_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchSeries(ctx context.Context, currencyCode string, window domain.DateWindow) ([]domain.Observation, error) {
	args := m.Called(ctx, currencyCode, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Observation), args.Error(1)
}

var _ portsrepo.RateSource = (*MockRateSource)(nil)

// --- Mock RateTableWriter ---
type MockRateTableWriter struct {
	mock.Mock
}

func (m *MockRateTableWriter) SaveMerged(ctx context.Context, fresh *domain.RateTable) error {
	args := m.Called(ctx, fresh)
	return args.Error(0)
}

func (m *MockRateTableWriter) WriteColumns(ctx context.Context, table *domain.RateTable, columns []string, path string) error {
	args := m.Called(ctx, table, columns, path)
	return args.Error(0)
}

var _ portsrepo.RateTableWriter = (*MockRateTableWriter)(nil)

// --- Test Suite ---
type RateSyncServiceTestSuite struct {
	suite.Suite
	mockSource *MockRateSource
	mockWriter *MockRateTableWriter
	window     domain.DateWindow
	service    portssvc.RateSyncSvcFacade
}

func (suite *RateSyncServiceTestSuite) SetupTest() {
	suite.mockSource = new(MockRateSource)
	suite.mockWriter = new(MockRateTableWriter)
	suite.window = domain.DateWindow{DaysToStart: 3, DaysToEnd: 0}

	now := func() time.Time {
		return time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	}
	suite.service = services.NewRateSyncService(
		suite.mockSource,
		suite.mockWriter,
		[]string{"eur", "usd"},
		suite.window,
		services.WithSyncClock(now),
	)
}

// --- Test Cases ---

func (suite *RateSyncServiceTestSuite) TestRunCycle_SavesMergedTable() {
	ctx := context.Background()

	suite.mockSource.On("FetchSeries", mock.Anything, "eur", suite.window).Return([]domain.Observation{
		{EffectiveDate: "2024-03-14", Mid: decimal.RequireFromString("4.3123")},
	}, nil).Once()
	suite.mockSource.On("FetchSeries", mock.Anything, "usd", suite.window).Return([]domain.Observation{
		{EffectiveDate: "2024-03-14", Mid: decimal.RequireFromString("3.9876")},
	}, nil).Once()

	var saved *domain.RateTable
	suite.mockWriter.On("SaveMerged", ctx, mock.AnythingOfType("*domain.RateTable")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.RateTable)
	}).Return(nil).Once()

	err := suite.service.RunCycle(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(saved)
	suite.Equal([]string{"EUR/PLN", "USD/PLN", "EUR/USD", "CHF/USD"}, saved.Columns(),
		"pair columns in configured order, derived columns after them")
	suite.Equal([]string{"2024-03-13", "2024-03-14", "2024-03-15"}, saved.Dates())

	cross, ok := saved.Column("EUR/USD")
	suite.Require().True(ok)
	suite.True(cross[1].Valid)
	suite.True(cross[1].Decimal.Equal(decimal.RequireFromString("1.0814")), "got %s", cross[1].Decimal)

	suite.mockSource.AssertExpectations(suite.T())
	suite.mockWriter.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestRunCycle_PartialFetchFailureKeepsCycleAlive() {
	ctx := context.Background()

	suite.mockSource.On("FetchSeries", mock.Anything, "eur", suite.window).Return(nil, assert.AnError).Once()
	suite.mockSource.On("FetchSeries", mock.Anything, "usd", suite.window).Return([]domain.Observation{
		{EffectiveDate: "2024-03-14", Mid: decimal.RequireFromString("3.9876")},
	}, nil).Once()

	var saved *domain.RateTable
	suite.mockWriter.On("SaveMerged", ctx, mock.AnythingOfType("*domain.RateTable")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.RateTable)
	}).Return(nil).Once()

	err := suite.service.RunCycle(ctx)

	suite.Require().NoError(err, "a failed fetch drops the currency, not the cycle")
	suite.Require().NotNil(saved)
	suite.False(saved.HasColumn("EUR/PLN"), "failed currency contributes no column this cycle")
	suite.True(saved.HasColumn("USD/PLN"))

	suite.mockSource.AssertExpectations(suite.T())
	suite.mockWriter.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestRunCycle_NothingToSave() {
	ctx := context.Background()

	suite.mockSource.On("FetchSeries", mock.Anything, "eur", suite.window).Return(nil, assert.AnError).Once()
	suite.mockSource.On("FetchSeries", mock.Anything, "usd", suite.window).Return(nil, assert.AnError).Once()

	err := suite.service.RunCycle(ctx)

	suite.Require().NoError(err)
	suite.mockWriter.AssertNotCalled(suite.T(), "SaveMerged", mock.Anything, mock.Anything)
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateSyncServiceTestSuite) TestRunCycle_SaveError() {
	ctx := context.Background()

	suite.mockSource.On("FetchSeries", mock.Anything, "eur", suite.window).Return([]domain.Observation{
		{EffectiveDate: "2024-03-14", Mid: decimal.RequireFromString("4.3123")},
	}, nil).Once()
	suite.mockSource.On("FetchSeries", mock.Anything, "usd", suite.window).Return([]domain.Observation{
		{EffectiveDate: "2024-03-14", Mid: decimal.RequireFromString("3.9876")},
	}, nil).Once()
	suite.mockWriter.On("SaveMerged", ctx, mock.AnythingOfType("*domain.RateTable")).Return(assert.AnError).Once()

	err := suite.service.RunCycle(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.mockWriter.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestRateSyncService(t *testing.T) {
	suite.Run(t, new(RateSyncServiceTestSuite))
}
