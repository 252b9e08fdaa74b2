package services_test

import (
	"context"
	"testing"

	"github.com/pbialczyk/nbp_rates_app/internal/apperrors"
	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
	portsrepo "github.com/pbialczyk/nbp_rates_app/internal/core/ports/repositories"
	portssvc "github.com/pbialczyk/nbp_rates_app/internal/core/ports/services"
	"github.com/pbialczyk/nbp_rates_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testExportPath = "selected_currency_data.csv"

// --- Mock RateTableRepository ---
type MockRateTableRepository struct {
	mock.Mock
}

func (m *MockRateTableRepository) LoadTable(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockRateTableRepository) SaveMerged(ctx context.Context, fresh *domain.RateTable) error {
	args := m.Called(ctx, fresh)
	return args.Error(0)
}

func (m *MockRateTableRepository) WriteColumns(ctx context.Context, table *domain.RateTable, columns []string, path string) error {
	args := m.Called(ctx, table, columns, path)
	return args.Error(0)
}

var _ portsrepo.RateTableRepositoryFacade = (*MockRateTableRepository)(nil)

// --- Test Suite ---
type RateExportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRateTableRepository
	service  portssvc.RateExportSvcFacade
}

func (suite *RateExportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRateTableRepository)
	suite.service = services.NewRateExportService(suite.mockRepo, testExportPath)
}

// --- Test Cases ---

func (suite *RateExportServiceTestSuite) TestExport_Success() {
	ctx := context.Background()
	table := persistedTable()
	requested := []string{"USD/PLN", "EUR/PLN"}

	suite.mockRepo.On("LoadTable", ctx).Return(table, nil).Once()
	suite.mockRepo.On("WriteColumns", ctx, table, requested, testExportPath).Return(nil).Once()

	err := suite.service.Export(ctx, requested)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateExportServiceTestSuite) TestExport_UnknownColumns() {
	ctx := context.Background()
	suite.mockRepo.On("LoadTable", ctx).Return(persistedTable(), nil).Once()

	err := suite.service.Export(ctx, []string{"EUR/PLN", "NONEXISTENT", "XAU/PLN"})

	suite.Require().Error(err)
	var unknown *apperrors.UnknownColumnsError
	suite.Require().ErrorAs(err, &unknown)
	suite.Equal([]string{"NONEXISTENT", "XAU/PLN"}, unknown.Columns,
		"every offending column is reported together")
	suite.mockRepo.AssertNotCalled(suite.T(), "WriteColumns", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateExportServiceTestSuite) TestExport_LoadError() {
	ctx := context.Background()
	suite.mockRepo.On("LoadTable", ctx).Return(nil, apperrors.ErrNoData).Once()

	err := suite.service.Export(ctx, []string{"EUR/PLN"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoData)
	suite.mockRepo.AssertNotCalled(suite.T(), "WriteColumns", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateExportServiceTestSuite) TestExport_WriteError() {
	ctx := context.Background()
	table := persistedTable()

	suite.mockRepo.On("LoadTable", ctx).Return(table, nil).Once()
	suite.mockRepo.On("WriteColumns", ctx, table, []string{"EUR/PLN"}, testExportPath).Return(assert.AnError).Once()

	err := suite.service.Export(ctx, []string{"EUR/PLN"})

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestRateExportService(t *testing.T) {
	suite.Run(t, new(RateExportServiceTestSuite))
}
