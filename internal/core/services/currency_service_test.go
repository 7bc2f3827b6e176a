package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/transitbase/currency-service/internal/apperrors"
	"github.com/transitbase/currency-service/internal/core/domain"
	portssvc "github.com/transitbase/currency-service/internal/core/ports/services"
	"github.com/transitbase/currency-service/internal/core/services"
	"github.com/transitbase/currency-service/internal/dto"
	"github.com/transitbase/currency-service/pkg/cache"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	MockCurrencyReader
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SetDefaultCurrency(ctx context.Context, currencyCode, updaterUserID string) error {
	args := m.Called(ctx, currencyCode, updaterUserID)
	return args.Error(0)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo, cache.NewMemory())
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCurrencyRequest{
		CurrencyCode:   "TST",
		Name:           "Test Currency",
		Symbol:         "T",
		DecimalPlaces:  2,
		SymbolPosition: "before",
		IsEnabled:      true,
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "TST").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == req.CurrencyCode && c.Symbol == req.Symbol && c.Name == req.Name &&
			c.IsEnabled && !c.IsDefault && c.CreatedBy == creatorUserID && c.LastUpdatedBy == creatorUserID
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal(req.CurrencyCode, currency.CurrencyCode)
	suite.Equal(creatorUserID, currency.CreatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	existing := &domain.Currency{CurrencyCode: "USD"}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(existing, nil).Once()

	_, err := suite.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{
		CurrencyCode:   "USD",
		Name:           "US Dollar",
		Symbol:         "$",
		SymbolPosition: "before",
	}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_PartialFields() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	existing := &domain.Currency{
		CurrencyCode:   "USD",
		Name:           "US Dollar",
		Symbol:         "$",
		DecimalPlaces:  2,
		SymbolPosition: domain.SymbolBefore,
		IsEnabled:      true,
	}
	newName := "United States Dollar"
	featured := true

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(existing, nil).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Name == newName && c.IsFeatured && c.Symbol == "$" && c.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCurrency(ctx, "USD", dto.UpdateCurrencyRequest{
		Name:       &newName,
		IsFeatured: &featured,
	}, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.True(updated.IsFeatured)
	suite.Equal("$", updated.Symbol, "fields not in the request stay untouched")

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_CannotDisableDefault() {
	ctx := context.Background()
	existing := &domain.Currency{CurrencyCode: "AED", IsEnabled: true, IsDefault: true}
	disabled := false

	suite.mockRepo.On("FindCurrencyByCode", ctx, "AED").Return(existing, nil).Once()

	_, err := suite.service.UpdateCurrency(ctx, "AED", dto.UpdateCurrencyRequest{IsEnabled: &disabled}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "ZZZ").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateCurrency(ctx, "ZZZ", dto.UpdateCurrencyRequest{}, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestSetDefaultCurrency() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()

	suite.mockRepo.On("SetDefaultCurrency", ctx, "USD", updaterUserID).Return(nil).Once()

	err := suite.service.SetDefaultCurrency(ctx, "USD", updaterUserID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode() {
	ctx := context.Background()
	existing := &domain.Currency{CurrencyCode: "USD", Name: "US Dollar"}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(existing, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "USD")

	suite.Require().NoError(err)
	suite.Equal("US Dollar", currency.Name)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies() {
	ctx := context.Background()
	stored := []domain.Currency{
		{CurrencyCode: "AED"},
		{CurrencyCode: "USD"},
	}

	suite.mockRepo.On("ListCurrencies", ctx).Return(stored, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Len(currencies, 2)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
