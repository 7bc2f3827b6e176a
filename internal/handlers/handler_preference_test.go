package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/transitbase/currency-service/internal/core/domain"
	portssvc "github.com/transitbase/currency-service/internal/core/ports/services"
	"github.com/transitbase/currency-service/internal/core/services"
	"github.com/transitbase/currency-service/internal/dto"
	"github.com/transitbase/currency-service/internal/handlers"
	"github.com/transitbase/currency-service/pkg/config"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetRates(ctx context.Context) domain.RateTable {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable)
}

func (m *MockRateService) GetRatesResult(ctx context.Context) portssvc.RatesResult {
	args := m.Called(ctx)
	return args.Get(0).(portssvc.RatesResult)
}

func (m *MockRateService) IsStale(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockRateService) GetEnabledCurrencies(ctx context.Context) []domain.Currency {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Currency)
}

func (m *MockRateService) GetEnabledCurrenciesResult(ctx context.Context) portssvc.CurrenciesResult {
	args := m.Called(ctx)
	return args.Get(0).(portssvc.CurrenciesResult)
}

func (m *MockRateService) GetFeaturedCurrencies(ctx context.Context) []domain.Currency {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Currency)
}

func (m *MockRateService) UpsertRates(ctx context.Context, rates map[string]decimal.Decimal, fetchedAt time.Time) error {
	args := m.Called(ctx, rates, fetchedAt)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) SetDefaultCurrency(ctx context.Context, currencyCode, updaterUserID string) error {
	args := m.Called(ctx, currencyCode, updaterUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Test Suite ---
type PreferenceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockRate     *MockRateService
	mockCurrency *MockCurrencyService
}

func (suite *PreferenceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockRate = new(MockRateService)
	suite.mockCurrency = new(MockCurrencyService)

	cfg := &config.Config{
		JWTSecret:          "test-secret-key-that-is-long-enough",
		CurrencyCookieName: "preferred-currency",
		RateLimit:          "100-M",
		AllowedOrigins:     []string{"http://localhost:3000"},
		IsProduction:       true, // no swagger group in tests
	}

	// Real preference resolution over the mocked rate accessor, so the
	// cookie -> resolver path runs end to end.
	container := &portssvc.ServiceContainer{
		Currency:   suite.mockCurrency,
		Rate:       suite.mockRate,
		Preference: services.NewPreferenceService(suite.mockRate),
	}

	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *PreferenceHandlerTestSuite) enabledCurrencies(codes ...string) {
	currencies := make([]domain.Currency, len(codes))
	for i, code := range codes {
		currencies[i] = domain.Currency{CurrencyCode: code, IsEnabled: true}
	}
	suite.mockRate.On("GetEnabledCurrencies", mock.Anything).Return(currencies)
}

func (suite *PreferenceHandlerTestSuite) getPreference(cookieValue, acceptLanguage string) dto.PreferenceResponse {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/preferences/currency", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: "preferred-currency", Value: cookieValue})
	}
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.PreferenceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Test Cases ---

func (suite *PreferenceHandlerTestSuite) TestGetPreference_CookieWins() {
	suite.enabledCurrencies("AED", "USD", "EUR")

	resp := suite.getPreference("EUR", "en-US,en;q=0.9")

	suite.Equal("EUR", resp.CurrencyCode)
	suite.Equal("cookie", resp.Source)
}

func (suite *PreferenceHandlerTestSuite) TestGetPreference_BrowserDetected() {
	suite.enabledCurrencies("AED", "USD", "EUR")

	resp := suite.getPreference("", "de-DE,de;q=0.9")

	suite.Equal("EUR", resp.CurrencyCode)
	suite.Equal("browser-detected", resp.Source)
}

func (suite *PreferenceHandlerTestSuite) TestGetPreference_DisabledCookieFallsThrough() {
	suite.enabledCurrencies("AED", "USD")

	resp := suite.getPreference("EUR", "en-US")

	suite.Equal("USD", resp.CurrencyCode)
	suite.Equal("browser-detected", resp.Source)
}

func (suite *PreferenceHandlerTestSuite) TestGetPreference_DefaultWhenNothingSent() {
	suite.enabledCurrencies("AED", "USD")

	resp := suite.getPreference("", "")

	suite.Equal("AED", resp.CurrencyCode)
	suite.Equal("default-fallback", resp.Source)
}

func (suite *PreferenceHandlerTestSuite) TestSetPreference_Success() {
	suite.enabledCurrencies("AED", "USD", "EUR")

	body := strings.NewReader(`{"currencyCode":"EUR"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/currency", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.PreferenceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("EUR", resp.CurrencyCode)
	suite.Equal("cookie", resp.Source)

	cookies := w.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Equal("preferred-currency", cookies[0].Name)
	suite.Equal("EUR", cookies[0].Value)
	suite.Equal(365*24*60*60, cookies[0].MaxAge)
	suite.Equal("/", cookies[0].Path)
}

func (suite *PreferenceHandlerTestSuite) TestSetPreference_DisabledCurrencyRejected() {
	suite.enabledCurrencies("AED", "USD")

	body := strings.NewReader(`{"currencyCode":"EUR"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/currency", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Empty(w.Result().Cookies(), "no cookie may be written for a disabled currency")
}

func (suite *PreferenceHandlerTestSuite) TestClearPreference() {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/preferences/currency", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)

	cookies := w.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Empty(cookies[0].Value)
	suite.Negative(cookies[0].MaxAge, "clearing must expire the cookie")
}

func TestPreferenceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PreferenceHandlerTestSuite))
}
