package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/transitbase/currency-service/internal/core/domain"
	portssvc "github.com/transitbase/currency-service/internal/core/ports/services"
	"github.com/transitbase/currency-service/internal/core/services"
)

// --- Mock RateReaderSvc ---
type MockRateReader struct {
	mock.Mock
}

func (m *MockRateReader) GetRates(ctx context.Context) domain.RateTable {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable)
}

func (m *MockRateReader) GetRatesResult(ctx context.Context) portssvc.RatesResult {
	args := m.Called(ctx)
	return args.Get(0).(portssvc.RatesResult)
}

func (m *MockRateReader) IsStale(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockRateReader) GetEnabledCurrencies(ctx context.Context) []domain.Currency {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Currency)
}

func (m *MockRateReader) GetEnabledCurrenciesResult(ctx context.Context) portssvc.CurrenciesResult {
	args := m.Called(ctx)
	return args.Get(0).(portssvc.CurrenciesResult)
}

func (m *MockRateReader) GetFeaturedCurrencies(ctx context.Context) []domain.Currency {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Currency)
}

// --- Test Suite ---
type PreferenceServiceTestSuite struct {
	suite.Suite
	mockRates *MockRateReader
	service   portssvc.PreferenceSvc
}

func (suite *PreferenceServiceTestSuite) SetupTest() {
	suite.mockRates = new(MockRateReader)
	suite.service = services.NewPreferenceService(suite.mockRates)
}

func (suite *PreferenceServiceTestSuite) enabled(codes ...string) {
	currencies := make([]domain.Currency, len(codes))
	for i, code := range codes {
		currencies[i] = domain.Currency{CurrencyCode: code, IsEnabled: true}
	}
	suite.mockRates.On("GetEnabledCurrencies", mock.Anything).Return(currencies).Once()
}

// --- Test Cases ---

func (suite *PreferenceServiceTestSuite) TestCookieWins() {
	suite.enabled("AED", "USD", "EUR")

	pref := suite.service.ResolvePreference(context.Background(), "eur", "en-US,en;q=0.9")

	suite.Equal("EUR", pref.Code, "cookie codes are normalized to upper case")
	suite.Equal(domain.PreferenceSourceCookie, pref.Source)
}

func (suite *PreferenceServiceTestSuite) TestDisabledCookieFallsThrough() {
	suite.enabled("AED", "USD")

	pref := suite.service.ResolvePreference(context.Background(), "EUR", "en-US")

	suite.Equal("USD", pref.Code, "a disabled cookie choice yields to the browser locale")
	suite.Equal(domain.PreferenceSourceBrowser, pref.Source)
}

func (suite *PreferenceServiceTestSuite) TestMalformedCookieFallsThrough() {
	suite.enabled("AED", "USD")

	pref := suite.service.ResolvePreference(context.Background(), "US$", "en-US")

	suite.Equal("USD", pref.Code)
	suite.Equal(domain.PreferenceSourceBrowser, pref.Source)
}

func (suite *PreferenceServiceTestSuite) TestBrowserDetection() {
	suite.enabled("AED", "USD", "EUR")

	pref := suite.service.ResolvePreference(context.Background(), "", "de-DE,de;q=0.9")

	suite.Equal("EUR", pref.Code)
	suite.Equal(domain.PreferenceSourceBrowser, pref.Source)
}

func (suite *PreferenceServiceTestSuite) TestDefaultWhenNothingMatches() {
	suite.enabled("AED", "USD")

	pref := suite.service.ResolvePreference(context.Background(), "", "")

	suite.Equal("AED", pref.Code)
	suite.Equal(domain.PreferenceSourceDefault, pref.Source)
}

func (suite *PreferenceServiceTestSuite) TestUnmappableHeaderIsNotBrowserDetected() {
	suite.enabled("AED", "USD")

	// The header parses but maps to no currency; the result must carry the
	// default source, not browser-detected.
	pref := suite.service.ResolvePreference(context.Background(), "", "xx-YY,zz")

	suite.Equal("AED", pref.Code)
	suite.Equal(domain.PreferenceSourceDefault, pref.Source)
}

func (suite *PreferenceServiceTestSuite) TestGenuineMatchOnDefaultCurrency() {
	suite.enabled("AED", "USD")

	// "ar" really maps to AED, so this one is browser-detected.
	pref := suite.service.ResolvePreference(context.Background(), "", "ar")

	suite.Equal("AED", pref.Code)
	suite.Equal(domain.PreferenceSourceBrowser, pref.Source)
}

func (suite *PreferenceServiceTestSuite) TestDetectedCurrencyNotEnabled() {
	// Browser suggests JPY but only AED and USD are enabled.
	suite.enabled("AED", "USD")

	pref := suite.service.ResolvePreference(context.Background(), "", "ja-JP")

	suite.Equal("AED", pref.Code)
	suite.Equal(domain.PreferenceSourceDefault, pref.Source)
}

func (suite *PreferenceServiceTestSuite) TestEnabledSetWithoutDefault() {
	suite.enabled("USD", "EUR")

	pref := suite.service.ResolvePreference(context.Background(), "", "")

	suite.Equal("USD", pref.Code, "first enabled currency stands in when the default is disabled")
	suite.Equal(domain.PreferenceSourceDefault, pref.Source)
}

func (suite *PreferenceServiceTestSuite) TestEmptyEnabledSet() {
	suite.enabled()

	pref := suite.service.ResolvePreference(context.Background(), "", "")

	suite.Equal("AED", pref.Code, "resolution is total even with no enabled currencies")
	suite.Equal(domain.PreferenceSourceDefault, pref.Source)
}

func TestPreferenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PreferenceServiceTestSuite))
}

// ResolveWithEnabled is the pure core; exercise the full priority ladder once
// without the service wrapping.
func TestResolveWithEnabledPriority(t *testing.T) {
	enabled := []string{"AED", "USD", "EUR"}

	suiteCases := []struct {
		name           string
		cookie         string
		acceptLanguage string
		wantCode       string
		wantSource     domain.PreferenceSource
	}{
		{"cookie beats browser", "USD", "de-DE", "USD", domain.PreferenceSourceCookie},
		{"browser beats default", "", "de-DE", "EUR", domain.PreferenceSourceBrowser},
		{"default last", "", "", "AED", domain.PreferenceSourceDefault},
		{"no locale match is not browser", "", "xx-YY,zz", "AED", domain.PreferenceSourceDefault},
		{"whitespace cookie ignored", "  usd ", "", "USD", domain.PreferenceSourceCookie},
	}

	for _, tc := range suiteCases {
		t.Run(tc.name, func(t *testing.T) {
			pref := services.ResolveWithEnabled(tc.cookie, tc.acceptLanguage, enabled)
			if pref.Code != tc.wantCode || pref.Source != tc.wantSource {
				t.Errorf("ResolveWithEnabled(%q, %q) = %s/%s, want %s/%s",
					tc.cookie, tc.acceptLanguage, pref.Code, pref.Source, tc.wantCode, tc.wantSource)
			}
		})
	}
}
