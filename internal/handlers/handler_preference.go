package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/transitbase/currency-service/internal/adapters/cookie"
	"github.com/transitbase/currency-service/internal/core/domain"
	portssvc "github.com/transitbase/currency-service/internal/core/ports/services"
	"github.com/transitbase/currency-service/internal/dto"
	"github.com/transitbase/currency-service/internal/middleware"
	"github.com/transitbase/currency-service/pkg/config"
)

// preferenceHandler handles the client's display-currency preference.
type preferenceHandler struct {
	preferenceService portssvc.PreferenceSvc
	rateService       portssvc.RateReaderSvc
	cookieName        string
}

func registerPreferenceRoutes(public *gin.RouterGroup, cfg *config.Config, ps portssvc.PreferenceSvc, rs portssvc.RateReaderSvc) {
	h := &preferenceHandler{
		preferenceService: ps,
		rateService:       rs,
		cookieName:        cfg.CurrencyCookieName,
	}

	prefs := public.Group("/preferences/currency")
	{
		prefs.GET("", h.getPreference)
		prefs.PUT("", h.setPreference)
		prefs.DELETE("", h.clearPreference)
	}
}

// getPreference godoc
// @Summary Resolve the display currency for this client
// @Description Resolves cookie > browser locale > platform default against the enabled currency set. Total: always yields a currency.
// @Tags preferences
// @Produce json
// @Success 200 {object} dto.PreferenceResponse
// @Router /preferences/currency [get]
func (h *preferenceHandler) getPreference(c *gin.Context) {
	store := cookie.NewGinStore(c, h.cookieName)
	cookieValue, _ := store.Get()

	pref := h.preferenceService.ResolvePreference(
		c.Request.Context(),
		cookieValue,
		c.GetHeader("Accept-Language"),
	)

	c.JSON(http.StatusOK, dto.ToPreferenceResponse(pref))
}

// setPreference godoc
// @Summary Set the display currency for this client
// @Description Persists an explicit currency choice to the preference cookie for one year
// @Tags preferences
// @Accept json
// @Produce json
// @Param preference body dto.SetPreferenceRequest true "Chosen currency"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 400 {object} map[string]string "Invalid or disabled currency code"
// @Router /preferences/currency [put]
func (h *preferenceHandler) setPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	enabled := h.rateService.GetEnabledCurrencies(c.Request.Context())
	var found bool
	for _, currency := range enabled {
		if currency.CurrencyCode == req.CurrencyCode {
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency " + req.CurrencyCode + " is not enabled"})
		return
	}

	cookie.NewGinStore(c, h.cookieName).Set(req.CurrencyCode)
	logger.Info("Currency preference stored", "currency_code", req.CurrencyCode)

	c.JSON(http.StatusOK, dto.PreferenceResponse{
		CurrencyCode: req.CurrencyCode,
		Source:       string(domain.PreferenceSourceCookie),
	})
}

// clearPreference godoc
// @Summary Clear the stored display currency
// @Description Expires the preference cookie; subsequent requests fall back to browser locale detection
// @Tags preferences
// @Success 204 "Preference cleared"
// @Router /preferences/currency [delete]
func (h *preferenceHandler) clearPreference(c *gin.Context) {
	cookie.NewGinStore(c, h.cookieName).Clear()
	c.Status(http.StatusNoContent)
}
