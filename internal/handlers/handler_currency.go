package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/transitbase/currency-service/internal/apperrors"
	portssvc "github.com/transitbase/currency-service/internal/core/ports/services"
	"github.com/transitbase/currency-service/internal/dto"
	"github.com/transitbase/currency-service/internal/middleware"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	rateService     portssvc.RateReaderSvc
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade, rs portssvc.RateReaderSvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
		rateService:     rs,
	}
}

// registerCurrencyRoutes registers the public currency reads and the
// JWT-protected admin management routes.
func registerCurrencyRoutes(public, admin *gin.RouterGroup, cs portssvc.CurrencySvcFacade, rs portssvc.RateReaderSvc) {
	h := newCurrencyHandler(cs, rs)

	currencies := public.Group("/currencies")
	{
		currencies.GET("", h.listEnabledCurrencies)
		currencies.GET("/featured", h.listFeaturedCurrencies)
	}

	adminCurrencies := admin.Group("/currencies")
	{
		adminCurrencies.GET("", h.listAllCurrencies)
		adminCurrencies.GET("/:code", h.getCurrencyByCode)
		adminCurrencies.POST("", h.createCurrency)
		adminCurrencies.PUT("/:code", h.updateCurrency)
		adminCurrencies.PUT("/:code/default", h.setDefaultCurrency)
	}
}

// listEnabledCurrencies godoc
// @Summary List enabled currencies
// @Description Retrieves the enabled currencies sorted by display order. Never fails: storage problems degrade to a minimal built-in set.
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listEnabledCurrencies(c *gin.Context) {
	currencies := h.rateService.GetEnabledCurrencies(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// listFeaturedCurrencies godoc
// @Summary List featured currencies
// @Description Retrieves the enabled, featured currencies sorted by display order.
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies/featured [get]
func (h *currencyHandler) listFeaturedCurrencies(c *gin.Context) {
	currencies := h.rateService.GetFeaturedCurrencies(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// listAllCurrencies godoc
// @Summary List all currencies
// @Description Retrieves every currency, enabled or not, for the admin portal
// @Tags admin-currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Security BearerAuth
// @Router /admin/currencies [get]
func (h *currencyHandler) listAllCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags admin-currencies
// @Produce json
// @Param code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Security BearerAuth
// @Router /admin/currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	if len(currencyCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Adds a new currency to the platform (admin operation)
// @Tags admin-currencies
// @Accept json
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Currency code already exists"
// @Failure 500 {object} map[string]string "Failed to create currency"
// @Security BearerAuth
// @Router /admin/currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	createdCurrency, err := h.currencyService.CreateCurrency(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Currency code '%s' already exists", req.CurrencyCode)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create currency"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(createdCurrency))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Applies a partial update to an existing currency (admin operation)
// @Tags admin-currencies
// @Accept json
// @Produce json
// @Param code path string true "Currency Code (3 letters)"
// @Param currency body dto.UpdateCurrencyRequest true "Fields to update"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to update currency"
// @Security BearerAuth
// @Router /admin/currencies/{code} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), currencyCode, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// setDefaultCurrency godoc
// @Summary Set the default currency
// @Description Makes the given enabled currency the platform default; exactly one currency is default at any time
// @Tags admin-currencies
// @Produce json
// @Param code path string true "Currency Code (3 letters)"
// @Success 204 "Default changed"
// @Failure 404 {object} map[string]string "No enabled currency with that code"
// @Failure 500 {object} map[string]string "Failed to set default currency"
// @Security BearerAuth
// @Router /admin/currencies/{code}/default [put]
func (h *currencyHandler) setDefaultCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.currencyService.SetDefaultCurrency(c.Request.Context(), currencyCode, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No enabled currency with code " + currencyCode})
		} else {
			logger.Error("Failed to set default currency", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set default currency"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
