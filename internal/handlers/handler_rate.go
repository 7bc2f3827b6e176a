package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/transitbase/currency-service/internal/apperrors"
	"github.com/transitbase/currency-service/internal/core/domain"
	portssvc "github.com/transitbase/currency-service/internal/core/ports/services"
	"github.com/transitbase/currency-service/internal/dto"
	"github.com/transitbase/currency-service/internal/middleware"
)

// rateHandler handles HTTP requests related to exchange rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// registerRateRoutes registers the public rate read and the protected upsert
// used by the external rate refresh collaborator.
func registerRateRoutes(public, admin *gin.RouterGroup, rs portssvc.RateSvcFacade) {
	h := &rateHandler{rateService: rs}

	public.GET("/rates", h.getRates)
	admin.POST("/rates", h.upsertRates)
}

// getRates godoc
// @Summary Get the base-relative rate table
// @Description Returns the rates from the base currency to every supported target, plus an advisory staleness flag. Never fails: storage problems degrade to a built-in fallback table.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RatesResponse
// @Router /rates [get]
func (h *rateHandler) getRates(c *gin.Context) {
	ctx := c.Request.Context()

	rates := h.rateService.GetRates(ctx)
	out := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		out[code] = rate
	}

	c.JSON(http.StatusOK, dto.RatesResponse{
		BaseCurrency: domain.BaseCurrencyCode,
		Rates:        out,
		Stale:        h.rateService.IsStale(ctx),
	})
}

// upsertRates godoc
// @Summary Upsert the base-relative rate table
// @Description Replaces rates for the given targets; called by the scheduled rate refresh job
// @Tags admin-rates
// @Accept json
// @Produce json
// @Param rates body dto.UpsertRatesRequest true "Base-relative rates keyed by target code"
// @Success 204 "Rates stored"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to store rates"
// @Security BearerAuth
// @Router /admin/rates [post]
func (h *rateHandler) upsertRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fetchedAt := time.Now()
	if req.FetchedAt != nil {
		fetchedAt = *req.FetchedAt
	}

	if err := h.rateService.UpsertRates(c.Request.Context(), req.Rates, fetchedAt); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store rates"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
