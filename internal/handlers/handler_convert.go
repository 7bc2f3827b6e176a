package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/transitbase/currency-service/internal/core/domain"
	portssvc "github.com/transitbase/currency-service/internal/core/ports/services"
	"github.com/transitbase/currency-service/internal/dto"
	"github.com/transitbase/currency-service/internal/utils/money"
)

// convertHandler exposes conversion and formatting to the portals.
type convertHandler struct {
	rateService portssvc.RateReaderSvc
}

func registerConvertRoutes(public *gin.RouterGroup, rs portssvc.RateSvcFacade) {
	h := &convertHandler{rateService: rs}

	convert := public.Group("/convert")
	{
		convert.GET("", h.convertAmount)
		convert.GET("/range", h.convertRange)
	}
}

// Zero amounts are legitimate, so the numeric fields carry no required tag.
type convertQuery struct {
	Amount   float64 `form:"amount"`
	From     string  `form:"from" binding:"omitempty,uppercase,len=3"`
	To       string  `form:"to" binding:"required,uppercase,len=3"`
	WithCode bool    `form:"withCode"`
}

type rangeQuery struct {
	Min float64 `form:"min"`
	Max float64 `form:"max" binding:"gtefield=Min"`
	To  string  `form:"to" binding:"required,uppercase,len=3"`
}

// convertAmount godoc
// @Summary Convert and format an amount
// @Description Converts an amount (base currency unless from is given) into the target currency and renders it with the target's symbol and decimal places
// @Tags convert
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string false "Source currency code (defaults to the base currency)"
// @Param to query string true "Target currency code"
// @Param withCode query boolean false "Append the ISO code as a trailing token"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /convert [get]
func (h *convertHandler) convertAmount(c *gin.Context) {
	var q convertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if q.From == "" {
		q.From = domain.BaseCurrencyCode
	}

	rates := h.rateService.GetRates(c.Request.Context())
	converted := money.Convert(q.Amount, q.From, q.To, rates)
	formatted := money.FormatWith(converted, q.To, money.FormatOptions{WithCurrencyCode: q.WithCode})

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:    q.Amount,
		From:      q.From,
		To:        q.To,
		Converted: converted,
		Formatted: formatted,
	})
}

// convertRange godoc
// @Summary Convert and format a price range
// @Description Converts a base-currency min/max pair into the target currency, formatting each bound independently
// @Tags convert
// @Produce json
// @Param min query number true "Lower bound in the base currency"
// @Param max query number true "Upper bound in the base currency"
// @Param to query string true "Target currency code"
// @Success 200 {object} dto.PriceRangeResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /convert/range [get]
func (h *convertHandler) convertRange(c *gin.Context) {
	var q rangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rates := h.rateService.GetRates(c.Request.Context())

	c.JSON(http.StatusOK, dto.PriceRangeResponse{
		Min:       q.Min,
		Max:       q.Max,
		To:        q.To,
		Formatted: money.FormatPriceRange(q.Min, q.Max, q.To, rates),
	})
}
