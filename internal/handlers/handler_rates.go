package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pbialczyk/nbp_rates_app/internal/apperrors"
	portssvc "github.com/pbialczyk/nbp_rates_app/internal/core/ports/services"
	"github.com/pbialczyk/nbp_rates_app/internal/dto"
	"github.com/pbialczyk/nbp_rates_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Response messages are part of the API contract; the frontend matches on
// them, so they stay stable even where they read oddly.
const (
	msgLoadError        = "Error loading exchange rates"
	msgNoCurrencies     = "No currencies to query received"
	msgFileRead         = "CSV file read successfully"
	msgFileQueried      = "CSV file queried successfully"
	msgDataAnalyzed     = "Data analyzed successfully"
	msgIncorrectRequest = "Incorrect request"
)

// ratesHandler handles HTTP requests over the persisted exchange rate table.
type ratesHandler struct {
	queryService  portssvc.RateQuerySvcFacade
	exportService portssvc.RateExportSvcFacade
}

// newRatesHandler creates a new ratesHandler.
func newRatesHandler(qs portssvc.RateQuerySvcFacade, es portssvc.RateExportSvcFacade) *ratesHandler {
	return &ratesHandler{
		queryService:  qs,
		exportService: es,
	}
}

// registerRatesRoutes registers the exchange rate query and export routes.
func registerRatesRoutes(rg *gin.RouterGroup, queryService portssvc.RateQuerySvcFacade, exportService portssvc.RateExportSvcFacade) {
	h := newRatesHandler(queryService, exportService)

	rg.GET("/get_currency_types/", h.getCurrencyTypes)
	rg.GET("/get_exchange_rates/", h.getExchangeRates)
	rg.GET("/analyze_data/", h.analyzeData)
	rg.POST("/save_exchange_rates/", h.saveExchangeRates)
}

// getCurrencyTypes godoc
// @Summary List available currency pairs
// @Description Returns the currency pair columns present in the persisted rate table
// @Tags rates
// @Produce json
// @Success 200 {object} dto.CurrencyTypesResponse
// @Failure 500 {object} dto.MessageResponse "Error loading exchange rates"
// @Router /get_currency_types/ [get]
func (h *ratesHandler) getCurrencyTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.queryService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currency types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgLoadError})
		return
	}

	c.JSON(http.StatusOK, dto.CurrencyTypesResponse{
		Message:        msgFileRead,
		CurrenciesList: currencies,
	})
}

// getExchangeRates godoc
// @Summary Get raw exchange rates
// @Description Returns the persisted rate series for the requested currency pairs. Pairs the table does not know are left out of the result.
// @Tags rates
// @Produce json
// @Param currencies query []string true "Currency pairs to query, repeatable" collectionFormat(multi)
// @Success 200 {object} dto.ExchangeRatesResponse
// @Failure 404 {object} dto.MessageResponse "No currencies to query received"
// @Failure 500 {object} dto.MessageResponse "Error loading exchange rates"
// @Router /get_exchange_rates/ [get]
func (h *ratesHandler) getExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requested := c.QueryArray("currencies")
	if len(requested) == 0 {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: msgNoCurrencies})
		return
	}

	rates, err := h.queryService.GetRates(c.Request.Context(), requested)
	if err != nil {
		logger.Error("Failed to query exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgLoadError})
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeRatesResponse{
		Message:       msgFileQueried,
		ExchangeRates: rates,
	})
}

// analyzeData godoc
// @Summary Get summary statistics
// @Description Returns average, median, min and max for the requested currency pairs, computed over non-missing values
// @Tags rates
// @Produce json
// @Param currencies query []string true "Currency pairs to analyze, repeatable" collectionFormat(multi)
// @Success 200 {object} dto.AnalyzedDataResponse
// @Failure 404 {object} dto.MessageResponse "No currencies to query received"
// @Failure 500 {object} dto.MessageResponse "Error loading exchange rates"
// @Router /analyze_data/ [get]
func (h *ratesHandler) analyzeData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requested := c.QueryArray("currencies")
	if len(requested) == 0 {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: msgNoCurrencies})
		return
	}

	summaries, err := h.queryService.GetSummary(c.Request.Context(), requested)
	if err != nil {
		logger.Error("Failed to analyze exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgLoadError})
		return
	}

	logger.Info("Exchange rate data analyzed", slog.Int("pairs", len(summaries)))
	c.JSON(http.StatusOK, dto.AnalyzedDataResponse{
		Message:      msgDataAnalyzed,
		AnalyzedData: dto.ToAnalyzedDataMap(summaries),
	})
}

// saveExchangeRates godoc
// @Summary Export selected currency pairs
// @Description Writes the requested currency pair columns to the selected-currency CSV file. Every requested pair must exist in the table; otherwise nothing is written.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body dto.SaveExchangeRatesRequest true "Currency pairs to export"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "Incorrect request"
// @Failure 500 {object} dto.MessageResponse "Error while saving exchange rates"
// @Router /save_exchange_rates/ [post]
func (h *ratesHandler) saveExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveExchangeRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveExchangeRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgIncorrectRequest})
		return
	}

	if err := h.exportService.Export(c.Request.Context(), req.CurrencyPairs); err != nil {
		var unknownColumns *apperrors.UnknownColumnsError
		switch {
		case errors.As(err, &unknownColumns):
			logger.Warn("Export requested unknown columns", slog.String("columns", strings.Join(unknownColumns.Columns, ",")))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{
				Message: fmt.Sprintf("Error while saving exchange rates: %s", unknownColumns.Error()),
			})
		case errors.Is(err, apperrors.ErrNoData):
			logger.Error("No rate table to export from", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgLoadError})
		default:
			logger.Error("Failed to save exchange rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{
				Message: fmt.Sprintf("Error while saving exchange rates: %s", err.Error()),
			})
		}
		return
	}

	logger.Info("Exchange rates exported", slog.Int("pairs", len(req.CurrencyPairs)))
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Exchange rates for %v saved successfully to selected_currency_data.csv", req.CurrencyPairs),
	})
}
