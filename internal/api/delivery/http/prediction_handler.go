package http

import (
	"math"
	"net/http"
	"strconv"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/service"
	"golang-market-predictor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictionHandler handles HTTP requests for predictions.
type PredictionHandler struct {
	predictionService service.PredictionService
	logger            *logger.Logger
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictionService service.PredictionService, logger *logger.Logger) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService, logger: logger}
}

// RegisterRoutes registers the prediction routes to the Echo group.
func (h *PredictionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListPredictions)
	g.GET("/:id", h.GetPrediction)
	g.GET("/:id/forecast", h.GetForecast)
	g.POST("/:id/refresh", h.RefreshForecast)
}

// ListPredictions godoc
// @Summary List predictions
// @Description List predictions with derived metrics, filtered by asset type and sorted
// @Tags predictions
// @Produce  json
// @Param   type  query  string  false  "Asset type (all, currency, commodity, stock, crypto)"
// @Param   sort  query  string  false  "Sort key (confidence, roi, timeframe)"
// @Success 200 {array} dto.PredictionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /predictions [get]
func (h *PredictionHandler) ListPredictions(c echo.Context) error {
	var q dto.PredictionListQuery
	if err := c.Bind(&q); err != nil {
		return badRequest(c, "Invalid query parameters")
	}

	items, err := h.predictionService.List(c.Request().Context(), q)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetPrediction godoc
// @Summary Get a prediction
// @Description Get a prediction with its metrics and chart series
// @Tags predictions
// @Produce  json
// @Param   id  path  int  true  "Prediction ID"
// @Success 200 {object} dto.PredictionDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /predictions/{id} [get]
func (h *PredictionHandler) GetPrediction(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid prediction ID")
	}

	detail, err := h.predictionService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// GetForecast godoc
// @Summary Generate a forecast
// @Description Generate a 7 point forecast from the prediction's history. A seed makes it reproducible.
// @Tags predictions
// @Produce  json
// @Param   id          path   int     true   "Prediction ID"
// @Param   volatility  query  number  false  "Daily volatility (default 0.02)"
// @Param   seed        query  int     false  "Random seed"
// @Success 200 {object} dto.ForecastResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /predictions/{id}/forecast [get]
func (h *PredictionHandler) GetForecast(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid prediction ID")
	}

	var q dto.ForecastQuery
	if raw := c.QueryParam("volatility"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return badRequest(c, "Invalid volatility")
		}
		q.Volatility = &v
	}
	if raw := c.QueryParam("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return badRequest(c, "Invalid seed")
		}
		q.Seed = &seed
	}

	resp, err := h.predictionService.Forecast(c.Request().Context(), id, q)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// RefreshForecast godoc
// @Summary Queue a forecast refresh
// @Description Ask the worker to regenerate and store the prediction's forecast
// @Tags predictions
// @Produce  json
// @Param   id  path  int  true  "Prediction ID"
// @Success 202 {object} dto.RefreshResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /predictions/{id}/refresh [post]
func (h *PredictionHandler) RefreshForecast(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid prediction ID")
	}

	var userID uint
	if s := currentSession(c); s != nil {
		userID = s.UserID
	}

	resp, err := h.predictionService.RequestRefresh(c.Request().Context(), id, userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusAccepted, resp)
}
