package http

import (
	"net/http"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/service"
	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PortfolioHandler handles HTTP requests for the session user's portfolios.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
	logger           *logger.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService service.PortfolioService, logger *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, logger: logger}
}

// RegisterRoutes registers the portfolio routes. The group must be guarded by SessionAuth.
func (h *PortfolioHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListPortfolios)
	g.GET("/:id", h.GetPortfolio)
	g.GET("/:id/summary", h.GetSummary)
	g.GET("/:id/analysis", h.GetAnalysis)
	g.POST("/:id/assets", h.AddAsset)
	g.GET("/:id/assets/:assetId", h.GetAsset)
	g.DELETE("/:id/assets/:assetId", h.RemoveAsset)
}

// ListPortfolios godoc
// @Summary List portfolios
// @Description List the session user's portfolios with their totals
// @Tags portfolios
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} dto.PortfolioListItem
// @Failure 401 {object} dto.ErrorResponse
// @Router /portfolios [get]
func (h *PortfolioHandler) ListPortfolios(c echo.Context) error {
	session := currentSession(c)
	if session == nil {
		return unauthorized(c)
	}

	items, err := h.portfolioService.List(c.Request().Context(), session.UserID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetPortfolio godoc
// @Summary Get a portfolio
// @Tags portfolios
// @Produce  json
// @Security BearerAuth
// @Param   id  path  int  true  "Portfolio ID"
// @Success 200 {object} dto.PortfolioResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /portfolios/{id} [get]
func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	session, id, err := h.scope(c)
	if session == nil {
		return err
	}

	resp, err := h.portfolioService.Get(c.Request().Context(), session.UserID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetSummary godoc
// @Summary Get a portfolio summary
// @Description Totals, period changes, weighted expected ROI and risk
// @Tags portfolios
// @Produce  json
// @Security BearerAuth
// @Param   id  path  int  true  "Portfolio ID"
// @Success 200 {object} dto.PortfolioSummary
// @Failure 404 {object} dto.ErrorResponse
// @Router /portfolios/{id}/summary [get]
func (h *PortfolioHandler) GetSummary(c echo.Context) error {
	session, id, err := h.scope(c)
	if session == nil {
		return err
	}

	resp, err := h.portfolioService.Summary(c.Request().Context(), session.UserID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetAnalysis godoc
// @Summary Get a portfolio analysis
// @Description Allocations, performance history, risk analysis and recommendations
// @Tags portfolios
// @Produce  json
// @Security BearerAuth
// @Param   id  path  int  true  "Portfolio ID"
// @Success 200 {object} dto.PortfolioAnalysis
// @Failure 404 {object} dto.ErrorResponse
// @Router /portfolios/{id}/analysis [get]
func (h *PortfolioHandler) GetAnalysis(c echo.Context) error {
	session, id, err := h.scope(c)
	if session == nil {
		return err
	}

	resp, err := h.portfolioService.Analysis(c.Request().Context(), session.UserID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetAsset godoc
// @Summary Get a portfolio asset
// @Tags portfolios
// @Produce  json
// @Security BearerAuth
// @Param   id       path  int  true  "Portfolio ID"
// @Param   assetId  path  int  true  "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /portfolios/{id}/assets/{assetId} [get]
func (h *PortfolioHandler) GetAsset(c echo.Context) error {
	session, id, err := h.scope(c)
	if session == nil {
		return err
	}
	assetID, ok := parseID(c, "assetId")
	if !ok {
		return badRequest(c, "Invalid asset ID")
	}

	resp, err := h.portfolioService.GetAsset(c.Request().Context(), session.UserID, id, assetID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// AddAsset godoc
// @Summary Add an asset
// @Tags portfolios
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id     path  int                     true  "Portfolio ID"
// @Param   asset  body  dto.CreateAssetRequest  true  "Asset to add"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /portfolios/{id}/assets [post]
func (h *PortfolioHandler) AddAsset(c echo.Context) error {
	session, id, err := h.scope(c)
	if session == nil {
		return err
	}

	var req dto.CreateAssetRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	resp, err := h.portfolioService.AddAsset(c.Request().Context(), session.UserID, id, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// RemoveAsset godoc
// @Summary Remove an asset
// @Tags portfolios
// @Security BearerAuth
// @Param   id       path  int  true  "Portfolio ID"
// @Param   assetId  path  int  true  "Asset ID"
// @Success 204 {object} nil
// @Failure 404 {object} dto.ErrorResponse
// @Router /portfolios/{id}/assets/{assetId} [delete]
func (h *PortfolioHandler) RemoveAsset(c echo.Context) error {
	session, id, err := h.scope(c)
	if session == nil {
		return err
	}
	assetID, ok := parseID(c, "assetId")
	if !ok {
		return badRequest(c, "Invalid asset ID")
	}

	if err := h.portfolioService.RemoveAsset(c.Request().Context(), session.UserID, id, assetID); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// scope resolves the session and portfolio id. When the session is nil the
// response has already been written and the returned error must be passed on.
func (h *PortfolioHandler) scope(c echo.Context) (*entity.Session, uint, error) {
	session := currentSession(c)
	if session == nil {
		return nil, 0, unauthorized(c)
	}
	id, ok := parseID(c, "id")
	if !ok {
		return nil, 0, badRequest(c, "Invalid portfolio ID")
	}
	return session, id, nil
}
