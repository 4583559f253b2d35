package http

import (
	"net/http"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/service"
	"golang-market-predictor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NewsHandler handles HTTP requests for news.
type NewsHandler struct {
	newsService service.NewsService
	logger      *logger.Logger
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService service.NewsService, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{newsService: newsService, logger: logger}
}

// RegisterRoutes registers the news routes to the Echo group.
func (h *NewsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListNews)
	g.GET("/categories", h.ListCategories)
	g.GET("/:id", h.GetNews)
}

// ListNews godoc
// @Summary List news
// @Description List news articles, newest first
// @Tags news
// @Produce  json
// @Param   category  query  string  false  "Category, All for every category"
// @Param   q         query  string  false  "Search in title and summary"
// @Param   limit     query  int     false  "Page size (default 20, max 100)"
// @Param   offset    query  int     false  "Page offset"
// @Success 200 {object} dto.NewsListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /news [get]
func (h *NewsHandler) ListNews(c echo.Context) error {
	var q dto.NewsListQuery
	if err := c.Bind(&q); err != nil {
		return badRequest(c, "Invalid query parameters")
	}

	resp, err := h.newsService.List(c.Request().Context(), q)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetNews godoc
// @Summary Get a news article
// @Tags news
// @Produce  json
// @Param   id  path  int  true  "News ID"
// @Success 200 {object} dto.NewsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /news/{id} [get]
func (h *NewsHandler) GetNews(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid news ID")
	}

	resp, err := h.newsService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListCategories godoc
// @Summary List news categories
// @Tags news
// @Produce  json
// @Success 200 {array} string
// @Router /news/categories [get]
func (h *NewsHandler) ListCategories(c echo.Context) error {
	categories, err := h.newsService.Categories(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, categories)
}
