package http

import (
	"net/http"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/service"
	"golang-market-predictor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ExecutionHandler handles HTTP requests for worker job history.
type ExecutionHandler struct {
	executionService service.ExecutionService
	logger           *logger.Logger
}

// NewExecutionHandler creates a new ExecutionHandler.
func NewExecutionHandler(executionService service.ExecutionService, logger *logger.Logger) *ExecutionHandler {
	return &ExecutionHandler{executionService: executionService, logger: logger}
}

// RegisterRoutes registers the execution routes to the Echo group.
func (h *ExecutionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListExecutions)
	g.GET("/:id", h.GetExecution)
}

// ListExecutions godoc
// @Summary List job executions
// @Description List worker job runs, newest first
// @Tags executions
// @Produce  json
// @Param   job    query  string  false  "Job name"
// @Param   limit  query  int     false  "Maximum rows (default 50)"
// @Success 200 {array} dto.JobExecutionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /executions [get]
func (h *ExecutionHandler) ListExecutions(c echo.Context) error {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return badRequest(c, "Invalid limit")
	}
	items, err := h.executionService.List(c.Request().Context(), dto.ExecutionQuery{Job: c.QueryParam("job"), Limit: limit})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetExecution godoc
// @Summary Get a job execution
// @Tags executions
// @Produce  json
// @Param   id  path  int  true  "Execution ID"
// @Success 200 {object} dto.JobExecutionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /executions/{id} [get]
func (h *ExecutionHandler) GetExecution(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid execution ID")
	}
	resp, err := h.executionService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, resp)
}
