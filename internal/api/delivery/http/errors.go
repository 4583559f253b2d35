package http

import (
	"errors"
	"net/http"

	"golang-market-predictor/internal/api/dto"
	"golang-market-predictor/internal/api/service"
	"golang-market-predictor/pkg/logger"
	"golang-market-predictor/pkg/prediction"

	"github.com/labstack/echo/v4"
)

// statusFor maps service and domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, prediction.ErrInvalidVolatility),
		errors.Is(err, prediction.ErrForecastOverflow):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, prediction.ErrZeroCurrentValue),
		errors.Is(err, prediction.ErrEmptySeries):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a dto.ErrorResponse. Internal errors are logged and masked.
func respondError(c echo.Context, log *logger.Logger, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(c.Request().Context(), "Request failed",
			logger.ErrorField(err),
			logger.StringField("path", c.Path()))
		return c.JSON(status, dto.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}
