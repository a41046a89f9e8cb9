package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/amishk599/jobhunter/internal/model"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// errorHandler maps handler errors to JSON: validation failures become 422,
// echo errors keep their status, anything else is a 500.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		resp := ErrorResponse{Error: "internal_error", Message: "internal server error"}

		var vErr *model.ValidationError
		var hErr *echo.HTTPError
		switch {
		case errors.As(err, &vErr):
			status = http.StatusUnprocessableEntity
			resp.Error = "validation_failed"
			resp.Message = vErr.Error()
		case errors.As(err, &hErr):
			status = hErr.Code
			resp.Error = errorCode(status)
			resp.Message = fmt.Sprint(hErr.Message)
		default:
			logger.Error("unhandled error", "path", c.Path(), "error", err)
		}
		resp.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, resp)
		}
		if err != nil {
			logger.Error("write error response", "error", err)
		}
	}
}

// errorCode turns a status into a snake_case code, e.g. 404 -> "not_found".
func errorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "error"
	}
	return strings.ReplaceAll(strings.ToLower(text), " ", "_")
}

// bindError reports a query parameter that could not be parsed.
func bindError(err error) error {
	msg := err.Error()
	var hErr *echo.HTTPError
	if errors.As(err, &hErr) {
		msg = fmt.Sprint(hErr.Message)
	}
	return &model.ValidationError{Field: "query parameters", Message: msg}
}
