package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dukerupert/dokimi"
)

// codes maps domain error codes to HTTP status codes.
var codes = map[string]int{
	dokimi.ECONFLICT: http.StatusConflict,
	dokimi.EINVALID:  http.StatusBadRequest,
	dokimi.ENOTFOUND: http.StatusNotFound,
	dokimi.EINTERNAL: http.StatusInternalServerError,
}

// errorStatusCode returns the associated HTTP status code for a domain error code.
func errorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse represents a JSON error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleError writes a domain error to the response. Internal errors are
// logged with their underlying cause; the client only sees the safe message.
func HandleError(c echo.Context, logger *slog.Logger, err error) error {
	code, message := dokimi.ErrorCode(err), dokimi.ErrorMessage(err)

	if code == dokimi.EINTERNAL {
		logger.Error("internal error",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.String("error", err.Error()),
		)
	}

	return c.JSON(errorStatusCode(code), ErrorResponse{Error: message})
}
