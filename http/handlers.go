package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dukerupert/dokimi"
)

// withTimeout derives a bounded context from the request.
func withTimeout(c echo.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), d)
}

// requireUUIDParam parses a UUID path parameter or returns an EINVALID error.
func requireUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, dokimi.Invalid("Invalid %s", name)
	}
	return id, nil
}

// handleHealth reports service liveness and engine capability.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":         "ok",
		"remoteAnalysis": s.HasRemoteAnalysis,
	})
}
