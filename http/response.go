package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// OK writes a 200 JSON response.
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// Created writes a 201 JSON response.
func Created(c echo.Context, body any) error {
	return c.JSON(http.StatusCreated, body)
}

// ListResponse is the envelope for paginated collections.
type ListResponse struct {
	Items any `json:"items"`
	Total int `json:"total"`
}
