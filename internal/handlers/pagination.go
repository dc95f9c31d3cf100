package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

func parsePagination(c echo.Context) (limit, offset int) {
	limit = defaultPageSize
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= maxPageSize {
			limit = parsed
		}
	}
	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}
