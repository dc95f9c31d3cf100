package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopmetrics/internal/common"
	"shopmetrics/internal/services"
)

// ReportHandlers handles report export requests
type ReportHandlers struct {
	reportService services.ReportService
}

func NewReportHandlers(reportService services.ReportService) *ReportHandlers {
	return &ReportHandlers{reportService: reportService}
}

// GenerateRevenueReport handles POST /reports/revenue
func (h *ReportHandlers) GenerateRevenueReport(c echo.Context) error {
	ctx := c.Request().Context()

	url, err := h.reportService.GenerateRevenueReport(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to generate revenue report: "+err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Revenue report generated",
		"url":     url,
	})
}
