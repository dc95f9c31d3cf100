package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shopmetrics/internal/analytics"
	"shopmetrics/internal/common"
)

// AnalyticsHandlers exposes the read-only query catalog over HTTP
type AnalyticsHandlers struct {
	analyticsService *analytics.AnalyticsService
}

func NewAnalyticsHandlers(analyticsService *analytics.AnalyticsService) *AnalyticsHandlers {
	return &AnalyticsHandlers{analyticsService: analyticsService}
}

// CustomersByJoinYear handles GET /analytics/customers/by-join-year?year=YYYY
func (h *AnalyticsHandlers) CustomersByJoinYear(c echo.Context) error {
	ctx := c.Request().Context()

	year, err := common.ValidateYear(c.QueryParam("year"))
	if err != nil {
		return common.SendValidationError(c, "year", err.Error())
	}

	customers, err := h.analyticsService.CustomersByJoinYear(ctx, year)
	if err != nil {
		return common.SendServerError(c, "Failed to query customers by join year")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"year":      year,
		"customers": customers,
	})
}

// ProductsByCategory handles GET /analytics/products/by-category?category=...
func (h *AnalyticsHandlers) ProductsByCategory(c echo.Context) error {
	ctx := c.Request().Context()

	category := c.QueryParam("category")
	if category == "" {
		return common.SendValidationError(c, "category", "category is required")
	}

	products, err := h.analyticsService.ProductsByCategory(ctx, category)
	if err != nil {
		return common.SendServerError(c, "Failed to query products by category")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"category": category,
		"products": products,
	})
}

// OrderCount handles GET /analytics/orders/count
func (h *AnalyticsHandlers) OrderCount(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := h.analyticsService.OrderCount(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to count orders")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"order_count": count,
	})
}

// MaxPriceProducts handles GET /analytics/products/max-price
func (h *AnalyticsHandlers) MaxPriceProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.analyticsService.MaxPriceProducts(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to query max-price products")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

// TotalRevenue handles GET /analytics/revenue/total
func (h *AnalyticsHandlers) TotalRevenue(c echo.Context) error {
	ctx := c.Request().Context()

	total, err := h.analyticsService.TotalRevenue(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to compute total revenue")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total_revenue": total,
	})
}

// TopProductsByRevenue handles GET /analytics/revenue/top-products?n=3
func (h *AnalyticsHandlers) TopProductsByRevenue(c echo.Context) error {
	ctx := c.Request().Context()

	n := analytics.DefaultTopN
	if nStr := c.QueryParam("n"); nStr != "" {
		parsed, err := strconv.Atoi(nStr)
		if err != nil || parsed <= 0 {
			return common.SendValidationError(c, "n", "n must be a positive integer")
		}
		n = parsed
	}

	ranking, err := h.analyticsService.TopProductsByRevenue(ctx, n)
	if err != nil {
		return common.SendServerError(c, "Failed to rank products by revenue")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"n":        n,
		"products": ranking,
	})
}

// CustomersWithoutOrders handles GET /analytics/customers/without-orders
func (h *AnalyticsHandlers) CustomersWithoutOrders(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.analyticsService.CustomersWithoutOrders(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to query customers without orders")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"customers": customers,
	})
}

// AverageSalaryByDepartment handles GET /analytics/employees/average-salary
func (h *AnalyticsHandlers) AverageSalaryByDepartment(c echo.Context) error {
	ctx := c.Request().Context()

	averages, err := h.analyticsService.AverageSalaryByDepartment(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to compute average salaries")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"departments": averages,
	})
}

// SalesSummary handles GET /analytics/summary
func (h *AnalyticsHandlers) SalesSummary(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := h.analyticsService.SalesSummary(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to build sales summary")
	}

	return c.JSON(http.StatusOK, summary)
}
