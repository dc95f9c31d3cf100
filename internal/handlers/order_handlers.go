package handlers

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"shopmetrics/internal/common"
	"shopmetrics/internal/models"
	"shopmetrics/internal/repositories"
	"shopmetrics/internal/services"
)

// OrderHandlers handles HTTP requests for orders
type OrderHandlers struct {
	orderService services.OrderService
}

func NewOrderHandlers(orderService services.OrderService) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

// CreateOrder handles POST /orders
func (h *OrderHandlers) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.OrderCheckout
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if req.CustomerID <= 0 {
		return common.SendValidationError(c, "customer_id", "customer_id is required")
	}
	if len(req.Items) == 0 {
		return common.SendValidationError(c, "items", "order must contain at least one item")
	}
	for _, item := range req.Items {
		if item.ProductID <= 0 {
			return common.SendValidationError(c, "items", "product_id is required for every item")
		}
		if err := common.ValidatePositiveInteger(item.Quantity, "quantity", 10000); err != nil {
			return common.SendValidationError(c, "items", err.Error())
		}
	}

	order, err := h.orderService.Checkout(ctx, &req)
	if err != nil {
		if errors.Is(err, repositories.ErrStockConflict) {
			return common.SendConflictError(c, err.Error())
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendClientError(c, err.Error())
		}
		return common.SendServerError(c, "Failed to create order: "+err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Order created successfully",
		"order":   order,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandlers) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	order, err := h.orderService.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return common.SendNotFoundError(c, "Order")
		}
		return common.SendServerError(c, "Failed to get order")
	}

	return c.JSON(http.StatusOK, order)
}

// GetOrders handles GET /orders
func (h *OrderHandlers) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset := parsePagination(c)
	orders, err := h.orderService.List(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list orders")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"limit":  limit,
		"offset": offset,
	})
}
