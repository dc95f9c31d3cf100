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

// ProductHandlers handles HTTP requests for products
type ProductHandlers struct {
	productService services.ProductService
}

func NewProductHandlers(productService services.ProductService) *ProductHandlers {
	return &ProductHandlers{productService: productService}
}

// CreateProduct handles POST /products
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name          string  `json:"name"`
		Category      string  `json:"category"`
		Price         float64 `json:"price"`
		StockQuantity int     `json:"stock_quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if req.Name == "" {
		return common.SendValidationError(c, "name", "name is required")
	}
	if req.Category == "" {
		return common.SendValidationError(c, "category", "category is required")
	}
	if err := common.ValidateNonNegativeFloat(req.Price, "price", 1000000.0); err != nil {
		return common.SendValidationError(c, "price", err.Error())
	}
	if req.StockQuantity < 0 {
		return common.SendValidationError(c, "stock_quantity", "stock quantity cannot be negative")
	}

	product := &models.Product{
		Name:          req.Name,
		Category:      req.Category,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}

	if err := h.productService.Create(ctx, product); err != nil {
		return common.SendServerError(c, "Failed to create product: "+err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Product created successfully",
		"product": product,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandlers) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	product, err := h.productService.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return common.SendNotFoundError(c, "Product")
		}
		return common.SendServerError(c, "Failed to get product")
	}

	return c.JSON(http.StatusOK, product)
}

// ListProducts handles GET /products
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset := parsePagination(c)
	products, err := h.productService.List(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list products")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"limit":    limit,
		"offset":   offset,
	})
}

// RestockProduct handles POST /products/:id/restock
func (h *ProductHandlers) RestockProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidatePositiveInteger(req.Quantity, "quantity", 100000); err != nil {
		return common.SendValidationError(c, "quantity", err.Error())
	}

	if err := h.productService.Restock(ctx, id, req.Quantity); err != nil {
		if errors.Is(err, repositories.ErrStockConflict) {
			return common.SendConflictError(c, err.Error())
		}
		return common.SendServerError(c, "Failed to restock product: "+err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product restocked successfully",
	})
}
