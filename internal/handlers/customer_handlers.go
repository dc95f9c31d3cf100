package handlers

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"shopmetrics/internal/common"
	"shopmetrics/internal/models"
	"shopmetrics/internal/services"
)

// CustomerHandlers handles HTTP requests for customers
type CustomerHandlers struct {
	customerService services.CustomerService
}

func NewCustomerHandlers(customerService services.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{customerService: customerService}
}

// CreateCustomer handles POST /customers
func (h *CustomerHandlers) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name     string  `json:"name"`
		Contact  *string `json:"contact"`
		JoinDate *string `json:"join_date"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if req.Name == "" {
		return common.SendValidationError(c, "name", "name is required")
	}

	customer := &models.Customer{
		Name:    req.Name,
		Contact: req.Contact,
	}

	if req.JoinDate != nil && common.SafeString(req.JoinDate) != "" {
		joinDate, err := common.ValidateDateFormat(*req.JoinDate, "join_date")
		if err != nil {
			return common.SendValidationError(c, "join_date", err.Error())
		}
		if err := common.ValidatePastOrPresentDate(joinDate, "join_date"); err != nil {
			return common.SendValidationError(c, "join_date", err.Error())
		}
		customer.JoinDate = joinDate
	} else {
		customer.JoinDate = time.Now()
	}

	if err := h.customerService.Create(ctx, customer); err != nil {
		return common.SendServerError(c, "Failed to create customer: "+err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Customer created successfully",
		"customer": customer,
	})
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandlers) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	customer, err := h.customerService.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return common.SendNotFoundError(c, "Customer")
		}
		return common.SendServerError(c, "Failed to get customer")
	}

	return c.JSON(http.StatusOK, customer)
}

// ListCustomers handles GET /customers
func (h *CustomerHandlers) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset := parsePagination(c)
	customers, err := h.customerService.List(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list customers")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"customers": customers,
		"limit":     limit,
		"offset":    offset,
	})
}
