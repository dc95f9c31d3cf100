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

// EmployeeHandlers handles HTTP requests for employees
type EmployeeHandlers struct {
	employeeService services.EmployeeService
}

func NewEmployeeHandlers(employeeService services.EmployeeService) *EmployeeHandlers {
	return &EmployeeHandlers{employeeService: employeeService}
}

// CreateEmployee handles POST /employees
func (h *EmployeeHandlers) CreateEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name       string  `json:"name"`
		Contact    *string `json:"contact"`
		HireDate   *string `json:"hire_date"`
		Department string  `json:"department"`
		Salary     float64 `json:"salary"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if req.Name == "" {
		return common.SendValidationError(c, "name", "name is required")
	}
	if req.Department == "" {
		return common.SendValidationError(c, "department", "department is required")
	}
	if err := common.ValidateNonNegativeFloat(req.Salary, "salary", 10000000.0); err != nil {
		return common.SendValidationError(c, "salary", err.Error())
	}

	employee := &models.Employee{
		Name:       req.Name,
		Contact:    req.Contact,
		Department: req.Department,
		Salary:     req.Salary,
	}

	if req.HireDate != nil && common.SafeString(req.HireDate) != "" {
		hireDate, err := common.ValidateDateFormat(*req.HireDate, "hire_date")
		if err != nil {
			return common.SendValidationError(c, "hire_date", err.Error())
		}
		if err := common.ValidatePastOrPresentDate(hireDate, "hire_date"); err != nil {
			return common.SendValidationError(c, "hire_date", err.Error())
		}
		employee.HireDate = hireDate
	} else {
		employee.HireDate = time.Now()
	}

	if err := h.employeeService.Hire(ctx, employee); err != nil {
		return common.SendServerError(c, "Failed to create employee: "+err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Employee created successfully",
		"employee": employee,
	})
}

// GetEmployee handles GET /employees/:id
func (h *EmployeeHandlers) GetEmployee(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	employee, err := h.employeeService.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return common.SendNotFoundError(c, "Employee")
		}
		return common.SendServerError(c, "Failed to get employee")
	}

	return c.JSON(http.StatusOK, employee)
}

// ListEmployees handles GET /employees
func (h *EmployeeHandlers) ListEmployees(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset := parsePagination(c)
	employees, err := h.employeeService.List(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list employees")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"employees": employees,
		"limit":     limit,
		"offset":    offset,
	})
}

// UpdateEmployeeSalary handles PUT /employees/:id/salary
func (h *EmployeeHandlers) UpdateEmployeeSalary(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		Salary float64 `json:"salary"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateNonNegativeFloat(req.Salary, "salary", 10000000.0); err != nil {
		return common.SendValidationError(c, "salary", err.Error())
	}

	if err := h.employeeService.GiveRaise(ctx, id, req.Salary); err != nil {
		if err == pgx.ErrNoRows {
			return common.SendNotFoundError(c, "Employee")
		}
		return common.SendServerError(c, "Failed to update salary: "+err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Salary updated successfully",
	})
}

// UpdateEmployeeDepartment handles PUT /employees/:id/department
func (h *EmployeeHandlers) UpdateEmployeeDepartment(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		Department string `json:"department"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Department == "" {
		return common.SendValidationError(c, "department", "department is required")
	}

	if err := h.employeeService.ChangeDepartment(ctx, id, req.Department); err != nil {
		if err == pgx.ErrNoRows {
			return common.SendNotFoundError(c, "Employee")
		}
		return common.SendServerError(c, "Failed to update department: "+err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Department updated successfully",
	})
}
