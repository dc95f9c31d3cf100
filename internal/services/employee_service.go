package services

import (
	"context"
	"errors"
	"time"

	"shopmetrics/internal/models"
	"shopmetrics/internal/repositories"
)

type EmployeeService interface {
	Hire(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	List(ctx context.Context, limit, offset int) ([]*models.Employee, error)
	GiveRaise(ctx context.Context, id int64, newSalary float64) error
	ChangeDepartment(ctx context.Context, id int64, department string) error
}

type employeeService struct {
	employeeRepo repositories.EmployeeRepository
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) Hire(ctx context.Context, employee *models.Employee) error {
	if employee.Name == "" {
		return errors.New("employee name is required")
	}
	if employee.Department == "" {
		return errors.New("department is required")
	}
	if employee.Salary < 0 {
		return errors.New("salary cannot be negative")
	}
	if employee.HireDate.IsZero() {
		employee.HireDate = time.Now()
	}
	if employee.HireDate.After(time.Now()) {
		return errors.New("hire date cannot be in the future")
	}
	return s.employeeRepo.Create(ctx, employee)
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context, limit, offset int) ([]*models.Employee, error) {
	return s.employeeRepo.List(ctx, limit, offset)
}

// GiveRaise sets a new salary. The new salary must not be negative; it may
// be lower than the current one, that is a pay cut, not an error.
func (s *employeeService) GiveRaise(ctx context.Context, id int64, newSalary float64) error {
	if newSalary < 0 {
		return errors.New("salary cannot be negative")
	}
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.UpdateSalary(ctx, id, newSalary)
}

func (s *employeeService) ChangeDepartment(ctx context.Context, id int64, department string) error {
	if department == "" {
		return errors.New("department is required")
	}
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.UpdateDepartment(ctx, id, department)
}
