package repositories

import (
	"context"

	"shopmetrics/internal/models"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	List(ctx context.Context, limit, offset int) ([]*models.Employee, error)
	UpdateSalary(ctx context.Context, id int64, salary float64) error
	UpdateDepartment(ctx context.Context, id int64, department string) error
	AverageSalaryByDepartment(ctx context.Context) ([]*models.DepartmentSalary, error)
}

type employeeRepo struct {
	db Database
}

func NewEmployeeRepo(db Database) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (name, contact, hire_date, department, salary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, employee.Name, employee.Contact, employee.HireDate, employee.Department, employee.Salary).Scan(&employee.ID)
}

func (r *employeeRepo) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	employee := &models.Employee{}
	query := `
		SELECT id, name, contact, hire_date, department, salary, created_at, updated_at
		FROM employees
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&employee.ID, &employee.Name, &employee.Contact, &employee.HireDate, &employee.Department, &employee.Salary, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *employeeRepo) List(ctx context.Context, limit, offset int) ([]*models.Employee, error) {
	query := `
		SELECT id, name, contact, hire_date, department, salary, created_at, updated_at
		FROM employees
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		employee := &models.Employee{}
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Contact, &employee.HireDate, &employee.Department, &employee.Salary, &employee.CreatedAt, &employee.UpdatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, nil
}

func (r *employeeRepo) UpdateSalary(ctx context.Context, id int64, salary float64) error {
	query := `
		UPDATE employees
		SET salary = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, salary, id)
	return err
}

func (r *employeeRepo) UpdateDepartment(ctx context.Context, id int64, department string) error {
	query := `
		UPDATE employees
		SET department = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, department, id)
	return err
}

// AverageSalaryByDepartment returns the mean salary per department. An
// empty table yields an empty slice, not an error.
func (r *employeeRepo) AverageSalaryByDepartment(ctx context.Context) ([]*models.DepartmentSalary, error) {
	query := `
		SELECT department, AVG(salary) AS average_salary
		FROM employees
		GROUP BY department
		ORDER BY department
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var averages []*models.DepartmentSalary
	for rows.Next() {
		entry := &models.DepartmentSalary{}
		if err := rows.Scan(&entry.Department, &entry.AverageSalary); err != nil {
			return nil, err
		}
		averages = append(averages, entry)
	}
	return averages, nil
}
