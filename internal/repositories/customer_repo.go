package repositories

import (
	"context"

	"shopmetrics/internal/models"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*models.Customer, error)
	ListByJoinYear(ctx context.Context, year int) ([]*models.Customer, error)
	ListWithoutOrders(ctx context.Context) ([]*models.Customer, error)
}

type customerRepo struct {
	db Database
}

func NewCustomerRepo(db Database) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (name, contact, join_date, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, customer.Name, customer.Contact, customer.JoinDate).Scan(&customer.ID)
}

func (r *customerRepo) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	customer := &models.Customer{}
	query := `
		SELECT id, name, contact, join_date, created_at, updated_at
		FROM customers
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&customer.ID, &customer.Name, &customer.Contact, &customer.JoinDate, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *customerRepo) List(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	query := `
		SELECT id, name, contact, join_date, created_at, updated_at
		FROM customers
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer := &models.Customer{}
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Contact, &customer.JoinDate, &customer.CreatedAt, &customer.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

// ListByJoinYear returns the cohort of customers whose join date falls in
// the given calendar year.
func (r *customerRepo) ListByJoinYear(ctx context.Context, year int) ([]*models.Customer, error) {
	query := `
		SELECT id, name, contact, join_date, created_at, updated_at
		FROM customers
		WHERE EXTRACT(YEAR FROM join_date) = $1
		ORDER BY join_date, id
	`
	rows, err := r.db.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer := &models.Customer{}
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Contact, &customer.JoinDate, &customer.CreatedAt, &customer.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

// ListWithoutOrders returns customers with no orders at all. Anti-join via
// LEFT JOIN rather than NOT IN so NULL customer ids can never swallow rows.
func (r *customerRepo) ListWithoutOrders(ctx context.Context) ([]*models.Customer, error) {
	query := `
		SELECT c.id, c.name, c.contact, c.join_date, c.created_at, c.updated_at
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		WHERE o.id IS NULL
		ORDER BY c.id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer := &models.Customer{}
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Contact, &customer.JoinDate, &customer.CreatedAt, &customer.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}
