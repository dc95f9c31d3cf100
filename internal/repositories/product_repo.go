package repositories

import (
	"context"

	"shopmetrics/internal/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*models.Product, error)
	ListMaxPrice(ctx context.Context) ([]*models.Product, error)
	AdjustStock(ctx context.Context, id int64, change int) error
}

type productRepo struct {
	db Database
}

func NewProductRepo(db Database) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, category, price, stock_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, product.Name, product.Category, product.Price, product.StockQuantity).Scan(&product.ID)
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT id, name, category, price, stock_quantity, created_at, updated_at
		FROM products
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&product.ID, &product.Name, &product.Category, &product.Price, &product.StockQuantity, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	query := `
		SELECT id, name, category, price, stock_quantity, created_at, updated_at
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Category, &product.Price, &product.StockQuantity, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// ListByCategory returns products with an exact category match.
func (r *productRepo) ListByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	query := `
		SELECT id, name, category, price, stock_quantity, created_at, updated_at
		FROM products
		WHERE category = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Category, &product.Price, &product.StockQuantity, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// ListMaxPrice returns every product priced at the catalog maximum. Ties
// return multiple rows; an empty table returns an empty set because the
// MAX subquery yields NULL.
func (r *productRepo) ListMaxPrice(ctx context.Context) ([]*models.Product, error) {
	query := `
		SELECT id, name, category, price, stock_quantity, created_at, updated_at
		FROM products
		WHERE price = (SELECT MAX(price) FROM products)
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Category, &product.Price, &product.StockQuantity, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// AdjustStock applies a signed stock change. The WHERE guard keeps
// stock_quantity from going negative; zero rows affected means the change
// would have done so.
func (r *productRepo) AdjustStock(ctx context.Context, id int64, change int) error {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + $1, updated_at = NOW()
		WHERE id = $2 AND stock_quantity + $1 >= 0
	`
	tag, err := r.db.Exec(ctx, query, change, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStockConflict
	}
	return nil
}
