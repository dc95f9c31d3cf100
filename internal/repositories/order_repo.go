package repositories

import (
	"context"
	"fmt"

	"shopmetrics/internal/models"
)

type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *models.Order, items []*models.OrderItem) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context, limit, offset int) ([]*models.Order, error)
	Count(ctx context.Context) (int64, error)
}

type orderRepo struct {
	db Database
}

func NewOrderRepo(db Database) OrderRepository {
	return &orderRepo{db: db}
}

// CreateWithItems inserts the order, its items and the matching stock
// decrements in a single transaction, so total_amount can never drift from
// the sum of its items.
func (r *orderRepo) CreateWithItems(ctx context.Context, order *models.Order, items []*models.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (customer_id, order_date, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	if err := tx.QueryRow(ctx, orderQuery, order.CustomerID, order.OrderDate, order.TotalAmount).Scan(&order.ID); err != nil {
		return err
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, item_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	stockQuery := `
		UPDATE products
		SET stock_quantity = stock_quantity - $1, updated_at = NOW()
		WHERE id = $2 AND stock_quantity >= $1
	`
	for _, item := range items {
		item.OrderID = order.ID
		if err := tx.QueryRow(ctx, itemQuery, item.OrderID, item.ProductID, item.Quantity, item.ItemPrice).Scan(&item.ID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, stockQuery, item.Quantity, item.ProductID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("product %d: %w", item.ProductID, ErrStockConflict)
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT id, customer_id, order_date, total_amount, created_at, updated_at
		FROM orders
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&order.ID, &order.CustomerID, &order.OrderDate, &order.TotalAmount, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepo) List(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	query := `
		SELECT id, customer_id, order_date, total_amount, created_at, updated_at
		FROM orders
		ORDER BY order_date DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.OrderDate, &order.TotalAmount, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
