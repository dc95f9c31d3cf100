package repositories

import (
	"context"

	"shopmetrics/internal/models"
)

type OrderItemRepository interface {
	ListByOrder(ctx context.Context, orderID int64) ([]*models.OrderItem, error)
	TotalRevenue(ctx context.Context) (float64, error)
	TopProductsByRevenue(ctx context.Context, limit int) ([]*models.ProductRevenue, error)
}

type orderItemRepo struct {
	db Database
}

func NewOrderItemRepo(db Database) OrderItemRepository {
	return &orderItemRepo{db: db}
}

func (r *orderItemRepo) ListByOrder(ctx context.Context, orderID int64) ([]*models.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, item_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		item := &models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.ItemPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// TotalRevenue sums quantity * item_price over every order item. COALESCE
// turns the empty-table NULL into 0.
func (r *orderItemRepo) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(quantity * item_price), 0) FROM order_items`
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// TopProductsByRevenue ranks products by summed item revenue, highest
// first. Revenue ties are broken by ascending product id so the cut at
// LIMIT is deterministic.
func (r *orderItemRepo) TopProductsByRevenue(ctx context.Context, limit int) ([]*models.ProductRevenue, error) {
	query := `
		SELECT oi.product_id, p.name, SUM(oi.quantity * oi.item_price) AS revenue
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		GROUP BY oi.product_id, p.name
		ORDER BY revenue DESC, oi.product_id
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranking []*models.ProductRevenue
	for rows.Next() {
		entry := &models.ProductRevenue{}
		if err := rows.Scan(&entry.ProductID, &entry.Name, &entry.Revenue); err != nil {
			return nil, err
		}
		ranking = append(ranking, entry)
	}
	return ranking, nil
}
