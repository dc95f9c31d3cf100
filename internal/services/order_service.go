package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"shopmetrics/internal/analytics"
	"shopmetrics/internal/models"
	"shopmetrics/internal/repositories"
)

type OrderService interface {
	Checkout(ctx context.Context, req *models.OrderCheckout) (*models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context, limit, offset int) ([]*models.Order, error)
}

type orderService struct {
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
	customerRepo  repositories.CustomerRepository
	productRepo   repositories.ProductRepository
	analyticsSvc  *analytics.AnalyticsService
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	orderItemRepo repositories.OrderItemRepository,
	customerRepo repositories.CustomerRepository,
	productRepo repositories.ProductRepository,
	analyticsSvc *analytics.AnalyticsService,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		analyticsSvc:  analyticsSvc,
	}
}

// Checkout places an order. Item prices are captured from the current
// product catalog and total_amount is the sum of item_price * quantity, so
// the total can never disagree with the items. The order, its items and
// the stock decrements commit in one transaction.
func (s *orderService) Checkout(ctx context.Context, req *models.OrderCheckout) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("order must contain at least one item")
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("customer %d not found: %w", req.CustomerID, err)
	}

	var items []*models.OrderItem
	var total float64
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("product %d: quantity must be positive", line.ProductID)
		}

		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d not found: %w", line.ProductID, err)
		}

		items = append(items, &models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			ItemPrice: product.Price,
		})
		total += float64(line.Quantity) * product.Price
	}

	order := &models.Order{
		CustomerID:  req.CustomerID,
		OrderDate:   time.Now(),
		TotalAmount: total,
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		return nil, err
	}
	order.Items = items

	// The dashboard summary is stale as soon as an order lands
	if cacheErr := s.analyticsSvc.InvalidateSalesSummary(ctx); cacheErr != nil {
		log.Printf("Failed to invalidate sales summary after order %d: %v", order.ID, cacheErr)
	}

	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.orderItemRepo.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (s *orderService) List(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	return s.orderRepo.List(ctx, limit, offset)
}
