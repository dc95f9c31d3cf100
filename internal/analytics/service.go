package analytics

import (
	"context"
	"log"
	"time"

	"shopmetrics/internal/caching"
	"shopmetrics/internal/models"
	"shopmetrics/internal/repositories"
)

// Default shape of the cached dashboard summary.
const (
	DefaultTopN       = 3
	DefaultSummaryTTL = 5 * time.Minute
)

// AnalyticsService binds the query catalog to the repositories and caches
// the aggregate dashboard summary in Redis. Every catalog query is a pure
// read; empty tables produce identity values, never errors.
type AnalyticsService struct {
	customerRepo  repositories.CustomerRepository
	productRepo   repositories.ProductRepository
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
	employeeRepo  repositories.EmployeeRepository
	cacheService  caching.CacheService
	summaryTTL    time.Duration
}

func NewAnalyticsService(
	customerRepo repositories.CustomerRepository,
	productRepo repositories.ProductRepository,
	orderRepo repositories.OrderRepository,
	orderItemRepo repositories.OrderItemRepository,
	employeeRepo repositories.EmployeeRepository,
	cacheService caching.CacheService,
) *AnalyticsService {
	return &AnalyticsService{
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		employeeRepo:  employeeRepo,
		cacheService:  cacheService,
		summaryTTL:    DefaultSummaryTTL,
	}
}

// SetSummaryTTL overrides the cache lifetime of the sales summary.
func (a *AnalyticsService) SetSummaryTTL(ttl time.Duration) {
	if ttl > 0 {
		a.summaryTTL = ttl
	}
}

func (a *AnalyticsService) CustomersByJoinYear(ctx context.Context, year int) ([]*models.Customer, error) {
	return a.customerRepo.ListByJoinYear(ctx, year)
}

func (a *AnalyticsService) ProductsByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	return a.productRepo.ListByCategory(ctx, category)
}

func (a *AnalyticsService) OrderCount(ctx context.Context) (int64, error) {
	return a.orderRepo.Count(ctx)
}

func (a *AnalyticsService) MaxPriceProducts(ctx context.Context) ([]*models.Product, error) {
	return a.productRepo.ListMaxPrice(ctx)
}

func (a *AnalyticsService) TotalRevenue(ctx context.Context) (float64, error) {
	return a.orderItemRepo.TotalRevenue(ctx)
}

func (a *AnalyticsService) TopProductsByRevenue(ctx context.Context, n int) ([]*models.ProductRevenue, error) {
	if n <= 0 {
		n = DefaultTopN
	}
	return a.orderItemRepo.TopProductsByRevenue(ctx, n)
}

func (a *AnalyticsService) CustomersWithoutOrders(ctx context.Context) ([]*models.Customer, error) {
	return a.customerRepo.ListWithoutOrders(ctx)
}

func (a *AnalyticsService) AverageSalaryByDepartment(ctx context.Context) ([]*models.DepartmentSalary, error) {
	return a.employeeRepo.AverageSalaryByDepartment(ctx)
}

// SalesSummary returns the cached dashboard aggregate, computing and
// caching it on a miss. Cache errors are logged and fall through to the
// database so the summary never fails on a degraded Redis.
func (a *AnalyticsService) SalesSummary(ctx context.Context) (*models.SalesSummary, error) {
	cached, err := a.cacheService.GetSalesSummary(ctx)
	if cached != nil {
		return cached, nil
	}
	if err != nil {
		log.Printf("Cache error reading sales summary: %v", err)
	}

	return a.RefreshSalesSummary(ctx)
}

// RefreshSalesSummary recomputes the summary from the database and caches
// the result.
func (a *AnalyticsService) RefreshSalesSummary(ctx context.Context) (*models.SalesSummary, error) {
	orderCount, err := a.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := a.orderItemRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	topProducts, err := a.orderItemRepo.TopProductsByRevenue(ctx, DefaultTopN)
	if err != nil {
		return nil, err
	}

	summary := &models.SalesSummary{
		OrderCount:   orderCount,
		TotalRevenue: totalRevenue,
		TopProducts:  topProducts,
		LastUpdated:  time.Now().UTC(),
	}

	if cacheErr := a.cacheService.SetSalesSummary(ctx, summary, a.summaryTTL); cacheErr != nil {
		log.Printf("Failed to cache sales summary: %v", cacheErr)
	}

	return summary, nil
}

// InvalidateSalesSummary drops the cached summary. Called after checkout
// so the dashboard reflects new orders promptly.
func (a *AnalyticsService) InvalidateSalesSummary(ctx context.Context) error {
	return a.cacheService.DeleteSalesSummary(ctx)
}
