package services

import (
	"context"
	"errors"
	"log"
	"time"

	"shopmetrics/internal/caching"
	"shopmetrics/internal/models"
	"shopmetrics/internal/repositories"
)

const productCacheTTL = 15 * time.Minute

type ProductService interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
	Restock(ctx context.Context, id int64, quantity int) error
}

type productService struct {
	productRepo  repositories.ProductRepository
	cacheService caching.CacheService
}

func NewProductService(productRepo repositories.ProductRepository, cacheService caching.CacheService) ProductService {
	return &productService{
		productRepo:  productRepo,
		cacheService: cacheService,
	}
}

func (s *productService) Create(ctx context.Context, product *models.Product) error {
	if product.Name == "" {
		return errors.New("product name is required")
	}
	if product.Category == "" {
		return errors.New("product category is required")
	}
	if product.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if product.StockQuantity < 0 {
		return errors.New("stock quantity cannot be negative")
	}
	return s.productRepo.Create(ctx, product)
}

func (s *productService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	// Cache errors fall through to the database
	if cached, err := s.cacheService.GetProduct(ctx, id); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("Cache error for product %d: %v", id, err)
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cacheService.SetProduct(ctx, product, productCacheTTL); cacheErr != nil {
		log.Printf("Failed to cache product %d: %v", id, cacheErr)
	}

	return product, nil
}

func (s *productService) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	return s.productRepo.List(ctx, limit, offset)
}

// Restock adds stock to a product and drops its cached copy.
func (s *productService) Restock(ctx context.Context, id int64, quantity int) error {
	if quantity <= 0 {
		return errors.New("restock quantity must be positive")
	}
	if err := s.productRepo.AdjustStock(ctx, id, quantity); err != nil {
		return err
	}
	if cacheErr := s.cacheService.DeleteProduct(ctx, id); cacheErr != nil {
		log.Printf("Failed to invalidate cached product %d: %v", id, cacheErr)
	}
	return nil
}
