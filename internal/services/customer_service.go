package services

import (
	"context"
	"errors"
	"time"

	"shopmetrics/internal/models"
	"shopmetrics/internal/repositories"
)

type CustomerService interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*models.Customer, error)
}

type customerService struct {
	customerRepo repositories.CustomerRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Create(ctx context.Context, customer *models.Customer) error {
	if customer.Name == "" {
		return errors.New("customer name is required")
	}
	if customer.JoinDate.IsZero() {
		customer.JoinDate = time.Now()
	}
	if customer.JoinDate.After(time.Now()) {
		return errors.New("join date cannot be in the future")
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	return s.customerRepo.List(ctx, limit, offset)
}
