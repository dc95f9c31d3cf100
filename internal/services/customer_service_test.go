package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"shopmetrics/internal/models"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	customerRepo *MockCustomerRepository
	service      CustomerService
	context      context.Context
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.customerRepo = new(MockCustomerRepository)
	suite.service = NewCustomerService(suite.customerRepo)
	suite.context = context.Background()
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func (suite *CustomerServiceTestSuite) TestCreate_Success() {
	customer := &models.Customer{
		Name:     "Alice Johnson",
		JoinDate: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	suite.customerRepo.On("Create", suite.context, customer).Return(nil)

	err := suite.service.Create(suite.context, customer)
	assert.NoError(suite.T(), err)
}

func (suite *CustomerServiceTestSuite) TestCreate_MissingName() {
	err := suite.service.Create(suite.context, &models.Customer{})
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "name is required")
	suite.customerRepo.AssertNotCalled(suite.T(), "Create")
}

func (suite *CustomerServiceTestSuite) TestCreate_DefaultsJoinDate() {
	customer := &models.Customer{Name: "Bob Smith"}
	suite.customerRepo.On("Create", suite.context, customer).Return(nil)

	err := suite.service.Create(suite.context, customer)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), customer.JoinDate.IsZero())
}

func (suite *CustomerServiceTestSuite) TestCreate_FutureJoinDateRejected() {
	customer := &models.Customer{
		Name:     "Time Traveler",
		JoinDate: time.Now().Add(48 * time.Hour),
	}

	err := suite.service.Create(suite.context, customer)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "future")
	suite.customerRepo.AssertNotCalled(suite.T(), "Create")
}
