package services

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"shopmetrics/internal/analytics"
	"shopmetrics/internal/models"
)

type MockMinioService struct {
	mock.Mock
	uploaded []byte
}

func (m *MockMinioService) UploadObject(ctx context.Context, bucketName, objectName, contentType string, reader io.Reader, objectSize int64) error {
	data, _ := io.ReadAll(reader)
	m.uploaded = data
	args := m.Called(ctx, bucketName, objectName, contentType, objectSize)
	return args.Error(0)
}

func (m *MockMinioService) GetPresignedURL(bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockMinioService) DeleteObject(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

func (m *MockMinioService) EnsureBucketExists(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}

type ReportServiceTestSuite struct {
	suite.Suite
	orderRepo     *MockOrderRepository
	orderItemRepo *MockOrderItemRepository
	minioSvc      *MockMinioService
	service       ReportService
	context       context.Context
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.orderRepo = new(MockOrderRepository)
	suite.orderItemRepo = new(MockOrderItemRepository)
	suite.minioSvc = new(MockMinioService)

	analyticsSvc := analytics.NewAnalyticsService(
		new(MockCustomerRepository),
		new(MockProductRepository),
		suite.orderRepo,
		suite.orderItemRepo,
		new(MockEmployeeRepository),
		new(MockCacheService),
	)
	suite.service = NewReportService(analyticsSvc, suite.minioSvc, "shopmetrics-reports", 3)
	suite.context = context.Background()
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (suite *ReportServiceTestSuite) TestGenerateRevenueReport_Success() {
	suite.orderRepo.On("Count", suite.context).Return(int64(5), nil)
	suite.orderItemRepo.On("TotalRevenue", suite.context).Return(350.50, nil)
	suite.orderItemRepo.On("TopProductsByRevenue", suite.context, 3).Return([]*models.ProductRevenue{
		{ProductID: 1, Name: "Gaming Laptop", Revenue: 200},
		{ProductID: 2, Name: "Mechanical Keyboard", Revenue: 150.50},
	}, nil)
	suite.minioSvc.On("EnsureBucketExists", suite.context, "shopmetrics-reports").Return(nil)
	suite.minioSvc.On("UploadObject", suite.context, "shopmetrics-reports", mock.AnythingOfType("string"), "text/csv", mock.AnythingOfType("int64")).Return(nil)
	suite.minioSvc.On("GetPresignedURL", "shopmetrics-reports", mock.AnythingOfType("string"), 24*time.Hour).
		Return("https://minio.local/shopmetrics-reports/report.csv", nil)

	url, err := suite.service.GenerateRevenueReport(suite.context)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "https://minio.local/shopmetrics-reports/report.csv", url)

	// the uploaded object is parseable CSV carrying the summary rows
	reader := csv.NewReader(strings.NewReader(string(suite.minioSvc.uploaded)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"metric", "value"}, records[0])
	assert.Equal(suite.T(), []string{"order_count", "5"}, records[1])
	assert.Equal(suite.T(), []string{"total_revenue", "350.50"}, records[2])
	assert.Equal(suite.T(), []string{"1", "1", "Gaming Laptop", "200.00"}, records[4])
}

func (suite *ReportServiceTestSuite) TestGenerateRevenueReport_BucketFailure() {
	suite.orderRepo.On("Count", suite.context).Return(int64(0), nil)
	suite.orderItemRepo.On("TotalRevenue", suite.context).Return(0.0, nil)
	suite.orderItemRepo.On("TopProductsByRevenue", suite.context, 3).Return([]*models.ProductRevenue{}, nil)
	suite.minioSvc.On("EnsureBucketExists", suite.context, "shopmetrics-reports").Return(errors.New("access denied"))

	url, err := suite.service.GenerateRevenueReport(suite.context)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "report bucket")
	assert.Empty(suite.T(), url)
	suite.minioSvc.AssertNotCalled(suite.T(), "UploadObject")
}

func (suite *ReportServiceTestSuite) TestGenerateRevenueReport_QueryFailure() {
	suite.orderRepo.On("Count", suite.context).Return(int64(0), errors.New("connection lost"))

	url, err := suite.service.GenerateRevenueReport(suite.context)
	assert.Error(suite.T(), err)
	assert.Empty(suite.T(), url)
	suite.minioSvc.AssertNotCalled(suite.T(), "EnsureBucketExists")
}
