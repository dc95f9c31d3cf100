package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"shopmetrics/internal/analytics"
)

const reportURLExpiry = 24 * time.Hour

// ReportService renders the revenue dashboard as a CSV object in MinIO and
// hands back a presigned download URL.
type ReportService interface {
	GenerateRevenueReport(ctx context.Context) (string, error)
}

type reportService struct {
	analyticsSvc *analytics.AnalyticsService
	minioService MinioService
	bucket       string
	topN         int
}

func NewReportService(analyticsSvc *analytics.AnalyticsService, minioService MinioService, bucket string, topN int) ReportService {
	if topN <= 0 {
		topN = analytics.DefaultTopN
	}
	return &reportService{
		analyticsSvc: analyticsSvc,
		minioService: minioService,
		bucket:       bucket,
		topN:         topN,
	}
}

func (s *reportService) GenerateRevenueReport(ctx context.Context) (string, error) {
	orderCount, err := s.analyticsSvc.OrderCount(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to count orders: %w", err)
	}

	totalRevenue, err := s.analyticsSvc.TotalRevenue(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to compute total revenue: %w", err)
	}

	topProducts, err := s.analyticsSvc.TopProductsByRevenue(ctx, s.topN)
	if err != nil {
		return "", fmt.Errorf("failed to rank products: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"metric", "value"},
		{"order_count", strconv.FormatInt(orderCount, 10)},
		{"total_revenue", strconv.FormatFloat(totalRevenue, 'f', 2, 64)},
		{},
		{"rank", "product_id", "product_name", "revenue"},
	}
	for i, p := range topProducts {
		records = append(records, []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(p.ProductID, 10),
			p.Name,
			strconv.FormatFloat(p.Revenue, 'f', 2, 64),
		})
	}
	if err := w.WriteAll(records); err != nil {
		return "", err
	}

	if err := s.minioService.EnsureBucketExists(ctx, s.bucket); err != nil {
		return "", fmt.Errorf("failed to ensure report bucket: %w", err)
	}

	objectName := fmt.Sprintf("revenue/%s-%s.csv", time.Now().UTC().Format("2006-01-02"), uuid.New().String())
	if err := s.minioService.UploadObject(ctx, s.bucket, objectName, "text/csv", &buf, int64(buf.Len())); err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	url, err := s.minioService.GetPresignedURL(s.bucket, objectName, reportURLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign report URL: %w", err)
	}
	return url, nil
}
