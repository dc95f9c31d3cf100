package jobs

import (
	"context"
	"log"
	"time"

	"shopmetrics/internal/analytics"
)

// SummaryRefreshService re-warms the cached sales summary so dashboard
// reads rarely pay the aggregation cost.
type SummaryRefreshService struct {
	analyticsService *analytics.AnalyticsService
}

func NewSummaryRefreshService(analyticsService *analytics.AnalyticsService) *SummaryRefreshService {
	return &SummaryRefreshService{analyticsService: analyticsService}
}

func (s *SummaryRefreshService) RefreshSalesSummary(ctx context.Context) error {
	start := time.Now()

	summary, err := s.analyticsService.RefreshSalesSummary(ctx)
	if err != nil {
		log.Printf("Sales summary refresh failed: %v", err)
		return err
	}

	log.Printf("Sales summary refreshed in %v: orders=%d, revenue=%.2f, top_products=%d",
		time.Since(start), summary.OrderCount, summary.TotalRevenue, len(summary.TopProducts))
	return nil
}
