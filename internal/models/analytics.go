package models

import (
	"time"
)

// ProductRevenue is one row of the top-products-by-revenue ranking.
// Ties are ordered by ascending product id so the ranking is stable.
type ProductRevenue struct {
	ProductID int64   `json:"product_id" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	Revenue   float64 `json:"revenue" db:"revenue"`
}

// DepartmentSalary is one row of the average-salary-by-department grouping.
type DepartmentSalary struct {
	Department    string  `json:"department" db:"department"`
	AverageSalary float64 `json:"average_salary" db:"average_salary"`
}

// SalesSummary is the cached dashboard aggregate served by the analytics
// service and re-warmed by the background refresh job.
type SalesSummary struct {
	OrderCount   int64             `json:"order_count"`
	TotalRevenue float64           `json:"total_revenue"`
	TopProducts  []*ProductRevenue `json:"top_products"`
	LastUpdated  time.Time         `json:"last_updated"`
}
