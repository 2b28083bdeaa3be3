package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	// RevenueBetween sums completed order totals in [from, to).
	RevenueBetween(ctx context.Context, establishmentID string, from, to time.Time) (float64, int, error)

	// DistinctCustomersBetween counts unique customer names on orders in [from, to).
	DistinctCustomersBetween(ctx context.Context, establishmentID string, from, to time.Time) (int, error)

	// RevenueByDay returns one row per calendar day with sales in [from, to).
	RevenueByDay(ctx context.Context, establishmentID string, from, to time.Time) ([]DailyRevenue, error)

	// TopProducts ranks products by quantity sold in [from, to).
	TopProducts(ctx context.Context, establishmentID string, from, to time.Time, limit int) ([]TopProduct, error)
}
