package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/feateixeira/serve-wise-hub/internal/establishment"
)

type mockRepository struct {
	todayRevenue float64
	todayOrders  int
	monthRevenue float64
	monthOrders  int
	customers    int
	days         []DailyRevenue
	top          []TopProduct
}

func (m *mockRepository) RevenueBetween(ctx context.Context, establishmentID string, from, to time.Time) (float64, int, error) {
	// The month window starts on day 1, the today window at midnight.
	if from.Day() == 1 && to.Sub(from) > 48*time.Hour {
		return m.monthRevenue, m.monthOrders, nil
	}
	return m.todayRevenue, m.todayOrders, nil
}

func (m *mockRepository) DistinctCustomersBetween(ctx context.Context, establishmentID string, from, to time.Time) (int, error) {
	return m.customers, nil
}

func (m *mockRepository) RevenueByDay(ctx context.Context, establishmentID string, from, to time.Time) ([]DailyRevenue, error) {
	return m.days, nil
}

func (m *mockRepository) TopProducts(ctx context.Context, establishmentID string, from, to time.Time, limit int) ([]TopProduct, error) {
	return m.top, nil
}

type mockSettings struct {
	settings establishment.Settings
}

func (m *mockSettings) Get(ctx context.Context, establishmentID string) (*establishment.Establishment, error) {
	return &establishment.Establishment{Settings: m.settings}, nil
}

func TestGetStatsComputesGoalProgress(t *testing.T) {
	repo := &mockRepository{
		todayRevenue: 500,
		todayOrders:  8,
		monthRevenue: 15000,
		monthOrders:  150,
		customers:    25,
	}
	settings := &mockSettings{settings: establishment.Settings{
		DailyRevenueGoal:     1000,
		MonthlyRevenueGoal:   30000,
		MonthlyOrdersGoal:    300,
		MonthlyCustomersGoal: 50,
		DailyOrdersGoal:      10,
	}}

	service := NewService(repo, settings)
	service.now = func() time.Time {
		return time.Date(2026, 8, 15, 14, 0, 0, 0, time.UTC)
	}

	stats, err := service.GetStats(context.Background(), "est-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TodayRevenue != 500 {
		t.Errorf("got today revenue %v, want 500", stats.TodayRevenue)
	}
	if stats.DailyRevenueGoal.Progress != 50 {
		t.Errorf("got daily revenue progress %v, want 50", stats.DailyRevenueGoal.Progress)
	}
	if stats.MonthlyOrdersGoal.Progress != 50 {
		t.Errorf("got monthly orders progress %v, want 50", stats.MonthlyOrdersGoal.Progress)
	}
	if stats.MonthCustomers != 25 {
		t.Errorf("got month customers %v, want 25", stats.MonthCustomers)
	}
}

func TestGetStatsZeroTargetHasNoProgress(t *testing.T) {
	service := NewService(&mockRepository{todayRevenue: 100}, &mockSettings{})
	service.now = func() time.Time {
		return time.Date(2026, 8, 15, 14, 0, 0, 0, time.UTC)
	}

	stats, err := service.GetStats(context.Background(), "est-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.DailyRevenueGoal.Progress != 0 {
		t.Errorf("got progress %v, want 0 when no goal is configured", stats.DailyRevenueGoal.Progress)
	}
}

func TestGetStatsFillsMissingDays(t *testing.T) {
	repo := &mockRepository{
		days: []DailyRevenue{
			{Date: "2026-08-12", Revenue: 300, Orders: 4},
		},
	}
	service := NewService(repo, &mockSettings{})
	service.now = func() time.Time {
		return time.Date(2026, 8, 15, 14, 0, 0, 0, time.UTC)
	}

	stats, err := service.GetStats(context.Background(), "est-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stats.RevenueByDay) != 7 {
		t.Fatalf("expected 7 days, got %d", len(stats.RevenueByDay))
	}
	if stats.RevenueByDay[0].Date != "2026-08-09" {
		t.Errorf("series starts at %s, want 2026-08-09", stats.RevenueByDay[0].Date)
	}
	if stats.RevenueByDay[3].Revenue != 300 {
		t.Errorf("got %v on the sales day, want 300", stats.RevenueByDay[3].Revenue)
	}
	if stats.RevenueByDay[6].Revenue != 0 {
		t.Errorf("expected zero revenue on a day without sales")
	}
}

func TestGetStatsRequiresEstablishment(t *testing.T) {
	service := NewService(&mockRepository{}, &mockSettings{})

	_, err := service.GetStats(context.Background(), "")
	if !errors.Is(err, ErrNoEstablishment) {
		t.Fatalf("expected ErrNoEstablishment, got %v", err)
	}
}
