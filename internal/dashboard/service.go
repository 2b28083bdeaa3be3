package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/feateixeira/serve-wise-hub/internal/establishment"
	"github.com/feateixeira/serve-wise-hub/internal/money"
)

var ErrNoEstablishment = errors.New("establishment id required")

const topProductsLimit = 5

// SettingsReader exposes the establishment's configured goals.
type SettingsReader interface {
	Get(ctx context.Context, establishmentID string) (*establishment.Establishment, error)
}

type Service struct {
	repo     Repository
	settings SettingsReader
	now      func() time.Time
}

func NewService(repo Repository, settings SettingsReader) *Service {
	return &Service{repo: repo, settings: settings, now: time.Now}
}

// GetStats assembles the dashboard payload from the order history. All
// figures are computed fresh on every call.
func (s *Service) GetStats(ctx context.Context, establishmentID string) (*Stats, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}

	now := s.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -6)
	tomorrow := todayStart.AddDate(0, 0, 1)

	todayRevenue, todayOrders, err := s.repo.RevenueBetween(ctx, establishmentID, todayStart, tomorrow)
	if err != nil {
		return nil, err
	}

	monthRevenue, monthOrders, err := s.repo.RevenueBetween(ctx, establishmentID, monthStart, tomorrow)
	if err != nil {
		return nil, err
	}

	monthCustomers, err := s.repo.DistinctCustomersBetween(ctx, establishmentID, monthStart, tomorrow)
	if err != nil {
		return nil, err
	}

	byDay, err := s.repo.RevenueByDay(ctx, establishmentID, weekStart, tomorrow)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.repo.TopProducts(ctx, establishmentID, monthStart, tomorrow, topProductsLimit)
	if err != nil {
		return nil, err
	}

	est, err := s.settings.Get(ctx, establishmentID)
	if err != nil {
		return nil, err
	}
	goals := est.Settings

	return &Stats{
		TodayRevenue:        money.Round2(todayRevenue),
		TodayOrders:         todayOrders,
		MonthRevenue:        money.Round2(monthRevenue),
		MonthOrders:         monthOrders,
		MonthCustomers:      monthCustomers,
		DailyRevenueGoal:    makeGoal(todayRevenue, goals.DailyRevenueGoal),
		DailyOrdersGoal:     makeGoal(float64(todayOrders), float64(goals.DailyOrdersGoal)),
		MonthlyRevenueGoal:  makeGoal(monthRevenue, goals.MonthlyRevenueGoal),
		MonthlyOrdersGoal:   makeGoal(float64(monthOrders), float64(goals.MonthlyOrdersGoal)),
		MonthlySalesGoal:    makeGoal(monthRevenue, goals.MonthlySalesGoal),
		MonthlyCustomerGoal: makeGoal(float64(monthCustomers), float64(goals.MonthlyCustomersGoal)),
		RevenueByDay:        fillMissingDays(byDay, weekStart, 7),
		TopProducts:         topProducts,
	}, nil
}

func makeGoal(current, target float64) Goal {
	goal := Goal{Current: money.Round2(current), Target: target}
	if target > 0 {
		goal.Progress = money.Round2(current / target * 100)
	}
	return goal
}

// fillMissingDays pads the series so the chart always covers the full
// window, with zero revenue on days without sales.
func fillMissingDays(days []DailyRevenue, start time.Time, count int) []DailyRevenue {
	byDate := make(map[string]DailyRevenue, len(days))
	for _, day := range days {
		byDate[day.Date] = day
	}

	series := make([]DailyRevenue, 0, count)
	for i := 0; i < count; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		if day, ok := byDate[date]; ok {
			series = append(series, day)
			continue
		}
		series = append(series, DailyRevenue{Date: date})
	}
	return series
}
