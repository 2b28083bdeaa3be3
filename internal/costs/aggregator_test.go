package costs

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMonthlyFixedTotal(t *testing.T) {
	fixedCosts := []FixedCost{
		{Name: "Aluguel", Amount: 3000, Recurrence: RecurrenceMonthly, Active: true},
		{Name: "Alvará", Amount: 1200, Recurrence: RecurrenceAnnual, Active: true},
		{Name: "Reforma", Amount: 5000, Recurrence: RecurrenceOneTime, Active: true},
		{Name: "Antigo aluguel", Amount: 2500, Recurrence: RecurrenceMonthly, Active: false},
	}

	// 3000 + 1200/12, one-time and inactive excluded
	if got := MonthlyFixedTotal(fixedCosts); !almostEqual(got, 3100) {
		t.Errorf("MonthlyFixedTotal = %v, want 3100", got)
	}
}

func TestMonthlyFixedTotalEmpty(t *testing.T) {
	if got := MonthlyFixedTotal(nil); got != 0 {
		t.Errorf("MonthlyFixedTotal(nil) = %v, want 0", got)
	}
}

func TestTotalVariableCost(t *testing.T) {
	variableCosts := []VariableCost{
		{Name: "Carne", TotalCost: 250, Active: true},
		{Name: "Pão", TotalCost: 80, Active: true},
		{Name: "Queijo vencido", TotalCost: 40, Active: false},
	}

	if got := TotalVariableCost(variableCosts); !almostEqual(got, 330) {
		t.Errorf("TotalVariableCost = %v, want 330", got)
	}
}

func TestAverageUnitCost(t *testing.T) {
	variableCosts := []VariableCost{
		{Name: "Carne", UnitCost: 5, Active: true},
		{Name: "Pão", UnitCost: 1, Active: true},
	}

	if got := AverageUnitCost(variableCosts); !almostEqual(got, 3) {
		t.Errorf("AverageUnitCost = %v, want 3", got)
	}
}

func TestAverageUnitCostEmptySetIsZero(t *testing.T) {
	if got := AverageUnitCost(nil); got != 0 {
		t.Errorf("AverageUnitCost(nil) = %v, want 0", got)
	}

	inactive := []VariableCost{{Name: "Carne", UnitCost: 5, Active: false}}
	if got := AverageUnitCost(inactive); got != 0 {
		t.Errorf("AverageUnitCost(inactive only) = %v, want 0", got)
	}
}

func TestSuggestedPrice(t *testing.T) {
	if got := SuggestedPrice(10, 30); !almostEqual(got, 13) {
		t.Errorf("SuggestedPrice(10, 30) = %v, want 13", got)
	}
	if got := SuggestedPrice(0, 30); got != 0 {
		t.Errorf("SuggestedPrice(0, 30) = %v, want 0", got)
	}
	if got := SuggestedPrice(10, DefaultProfitMargin); !almostEqual(got, 13) {
		t.Errorf("SuggestedPrice(10, default) = %v, want 13", got)
	}
}
