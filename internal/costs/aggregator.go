package costs

// Pure financial aggregation over already-loaded cost lists.
// No I/O, inputs are never mutated; rounding happens only at display.

// MonthlyFixedTotal derives the monthly-normalized fixed cost total:
// monthly costs contribute their full amount, annual costs a twelfth,
// one-time costs nothing.
func MonthlyFixedTotal(fixedCosts []FixedCost) float64 {
	var total float64
	for _, cost := range fixedCosts {
		if !cost.Active {
			continue
		}
		switch cost.Recurrence {
		case RecurrenceMonthly:
			total += cost.Amount
		case RecurrenceAnnual:
			total += cost.Amount / 12
		}
	}
	return total
}

// TotalVariableCost sums total_cost over active variable costs.
func TotalVariableCost(variableCosts []VariableCost) float64 {
	var total float64
	for _, cost := range variableCosts {
		if !cost.Active {
			continue
		}
		total += cost.TotalCost
	}
	return total
}

// AverageUnitCost is the arithmetic mean of unit_cost over active
// variable costs; an empty set yields 0.
func AverageUnitCost(variableCosts []VariableCost) float64 {
	var sum float64
	var count int
	for _, cost := range variableCosts {
		if !cost.Active {
			continue
		}
		sum += cost.UnitCost
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// SuggestedPrice applies the margin multiplier (1 + margin%/100) to a
// unit cost.
func SuggestedPrice(unitCost, marginPercent float64) float64 {
	return unitCost * (1 + marginPercent/100)
}
