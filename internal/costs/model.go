package costs

import "time"

// Recurrence values for fixed costs.
const (
	RecurrenceMonthly = "monthly"
	RecurrenceAnnual  = "annual"
	RecurrenceOneTime = "one_time"
)

// DefaultProfitMargin is the margin suggested by the pricing card.
const DefaultProfitMargin = 30.0

type FixedCost struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Amount          float64   `json:"amount"`
	StartDate       string    `json:"start_date"`
	Recurrence      string    `json:"recurrence"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

type VariableCost struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Quantity        float64   `json:"quantity"`
	TotalCost       float64   `json:"total_cost"`
	UnitCost        float64   `json:"unit_cost"` // always derived: total_cost / quantity
	UnitMeasure     string    `json:"unit_measure"`
	Supplier        string    `json:"supplier,omitempty"`
	PurchaseDate    string    `json:"purchase_date"`
	ExpiryDate      string    `json:"expiry_date,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProductIngredient links a product to a variable cost with a price
// snapshot taken when the link was made.
type ProductIngredient struct {
	ID             string  `json:"id"`
	ProductID      string  `json:"product_id"`
	VariableCostID string  `json:"variable_cost_id"`
	QuantityUsed   float64 `json:"quantity_used"`
	UnitCostAtTime float64 `json:"unit_cost_at_time"`
	TotalCost      float64 `json:"total_cost"` // quantity_used * unit_cost_at_time
	ProductName    string  `json:"product_name,omitempty"`
	IngredientName string  `json:"ingredient_name,omitempty"`
}

// CostAnalysis rows are produced by an external reporting process and
// are read-only here.
type CostAnalysis struct {
	ID                       string  `json:"id"`
	EstablishmentID          string  `json:"establishment_id"`
	PeriodStart              string  `json:"period_start"`
	PeriodEnd                string  `json:"period_end"`
	TotalFixedCosts          float64 `json:"total_fixed_costs"`
	TotalVariableCosts       float64 `json:"total_variable_costs"`
	TotalProductsSold        int     `json:"total_products_sold"`
	AverageCostPerProduct    float64 `json:"average_cost_per_product"`
	ProfitMarginPercentage   float64 `json:"profit_margin_percentage"`
	SuggestedPriceMultiplier float64 `json:"suggested_price_multiplier"`
}
