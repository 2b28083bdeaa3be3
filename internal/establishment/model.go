package establishment

import "time"

// Settings is the per-tenant configuration blob stored as JSONB.
// Zero values mean "not configured": a delivery fee of 0 disables the
// delivery charge and a threshold of 0 disables free delivery.
type Settings struct {
	ThemeColor            string  `json:"theme_color,omitempty"`
	TaxRate               float64 `json:"tax_rate,omitempty"`
	DeliveryFee           float64 `json:"delivery_fee,omitempty"`
	DeliveryFreeThreshold float64 `json:"delivery_free_threshold,omitempty"`

	DailyRevenueGoal     float64 `json:"daily_revenue_goal,omitempty"`
	MonthlyRevenueGoal   float64 `json:"monthly_revenue_goal,omitempty"`
	MonthlyOrdersGoal    int     `json:"monthly_orders_goal,omitempty"`
	MonthlyCustomersGoal int     `json:"monthly_customers_goal,omitempty"`
	MonthlySalesGoal     float64 `json:"monthly_sales_goal,omitempty"`
	DailyOrdersGoal      int     `json:"daily_orders_goal,omitempty"`
}

type Establishment struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Slug               string   `json:"slug"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone,omitempty"`
	Address            string   `json:"address,omitempty"`
	LogoURL            string   `json:"logo_url,omitempty"`
	Settings           Settings `json:"settings"`
	SubscriptionPlan   string   `json:"subscription_plan"`
	SubscriptionStatus string   `json:"subscription_status"`
	CreatedAt          time.Time `json:"created_at"`
}

type Profile struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	EstablishmentID string `json:"establishment_id"`
	Role            string `json:"role"`
	Name            string `json:"name"`
	Email           string `json:"email"`
}
