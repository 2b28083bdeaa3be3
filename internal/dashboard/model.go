package dashboard

// DailyRevenue is one point on the trailing revenue chart.
type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// TopProduct ranks a product by quantity sold in the current month.
type TopProduct struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

type Goal struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	// Progress is current/target as a percentage, 0 when no target is set.
	Progress float64 `json:"progress"`
}

// Stats is the full dashboard payload, computed per request.
type Stats struct {
	TodayRevenue        float64        `json:"today_revenue"`
	TodayOrders         int            `json:"today_orders"`
	MonthRevenue        float64        `json:"month_revenue"`
	MonthOrders         int            `json:"month_orders"`
	MonthCustomers      int            `json:"month_customers"`
	DailyRevenueGoal    Goal           `json:"daily_revenue_goal"`
	DailyOrdersGoal     Goal           `json:"daily_orders_goal"`
	MonthlyRevenueGoal  Goal           `json:"monthly_revenue_goal"`
	MonthlyOrdersGoal   Goal           `json:"monthly_orders_goal"`
	MonthlySalesGoal    Goal           `json:"monthly_sales_goal"`
	MonthlyCustomerGoal Goal           `json:"monthly_customers_goal"`
	RevenueByDay        []DailyRevenue `json:"revenue_by_day"`
	TopProducts         []TopProduct   `json:"top_products"`
}
