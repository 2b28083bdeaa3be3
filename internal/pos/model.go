package pos

import "time"

// Order types recorded at checkout.
const (
	OrderTypeCounter  = "balcao"
	OrderTypeDelivery = "delivery"
)

const defaultCustomerName = "Cliente Balcão"

type Order struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	OrderNumber     string    `json:"order_number"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone,omitempty"`
	OrderType       string    `json:"order_type"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	Subtotal        float64   `json:"subtotal"`
	DeliveryCharge  float64   `json:"delivery_charge"`
	TotalAmount     float64   `json:"total_amount"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type OrderItem struct {
	ID             string   `json:"id"`
	OrderID        string   `json:"order_id"`
	ProductID      string   `json:"product_id"`
	Quantity       int      `json:"quantity"`
	UnitPrice      float64  `json:"unit_price"`
	TotalPrice     float64  `json:"total_price"`
	SelectedSauces []string `json:"selected_sauces"`
	SaucePrice     float64  `json:"sauce_price"`
}
