package pos

import "context"

type OrderRepository interface {
	// CreateOrder persists the order and its items atomically.
	CreateOrder(ctx context.Context, order *Order, items []OrderItem) error
	ListOrders(ctx context.Context, establishmentID string, limit int) ([]Order, error)
}
