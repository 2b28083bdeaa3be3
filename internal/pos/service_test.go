package pos

import (
	"context"
	"errors"
	"testing"

	"github.com/feateixeira/serve-wise-hub/internal/catalog"
	"github.com/feateixeira/serve-wise-hub/internal/establishment"
)

type mockOrderRepository struct {
	createCalls int
	lastOrder   *Order
	lastItems   []OrderItem
}

func (m *mockOrderRepository) CreateOrder(ctx context.Context, order *Order, items []OrderItem) error {
	m.createCalls++
	m.lastOrder = order
	m.lastItems = items
	return nil
}

func (m *mockOrderRepository) ListOrders(ctx context.Context, establishmentID string, limit int) ([]Order, error) {
	return nil, nil
}

type mockProductReader struct {
	products map[string]*catalog.Product
}

func (m *mockProductReader) GetProduct(ctx context.Context, establishmentID, productID string) (*catalog.Product, error) {
	product, ok := m.products[productID]
	if !ok {
		return nil, errors.New("not found")
	}
	return product, nil
}

type mockCatalogReader struct {
	snapshot *catalog.Snapshot
}

func (m *mockCatalogReader) GetSnapshot(ctx context.Context, establishmentID string) (*catalog.Snapshot, error) {
	return m.snapshot, nil
}

type mockSettingsReader struct {
	est *establishment.Establishment
}

func (m *mockSettingsReader) Get(ctx context.Context, establishmentID string) (*establishment.Establishment, error) {
	return m.est, nil
}

func newTestService(orders *mockOrderRepository) *Service {
	products := &mockProductReader{products: map[string]*catalog.Product{
		"p1": {ID: "p1", Name: "X-Burger", Price: 25},
		"p2": {ID: "p2", Name: "X-Burger Triplo", Price: 38},
	}}
	grid := &mockCatalogReader{snapshot: &catalog.Snapshot{}}
	settings := &mockSettingsReader{est: &establishment.Establishment{
		Settings: establishment.Settings{DeliveryFee: 5, DeliveryFreeThreshold: 50},
	}}
	return NewService(orders, products, grid, settings)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	orders := &mockOrderRepository{}
	service := newTestService(orders)

	_, err := service.Checkout(context.Background(), "est-1", CheckoutInput{})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if orders.createCalls != 0 {
		t.Errorf("CreateOrder was called %d times for an empty cart", orders.createCalls)
	}
}

func TestCheckoutRejectsCartWithOnlyZeroQuantities(t *testing.T) {
	orders := &mockOrderRepository{}
	service := newTestService(orders)

	_, err := service.Checkout(context.Background(), "est-1", CheckoutInput{
		Items: []CheckoutItem{{ProductID: "p1", Quantity: 0}},
	})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if orders.createCalls != 0 {
		t.Errorf("CreateOrder was called %d times", orders.createCalls)
	}
}

func TestCheckoutRequiresEstablishment(t *testing.T) {
	orders := &mockOrderRepository{}
	service := newTestService(orders)

	_, err := service.Checkout(context.Background(), "", CheckoutInput{
		Items: []CheckoutItem{{ProductID: "p1", Quantity: 1}},
	})
	if !errors.Is(err, ErrNoEstablishment) {
		t.Fatalf("expected ErrNoEstablishment, got %v", err)
	}
}

func TestCheckoutRepricesFromRepository(t *testing.T) {
	orders := &mockOrderRepository{}
	service := newTestService(orders)

	order, err := service.Checkout(context.Background(), "est-1", CheckoutInput{
		Items: []CheckoutItem{
			// Client cannot influence prices, only product and quantity.
			{ProductID: "p1", Quantity: 2, SelectedSauces: []string{"bacon", "ervas"}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 25*2 + one charged sauce; subtotal 52 clears the free threshold.
	if order.Subtotal != 52 {
		t.Errorf("got subtotal %v, want 52", order.Subtotal)
	}
	if order.TotalAmount != 52 {
		t.Errorf("got total %v, want 52", order.TotalAmount)
	}
	if order.OrderType != OrderTypeCounter {
		t.Errorf("got order type %q, want %q", order.OrderType, OrderTypeCounter)
	}
	if order.CustomerName != defaultCustomerName {
		t.Errorf("got customer %q, want default", order.CustomerName)
	}
	if orders.createCalls != 1 {
		t.Fatalf("expected 1 CreateOrder call, got %d", orders.createCalls)
	}
	if len(orders.lastItems) != 1 {
		t.Fatalf("expected 1 order item, got %d", len(orders.lastItems))
	}
	if orders.lastItems[0].SaucePrice != 2 {
		t.Errorf("got sauce price %v, want 2", orders.lastItems[0].SaucePrice)
	}
}

func TestCheckoutDeliveryAddsFeeBelowThreshold(t *testing.T) {
	orders := &mockOrderRepository{}
	service := newTestService(orders)

	order, err := service.Checkout(context.Background(), "est-1", CheckoutInput{
		Delivery:     true,
		CustomerName: "Maria",
		Items:        []CheckoutItem{{ProductID: "p1", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.DeliveryCharge != 5 {
		t.Errorf("got delivery charge %v, want 5", order.DeliveryCharge)
	}
	if order.TotalAmount != 30 {
		t.Errorf("got total %v, want 30", order.TotalAmount)
	}
	if order.OrderType != OrderTypeDelivery {
		t.Errorf("got order type %q, want %q", order.OrderType, OrderTypeDelivery)
	}
	if order.Notes == "" {
		t.Errorf("expected delivery note on the order")
	}
}

func TestCheckoutUnknownProductFails(t *testing.T) {
	orders := &mockOrderRepository{}
	service := newTestService(orders)

	_, err := service.Checkout(context.Background(), "est-1", CheckoutInput{
		Items: []CheckoutItem{{ProductID: "missing", Quantity: 1}},
	})
	if err == nil {
		t.Fatalf("expected error for unknown product")
	}
	if orders.createCalls != 0 {
		t.Errorf("CreateOrder was called %d times", orders.createCalls)
	}
}
