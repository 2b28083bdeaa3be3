package pos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/feateixeira/serve-wise-hub/internal/catalog"
	"github.com/feateixeira/serve-wise-hub/internal/establishment"
	"github.com/feateixeira/serve-wise-hub/internal/money"
)

var (
	ErrNoEstablishment = errors.New("establishment id required")
	ErrEmptyCart       = errors.New("cart is empty")
)

// ProductReader resolves authoritative, tenant-scoped product data.
// Prices always come from here, never from the client.
type ProductReader interface {
	GetProduct(ctx context.Context, establishmentID, productID string) (*catalog.Product, error)
}

// CatalogReader serves the product grid.
type CatalogReader interface {
	GetSnapshot(ctx context.Context, establishmentID string) (*catalog.Snapshot, error)
}

// SettingsReader exposes the establishment's delivery configuration.
type SettingsReader interface {
	Get(ctx context.Context, establishmentID string) (*establishment.Establishment, error)
}

type Service struct {
	orders   OrderRepository
	products ProductReader
	grid     CatalogReader
	settings SettingsReader
}

func NewService(
	orders OrderRepository,
	products ProductReader,
	grid CatalogReader,
	settings SettingsReader,
) *Service {
	return &Service{
		orders:   orders,
		products: products,
		grid:     grid,
		settings: settings,
	}
}

// --------------------------------------------------
// POS catalog
// --------------------------------------------------

// CatalogView is everything the sale screen needs in one response.
type CatalogView struct {
	Groups                []catalog.ProductGroup `json:"groups"`
	Sauces                []Sauce                `json:"sauces"`
	DeliveryFee           float64                `json:"delivery_fee"`
	DeliveryFreeThreshold float64                `json:"delivery_free_threshold"`
}

func (s *Service) GetCatalog(
	ctx context.Context,
	establishmentID, search string,
) (*CatalogView, error) {

	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}

	snap, err := s.grid.GetSnapshot(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	est, err := s.settings.Get(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	return &CatalogView{
		Groups:                catalog.GroupProducts(snap.Products, snap.Categories, search),
		Sauces:                AvailableSauces,
		DeliveryFee:           est.Settings.DeliveryFee,
		DeliveryFreeThreshold: est.Settings.DeliveryFreeThreshold,
	}, nil
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------

type CheckoutItem struct {
	ProductID      string   `json:"product_id"`
	Quantity       int      `json:"quantity"`
	SelectedSauces []string `json:"selected_sauces"`
}

type CheckoutInput struct {
	CustomerName  string
	CustomerPhone string
	Delivery      bool
	Items         []CheckoutItem
}

// Checkout validates the cart, reprices it from stored products, and
// persists the order with its items. An empty cart is rejected before
// any write is attempted.
func (s *Service) Checkout(
	ctx context.Context,
	establishmentID string,
	in CheckoutInput,
) (*Order, error) {

	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}

	cart := &Cart{}
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			continue
		}

		product, err := s.products.GetProduct(ctx, establishmentID, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("unknown product %s", line.ProductID)
		}

		cart.Add(product.ID, product.Name, product.Price)
		cart.SetQuantity(product.ID, line.Quantity)
		cart.SetSauces(product.ID, line.SelectedSauces)
	}

	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	est, err := s.settings.Get(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	opts := DeliveryOptions{
		Enabled:       in.Delivery,
		Fee:           est.Settings.DeliveryFee,
		FreeThreshold: est.Settings.DeliveryFreeThreshold,
	}

	customerName := in.CustomerName
	if customerName == "" {
		customerName = defaultCustomerName
	}

	orderType := OrderTypeCounter
	var notes string
	if in.Delivery {
		orderType = OrderTypeDelivery
		notes = "Entrega solicitada"
	}

	order := &Order{
		EstablishmentID: establishmentID,
		OrderNumber:     fmt.Sprintf("PDV-%d", time.Now().UnixMilli()),
		CustomerName:    customerName,
		CustomerPhone:   in.CustomerPhone,
		OrderType:       orderType,
		Status:          "completed",
		PaymentStatus:   "paid",
		Subtotal:        money.Round2(cart.Subtotal()),
		DeliveryCharge:  money.Round2(cart.DeliveryCharge(opts)),
		TotalAmount:     money.Round2(cart.Total(opts)),
		Notes:           notes,
	}

	items := make([]OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, OrderItem{
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			TotalPrice:     money.Round2(line.Subtotal()),
			SelectedSauces: line.SelectedSauces,
			SaucePrice:     line.SaucePrice,
		})
	}

	if err := s.orders.CreateOrder(ctx, order, items); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, establishmentID string, limit int) ([]Order, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	return s.orders.ListOrders(ctx, establishmentID, limit)
}
