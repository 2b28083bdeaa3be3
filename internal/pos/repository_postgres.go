package pos

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresOrderRepository struct {
	db *pgxpool.Pool
}

func NewPostgresOrderRepository(db *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// CreateOrder writes the order row and its items in one transaction so a
// partial checkout never reaches the database.
func (r *PostgresOrderRepository) CreateOrder(
	ctx context.Context,
	order *Order,
	items []OrderItem,
) error {

	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO orders (
			id, establishment_id, order_number, customer_name, customer_phone,
			order_type, status, payment_status, subtotal, total_amount, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''))
	`,
		order.ID, order.EstablishmentID, order.OrderNumber,
		order.CustomerName, order.CustomerPhone, order.OrderType,
		order.Status, order.PaymentStatus, order.Subtotal,
		order.TotalAmount, order.Notes,
	); err != nil {
		return err
	}

	for i := range items {
		item := &items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.OrderID = order.ID

		sauces, err := json.Marshal(item.SelectedSauces)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (
				id, order_id, product_id, quantity, unit_price,
				total_price, selected_sauces, sauce_price
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			item.ID, item.OrderID, item.ProductID, item.Quantity,
			item.UnitPrice, item.TotalPrice, sauces, item.SaucePrice,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresOrderRepository) ListOrders(
	ctx context.Context,
	establishmentID string,
	limit int,
) ([]Order, error) {

	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, establishment_id, order_number,
		       COALESCE(customer_name, ''), COALESCE(customer_phone, ''),
		       order_type, status, payment_status, subtotal, total_amount,
		       COALESCE(notes, ''), created_at
		FROM orders
		WHERE establishment_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, establishmentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var order Order
		if err := rows.Scan(
			&order.ID, &order.EstablishmentID, &order.OrderNumber,
			&order.CustomerName, &order.CustomerPhone, &order.OrderType,
			&order.Status, &order.PaymentStatus, &order.Subtotal,
			&order.TotalAmount, &order.Notes, &order.CreatedAt,
		); err != nil {
			return nil, err
		}
		order.DeliveryCharge = order.TotalAmount - order.Subtotal
		orders = append(orders, order)
	}

	return orders, rows.Err()
}
