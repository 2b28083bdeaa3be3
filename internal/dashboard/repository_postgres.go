package dashboard

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) RevenueBetween(
	ctx context.Context,
	establishmentID string,
	from, to time.Time,
) (float64, int, error) {

	var revenue float64
	var orders int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM orders
		WHERE establishment_id = $1
		  AND status != 'cancelled'
		  AND created_at >= $2 AND created_at < $3
	`, establishmentID, from, to).Scan(&revenue, &orders)
	if err != nil {
		return 0, 0, err
	}
	return revenue, orders, nil
}

func (r *PostgresRepository) DistinctCustomersBetween(
	ctx context.Context,
	establishmentID string,
	from, to time.Time,
) (int, error) {

	var customers int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT customer_name)
		FROM orders
		WHERE establishment_id = $1
		  AND status != 'cancelled'
		  AND customer_name IS NOT NULL AND customer_name != ''
		  AND created_at >= $2 AND created_at < $3
	`, establishmentID, from, to).Scan(&customers)
	if err != nil {
		return 0, err
	}
	return customers, nil
}

func (r *PostgresRepository) RevenueByDay(
	ctx context.Context,
	establishmentID string,
	from, to time.Time,
) ([]DailyRevenue, error) {

	rows, err := r.db.Query(ctx, `
		SELECT to_char(created_at::date, 'YYYY-MM-DD'),
		       COALESCE(SUM(total_amount), 0),
		       COUNT(*)
		FROM orders
		WHERE establishment_id = $1
		  AND status != 'cancelled'
		  AND created_at >= $2 AND created_at < $3
		GROUP BY created_at::date
		ORDER BY created_at::date
	`, establishmentID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []DailyRevenue
	for rows.Next() {
		var day DailyRevenue
		if err := rows.Scan(&day.Date, &day.Revenue, &day.Orders); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, rows.Err()
}

func (r *PostgresRepository) TopProducts(
	ctx context.Context,
	establishmentID string,
	from, to time.Time,
	limit int,
) ([]TopProduct, error) {

	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.name,
		       COALESCE(SUM(i.quantity), 0)::int,
		       COALESCE(SUM(i.total_price), 0)
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		JOIN products p ON p.id = i.product_id
		WHERE o.establishment_id = $1
		  AND o.status != 'cancelled'
		  AND o.created_at >= $2 AND o.created_at < $3
		GROUP BY p.id, p.name
		ORDER BY SUM(i.quantity) DESC, p.name
		LIMIT $4
	`, establishmentID, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []TopProduct
	for rows.Next() {
		var product TopProduct
		if err := rows.Scan(&product.ProductID, &product.Name, &product.Quantity, &product.Revenue); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}
