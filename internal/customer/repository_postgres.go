package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Customers
// --------------------------------------------------
func (r *PostgresRepository) ListCustomers(
	ctx context.Context,
	establishmentID string,
) ([]Customer, error) {

	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.establishment_id, c.name,
		       COALESCE(c.phone, ''), COALESCE(c.email, ''), COALESCE(c.notes, ''),
		       c.active, c.created_at,
		       COALESCE(array_agg(m.group_id::text) FILTER (WHERE m.group_id IS NOT NULL), '{}')
		FROM customers c
		LEFT JOIN customer_group_members m ON m.customer_id = c.id
		WHERE c.establishment_id = $1 AND c.active = TRUE
		GROUP BY c.id
		ORDER BY c.name
	`, establishmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		var cust Customer
		if err := rows.Scan(
			&cust.ID, &cust.EstablishmentID, &cust.Name,
			&cust.Phone, &cust.Email, &cust.Notes,
			&cust.Active, &cust.CreatedAt, &cust.GroupIDs,
		); err != nil {
			return nil, err
		}
		customers = append(customers, cust)
	}

	return customers, rows.Err()
}

func (r *PostgresRepository) CreateCustomer(ctx context.Context, customer *Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO customers (id, establishment_id, name, phone, email, notes, active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
	`,
		customer.ID, customer.EstablishmentID, customer.Name,
		customer.Phone, customer.Email, customer.Notes,
	)
	return err
}

func (r *PostgresRepository) UpdateCustomer(ctx context.Context, customer *Customer) error {
	_, err := r.db.Exec(ctx, `
		UPDATE customers
		SET name = $1,
		    phone = $2,
		    email = $3,
		    notes = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND establishment_id = $6
	`,
		customer.Name, customer.Phone, customer.Email, customer.Notes,
		customer.ID, customer.EstablishmentID,
	)
	return err
}

func (r *PostgresRepository) DeactivateCustomer(
	ctx context.Context,
	establishmentID, customerID string,
) error {

	_, err := r.db.Exec(ctx, `
		UPDATE customers
		SET active = FALSE, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND establishment_id = $2
	`, customerID, establishmentID)
	return err
}

// --------------------------------------------------
// Groups
// --------------------------------------------------
func (r *PostgresRepository) ListGroups(
	ctx context.Context,
	establishmentID string,
) ([]CustomerGroup, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, establishment_id, name, description,
		       discount_percentage, discount_amount, active, created_at
		FROM customer_groups
		WHERE establishment_id = $1 AND active = TRUE
		ORDER BY name
	`, establishmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []CustomerGroup
	for rows.Next() {
		var group CustomerGroup
		var description sql.NullString
		if err := rows.Scan(
			&group.ID, &group.EstablishmentID, &group.Name, &description,
			&group.DiscountPercentage, &group.DiscountAmount, &group.Active, &group.CreatedAt,
		); err != nil {
			return nil, err
		}
		group.Description = description.String
		groups = append(groups, group)
	}

	return groups, rows.Err()
}

func (r *PostgresRepository) CreateGroup(ctx context.Context, group *CustomerGroup) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO customer_groups (
			id, establishment_id, name, description,
			discount_percentage, discount_amount, active
		)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
	`,
		group.ID, group.EstablishmentID, group.Name, group.Description,
		group.DiscountPercentage, group.DiscountAmount,
	)
	return err
}

func (r *PostgresRepository) UpdateGroup(ctx context.Context, group *CustomerGroup) error {
	_, err := r.db.Exec(ctx, `
		UPDATE customer_groups
		SET name = $1,
		    description = $2,
		    discount_percentage = $3,
		    discount_amount = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND establishment_id = $6
	`,
		group.Name, group.Description, group.DiscountPercentage,
		group.DiscountAmount, group.ID, group.EstablishmentID,
	)
	return err
}

func (r *PostgresRepository) DeactivateGroup(
	ctx context.Context,
	establishmentID, groupID string,
) error {

	_, err := r.db.Exec(ctx, `
		UPDATE customer_groups
		SET active = FALSE, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND establishment_id = $2
	`, groupID, establishmentID)
	return err
}

// --------------------------------------------------
// Membership
// --------------------------------------------------
func (r *PostgresRepository) AddMember(
	ctx context.Context,
	establishmentID, customerID, groupID string,
) error {

	// Both sides must belong to the caller's establishment.
	var ok bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM customers c
			JOIN customer_groups g ON g.establishment_id = c.establishment_id
			WHERE c.id = $1 AND g.id = $2 AND c.establishment_id = $3
		)
	`, customerID, groupID, establishmentID).Scan(&ok)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("customer or group not found")
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO customer_group_members (id, customer_id, group_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_id, group_id) DO NOTHING
	`, uuid.New().String(), customerID, groupID)
	return err
}

func (r *PostgresRepository) RemoveMember(
	ctx context.Context,
	establishmentID, customerID, groupID string,
) error {

	_, err := r.db.Exec(ctx, `
		DELETE FROM customer_group_members m
		USING customers c
		WHERE m.customer_id = $1
		  AND m.group_id = $2
		  AND c.id = m.customer_id
		  AND c.establishment_id = $3
	`, customerID, groupID, establishmentID)
	return err
}
