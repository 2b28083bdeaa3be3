package costs

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
// Fixed costs
// --------------------------------------------------
func (r *PostgresRepository) ListFixedCosts(
	ctx context.Context,
	establishmentID string,
) ([]FixedCost, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, establishment_id, name, description, amount,
		       to_char(start_date, 'YYYY-MM-DD'), recurrence, active, created_at
		FROM fixed_costs
		WHERE establishment_id = $1 AND active = TRUE
		ORDER BY name
	`, establishmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fixedCosts []FixedCost
	for rows.Next() {
		var cost FixedCost
		var description sql.NullString
		if err := rows.Scan(
			&cost.ID, &cost.EstablishmentID, &cost.Name, &description,
			&cost.Amount, &cost.StartDate, &cost.Recurrence, &cost.Active, &cost.CreatedAt,
		); err != nil {
			return nil, err
		}
		cost.Description = description.String
		fixedCosts = append(fixedCosts, cost)
	}

	return fixedCosts, rows.Err()
}

func (r *PostgresRepository) CreateFixedCost(ctx context.Context, cost *FixedCost) error {
	if cost.ID == "" {
		cost.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO fixed_costs (id, establishment_id, name, description, amount, start_date, recurrence, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
	`,
		cost.ID, cost.EstablishmentID, cost.Name, cost.Description,
		cost.Amount, cost.StartDate, cost.Recurrence,
	)
	return err
}

func (r *PostgresRepository) UpdateFixedCost(ctx context.Context, cost *FixedCost) error {
	_, err := r.db.Exec(ctx, `
		UPDATE fixed_costs
		SET name = $1,
		    description = $2,
		    amount = $3,
		    start_date = $4,
		    recurrence = $5,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $6 AND establishment_id = $7
	`,
		cost.Name, cost.Description, cost.Amount, cost.StartDate,
		cost.Recurrence, cost.ID, cost.EstablishmentID,
	)
	return err
}

// Cost records are never physically deleted, only flagged inactive.
func (r *PostgresRepository) DeactivateFixedCost(
	ctx context.Context,
	establishmentID, costID string,
) error {

	_, err := r.db.Exec(ctx, `
		UPDATE fixed_costs
		SET active = FALSE, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND establishment_id = $2
	`, costID, establishmentID)
	return err
}

// --------------------------------------------------
// Variable costs
// --------------------------------------------------
func (r *PostgresRepository) ListVariableCosts(
	ctx context.Context,
	establishmentID string,
) ([]VariableCost, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, establishment_id, name, description, quantity, total_cost,
		       unit_cost, unit_measure, supplier,
		       to_char(purchase_date, 'YYYY-MM-DD'),
		       to_char(expiry_date, 'YYYY-MM-DD'),
		       active, created_at
		FROM variable_costs
		WHERE establishment_id = $1 AND active = TRUE
		ORDER BY name
	`, establishmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variableCosts []VariableCost
	for rows.Next() {
		var cost VariableCost
		var description, supplier, expiryDate sql.NullString
		if err := rows.Scan(
			&cost.ID, &cost.EstablishmentID, &cost.Name, &description,
			&cost.Quantity, &cost.TotalCost, &cost.UnitCost, &cost.UnitMeasure,
			&supplier, &cost.PurchaseDate, &expiryDate, &cost.Active, &cost.CreatedAt,
		); err != nil {
			return nil, err
		}
		cost.Description = description.String
		cost.Supplier = supplier.String
		cost.ExpiryDate = expiryDate.String
		variableCosts = append(variableCosts, cost)
	}

	return variableCosts, rows.Err()
}

func (r *PostgresRepository) GetVariableCost(
	ctx context.Context,
	establishmentID, costID string,
) (*VariableCost, error) {

	var cost VariableCost
	var description, supplier, expiryDate sql.NullString

	err := r.db.QueryRow(ctx, `
		SELECT id, establishment_id, name, description, quantity, total_cost,
		       unit_cost, unit_measure, supplier,
		       to_char(purchase_date, 'YYYY-MM-DD'),
		       to_char(expiry_date, 'YYYY-MM-DD'),
		       active, created_at
		FROM variable_costs
		WHERE id = $1 AND establishment_id = $2
	`, costID, establishmentID).Scan(
		&cost.ID, &cost.EstablishmentID, &cost.Name, &description,
		&cost.Quantity, &cost.TotalCost, &cost.UnitCost, &cost.UnitMeasure,
		&supplier, &cost.PurchaseDate, &expiryDate, &cost.Active, &cost.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	cost.Description = description.String
	cost.Supplier = supplier.String
	cost.ExpiryDate = expiryDate.String
	return &cost, nil
}

func (r *PostgresRepository) CreateVariableCost(ctx context.Context, cost *VariableCost) error {
	if cost.ID == "" {
		cost.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO variable_costs (
			id, establishment_id, name, description, quantity, total_cost,
			unit_cost, unit_measure, supplier, purchase_date, expiry_date, active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, '')::date, TRUE)
	`,
		cost.ID, cost.EstablishmentID, cost.Name, cost.Description,
		cost.Quantity, cost.TotalCost, cost.UnitCost, cost.UnitMeasure,
		cost.Supplier, cost.PurchaseDate, cost.ExpiryDate,
	)
	return err
}

func (r *PostgresRepository) UpdateVariableCost(ctx context.Context, cost *VariableCost) error {
	_, err := r.db.Exec(ctx, `
		UPDATE variable_costs
		SET name = $1,
		    description = $2,
		    quantity = $3,
		    total_cost = $4,
		    unit_cost = $5,
		    unit_measure = $6,
		    supplier = $7,
		    purchase_date = $8,
		    expiry_date = NULLIF($9, '')::date,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $10 AND establishment_id = $11
	`,
		cost.Name, cost.Description, cost.Quantity, cost.TotalCost,
		cost.UnitCost, cost.UnitMeasure, cost.Supplier, cost.PurchaseDate,
		cost.ExpiryDate, cost.ID, cost.EstablishmentID,
	)
	return err
}

func (r *PostgresRepository) DeactivateVariableCost(
	ctx context.Context,
	establishmentID, costID string,
) error {

	_, err := r.db.Exec(ctx, `
		UPDATE variable_costs
		SET active = FALSE, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND establishment_id = $2
	`, costID, establishmentID)
	return err
}

// --------------------------------------------------
// Product ingredients
// --------------------------------------------------
func (r *PostgresRepository) ListProductIngredients(
	ctx context.Context,
	establishmentID string,
) ([]ProductIngredient, error) {

	rows, err := r.db.Query(ctx, `
		SELECT pi.id, pi.product_id, pi.variable_cost_id,
		       pi.quantity_used, pi.unit_cost_at_time, pi.total_cost,
		       p.name, vc.name
		FROM product_ingredients pi
		JOIN products p ON p.id = pi.product_id
		JOIN variable_costs vc ON vc.id = pi.variable_cost_id
		WHERE p.establishment_id = $1
		ORDER BY p.name, vc.name
	`, establishmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []ProductIngredient
	for rows.Next() {
		var link ProductIngredient
		if err := rows.Scan(
			&link.ID, &link.ProductID, &link.VariableCostID,
			&link.QuantityUsed, &link.UnitCostAtTime, &link.TotalCost,
			&link.ProductName, &link.IngredientName,
		); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

// CreateProductIngredient inserts only when both ends of the link belong
// to the establishment; a foreign product or cost id writes nothing.
func (r *PostgresRepository) CreateProductIngredient(
	ctx context.Context,
	establishmentID string,
	link *ProductIngredient,
) error {

	if link.ID == "" {
		link.ID = uuid.New().String()
	}

	tag, err := r.db.Exec(ctx, `
		INSERT INTO product_ingredients (
			id, product_id, variable_cost_id, quantity_used, unit_cost_at_time, total_cost
		)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE EXISTS (
			SELECT 1 FROM products
			WHERE id = $2 AND establishment_id = $7
		)
		AND EXISTS (
			SELECT 1 FROM variable_costs
			WHERE id = $3 AND establishment_id = $7
		)
	`,
		link.ID, link.ProductID, link.VariableCostID,
		link.QuantityUsed, link.UnitCostAtTime, link.TotalCost,
		establishmentID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product or ingredient not found")
	}
	return nil
}

func (r *PostgresRepository) UpdateProductIngredient(
	ctx context.Context,
	establishmentID string,
	link *ProductIngredient,
) error {

	tag, err := r.db.Exec(ctx, `
		UPDATE product_ingredients pi
		SET product_id = $1,
		    variable_cost_id = $2,
		    quantity_used = $3,
		    unit_cost_at_time = $4,
		    total_cost = $5
		FROM products p
		WHERE pi.id = $6
		  AND p.id = pi.product_id
		  AND p.establishment_id = $7
		  AND EXISTS (
			SELECT 1 FROM products
			WHERE id = $1 AND establishment_id = $7
		  )
		  AND EXISTS (
			SELECT 1 FROM variable_costs
			WHERE id = $2 AND establishment_id = $7
		  )
	`,
		link.ProductID, link.VariableCostID, link.QuantityUsed,
		link.UnitCostAtTime, link.TotalCost, link.ID, establishmentID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("ingredient link not found")
	}
	return nil
}

// Ingredient links are physically deleted, unlike cost records.
func (r *PostgresRepository) DeleteProductIngredient(
	ctx context.Context,
	establishmentID, linkID string,
) error {

	_, err := r.db.Exec(ctx, `
		DELETE FROM product_ingredients pi
		USING products p
		WHERE pi.id = $1
		  AND p.id = pi.product_id
		  AND p.establishment_id = $2
	`, linkID, establishmentID)
	return err
}

// --------------------------------------------------
// Cost analysis (read-only report rows)
// --------------------------------------------------
func (r *PostgresRepository) ListCostAnalysis(
	ctx context.Context,
	establishmentID string,
) ([]CostAnalysis, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, establishment_id,
		       to_char(period_start, 'YYYY-MM-DD'),
		       to_char(period_end, 'YYYY-MM-DD'),
		       total_fixed_costs, total_variable_costs, total_products_sold,
		       average_cost_per_product, profit_margin_percentage,
		       suggested_price_multiplier
		FROM cost_analysis
		WHERE establishment_id = $1
		ORDER BY period_start DESC
	`, establishmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []CostAnalysis
	for rows.Next() {
		var report CostAnalysis
		if err := rows.Scan(
			&report.ID, &report.EstablishmentID,
			&report.PeriodStart, &report.PeriodEnd,
			&report.TotalFixedCosts, &report.TotalVariableCosts,
			&report.TotalProductsSold, &report.AverageCostPerProduct,
			&report.ProfitMarginPercentage, &report.SuggestedPriceMultiplier,
		); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}
