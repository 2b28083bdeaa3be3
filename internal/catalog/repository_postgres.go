package catalog

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
// Products
// --------------------------------------------------
func (r *PostgresRepository) ListProducts(
	ctx context.Context,
	establishmentID string,
) ([]Product, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, establishment_id, category_id, name, description,
		       price, image_url, sku, active, sort_order, created_at
		FROM products
		WHERE establishment_id = $1 AND active = TRUE
		ORDER BY name
	`, establishmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *PostgresRepository) GetProduct(
	ctx context.Context,
	establishmentID, productID string,
) (*Product, error) {

	var p Product
	var categoryID, description, imageURL, sku sql.NullString

	err := r.db.QueryRow(ctx, `
		SELECT id, establishment_id, category_id, name, description,
		       price, image_url, sku, active, sort_order, created_at
		FROM products
		WHERE id = $1 AND establishment_id = $2
	`, productID, establishmentID).Scan(
		&p.ID, &p.EstablishmentID, &categoryID, &p.Name, &description,
		&p.Price, &imageURL, &sku, &p.Active, &p.SortOrder, &p.CreatedAt,
	)
	if err != nil {
		return nil, errors.New("product not found")
	}

	p.CategoryID = categoryID.String
	p.Description = description.String
	p.ImageURL = imageURL.String
	p.SKU = sku.String
	return &p, nil
}

func (r *PostgresRepository) CreateProduct(ctx context.Context, product *Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO products (
			id, establishment_id, category_id, name, description,
			price, image_url, sku, active, sort_order
		)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, TRUE, $9)
	`,
		product.ID, product.EstablishmentID, product.CategoryID,
		product.Name, product.Description, product.Price,
		product.ImageURL, product.SKU, product.SortOrder,
	)
	return err
}

// UpdateProduct never touches image_url: the stored image survives form
// edits and is replaced only through UpdateProductImage.
func (r *PostgresRepository) UpdateProduct(ctx context.Context, product *Product) error {
	_, err := r.db.Exec(ctx, `
		UPDATE products
		SET category_id = NULLIF($1, ''),
		    name = $2,
		    description = $3,
		    price = $4,
		    sku = $5,
		    sort_order = $6,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $7 AND establishment_id = $8
	`,
		product.CategoryID, product.Name, product.Description, product.Price,
		product.SKU, product.SortOrder,
		product.ID, product.EstablishmentID,
	)
	return err
}

func (r *PostgresRepository) UpdateProductImage(
	ctx context.Context,
	establishmentID, productID, imageURL string,
) error {

	_, err := r.db.Exec(ctx, `
		UPDATE products
		SET image_url = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND establishment_id = $3
	`, imageURL, productID, establishmentID)
	return err
}

// Products are physically deleted, unlike cost records.
func (r *PostgresRepository) DeleteProduct(
	ctx context.Context,
	establishmentID, productID string,
) error {

	_, err := r.db.Exec(ctx, `
		DELETE FROM products
		WHERE id = $1 AND establishment_id = $2
	`, productID, establishmentID)
	return err
}

// --------------------------------------------------
// Categories
// --------------------------------------------------
func (r *PostgresRepository) ListCategories(
	ctx context.Context,
	establishmentID string,
) ([]Category, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, establishment_id, name, description, image_url,
		       sort_order, active, created_at
		FROM categories
		WHERE establishment_id = $1 AND active = TRUE
		ORDER BY sort_order, name
	`, establishmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var cat Category
		var description, imageURL sql.NullString
		if err := rows.Scan(
			&cat.ID, &cat.EstablishmentID, &cat.Name, &description,
			&imageURL, &cat.SortOrder, &cat.Active, &cat.CreatedAt,
		); err != nil {
			return nil, err
		}
		cat.Description = description.String
		cat.ImageURL = imageURL.String
		categories = append(categories, cat)
	}

	return categories, rows.Err()
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, establishment_id, name, description, image_url, sort_order, active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
	`,
		category.ID, category.EstablishmentID, category.Name,
		category.Description, category.ImageURL, category.SortOrder,
	)
	return err
}

// UpdateCategory leaves image_url alone for the same reason as
// UpdateProduct.
func (r *PostgresRepository) UpdateCategory(ctx context.Context, category *Category) error {
	_, err := r.db.Exec(ctx, `
		UPDATE categories
		SET name = $1,
		    description = $2,
		    sort_order = $3,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND establishment_id = $5
	`,
		category.Name, category.Description,
		category.SortOrder, category.ID, category.EstablishmentID,
	)
	return err
}

func (r *PostgresRepository) DeleteCategory(
	ctx context.Context,
	establishmentID, categoryID string,
) error {

	_, err := r.db.Exec(ctx, `
		DELETE FROM categories
		WHERE id = $1 AND establishment_id = $2
	`, categoryID, establishmentID)
	return err
}

// --------------------------------------------------
// row scanning
// --------------------------------------------------
type pgRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanProducts(rows pgRows) ([]Product, error) {
	var products []Product
	for rows.Next() {
		var p Product
		var categoryID, description, imageURL, sku sql.NullString
		if err := rows.Scan(
			&p.ID, &p.EstablishmentID, &categoryID, &p.Name, &description,
			&p.Price, &imageURL, &sku, &p.Active, &p.SortOrder, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.CategoryID = categoryID.String
		p.Description = description.String
		p.ImageURL = imageURL.String
		p.SKU = sku.String
		products = append(products, p)
	}
	return products, rows.Err()
}
