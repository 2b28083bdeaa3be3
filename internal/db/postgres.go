package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("connected to Postgres")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		// -------------------------------
		// ESTABLISHMENTS (tenants)
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS establishments (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) UNIQUE NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(50),
			address TEXT,
			logo_url VARCHAR(500),
			settings JSONB NOT NULL DEFAULT '{}',
			subscription_plan VARCHAR(50) NOT NULL DEFAULT 'basic',
			subscription_status VARCHAR(50) NOT NULL DEFAULT 'active',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// USERS + PROFILES
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'OWNER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY,
			user_id UUID UNIQUE NOT NULL REFERENCES users(id),
			establishment_id UUID REFERENCES establishments(id),
			role VARCHAR(50) NOT NULL DEFAULT 'OWNER',
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// CATALOG
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY,
			establishment_id UUID NOT NULL REFERENCES establishments(id),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			image_url VARCHAR(500),
			sort_order INT NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			establishment_id UUID NOT NULL REFERENCES establishments(id),
			category_id UUID REFERENCES categories(id),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			price NUMERIC(12,2) NOT NULL,
			image_url VARCHAR(500),
			sku VARCHAR(100),
			active BOOLEAN NOT NULL DEFAULT TRUE,
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// ORDERS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			establishment_id UUID NOT NULL REFERENCES establishments(id),
			order_number VARCHAR(100) NOT NULL,
			customer_name VARCHAR(255),
			customer_phone VARCHAR(50),
			order_type VARCHAR(50) NOT NULL DEFAULT 'balcao',
			table_number VARCHAR(20),
			status VARCHAR(50) NOT NULL DEFAULT 'completed',
			payment_method VARCHAR(50),
			payment_status VARCHAR(50) NOT NULL DEFAULT 'paid',
			subtotal NUMERIC(12,2) NOT NULL,
			tax_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			discount_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_amount NUMERIC(12,2) NOT NULL,
			notes TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id),
			product_id UUID NOT NULL REFERENCES products(id),
			quantity INT NOT NULL,
			unit_price NUMERIC(12,2) NOT NULL,
			total_price NUMERIC(12,2) NOT NULL,
			selected_sauces JSONB NOT NULL DEFAULT '[]',
			sauce_price NUMERIC(12,2) NOT NULL DEFAULT 0,
			notes TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// COSTS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS fixed_costs (
			id UUID PRIMARY KEY,
			establishment_id UUID NOT NULL REFERENCES establishments(id),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			amount NUMERIC(12,2) NOT NULL,
			start_date DATE NOT NULL,
			recurrence VARCHAR(20) NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS variable_costs (
			id UUID PRIMARY KEY,
			establishment_id UUID NOT NULL REFERENCES establishments(id),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			quantity NUMERIC(12,3) NOT NULL,
			total_cost NUMERIC(12,2) NOT NULL,
			unit_cost NUMERIC(12,4) NOT NULL,
			unit_measure VARCHAR(50) NOT NULL,
			supplier VARCHAR(255),
			purchase_date DATE NOT NULL,
			expiry_date DATE,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS product_ingredients (
			id UUID PRIMARY KEY,
			product_id UUID NOT NULL REFERENCES products(id),
			variable_cost_id UUID NOT NULL REFERENCES variable_costs(id),
			quantity_used NUMERIC(12,3) NOT NULL,
			unit_cost_at_time NUMERIC(12,4) NOT NULL,
			total_cost NUMERIC(12,2) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS cost_analysis (
			id UUID PRIMARY KEY,
			establishment_id UUID NOT NULL REFERENCES establishments(id),
			period_start DATE NOT NULL,
			period_end DATE NOT NULL,
			total_fixed_costs NUMERIC(12,2) NOT NULL,
			total_variable_costs NUMERIC(12,2) NOT NULL,
			total_products_sold INT NOT NULL,
			average_cost_per_product NUMERIC(12,4) NOT NULL,
			profit_margin_percentage NUMERIC(6,2) NOT NULL,
			suggested_price_multiplier NUMERIC(6,3) NOT NULL DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// CUSTOMERS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS customers (
			id UUID PRIMARY KEY,
			establishment_id UUID NOT NULL REFERENCES establishments(id),
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(50),
			email VARCHAR(255),
			notes TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS customer_groups (
			id UUID PRIMARY KEY,
			establishment_id UUID NOT NULL REFERENCES establishments(id),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			discount_percentage NUMERIC(6,2) NOT NULL DEFAULT 0,
			discount_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS customer_group_members (
			id UUID PRIMARY KEY,
			customer_id UUID NOT NULL REFERENCES customers(id),
			group_id UUID NOT NULL REFERENCES customer_groups(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (customer_id, group_id)
		)`,

		// -------------------------------
		// MARKETING SITE LEADS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS site_leads (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(50),
			message TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("schema initialized")
	return nil
}
