package site

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateLead(ctx context.Context, lead *Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO site_leads (id, name, email, phone, message)
		VALUES ($1, $2, $3, $4, $5)
	`, lead.ID, lead.Name, lead.Email, lead.Phone, lead.Message)
	return err
}
