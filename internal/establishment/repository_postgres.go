package establishment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Establishment
// --------------------------------------------------
func (r *PostgresRepository) Get(
	ctx context.Context,
	establishmentID string,
) (*Establishment, error) {

	if establishmentID == "" {
		return nil, errors.New("establishment id required")
	}

	var est Establishment
	var phone, address, logoURL sql.NullString
	var rawSettings []byte

	err := r.db.QueryRow(ctx, `
		SELECT
			id, name, slug, email, phone, address, logo_url,
			settings, subscription_plan, subscription_status, created_at
		FROM establishments
		WHERE id = $1
	`, establishmentID).Scan(
		&est.ID,
		&est.Name,
		&est.Slug,
		&est.Email,
		&phone,
		&address,
		&logoURL,
		&rawSettings,
		&est.SubscriptionPlan,
		&est.SubscriptionStatus,
		&est.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	est.Phone = phone.String
	est.Address = address.String
	est.LogoURL = logoURL.String

	if len(rawSettings) > 0 {
		if err := json.Unmarshal(rawSettings, &est.Settings); err != nil {
			return nil, err
		}
	}

	return &est, nil
}

func (r *PostgresRepository) Update(
	ctx context.Context,
	establishmentID string,
	name, email, phone, address string,
	settings Settings,
) error {

	rawSettings, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		UPDATE establishments
		SET name = $1,
		    email = $2,
		    phone = $3,
		    address = $4,
		    settings = $5,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
	`, name, email, phone, address, rawSettings, establishmentID)

	return err
}

func (r *PostgresRepository) UpdateLogo(
	ctx context.Context,
	establishmentID string,
	logoURL string,
) error {

	_, err := r.db.Exec(ctx, `
		UPDATE establishments
		SET logo_url = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, logoURL, establishmentID)

	return err
}

// --------------------------------------------------
// Profile
// --------------------------------------------------
func (r *PostgresRepository) GetProfile(
	ctx context.Context,
	userID string,
) (*Profile, error) {

	var p Profile
	var establishmentID sql.NullString

	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, establishment_id, role, name, email
		FROM profiles
		WHERE user_id = $1
	`, userID).Scan(&p.ID, &p.UserID, &establishmentID, &p.Role, &p.Name, &p.Email)
	if err != nil {
		return nil, errors.New("profile not found")
	}

	p.EstablishmentID = establishmentID.String
	return &p, nil
}

func (r *PostgresRepository) UpdateProfile(
	ctx context.Context,
	userID, name, email string,
) error {

	_, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET name = $1, email = $2, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $3
	`, name, email, userID)

	return err
}

// --------------------------------------------------
// Tenant scoping (SECURITY)
// --------------------------------------------------
func (r *PostgresRepository) EstablishmentForUser(
	ctx context.Context,
	userID string,
) (string, error) {

	var establishmentID sql.NullString

	err := r.db.QueryRow(ctx, `
		SELECT establishment_id
		FROM profiles
		WHERE user_id = $1
	`, userID).Scan(&establishmentID)
	if err != nil {
		return "", err
	}

	if !establishmentID.Valid {
		return "", errors.New("no establishment linked to user")
	}

	return establishmentID.String, nil
}
