package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// RegisterOwner creates users, establishments and profiles rows in one
// transaction so a failed signup never leaves an orphan tenant.
func (r *PostgresUserRepository) RegisterOwner(
	ctx context.Context,
	user *User,
	establishmentName string,
	establishmentSlug string,
) error {

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	establishmentID := uuid.New().String()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO users (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Name, user.Email, user.Password, user.Role); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO establishments (id, name, slug, email)
		VALUES ($1, $2, $3, $4)
	`, establishmentID, establishmentName, establishmentSlug, user.Email); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO profiles (id, user_id, establishment_id, role, name, email)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.New().String(), user.ID, establishmentID, user.Role, user.Name, user.Email); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresUserRepository) ExistsByEmail(email string) (bool, error) {
	query := `SELECT 1 FROM users WHERE email=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, email)

	var exists int
	err := row.Scan(&exists)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByEmail(email string) (*User, error) {
	query := `
		SELECT id, name, email, password, role
		FROM users WHERE email=$1
	`
	row := r.db.QueryRow(context.Background(), query, email)

	user := &User{}
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}
