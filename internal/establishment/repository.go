package establishment

import "context"

type Repository interface {
	Get(ctx context.Context, establishmentID string) (*Establishment, error)
	Update(ctx context.Context, establishmentID string, name, email, phone, address string, settings Settings) error
	UpdateLogo(ctx context.Context, establishmentID, logoURL string) error

	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, userID, name, email string) error

	// EstablishmentForUser backs the tenant-scoping middleware.
	EstablishmentForUser(ctx context.Context, userID string) (string, error)
}
