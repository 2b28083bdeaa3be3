package auth

import "context"

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	// RegisterOwner creates the user, their establishment and the owner
	// profile atomically. establishmentID is generated by the repository.
	RegisterOwner(ctx context.Context, user *User, establishmentName, establishmentSlug string) error
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (*User, error)
}
