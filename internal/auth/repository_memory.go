package auth

import "context"

// InMemoryUserRepository is used by unit tests.
type InMemoryUserRepository struct {
	users          map[string]*User
	establishments map[string]string
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:          make(map[string]*User),
		establishments: make(map[string]string),
	}
}

func (r *InMemoryUserRepository) RegisterOwner(
	ctx context.Context,
	user *User,
	establishmentName string,
	establishmentSlug string,
) error {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	r.users[user.Email] = user
	r.establishments[establishmentSlug] = establishmentName
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
