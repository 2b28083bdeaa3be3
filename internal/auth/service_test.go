package auth

import (
	"context"
	"errors"
	"testing"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register(context.Background(), "Test User", "test@example.com", password, "Burger House")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	_, err := service.Register(context.Background(), "Test User", "test@example.com", "secret", "")
	if err == nil {
		t.Fatalf("expected error for missing establishment name")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	_, err := service.Register(context.Background(), "Test User", "test@example.com", "secret", "Burger House")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = service.Register(context.Background(), "Other User", "test@example.com", "secret", "Other House")
	if err == nil {
		t.Fatalf("expected error for duplicate email")
	}
}

func TestLoginWithWrongPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	_, err := service.Register(context.Background(), "Test User", "test@example.com", "Password@123", "Burger House")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = service.Login("test@example.com", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Burger House", "burger-house"},
		{"  Casa   do   Hamburguer  ", "casa-do-hamburguer"},
		{"Burger House 2!", "burger-house-2"},
	}

	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
