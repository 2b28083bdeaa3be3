package establishment

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
)

type mockRepository struct {
	updated      bool
	lastSettings Settings
}

func (m *mockRepository) Get(ctx context.Context, establishmentID string) (*Establishment, error) {
	return &Establishment{ID: establishmentID}, nil
}
func (m *mockRepository) Update(ctx context.Context, establishmentID, name, email, phone, address string, settings Settings) error {
	m.updated = true
	m.lastSettings = settings
	return nil
}
func (m *mockRepository) UpdateLogo(ctx context.Context, establishmentID, logoURL string) error {
	return nil
}
func (m *mockRepository) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return &Profile{UserID: userID}, nil
}
func (m *mockRepository) UpdateProfile(ctx context.Context, userID, name, email string) error {
	return nil
}
func (m *mockRepository) EstablishmentForUser(ctx context.Context, userID string) (string, error) {
	return "est-1", nil
}

type mockUploader struct{}

func (m *mockUploader) Upload(ctx context.Context, key string, file *multipart.FileHeader) (string, error) {
	return "https://cdn.example.com/" + key, nil
}

func TestUpdateRejectsNegativeDeliveryValues(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo, &mockUploader{})

	err := service.Update(context.Background(), "est-1", UpdateInput{
		Name:     "Burger House",
		Email:    "contact@example.com",
		Settings: Settings{DeliveryFee: -1},
	})
	if err == nil {
		t.Fatalf("expected error for negative delivery fee")
	}
	if repo.updated {
		t.Errorf("repository was written despite invalid input")
	}
}

func TestUpdateRequiresNameAndEmail(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo, &mockUploader{})

	err := service.Update(context.Background(), "est-1", UpdateInput{Name: " ", Email: "x@y.com"})
	if err == nil {
		t.Fatalf("expected error for blank name")
	}
}

func TestUpdatePersistsGoals(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo, &mockUploader{})

	err := service.Update(context.Background(), "est-1", UpdateInput{
		Name:  "Burger House",
		Email: "contact@example.com",
		Settings: Settings{
			DeliveryFee:        8,
			MonthlyRevenueGoal: 30000,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.updated {
		t.Fatalf("repository was not written")
	}
	if repo.lastSettings.MonthlyRevenueGoal != 30000 {
		t.Errorf("got goal %v, want 30000", repo.lastSettings.MonthlyRevenueGoal)
	}
}

func TestGetRequiresEstablishment(t *testing.T) {
	service := NewService(&mockRepository{}, &mockUploader{})

	_, err := service.Get(context.Background(), "")
	if !errors.Is(err, ErrNoEstablishment) {
		t.Fatalf("expected ErrNoEstablishment, got %v", err)
	}
}
