package customer

import (
	"context"
	"errors"
	"testing"
)

type mockRepository struct {
	customers []Customer
	groups    []CustomerGroup
	lastGroup *CustomerGroup
	members   map[string]string
}

func (m *mockRepository) ListCustomers(ctx context.Context, establishmentID string) ([]Customer, error) {
	return m.customers, nil
}
func (m *mockRepository) CreateCustomer(ctx context.Context, customer *Customer) error {
	m.customers = append(m.customers, *customer)
	return nil
}
func (m *mockRepository) UpdateCustomer(ctx context.Context, customer *Customer) error { return nil }
func (m *mockRepository) DeactivateCustomer(ctx context.Context, establishmentID, customerID string) error {
	return nil
}

func (m *mockRepository) ListGroups(ctx context.Context, establishmentID string) ([]CustomerGroup, error) {
	return m.groups, nil
}
func (m *mockRepository) CreateGroup(ctx context.Context, group *CustomerGroup) error {
	m.lastGroup = group
	return nil
}
func (m *mockRepository) UpdateGroup(ctx context.Context, group *CustomerGroup) error {
	m.lastGroup = group
	return nil
}
func (m *mockRepository) DeactivateGroup(ctx context.Context, establishmentID, groupID string) error {
	return nil
}

func (m *mockRepository) AddMember(ctx context.Context, establishmentID, customerID, groupID string) error {
	if m.members == nil {
		m.members = make(map[string]string)
	}
	m.members[customerID] = groupID
	return nil
}
func (m *mockRepository) RemoveMember(ctx context.Context, establishmentID, customerID, groupID string) error {
	delete(m.members, customerID)
	return nil
}

func TestCreateCustomerRequiresName(t *testing.T) {
	service := NewService(&mockRepository{})

	_, err := service.CreateCustomer(context.Background(), "est-1", CustomerInput{Name: "   "})
	if !errors.Is(err, ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
}

func TestCreateCustomerTrimsFields(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo)

	customer, err := service.CreateCustomer(context.Background(), "est-1", CustomerInput{
		Name:  "  João Silva  ",
		Phone: " 11 99999-0000 ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if customer.Name != "João Silva" {
		t.Errorf("got name %q, want trimmed", customer.Name)
	}
	if !customer.Active {
		t.Errorf("new customers should start active")
	}
}

func TestCreateGroupParsesDiscounts(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo)

	group, err := service.CreateGroup(context.Background(), "est-1", GroupInput{
		Name:               "VIP",
		DiscountPercentage: "10,5",
		DiscountAmount:     "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if group.DiscountPercentage != 10.5 {
		t.Errorf("got percentage %v, want 10.5", group.DiscountPercentage)
	}
	if group.DiscountAmount != 0 {
		t.Errorf("got amount %v, want 0", group.DiscountAmount)
	}
}

func TestMembershipRequiresIDs(t *testing.T) {
	service := NewService(&mockRepository{})

	if err := service.AddMember(context.Background(), "est-1", "", "g1"); err == nil {
		t.Errorf("expected error for missing customer id")
	}
	if err := service.AddMember(context.Background(), "", "c1", "g1"); !errors.Is(err, ErrNoEstablishment) {
		t.Errorf("expected ErrNoEstablishment, got %v", err)
	}
}

func TestServiceRejectsMissingEstablishment(t *testing.T) {
	service := NewService(&mockRepository{})

	if _, err := service.ListCustomers(context.Background(), ""); !errors.Is(err, ErrNoEstablishment) {
		t.Errorf("ListCustomers: expected ErrNoEstablishment, got %v", err)
	}
	if _, err := service.ListGroups(context.Background(), ""); !errors.Is(err, ErrNoEstablishment) {
		t.Errorf("ListGroups: expected ErrNoEstablishment, got %v", err)
	}
}
