package customer

import (
	"context"
	"errors"
	"strings"

	"github.com/feateixeira/serve-wise-hub/internal/money"
)

var (
	ErrNoEstablishment = errors.New("establishment id required")
	ErrMissingName     = errors.New("name is required")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CustomerInput struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// GroupInput carries discounts as locale-formatted strings ("5,00");
// non-numeric input coerces to 0.
type GroupInput struct {
	Name               string
	Description        string
	DiscountPercentage string
	DiscountAmount     string
}

// --------------------------------------------------
// Customers
// --------------------------------------------------

func (s *Service) ListCustomers(ctx context.Context, establishmentID string) ([]Customer, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	return s.repo.ListCustomers(ctx, establishmentID)
}

func (s *Service) CreateCustomer(
	ctx context.Context,
	establishmentID string,
	in CustomerInput,
) (*Customer, error) {

	customer, err := buildCustomer(establishmentID, in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *Service) UpdateCustomer(
	ctx context.Context,
	establishmentID, customerID string,
	in CustomerInput,
) (*Customer, error) {

	customer, err := buildCustomer(establishmentID, in)
	if err != nil {
		return nil, err
	}
	customer.ID = customerID

	if err := s.repo.UpdateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *Service) DeactivateCustomer(ctx context.Context, establishmentID, customerID string) error {
	if establishmentID == "" {
		return ErrNoEstablishment
	}
	return s.repo.DeactivateCustomer(ctx, establishmentID, customerID)
}

func buildCustomer(establishmentID string, in CustomerInput) (*Customer, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrMissingName
	}

	return &Customer{
		EstablishmentID: establishmentID,
		Name:            name,
		Phone:           strings.TrimSpace(in.Phone),
		Email:           strings.TrimSpace(in.Email),
		Notes:           strings.TrimSpace(in.Notes),
		Active:          true,
	}, nil
}

// --------------------------------------------------
// Groups
// --------------------------------------------------

func (s *Service) ListGroups(ctx context.Context, establishmentID string) ([]CustomerGroup, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	return s.repo.ListGroups(ctx, establishmentID)
}

func (s *Service) CreateGroup(
	ctx context.Context,
	establishmentID string,
	in GroupInput,
) (*CustomerGroup, error) {

	group, err := buildGroup(establishmentID, in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *Service) UpdateGroup(
	ctx context.Context,
	establishmentID, groupID string,
	in GroupInput,
) (*CustomerGroup, error) {

	group, err := buildGroup(establishmentID, in)
	if err != nil {
		return nil, err
	}
	group.ID = groupID

	if err := s.repo.UpdateGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *Service) DeactivateGroup(ctx context.Context, establishmentID, groupID string) error {
	if establishmentID == "" {
		return ErrNoEstablishment
	}
	return s.repo.DeactivateGroup(ctx, establishmentID, groupID)
}

func buildGroup(establishmentID string, in GroupInput) (*CustomerGroup, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrMissingName
	}

	return &CustomerGroup{
		EstablishmentID:    establishmentID,
		Name:               name,
		Description:        strings.TrimSpace(in.Description),
		DiscountPercentage: money.ParseDecimal(in.DiscountPercentage),
		DiscountAmount:     money.ParseDecimal(in.DiscountAmount),
		Active:             true,
	}, nil
}

// --------------------------------------------------
// Membership
// --------------------------------------------------

func (s *Service) AddMember(ctx context.Context, establishmentID, customerID, groupID string) error {
	if establishmentID == "" {
		return ErrNoEstablishment
	}
	if customerID == "" || groupID == "" {
		return errors.New("customer id and group id are required")
	}
	return s.repo.AddMember(ctx, establishmentID, customerID, groupID)
}

func (s *Service) RemoveMember(ctx context.Context, establishmentID, customerID, groupID string) error {
	if establishmentID == "" {
		return ErrNoEstablishment
	}
	if customerID == "" || groupID == "" {
		return errors.New("customer id and group id are required")
	}
	return s.repo.RemoveMember(ctx, establishmentID, customerID, groupID)
}
