package customer

import "context"

type Repository interface {
	// customers (soft delete)
	ListCustomers(ctx context.Context, establishmentID string) ([]Customer, error)
	CreateCustomer(ctx context.Context, customer *Customer) error
	UpdateCustomer(ctx context.Context, customer *Customer) error
	DeactivateCustomer(ctx context.Context, establishmentID, customerID string) error

	// groups (soft delete)
	ListGroups(ctx context.Context, establishmentID string) ([]CustomerGroup, error)
	CreateGroup(ctx context.Context, group *CustomerGroup) error
	UpdateGroup(ctx context.Context, group *CustomerGroup) error
	DeactivateGroup(ctx context.Context, establishmentID, groupID string) error

	// membership (hard delete)
	AddMember(ctx context.Context, establishmentID, customerID, groupID string) error
	RemoveMember(ctx context.Context, establishmentID, customerID, groupID string) error
}
