package costs

import "context"

type Repository interface {
	// fixed costs (soft delete)
	ListFixedCosts(ctx context.Context, establishmentID string) ([]FixedCost, error)
	CreateFixedCost(ctx context.Context, cost *FixedCost) error
	UpdateFixedCost(ctx context.Context, cost *FixedCost) error
	DeactivateFixedCost(ctx context.Context, establishmentID, costID string) error

	// variable costs (soft delete)
	ListVariableCosts(ctx context.Context, establishmentID string) ([]VariableCost, error)
	GetVariableCost(ctx context.Context, establishmentID, costID string) (*VariableCost, error)
	CreateVariableCost(ctx context.Context, cost *VariableCost) error
	UpdateVariableCost(ctx context.Context, cost *VariableCost) error
	DeactivateVariableCost(ctx context.Context, establishmentID, costID string) error

	// product ingredient links (hard delete). Writes verify that both
	// the product and the variable cost belong to the establishment.
	ListProductIngredients(ctx context.Context, establishmentID string) ([]ProductIngredient, error)
	CreateProductIngredient(ctx context.Context, establishmentID string, link *ProductIngredient) error
	UpdateProductIngredient(ctx context.Context, establishmentID string, link *ProductIngredient) error
	DeleteProductIngredient(ctx context.Context, establishmentID, linkID string) error

	// precomputed report rows (read-only)
	ListCostAnalysis(ctx context.Context, establishmentID string) ([]CostAnalysis, error)
}
