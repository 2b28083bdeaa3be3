package costs

import (
	"context"
	"errors"
	"testing"
)

type mockRepository struct {
	fixedCosts            []FixedCost
	variableCosts         []VariableCost
	lastVariable          *VariableCost
	lastLink              *ProductIngredient
	lastLinkEstablishment string
}

func (m *mockRepository) ListFixedCosts(ctx context.Context, establishmentID string) ([]FixedCost, error) {
	return m.fixedCosts, nil
}
func (m *mockRepository) CreateFixedCost(ctx context.Context, cost *FixedCost) error { return nil }
func (m *mockRepository) UpdateFixedCost(ctx context.Context, cost *FixedCost) error { return nil }
func (m *mockRepository) DeactivateFixedCost(ctx context.Context, establishmentID, costID string) error {
	return nil
}

func (m *mockRepository) ListVariableCosts(ctx context.Context, establishmentID string) ([]VariableCost, error) {
	return m.variableCosts, nil
}
func (m *mockRepository) GetVariableCost(ctx context.Context, establishmentID, costID string) (*VariableCost, error) {
	for i := range m.variableCosts {
		if m.variableCosts[i].ID == costID {
			return &m.variableCosts[i], nil
		}
	}
	return nil, errors.New("not found")
}
func (m *mockRepository) CreateVariableCost(ctx context.Context, cost *VariableCost) error {
	m.lastVariable = cost
	return nil
}
func (m *mockRepository) UpdateVariableCost(ctx context.Context, cost *VariableCost) error {
	m.lastVariable = cost
	return nil
}
func (m *mockRepository) DeactivateVariableCost(ctx context.Context, establishmentID, costID string) error {
	return nil
}

func (m *mockRepository) ListProductIngredients(ctx context.Context, establishmentID string) ([]ProductIngredient, error) {
	return nil, nil
}
func (m *mockRepository) CreateProductIngredient(ctx context.Context, establishmentID string, link *ProductIngredient) error {
	m.lastLinkEstablishment = establishmentID
	m.lastLink = link
	return nil
}
func (m *mockRepository) UpdateProductIngredient(ctx context.Context, establishmentID string, link *ProductIngredient) error {
	m.lastLinkEstablishment = establishmentID
	m.lastLink = link
	return nil
}
func (m *mockRepository) DeleteProductIngredient(ctx context.Context, establishmentID, linkID string) error {
	return nil
}

func (m *mockRepository) ListCostAnalysis(ctx context.Context, establishmentID string) ([]CostAnalysis, error) {
	return nil, nil
}

func TestCreateVariableCostDerivesUnitCost(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo)

	cost, err := service.CreateVariableCost(context.Background(), "est-1", VariableCostInput{
		Name:         "Carne",
		Quantity:     "10",
		TotalCost:    "250,00",
		UnitMeasure:  "kg",
		PurchaseDate: "2026-08-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cost.UnitCost != 25 {
		t.Errorf("got unit cost %v, want 25", cost.UnitCost)
	}
}

func TestCreateVariableCostZeroQuantity(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo)

	cost, err := service.CreateVariableCost(context.Background(), "est-1", VariableCostInput{
		Name:         "Carne",
		Quantity:     "0",
		TotalCost:    "250,00",
		UnitMeasure:  "kg",
		PurchaseDate: "2026-08-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cost.UnitCost != 0 {
		t.Errorf("got unit cost %v, want 0", cost.UnitCost)
	}
}

func TestCreateFixedCostRejectsInvalidRecurrence(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo)

	_, err := service.CreateFixedCost(context.Background(), "est-1", FixedCostInput{
		Name:       "Aluguel",
		Amount:     "3000",
		StartDate:  "2026-08-01",
		Recurrence: "weekly",
	})
	if err == nil {
		t.Fatalf("expected error for invalid recurrence")
	}
}

func TestCreateProductIngredientSnapshotsCurrentCost(t *testing.T) {
	repo := &mockRepository{
		variableCosts: []VariableCost{
			{ID: "vc-1", Name: "Carne", UnitCost: 25, Active: true},
		},
	}
	service := NewService(repo)

	link, err := service.CreateProductIngredient(context.Background(), "est-1", ProductIngredientInput{
		ProductID:      "p1",
		VariableCostID: "vc-1",
		QuantityUsed:   "0,2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if link.UnitCostAtTime != 25 {
		t.Errorf("got snapshot cost %v, want 25", link.UnitCostAtTime)
	}
	if link.TotalCost != 5 {
		t.Errorf("got total cost %v, want 5", link.TotalCost)
	}
}

func TestCreateProductIngredientRejectsForeignIngredient(t *testing.T) {
	// The repository holds no variable costs for this tenant, so the
	// ownership lookup must fail even though a snapshot price was sent.
	repo := &mockRepository{}
	service := NewService(repo)

	_, err := service.CreateProductIngredient(context.Background(), "est-1", ProductIngredientInput{
		ProductID:      "p1",
		VariableCostID: "vc-belonging-to-someone-else",
		QuantityUsed:   "0,2",
		UnitCostAtTime: "3,50",
	})
	if err == nil {
		t.Fatalf("expected error for ingredient outside the establishment")
	}
	if repo.lastLink != nil {
		t.Errorf("link was written despite failed ownership check")
	}
}

func TestProductIngredientWritesCarryTenant(t *testing.T) {
	repo := &mockRepository{
		variableCosts: []VariableCost{
			{ID: "vc-1", Name: "Carne", UnitCost: 25, Active: true},
		},
	}
	service := NewService(repo)

	_, err := service.CreateProductIngredient(context.Background(), "est-1", ProductIngredientInput{
		ProductID:      "p1",
		VariableCostID: "vc-1",
		QuantityUsed:   "0,2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastLinkEstablishment != "est-1" {
		t.Errorf("create passed establishment %q to the repository", repo.lastLinkEstablishment)
	}

	repo.lastLinkEstablishment = ""
	err = service.UpdateProductIngredient(context.Background(), "est-1", "link-1", ProductIngredientInput{
		ProductID:      "p1",
		VariableCostID: "vc-1",
		QuantityUsed:   "0,3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastLinkEstablishment != "est-1" {
		t.Errorf("update passed establishment %q to the repository", repo.lastLinkEstablishment)
	}
}

func TestGetSummaryMarginFallback(t *testing.T) {
	repo := &mockRepository{
		variableCosts: []VariableCost{
			{ID: "vc-1", Name: "Carne", UnitCost: 10, Active: true},
		},
	}
	service := NewService(repo)

	summary, err := service.GetSummary(context.Background(), "est-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.ProfitMargin != DefaultProfitMargin {
		t.Errorf("got margin %v, want %v", summary.ProfitMargin, DefaultProfitMargin)
	}
	if summary.SuggestedUnitPrice != 13 {
		t.Errorf("got suggested price %v, want 13", summary.SuggestedUnitPrice)
	}
}

func TestServiceRejectsMissingEstablishment(t *testing.T) {
	service := NewService(&mockRepository{})

	if _, err := service.ListFixedCosts(context.Background(), ""); !errors.Is(err, ErrNoEstablishment) {
		t.Errorf("ListFixedCosts: expected ErrNoEstablishment, got %v", err)
	}
	if _, err := service.GetSummary(context.Background(), "", 30); !errors.Is(err, ErrNoEstablishment) {
		t.Errorf("GetSummary: expected ErrNoEstablishment, got %v", err)
	}
}
