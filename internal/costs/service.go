package costs

import (
	"context"
	"errors"
	"strings"

	"github.com/feateixeira/serve-wise-hub/internal/money"
)

var ErrNoEstablishment = errors.New("establishment id required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Typed form inputs
//
// Monetary fields arrive as locale-formatted strings ("1.234,56") and
// are normalized at this boundary; non-numeric input coerces to 0.
// --------------------------------------------------

type FixedCostInput struct {
	Name        string
	Description string
	Amount      string
	StartDate   string
	Recurrence  string
}

type VariableCostInput struct {
	Name         string
	Description  string
	Quantity     string
	TotalCost    string
	UnitMeasure  string
	Supplier     string
	PurchaseDate string
	ExpiryDate   string
}

type ProductIngredientInput struct {
	ProductID      string
	VariableCostID string
	QuantityUsed   string
	UnitCostAtTime string
}

// --------------------------------------------------
// Fixed costs
// --------------------------------------------------

func (s *Service) ListFixedCosts(ctx context.Context, establishmentID string) ([]FixedCost, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	return s.repo.ListFixedCosts(ctx, establishmentID)
}

func (s *Service) CreateFixedCost(
	ctx context.Context,
	establishmentID string,
	in FixedCostInput,
) (*FixedCost, error) {

	cost, err := s.buildFixedCost(establishmentID, in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateFixedCost(ctx, cost); err != nil {
		return nil, err
	}
	return cost, nil
}

func (s *Service) UpdateFixedCost(
	ctx context.Context,
	establishmentID, costID string,
	in FixedCostInput,
) error {

	cost, err := s.buildFixedCost(establishmentID, in)
	if err != nil {
		return err
	}
	cost.ID = costID

	return s.repo.UpdateFixedCost(ctx, cost)
}

func (s *Service) DeleteFixedCost(ctx context.Context, establishmentID, costID string) error {
	if establishmentID == "" {
		return ErrNoEstablishment
	}
	return s.repo.DeactivateFixedCost(ctx, establishmentID, costID)
}

func (s *Service) buildFixedCost(establishmentID string, in FixedCostInput) (*FixedCost, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	if strings.TrimSpace(in.Name) == "" || in.StartDate == "" {
		return nil, errors.New("missing required fields")
	}

	switch in.Recurrence {
	case RecurrenceMonthly, RecurrenceAnnual, RecurrenceOneTime:
	default:
		return nil, errors.New("invalid recurrence")
	}

	return &FixedCost{
		EstablishmentID: establishmentID,
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		Amount:          money.ParseDecimal(in.Amount),
		StartDate:       in.StartDate,
		Recurrence:      in.Recurrence,
		Active:          true,
	}, nil
}

// --------------------------------------------------
// Variable costs
// --------------------------------------------------

func (s *Service) ListVariableCosts(ctx context.Context, establishmentID string) ([]VariableCost, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	return s.repo.ListVariableCosts(ctx, establishmentID)
}

func (s *Service) CreateVariableCost(
	ctx context.Context,
	establishmentID string,
	in VariableCostInput,
) (*VariableCost, error) {

	cost, err := s.buildVariableCost(establishmentID, in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateVariableCost(ctx, cost); err != nil {
		return nil, err
	}
	return cost, nil
}

func (s *Service) UpdateVariableCost(
	ctx context.Context,
	establishmentID, costID string,
	in VariableCostInput,
) error {

	cost, err := s.buildVariableCost(establishmentID, in)
	if err != nil {
		return err
	}
	cost.ID = costID

	return s.repo.UpdateVariableCost(ctx, cost)
}

func (s *Service) DeleteVariableCost(ctx context.Context, establishmentID, costID string) error {
	if establishmentID == "" {
		return ErrNoEstablishment
	}
	return s.repo.DeactivateVariableCost(ctx, establishmentID, costID)
}

func (s *Service) buildVariableCost(establishmentID string, in VariableCostInput) (*VariableCost, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	if strings.TrimSpace(in.Name) == "" || in.UnitMeasure == "" || in.PurchaseDate == "" {
		return nil, errors.New("missing required fields")
	}

	quantity := money.ParseDecimal(in.Quantity)
	totalCost := money.ParseDecimal(in.TotalCost)

	// unit_cost is always derived, never accepted from the client
	var unitCost float64
	if quantity > 0 {
		unitCost = totalCost / quantity
	}

	return &VariableCost{
		EstablishmentID: establishmentID,
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		Quantity:        quantity,
		TotalCost:       totalCost,
		UnitCost:        unitCost,
		UnitMeasure:     in.UnitMeasure,
		Supplier:        in.Supplier,
		PurchaseDate:    in.PurchaseDate,
		ExpiryDate:      in.ExpiryDate,
		Active:          true,
	}, nil
}

// --------------------------------------------------
// Product ingredients
// --------------------------------------------------

func (s *Service) ListProductIngredients(
	ctx context.Context,
	establishmentID string,
) ([]ProductIngredient, error) {

	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	return s.repo.ListProductIngredients(ctx, establishmentID)
}

func (s *Service) CreateProductIngredient(
	ctx context.Context,
	establishmentID string,
	in ProductIngredientInput,
) (*ProductIngredient, error) {

	link, err := s.buildProductIngredient(ctx, establishmentID, in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateProductIngredient(ctx, establishmentID, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *Service) UpdateProductIngredient(
	ctx context.Context,
	establishmentID, linkID string,
	in ProductIngredientInput,
) error {

	link, err := s.buildProductIngredient(ctx, establishmentID, in)
	if err != nil {
		return err
	}
	link.ID = linkID

	return s.repo.UpdateProductIngredient(ctx, establishmentID, link)
}

func (s *Service) DeleteProductIngredient(ctx context.Context, establishmentID, linkID string) error {
	if establishmentID == "" {
		return ErrNoEstablishment
	}
	return s.repo.DeleteProductIngredient(ctx, establishmentID, linkID)
}

func (s *Service) buildProductIngredient(
	ctx context.Context,
	establishmentID string,
	in ProductIngredientInput,
) (*ProductIngredient, error) {

	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	if in.ProductID == "" || in.VariableCostID == "" {
		return nil, errors.New("missing required fields")
	}

	quantityUsed := money.ParseDecimal(in.QuantityUsed)
	unitCostAtTime := money.ParseDecimal(in.UnitCostAtTime)

	// The tenant-scoped lookup doubles as the ownership check on the
	// cost side, so it runs whether or not a snapshot price was sent.
	cost, err := s.repo.GetVariableCost(ctx, establishmentID, in.VariableCostID)
	if err != nil {
		return nil, errors.New("ingredient not found")
	}

	// When the form does not supply a snapshot price, freeze the
	// ingredient's current unit cost.
	if unitCostAtTime == 0 {
		unitCostAtTime = cost.UnitCost
	}

	return &ProductIngredient{
		ProductID:      in.ProductID,
		VariableCostID: in.VariableCostID,
		QuantityUsed:   quantityUsed,
		UnitCostAtTime: unitCostAtTime,
		TotalCost:      quantityUsed * unitCostAtTime,
	}, nil
}

// --------------------------------------------------
// Reports
// --------------------------------------------------

func (s *Service) ListCostAnalysis(ctx context.Context, establishmentID string) ([]CostAnalysis, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	return s.repo.ListCostAnalysis(ctx, establishmentID)
}

// Summary holds the derived totals shown on the cost dashboard cards.
type Summary struct {
	MonthlyFixedTotal  float64 `json:"monthly_fixed_total"`
	TotalVariableCost  float64 `json:"total_variable_cost"`
	AverageUnitCost    float64 `json:"average_unit_cost"`
	ProfitMargin       float64 `json:"profit_margin"`
	SuggestedUnitPrice float64 `json:"suggested_unit_price"`
}

// GetSummary aggregates the establishment's cost records. A zero or
// negative margin falls back to the default of 30%.
func (s *Service) GetSummary(
	ctx context.Context,
	establishmentID string,
	marginPercent float64,
) (*Summary, error) {

	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	if marginPercent <= 0 {
		marginPercent = DefaultProfitMargin
	}

	fixedCosts, err := s.repo.ListFixedCosts(ctx, establishmentID)
	if err != nil {
		return nil, err
	}
	variableCosts, err := s.repo.ListVariableCosts(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	averageUnitCost := AverageUnitCost(variableCosts)

	return &Summary{
		MonthlyFixedTotal:  money.Round2(MonthlyFixedTotal(fixedCosts)),
		TotalVariableCost:  money.Round2(TotalVariableCost(variableCosts)),
		AverageUnitCost:    money.Round2(averageUnitCost),
		ProfitMargin:       marginPercent,
		SuggestedUnitPrice: money.Round2(SuggestedPrice(averageUnitCost, marginPercent)),
	}, nil
}
