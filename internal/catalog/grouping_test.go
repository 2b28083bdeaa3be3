package catalog

import "testing"

func testCatalog() ([]Product, []Category) {
	categories := []Category{
		{ID: "cat-bebidas", Name: "BEBIDAS"},
		{ID: "cat-burgers", Name: "HAMBÚRGUERES"},
		{ID: "cat-sobremesas", Name: "SOBREMESAS"},
	}
	products := []Product{
		{ID: "p1", Name: "Coca-Cola Lata", CategoryID: "cat-bebidas"},
		{ID: "p2", Name: "X-Burger", CategoryID: "cat-burgers"},
		{ID: "p3", Name: "X-Burger Triplo", CategoryID: "cat-burgers"},
		{ID: "p4", Name: "Pudim", CategoryID: "cat-sobremesas"},
		{ID: "p5", Name: "Item Avulso", CategoryID: ""},
	}
	return products, categories
}

func TestGroupProductsPreferredOrderFirst(t *testing.T) {
	products, categories := testCatalog()

	groups := GroupProducts(products, categories, "")
	if len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(groups))
	}

	// Preferred sections lead even though BEBIDAS products come first in
	// the input; the rest follow in first-occurrence order.
	want := []string{"HAMBÚRGUERES", "BEBIDAS", "SOBREMESAS", FallbackCategory}
	for i, name := range want {
		if groups[i].Category != name {
			t.Errorf("group[%d] = %q, want %q", i, groups[i].Category, name)
		}
	}
}

func TestGroupProductsSearchFiltersBeforeGrouping(t *testing.T) {
	products, categories := testCatalog()

	groups := GroupProducts(products, categories, "burger")
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Category != "HAMBÚRGUERES" {
		t.Errorf("group = %q, want HAMBÚRGUERES", groups[0].Category)
	}
	if len(groups[0].Products) != 2 {
		t.Errorf("expected 2 products, got %d", len(groups[0].Products))
	}
}

func TestGroupProductsSearchIsCaseInsensitive(t *testing.T) {
	products, categories := testCatalog()

	groups := GroupProducts(products, categories, "PUDIM")
	if len(groups) != 1 || groups[0].Category != "SOBREMESAS" {
		t.Fatalf("expected only SOBREMESAS, got %+v", groups)
	}
}

func TestGroupProductsEmptyGroupsOmitted(t *testing.T) {
	products, categories := testCatalog()

	groups := GroupProducts(products, categories, "no-such-product")
	if len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

func TestGroupProductsOrphanGoesToFallback(t *testing.T) {
	products, categories := testCatalog()

	groups := GroupProducts(products, categories, "avulso")
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Category != FallbackCategory {
		t.Errorf("group = %q, want %q", groups[0].Category, FallbackCategory)
	}
}
