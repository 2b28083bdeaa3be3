package catalog

import "strings"

// The POS grid shows these sections first, in this order. Categories not
// listed here follow in order of first occurrence.
var preferredCategoryOrder = []string{
	"HAMBÚRGUERES",
	"ACOMPANHAMENTOS",
	"BEBIDAS",
}

// FallbackCategory groups products whose category was removed.
const FallbackCategory = "OUTROS"

// GroupProducts partitions products into named display groups for the POS
// grid. The search filter (case-insensitive substring on product name) is
// applied before grouping; empty groups are omitted.
// Pure list transformation, inputs are not mutated.
func GroupProducts(products []Product, categories []Category, search string) []ProductGroup {
	categoryNames := make(map[string]string, len(categories))
	for _, cat := range categories {
		categoryNames[cat.ID] = cat.Name
	}

	term := strings.ToLower(strings.TrimSpace(search))

	grouped := make(map[string][]Product)
	var firstSeen []string

	for _, product := range products {
		if term != "" && !strings.Contains(strings.ToLower(product.Name), term) {
			continue
		}

		name, ok := categoryNames[product.CategoryID]
		if !ok || name == "" {
			name = FallbackCategory
		}

		if _, seen := grouped[name]; !seen {
			firstSeen = append(firstSeen, name)
		}
		grouped[name] = append(grouped[name], product)
	}

	var groups []ProductGroup

	for _, name := range preferredCategoryOrder {
		if products := grouped[name]; len(products) > 0 {
			groups = append(groups, ProductGroup{Category: name, Products: products})
			delete(grouped, name)
		}
	}

	for _, name := range firstSeen {
		if products := grouped[name]; len(products) > 0 {
			groups = append(groups, ProductGroup{Category: name, Products: products})
			delete(grouped, name)
		}
	}

	return groups
}
