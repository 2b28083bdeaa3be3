package pos

import "strings"

// SauceUnitPrice is charged for each sauce beyond the free allowance.
const SauceUnitPrice = 2.00

type Sauce struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AvailableSauces is the fixed condiment list offered with burgers.
var AvailableSauces = []Sauce{
	{ID: "bacon", Name: "Bacon"},
	{ID: "ervas", Name: "Ervas"},
	{ID: "alho", Name: "Alho"},
	{ID: "mostarda-mel", Name: "Mostarda e Mel"},
}

// FreeSauceSlots returns how many sauce selections are free for a
// product: triple burgers (name containing "triplo" or "triple") get 2,
// everything else 1.
func FreeSauceSlots(productName string) int {
	name := strings.ToLower(productName)
	if strings.Contains(name, "triplo") || strings.Contains(name, "triple") {
		return 2
	}
	return 1
}

// SaucePrice charges SauceUnitPrice for each selection beyond the free
// allowance. Selection order decides which sauces are free.
func SaucePrice(productName string, selectedSauces []string) float64 {
	paid := len(selectedSauces) - FreeSauceSlots(productName)
	if paid < 0 {
		paid = 0
	}
	return float64(paid) * SauceUnitPrice
}

// IsSauceFree reports whether a selected sauce falls inside the free
// allowance, by its position in the selection order.
func IsSauceFree(productName, sauceID string, selectedSauces []string) bool {
	for i, id := range selectedSauces {
		if id == sauceID {
			return i < FreeSauceSlots(productName)
		}
	}
	return false
}
