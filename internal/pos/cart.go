package pos

// In-memory shopping cart for a single POS session. Pure state, no I/O:
// the service layer persists the resulting order at checkout.

type CartItem struct {
	ProductID      string   `json:"product_id"`
	Name           string   `json:"name"`
	UnitPrice      float64  `json:"unit_price"`
	Quantity       int      `json:"quantity"`
	SelectedSauces []string `json:"selected_sauces"` // in selection order
	SaucePrice     float64  `json:"sauce_price"`
}

// Subtotal is unit price times quantity plus the sauce surcharge.
func (i CartItem) Subtotal() float64 {
	return i.UnitPrice*float64(i.Quantity) + i.SaucePrice
}

type Cart struct {
	Items []CartItem `json:"items"`
}

// Add puts a product in the cart. Adding a product already present
// increments its quantity instead of duplicating the line.
func (c *Cart) Add(productID, name string, unitPrice float64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// SetQuantity updates a line's quantity; zero or less removes the line.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// ToggleSauce adds a sauce to the end of the item's selection order or
// removes it wherever it occurs, preserving the order of the rest, then
// recomputes the surcharge.
func (c *Cart) ToggleSauce(productID, sauceID string, selected bool) {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}

		item := &c.Items[i]
		if selected {
			item.SelectedSauces = append(item.SelectedSauces, sauceID)
		} else {
			kept := item.SelectedSauces[:0]
			for _, id := range item.SelectedSauces {
				if id != sauceID {
					kept = append(kept, id)
				}
			}
			item.SelectedSauces = kept
		}

		item.SaucePrice = SaucePrice(item.Name, item.SelectedSauces)
		return
	}
}

// SetSauces replaces an item's selection order wholesale, as when the
// cart state arrives from a client, and recomputes the surcharge.
func (c *Cart) SetSauces(productID string, sauces []string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].SelectedSauces = sauces
			c.Items[i].SaucePrice = SaucePrice(c.Items[i].Name, sauces)
			return
		}
	}
}

// ItemCount is the total unit count across lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal sums the line subtotals, sauces included.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// DeliveryOptions carries the establishment's delivery configuration.
type DeliveryOptions struct {
	Enabled       bool
	Fee           float64
	FreeThreshold float64
}

// DeliveryCharge is the fee to add on top of the subtotal: zero when
// delivery is disabled, the fee is not configured, or the subtotal
// reaches the free-delivery threshold.
func (c *Cart) DeliveryCharge(opts DeliveryOptions) float64 {
	if !opts.Enabled || opts.Fee <= 0 {
		return 0
	}
	if opts.FreeThreshold > 0 && c.Subtotal() >= opts.FreeThreshold {
		return 0
	}
	return opts.Fee
}

// Total is the subtotal plus any delivery charge.
func (c *Cart) Total(opts DeliveryOptions) float64 {
	return c.Subtotal() + c.DeliveryCharge(opts)
}
