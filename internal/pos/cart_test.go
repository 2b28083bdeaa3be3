package pos

import "testing"

func TestCartAddMergesSameProduct(t *testing.T) {
	cart := &Cart{}
	cart.Add("p1", "X-Burger", 25)
	cart.Add("p1", "X-Burger", 25)

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
	if cart.ItemCount() != 2 {
		t.Errorf("expected item count 2, got %d", cart.ItemCount())
	}
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	cart := &Cart{}
	cart.Add("p1", "X-Burger", 25)
	cart.SetQuantity("p1", 0)

	if !cart.IsEmpty() {
		t.Errorf("expected empty cart, got %d lines", len(cart.Items))
	}
}

func TestFreeSauceSlots(t *testing.T) {
	if got := FreeSauceSlots("X-Burger"); got != 1 {
		t.Errorf("regular burger: got %d free slots, want 1", got)
	}
	if got := FreeSauceSlots("X-Burger Triplo"); got != 2 {
		t.Errorf("triplo: got %d free slots, want 2", got)
	}
	if got := FreeSauceSlots("TRIPLE Smash"); got != 2 {
		t.Errorf("triple uppercase: got %d free slots, want 2", got)
	}
}

func TestSaucePriceChargesBeyondAllowance(t *testing.T) {
	// 3 sauces on a single burger: first is free, two are charged.
	if got := SaucePrice("X-Burger", []string{"bacon", "ervas", "alho"}); got != 4.00 {
		t.Errorf("got %v, want 4.00", got)
	}
	// 2 sauces on a triplo fit the allowance.
	if got := SaucePrice("X-Burger Triplo", []string{"bacon", "ervas"}); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if got := SaucePrice("X-Burger", nil); got != 0 {
		t.Errorf("no sauces: got %v, want 0", got)
	}
}

func TestIsSauceFreeFollowsSelectionOrder(t *testing.T) {
	selected := []string{"bacon", "ervas", "alho"}

	if !IsSauceFree("X-Burger", "bacon", selected) {
		t.Errorf("first selected sauce should be free")
	}
	if IsSauceFree("X-Burger", "ervas", selected) {
		t.Errorf("second sauce on a regular burger should be charged")
	}
	if !IsSauceFree("X-Burger Triplo", "ervas", selected) {
		t.Errorf("second sauce on a triplo should be free")
	}
}

func TestToggleSauceRecomputesSurcharge(t *testing.T) {
	cart := &Cart{}
	cart.Add("p1", "X-Burger", 25)
	cart.ToggleSauce("p1", "bacon", true)
	cart.ToggleSauce("p1", "ervas", true)

	if cart.Items[0].SaucePrice != 2.00 {
		t.Errorf("got surcharge %v, want 2.00", cart.Items[0].SaucePrice)
	}

	// Removing the first sauce promotes the second to the free slot.
	cart.ToggleSauce("p1", "bacon", false)
	if cart.Items[0].SaucePrice != 0 {
		t.Errorf("got surcharge %v, want 0", cart.Items[0].SaucePrice)
	}
	if len(cart.Items[0].SelectedSauces) != 1 || cart.Items[0].SelectedSauces[0] != "ervas" {
		t.Errorf("unexpected selection order: %v", cart.Items[0].SelectedSauces)
	}
}

func TestCartSubtotalIncludesSauces(t *testing.T) {
	cart := &Cart{}
	cart.Add("p1", "X-Burger", 25)
	cart.SetQuantity("p1", 2)
	cart.SetSauces("p1", []string{"bacon", "ervas"})

	// 25*2 + one charged sauce
	if got := cart.Subtotal(); got != 52.00 {
		t.Errorf("got subtotal %v, want 52.00", got)
	}
}

func TestDeliveryChargeWaivedAtThreshold(t *testing.T) {
	opts := DeliveryOptions{Enabled: true, Fee: 5, FreeThreshold: 50}

	cart := &Cart{}
	cart.Add("p1", "X-Burger", 49)
	if got := cart.DeliveryCharge(opts); got != 5 {
		t.Errorf("below threshold: got %v, want 5", got)
	}

	cart.Add("p2", "Coca-Cola", 1)
	if got := cart.DeliveryCharge(opts); got != 0 {
		t.Errorf("at threshold: got %v, want 0", got)
	}
}

func TestDeliveryChargeDisabledOrUnconfigured(t *testing.T) {
	cart := &Cart{}
	cart.Add("p1", "X-Burger", 25)

	if got := cart.DeliveryCharge(DeliveryOptions{Enabled: false, Fee: 5}); got != 0 {
		t.Errorf("disabled: got %v, want 0", got)
	}
	if got := cart.DeliveryCharge(DeliveryOptions{Enabled: true, Fee: 0}); got != 0 {
		t.Errorf("no fee configured: got %v, want 0", got)
	}
}

func TestCartTotal(t *testing.T) {
	opts := DeliveryOptions{Enabled: true, Fee: 8, FreeThreshold: 100}

	cart := &Cart{}
	cart.Add("p1", "X-Burger", 30)
	if got := cart.Total(opts); got != 38 {
		t.Errorf("got total %v, want 38", got)
	}
}
