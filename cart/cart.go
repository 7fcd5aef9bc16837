package cart

import "dinehub/model"

// TotalItems sums quantities across the session cart. The fold is
// order-independent and returns 0 for an empty or not-yet-loaded cart.
func TotalItems(items []model.SessionCartItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// Subtotal sums each line's total (unit price plus modifiers, times qty).
func Subtotal(items []model.SessionCartItem) float64 {
	var total float64
	for i := range items {
		total += items[i].LineTotal()
	}
	return total
}
