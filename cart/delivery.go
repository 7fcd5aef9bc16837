package cart

import (
	"encoding/json"
	"strconv"

	"dinehub/model"
	"dinehub/session"
)

// Storage keys devices already hold carts under; the spelling is load-bearing.
const (
	keyItems       = "cart-items"
	keyDeliveryFee = "cart-delivery-fee"
)

// Item is a delivery-cart line. Unlike the session cart it lives in the
// device's persistent store, not the database, and survives across visits.
type Item struct {
	MenuItemID   uint                     `json:"menu_item_id"`
	RestaurantID uint                     `json:"restaurant_id"`
	Name         string                   `json:"name"`
	UnitPrice    float64                  `json:"unit_price"`
	Quantity     int                      `json:"quantity"`
	Modifiers    []model.SelectedModifier `json:"modifiers,omitempty"`
}

// DeliveryCart holds items from a single restaurant at a time. Adding an item
// from a different restaurant replaces the whole cart.
type DeliveryCart struct {
	kv session.KV
}

func NewDeliveryCart(kv session.KV) *DeliveryCart {
	return &DeliveryCart{kv: kv}
}

func (c *DeliveryCart) Items() []Item {
	raw, ok := c.kv.Get(keyItems)
	if !ok || raw == "" {
		return nil
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

// RestaurantID returns the restaurant the cart currently belongs to, or 0
// when the cart is empty.
func (c *DeliveryCart) RestaurantID() uint {
	items := c.Items()
	if len(items) == 0 {
		return 0
	}
	return items[0].RestaurantID
}

// Add merges the item into the cart. A different restaurant's item clears the
// cart first; equal item+modifier lines merge quantities.
func (c *DeliveryCart) Add(item Item) {
	items := c.Items()
	if len(items) > 0 && items[0].RestaurantID != item.RestaurantID {
		items = nil
		c.kv.Delete(keyDeliveryFee)
	}

	key := model.EncodeModifiers(item.Modifiers)
	merged := false
	for i := range items {
		if items[i].MenuItemID == item.MenuItemID && model.EncodeModifiers(items[i].Modifiers) == key {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	c.save(items)
}

func (c *DeliveryCart) Clear() {
	c.kv.Delete(keyItems)
	c.kv.Delete(keyDeliveryFee)
}

func (c *DeliveryCart) TotalItems() int {
	total := 0
	for _, it := range c.Items() {
		total += it.Quantity
	}
	return total
}

func (c *DeliveryCart) SetDeliveryFee(fee float64) {
	c.kv.Set(keyDeliveryFee, strconv.FormatFloat(fee, 'f', -1, 64))
}

func (c *DeliveryCart) DeliveryFee() float64 {
	raw, ok := c.kv.Get(keyDeliveryFee)
	if !ok {
		return 0
	}
	fee, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return fee
}

func (c *DeliveryCart) save(items []Item) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.kv.Set(keyItems, string(data))
}
