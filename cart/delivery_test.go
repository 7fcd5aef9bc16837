package cart

import (
	"testing"

	"dinehub/model"
	"dinehub/session"
)

func TestDeliveryCartAddAndMerge(t *testing.T) {
	dc := NewDeliveryCart(session.NewMemoryKV())

	dc.Add(Item{MenuItemID: 1, RestaurantID: 10, Name: "Burger", UnitPrice: 8, Quantity: 2})
	dc.Add(Item{MenuItemID: 1, RestaurantID: 10, Name: "Burger", UnitPrice: 8, Quantity: 1})
	dc.Add(Item{MenuItemID: 2, RestaurantID: 10, Name: "Fries", UnitPrice: 3, Quantity: 1})

	items := dc.Items()
	if len(items) != 2 {
		t.Fatalf("Items() len = %d, want 2 (equal lines must merge)", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("merged quantity = %d, want 3", items[0].Quantity)
	}
	if dc.TotalItems() != 4 {
		t.Errorf("TotalItems() = %d, want 4", dc.TotalItems())
	}
}

func TestDeliveryCartModifiersKeepLinesApart(t *testing.T) {
	dc := NewDeliveryCart(session.NewMemoryKV())

	plain := Item{MenuItemID: 1, RestaurantID: 10, Name: "Burger", UnitPrice: 8, Quantity: 1}
	large := plain
	large.Modifiers = []model.SelectedModifier{{Group: "Size", Option: "Large", Price: 2}}

	dc.Add(plain)
	dc.Add(large)

	if len(dc.Items()) != 2 {
		t.Errorf("Items() len = %d, want 2 (different modifiers must not merge)", len(dc.Items()))
	}
}

func TestDeliveryCartReplacedAcrossRestaurants(t *testing.T) {
	dc := NewDeliveryCart(session.NewMemoryKV())

	dc.Add(Item{MenuItemID: 1, RestaurantID: 10, Name: "Burger", UnitPrice: 8, Quantity: 2})
	dc.SetDeliveryFee(4.5)

	dc.Add(Item{MenuItemID: 9, RestaurantID: 20, Name: "Sushi", UnitPrice: 12, Quantity: 1})

	items := dc.Items()
	if len(items) != 1 {
		t.Fatalf("Items() len = %d, want 1 (cart must be replaced)", len(items))
	}
	if items[0].RestaurantID != 20 {
		t.Errorf("RestaurantID = %d, want 20", items[0].RestaurantID)
	}
	if dc.RestaurantID() != 20 {
		t.Errorf("RestaurantID() = %d, want 20", dc.RestaurantID())
	}
	if dc.DeliveryFee() != 0 {
		t.Errorf("DeliveryFee() = %v, want 0 after replacement", dc.DeliveryFee())
	}
}

func TestDeliveryCartStorageKeys(t *testing.T) {
	kv := session.NewMemoryKV()
	dc := NewDeliveryCart(kv)

	dc.Add(Item{MenuItemID: 1, RestaurantID: 10, Name: "Burger", UnitPrice: 8, Quantity: 1})
	dc.SetDeliveryFee(2)

	if _, ok := kv.Get("cart-items"); !ok {
		t.Error("cart-items key not written")
	}
	if v, ok := kv.Get("cart-delivery-fee"); !ok || v != "2" {
		t.Errorf("cart-delivery-fee = %q (ok=%v), want \"2\"", v, ok)
	}

	dc.Clear()
	if _, ok := kv.Get("cart-items"); ok {
		t.Error("cart-items key still present after Clear()")
	}
	if _, ok := kv.Get("cart-delivery-fee"); ok {
		t.Error("cart-delivery-fee key still present after Clear()")
	}
}

func TestDeliveryCartFee(t *testing.T) {
	dc := NewDeliveryCart(session.NewMemoryKV())

	if dc.DeliveryFee() != 0 {
		t.Errorf("DeliveryFee() = %v on empty cart, want 0", dc.DeliveryFee())
	}
	dc.SetDeliveryFee(3.75)
	if dc.DeliveryFee() != 3.75 {
		t.Errorf("DeliveryFee() = %v, want 3.75", dc.DeliveryFee())
	}
}
