package cart

import (
	"testing"

	"dinehub/model"
)

func TestTotalItems(t *testing.T) {
	tests := []struct {
		name  string
		items []model.SessionCartItem
		want  int
	}{
		{
			name: "empty",
			want: 0,
		},
		{
			name:  "nilSlice",
			items: nil,
			want:  0,
		},
		{
			name: "twoLines",
			items: []model.SessionCartItem{
				{Quantity: 2},
				{Quantity: 3},
			},
			want: 5,
		},
		{
			name: "singleLine",
			items: []model.SessionCartItem{
				{Quantity: 7},
			},
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalItems(tt.items); got != tt.want {
				t.Errorf("TotalItems() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTotalItemsOrderIndependent(t *testing.T) {
	a := []model.SessionCartItem{{Quantity: 1}, {Quantity: 4}, {Quantity: 2}}
	b := []model.SessionCartItem{{Quantity: 2}, {Quantity: 1}, {Quantity: 4}}

	if TotalItems(a) != TotalItems(b) {
		t.Errorf("TotalItems() depends on order: %d vs %d", TotalItems(a), TotalItems(b))
	}
}

func TestSubtotal(t *testing.T) {
	mods := model.EncodeModifiers([]model.SelectedModifier{
		{Group: "Size", Option: "Large", Price: 2.5},
	})

	tests := []struct {
		name  string
		items []model.SessionCartItem
		want  float64
	}{
		{
			name: "empty",
			want: 0,
		},
		{
			name: "plainLines",
			items: []model.SessionCartItem{
				{UnitPrice: 10, Quantity: 2},
				{UnitPrice: 5, Quantity: 1},
			},
			want: 25,
		},
		{
			name: "modifierSurcharge",
			items: []model.SessionCartItem{
				{UnitPrice: 10, Quantity: 2, Modifiers: mods},
			},
			want: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subtotal(tt.items); got != tt.want {
				t.Errorf("Subtotal() = %v, want %v", got, tt.want)
			}
		})
	}
}
