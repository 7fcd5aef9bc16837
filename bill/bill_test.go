package bill

import (
	"testing"

	"dinehub/model"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name          string
		orders        []model.Order
		wantTotal     float64
		wantItemCount int
	}{
		{
			name: "noOrders",
		},
		{
			name: "sumOfStoredTotals",
			orders: []model.Order{
				{Total: 1500},
				{Total: 900},
			},
			wantTotal: 2400,
		},
		{
			name: "itemCountAcrossOrders",
			orders: []model.Order{
				{
					Total: 20,
					Items: []model.OrderItem{
						{Quantity: 2},
						{Quantity: 1},
					},
				},
				{
					Total: 10,
					Items: []model.OrderItem{
						{Quantity: 3},
					},
				},
			},
			wantTotal:     30,
			wantItemCount: 6,
		},
		{
			// The stored total wins even when it disagrees with the lines;
			// the bill never recomputes it.
			name: "storedTotalNotRecomputed",
			orders: []model.Order{
				{
					Total: 99,
					Items: []model.OrderItem{
						{Quantity: 1, UnitPrice: 5},
					},
				},
			},
			wantTotal:     99,
			wantItemCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.orders)
			if got.Total != tt.wantTotal {
				t.Errorf("Aggregate() Total = %v, want %v", got.Total, tt.wantTotal)
			}
			if got.ItemCount != tt.wantItemCount {
				t.Errorf("Aggregate() ItemCount = %d, want %d", got.ItemCount, tt.wantItemCount)
			}
		})
	}
}

func TestQueryLoadingStates(t *testing.T) {
	t.Run("noSession", func(t *testing.T) {
		q := NewQuery("")
		if q.IsLoading() {
			t.Error("IsLoading() = true with no session id; nothing was asked")
		}
		if s := q.Summary(); s.Total != 0 || s.ItemCount != 0 {
			t.Errorf("Summary() = %+v, want zero", s)
		}
	})

	t.Run("sessionPending", func(t *testing.T) {
		q := NewQuery("sess-1")
		if !q.IsLoading() {
			t.Error("IsLoading() = false before first delivery, want true")
		}
		if s := q.Summary(); s.Total != 0 {
			t.Errorf("Summary().Total = %v while loading, want 0", s.Total)
		}
	})

	t.Run("sessionResolved", func(t *testing.T) {
		q := NewQuery("sess-1")
		q.Resolve([]model.Order{{Total: 1500}, {Total: 900}})

		if q.IsLoading() {
			t.Error("IsLoading() = true after delivery, want false")
		}
		if s := q.Summary(); s.Total != 2400 {
			t.Errorf("Summary().Total = %v, want 2400", s.Total)
		}
	})

	t.Run("resolvedEmptyIsNotLoading", func(t *testing.T) {
		q := NewQuery("sess-1")
		q.Resolve(nil)

		if q.IsLoading() {
			t.Error("IsLoading() = true after empty delivery; empty answers are answers")
		}
		if _, ok := q.Result().Value(); !ok {
			t.Error("Result() has no value after empty delivery, want Present")
		}
	})
}
