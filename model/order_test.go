package model

import "testing"

func TestValidTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pendingToConfirmed", from: OrderPending, to: OrderConfirmed, want: true},
		{name: "confirmedToPreparing", from: OrderConfirmed, to: OrderPreparing, want: true},
		{name: "preparingToReady", from: OrderPreparing, to: OrderReady, want: true},
		{name: "readyToServed", from: OrderReady, to: OrderServed, want: true},
		{name: "servedToCompleted", from: OrderServed, to: OrderCompleted, want: true},
		{name: "noSkippingAhead", from: OrderPending, to: OrderPreparing, want: false},
		{name: "noGoingBack", from: OrderReady, to: OrderPreparing, want: false},
		{name: "completedIsTerminal", from: OrderCompleted, to: OrderPending, want: false},
		{name: "selfTransition", from: OrderConfirmed, to: OrderConfirmed, want: false},
		{name: "unknownFrom", from: "cancelled", to: OrderConfirmed, want: false},
		{name: "unknownTo", from: OrderPending, to: "cancelled", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("ValidTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestUserIsAdmin(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want bool
	}{
		{name: "nilUser", user: nil, want: false},
		{name: "superadmin", user: &User{Role: RoleSuperadmin}, want: true},
		{name: "ceo", user: &User{Role: RoleCEO}, want: true},
		{name: "waiter", user: &User{Role: RoleWaiter}, want: false},
		{name: "user", user: &User{Role: RoleUser}, want: false},
		{name: "emptyRole", user: &User{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.IsAdmin(); got != tt.want {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserIsStaff(t *testing.T) {
	if !(&User{Role: RoleWaiter}).IsStaff() {
		t.Error("IsStaff() = false for waiter, want true")
	}
	if (&User{Role: RoleUser}).IsStaff() {
		t.Error("IsStaff() = true for plain user, want false")
	}
	var nobody *User
	if nobody.IsStaff() {
		t.Error("IsStaff() = true for nil user, want false")
	}
}
