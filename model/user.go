package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleSuperadmin UserRole = "superadmin"
	RoleCEO        UserRole = "ceo"
	RoleWaiter     UserRole = "waiter"
	RoleUser       UserRole = "user"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type User struct {
	gorm.Model
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email" gorm:"uniqueIndex"`
	PhoneNumber     string     `json:"phone_number"`
	Password        string     `json:"-"`
	Role            UserRole   `json:"role" gorm:"type:varchar(20);default:'user'"`
	Status          string     `json:"status" gorm:"type:varchar(20);default:'pending'"`
	RestaurantID    *uint      `json:"restaurant_id"`
	ApprovedBy      *uint      `json:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at"`
	RejectionReason string     `json:"rejection_reason"`
}

// IsAdmin reports whether the user may enter the admin dashboard. Only the
// exact roles superadmin and ceo pass; a nil user never does.
func (u *User) IsAdmin() bool {
	if u == nil {
		return false
	}
	return u.Role == RoleSuperadmin || u.Role == RoleCEO
}

// IsStaff covers everyone allowed to operate tables and orders.
func (u *User) IsStaff() bool {
	if u == nil {
		return false
	}
	return u.Role == RoleSuperadmin || u.Role == RoleCEO || u.Role == RoleWaiter
}
