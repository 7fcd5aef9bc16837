package model

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string            `json:"name"`
	Slug         string            `json:"slug" gorm:"uniqueIndex"`
	Description  string            `json:"description"`
	Logo         string            `json:"logo"`
	Address      string            `json:"address"`
	OwnerID      uint              `json:"owner_id"`
	DeliveryFee  float64           `json:"delivery_fee"`
	IsActive     bool              `json:"is_active" gorm:"default:true"`
	ExpiryDate   time.Time         `json:"expiry_date"`
	PhoneNumbers []RestaurantPhone `json:"phone_numbers" gorm:"foreignKey:RestaurantID"`
}

type RestaurantPhone struct {
	gorm.Model
	RestaurantID uint   `json:"restaurant_id"`
	PhoneNumber  string `json:"phone_number"`
}

// SubscriptionActive reports whether the tenant's subscription covers now.
// A zero expiry date means the restaurant was never activated.
func (r *Restaurant) SubscriptionActive(now time.Time) bool {
	return r.IsActive && !r.ExpiryDate.IsZero() && now.Before(r.ExpiryDate)
}
