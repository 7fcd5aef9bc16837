package model

import "gorm.io/gorm"

type Table struct {
	gorm.Model
	RestaurantID uint   `json:"restaurant_id"`
	Number       string `json:"number"`
	Seats        int    `json:"seats"`
	QRToken      string `json:"qr_token" gorm:"uniqueIndex"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}
