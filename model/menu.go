package model

import "gorm.io/gorm"

type MenuCategory struct {
	gorm.Model
	RestaurantID uint   `json:"restaurant_id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	SortOrder    int    `json:"sort_order"`
}

type MenuItem struct {
	gorm.Model
	RestaurantID   uint            `json:"restaurant_id"`
	CategoryID     uint            `json:"category_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	Image          string          `json:"image"`
	IsAvailable    bool            `json:"is_available" gorm:"default:true"`
	ModifierGroups []ModifierGroup `json:"modifier_groups" gorm:"foreignKey:MenuItemID"`
}

type ModifierGroup struct {
	gorm.Model
	MenuItemID uint             `json:"menu_item_id"`
	Name       string           `json:"name"`
	Required   bool             `json:"required"`
	Options    []ModifierOption `json:"options" gorm:"foreignKey:GroupID"`
}

type ModifierOption struct {
	gorm.Model
	GroupID uint    `json:"group_id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
}
