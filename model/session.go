package model

import (
	"encoding/json"
	"time"
)

const (
	SessionOpen   = "open"
	SessionClosed = "closed"
)

// DineInSession is keyed by the client-minted session id, not an
// auto-increment column, so the creation mutation can be idempotent.
type DineInSession struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	RestaurantID uint      `json:"restaurant_id" gorm:"index"`
	TableID      uint      `json:"table_id"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:'open'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SelectedModifier is denormalized into the cart row at add time so later
// price changes on the menu never move an already-added line.
type SelectedModifier struct {
	Group  string  `json:"group"`
	Option string  `json:"option"`
	Price  float64 `json:"price"`
}

type SessionCartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SessionID  string    `json:"session_id" gorm:"index;type:varchar(64)"`
	MenuItemID uint      `json:"menu_item_id"`
	Name       string    `json:"name"`
	UnitPrice  float64   `json:"unit_price"`
	Quantity   int       `json:"quantity"`
	Modifiers  string    `json:"modifiers" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EncodeModifiers serializes a modifier selection for storage. Two equal
// selections always encode to the same string, which is what cart merging
// compares.
func EncodeModifiers(mods []SelectedModifier) string {
	if len(mods) == 0 {
		return ""
	}
	data, err := json.Marshal(mods)
	if err != nil {
		return ""
	}
	return string(data)
}

func DecodeModifiers(raw string) []SelectedModifier {
	if raw == "" {
		return nil
	}
	var mods []SelectedModifier
	if err := json.Unmarshal([]byte(raw), &mods); err != nil {
		return nil
	}
	return mods
}

// LineTotal is the unit price plus modifier surcharges, times quantity.
func (i *SessionCartItem) LineTotal() float64 {
	unit := i.UnitPrice
	for _, m := range DecodeModifiers(i.Modifiers) {
		unit += m.Price
	}
	return unit * float64(i.Quantity)
}
