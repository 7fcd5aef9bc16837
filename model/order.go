package model

import "time"

const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
	OrderCompleted = "completed"
)

// statusFlow is the linear order lifecycle. Each status maps to the only
// status it may advance to.
var statusFlow = map[string]string{
	OrderPending:   OrderConfirmed,
	OrderConfirmed: OrderPreparing,
	OrderPreparing: OrderReady,
	OrderReady:     OrderServed,
	OrderServed:    OrderCompleted,
}

// ValidTransition reports whether an order may move from one status to the
// next. Completed is terminal.
func ValidTransition(from, to string) bool {
	next, ok := statusFlow[from]
	return ok && next == to
}

// Order is an immutable snapshot of a session cart at checkout time. Only
// Status changes afterwards, and only through staff endpoints.
type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	SessionID    string      `json:"session_id" gorm:"index;type:varchar(64)"`
	RestaurantID uint        `json:"restaurant_id" gorm:"index"`
	TableID      uint        `json:"table_id"`
	Status       string      `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Total        float64     `json:"total"`
	Items        []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	OrderID    uint    `json:"order_id" gorm:"index"`
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	Modifiers  string  `json:"modifiers" gorm:"type:text"`
}
