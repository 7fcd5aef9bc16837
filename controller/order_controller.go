package controller

import (
	"errors"
	"fmt"
	"net/http"

	"dinehub/cart"
	"dinehub/database"
	"dinehub/model"
	"dinehub/notify"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Checkout snapshots the session cart into an immutable order and clears the
// cart. The total is computed server-side from the denormalized cart prices.
func Checkout(c *gin.Context) {
	sess, ok := openSession(c)
	if !ok {
		return
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Unexpected error occurred",
			})
		}
	}()

	var items []model.SessionCartItem
	if err := tx.Where("session_id = ?", sess.ID).Find(&items).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to read cart: %v", err),
		})
		return
	}

	if len(items) == 0 {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Cart is empty",
		})
		return
	}

	order := model.Order{
		SessionID:    sess.ID,
		RestaurantID: sess.RestaurantID,
		TableID:      sess.TableID,
		Status:       model.OrderPending,
		Total:        cart.Subtotal(items),
	}
	for _, it := range items {
		order.Items = append(order.Items, model.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
			Modifiers:  it.Modifiers,
		})
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to create order: %v", err),
		})
		return
	}

	if err := tx.Where("session_id = ?", sess.ID).Delete(&model.SessionCartItem{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to clear cart: %v", err),
		})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Transaction failed: %v", err),
		})
		return
	}

	publishSessionEvent(notify.Event{
		SessionID: sess.ID,
		Kind:      notify.KindOrder,
		OrderID:   order.ID,
		Status:    order.Status,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order placed",
		"data":    order,
	})
}

func GetSessionOrders(c *gin.Context) {
	sessionID := c.Param("id")

	var orders []model.Order
	if err := database.DB.Preload("Items").Where("session_id = ?", sessionID).Order("created_at").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// UpdateOrderStatus advances an order along the pending → confirmed →
// preparing → ready → served → completed lifecycle. Staff only.
func UpdateOrderStatus(c *gin.Context) {
	status := c.PostForm("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Status is required",
		})
		return
	}

	var order model.Order
	if err := database.DB.First(&order, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Order not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to fetch order: %v", err),
			})
		}
		return
	}

	if !model.ValidTransition(order.Status, status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Cannot move order from %s to %s", order.Status, status),
		})
		return
	}

	order.Status = status
	if err := database.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to update order: %v", err),
		})
		return
	}

	publishSessionEvent(notify.Event{
		SessionID: order.SessionID,
		Kind:      notify.KindOrder,
		OrderID:   order.ID,
		Status:    order.Status,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated",
		"data":    order,
	})
}

// CloseSessionBill marks the session closed. Devices watching the session's
// event stream see the terminal reset notification.
func CloseSessionBill(c *gin.Context) {
	sess, ok := openSession(c)
	if !ok {
		return
	}

	sess.Status = model.SessionClosed
	if err := database.DB.Save(sess).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to close session: %v", err),
		})
		return
	}

	publishSessionEvent(notify.Event{SessionID: sess.ID, Kind: notify.KindReset})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Session closed",
		"data":    sess,
	})
}

// restaurantIDForStaff scopes staff queries to their tenant. Waiters carry a
// restaurant assignment on their user record; owners fall back to the
// restaurant they own.
func restaurantIDForStaff(c *gin.Context) (uint, bool) {
	user, ok := currentUser(c)
	if !ok {
		return 0, false
	}
	if user.RestaurantID != nil {
		return *user.RestaurantID, true
	}

	restaurant, ok := restaurantForUser(c)
	if !ok {
		return 0, false
	}
	return restaurant.ID, true
}

// GetRestaurantOrders lists the tenant's orders for the staff dashboard,
// optionally filtered by status.
func GetRestaurantOrders(c *gin.Context) {
	restaurantID, ok := restaurantIDForStaff(c)
	if !ok {
		return
	}

	query := database.DB.Preload("Items").Where("restaurant_id = ?", restaurantID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []model.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to fetch orders: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}
