package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"dinehub/bill"
	"dinehub/cart"
	"dinehub/database"
	"dinehub/model"
	"dinehub/notify"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Notifier is wired up in main. Handlers publish session events through it;
// the SSE endpoint delivers them back to the table's devices.
var Notifier *notify.Notifier

func publishSessionEvent(evt notify.Event) {
	if Notifier == nil {
		return
	}
	// Fire-and-forget: a dropped notification is repaired by the next poll,
	// it never fails the mutation that triggered it.
	if err := Notifier.Publish(evt); err != nil {
		log.Printf("failed to publish session event: %v", err)
	}
}

// EnsureSession creates the dine-in session row for a client-minted id. It is
// idempotent per session id, so two tabs racing on the same device converge
// instead of erroring.
func EnsureSession(c *gin.Context) {
	type Request struct {
		SessionID    string `json:"session_id" binding:"required"`
		RestaurantID uint   `json:"restaurant_id" binding:"required"`
		TableID      uint   `json:"table_id" binding:"required"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "session_id, restaurant_id and table_id are required",
		})
		return
	}

	var table model.Table
	if err := database.DB.Where("id = ? AND restaurant_id = ? AND is_active = ?", req.TableID, req.RestaurantID, true).First(&table).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Unknown restaurant or table",
		})
		return
	}

	sess := model.DineInSession{
		ID:           req.SessionID,
		RestaurantID: req.RestaurantID,
		TableID:      req.TableID,
		Status:       model.SessionOpen,
	}
	if err := database.DB.Where("id = ?", req.SessionID).FirstOrCreate(&sess).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to create session: %v", err),
		})
		return
	}

	// A session id is never reused across a different (restaurant, table)
	// pair. A well-behaved client regenerates the id on mismatch, so hitting
	// this means something is replaying ids.
	if sess.RestaurantID != req.RestaurantID || sess.TableID != req.TableID {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "Session belongs to a different table",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Session ready",
		"data":    sess,
	})
}

func GetSession(c *gin.Context) {
	var sess model.DineInSession
	if err := database.DB.First(&sess, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Session not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to fetch session",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sess,
	})
}

// openSession loads the session and rejects the request when it is missing or
// already closed, writing the error response itself.
func openSession(c *gin.Context) (*model.DineInSession, bool) {
	var sess model.DineInSession
	if err := database.DB.First(&sess, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Session not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to fetch session",
			})
		}
		return nil, false
	}

	if sess.Status != model.SessionOpen {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "Session is closed",
		})
		return nil, false
	}
	return &sess, true
}

func GetSessionCart(c *gin.Context) {
	sessionID := c.Param("id")

	var items []model.SessionCartItem
	if err := database.DB.Where("session_id = ?", sessionID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items":       items,
			"total_items": cart.TotalItems(items),
			"subtotal":    cart.Subtotal(items),
		},
	})
}

// AddToSessionCart appends or merges a line into the session cart. Name and
// price are denormalized from the menu item at add time.
func AddToSessionCart(c *gin.Context) {
	sess, ok := openSession(c)
	if !ok {
		return
	}

	type Request struct {
		MenuItemID uint                     `json:"menu_item_id" binding:"required"`
		Quantity   int                      `json:"quantity" binding:"required"`
		Modifiers  []model.SelectedModifier `json:"modifiers"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "menu_item_id and a positive quantity are required",
		})
		return
	}

	var item model.MenuItem
	if err := database.DB.Where("id = ? AND restaurant_id = ? AND is_available = ?", req.MenuItemID, sess.RestaurantID, true).First(&item).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Menu item not available in this restaurant",
		})
		return
	}

	modifiers := model.EncodeModifiers(req.Modifiers)

	var line model.SessionCartItem
	err := database.DB.Where("session_id = ? AND menu_item_id = ? AND modifiers = ?", sess.ID, req.MenuItemID, modifiers).First(&line).Error
	switch {
	case err == nil:
		line.Quantity += req.Quantity
		if err := database.DB.Save(&line).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to update cart: %v", err),
			})
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		line = model.SessionCartItem{
			SessionID:  sess.ID,
			MenuItemID: item.ID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Quantity:   req.Quantity,
			Modifiers:  modifiers,
		}
		if err := database.DB.Create(&line).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to add to cart: %v", err),
			})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to read cart: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Added to cart",
		"data":    line,
	})
}

// ClearSessionCart empties the cart wholesale; lines are never removed one by
// one.
func ClearSessionCart(c *gin.Context) {
	sess, ok := openSession(c)
	if !ok {
		return
	}

	if err := database.DB.Where("session_id = ?", sess.ID).Delete(&model.SessionCartItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to clear cart: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart cleared",
	})
}

// GetSessionBill aggregates all of the session's orders into the running
// bill.
func GetSessionBill(c *gin.Context) {
	sessionID := c.Param("id")
	query := bill.NewQuery(sessionID)

	var orders []model.Order
	if err := database.DB.Preload("Items").Where("session_id = ?", sessionID).Order("created_at").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch orders",
		})
		return
	}
	query.Resolve(orders)
	summary := query.Summary()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"orders":     orders,
			"total_bill": summary.Total,
			"item_count": summary.ItemCount,
		},
	})
}

func CallWaiter(c *gin.Context) {
	sess, ok := openSession(c)
	if !ok {
		return
	}

	publishSessionEvent(notify.Event{SessionID: sess.ID, Kind: notify.KindWaiter})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Waiter notified",
	})
}

func RequestBill(c *gin.Context) {
	sess, ok := openSession(c)
	if !ok {
		return
	}

	publishSessionEvent(notify.Event{SessionID: sess.ID, Kind: notify.KindBill})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bill requested",
	})
}
