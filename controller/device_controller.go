package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"dinehub/cart"
	"dinehub/database"
	"dinehub/model"
	"dinehub/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Devices holds per-device client state: the session identity triple and the
// delivery cart, keyed by a device id the client carries across requests.
var Devices = session.NewDeviceRegistry()

// createSessionRecord is the CreateFunc the resolver fires after minting a
// new id. FirstOrCreate keeps it idempotent across racing tabs.
func createSessionRecord(sessionID, restaurantID, tableID string) error {
	rid, err := strconv.ParseUint(restaurantID, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid restaurant id %q", restaurantID)
	}
	tid, err := strconv.ParseUint(tableID, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid table id %q", tableID)
	}

	sess := model.DineInSession{
		ID:           sessionID,
		RestaurantID: uint(rid),
		TableID:      uint(tid),
		Status:       model.SessionOpen,
	}
	return database.DB.Where("id = ?", sessionID).FirstOrCreate(&sess).Error
}

// ResolveSession gives a device its stable session id for a (restaurant,
// table) pair. A missing or mismatched stored pair mints a fresh id and
// overwrites the stored triple; the same pair always returns the same id.
func ResolveSession(c *gin.Context) {
	type Request struct {
		DeviceID     string `json:"device_id"`
		RestaurantID uint   `json:"restaurant_id" binding:"required"`
		TableID      uint   `json:"table_id" binding:"required"`
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "restaurant_id and table_id are required",
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

	deviceID := req.DeviceID
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	_, identity := Devices.Device(deviceID)
	resolver := session.NewResolver(identity, createSessionRecord)
	res := resolver.Resolve(
		strconv.FormatUint(uint64(req.RestaurantID), 10),
		strconv.FormatUint(uint64(req.TableID), 10),
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"device_id":  deviceID,
			"session_id": res.SessionID,
			"created":    res.Created,
		},
	})
}

// ResetDevice wipes a device's session identity, forcing the next resolve to
// mint a fresh session.
func ResetDevice(c *gin.Context) {
	deviceID := c.Param("device_id")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Device ID is required",
		})
		return
	}

	_, identity := Devices.Device(deviceID)
	identity.Reset()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Device session reset",
	})
}

func deliveryCartFor(c *gin.Context) (*cart.DeliveryCart, bool) {
	deviceID := c.Param("device_id")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Device ID is required",
		})
		return nil, false
	}
	kv, _ := Devices.Device(deviceID)
	return cart.NewDeliveryCart(kv), true
}

func GetDeliveryCart(c *gin.Context) {
	dc, ok := deliveryCartFor(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items":         dc.Items(),
			"restaurant_id": dc.RestaurantID(),
			"total_items":   dc.TotalItems(),
			"delivery_fee":  dc.DeliveryFee(),
		},
	})
}

// AddToDeliveryCart merges an item into the device's delivery cart. An item
// from a different restaurant replaces the cart; the fee is re-read from the
// new restaurant.
func AddToDeliveryCart(c *gin.Context) {
	dc, ok := deliveryCartFor(c)
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
	if err := database.DB.Where("id = ? AND is_available = ?", req.MenuItemID, true).First(&item).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Menu item not available",
		})
		return
	}

	var restaurant model.Restaurant
	if err := database.DB.First(&restaurant, item.RestaurantID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch restaurant",
		})
		return
	}

	dc.Add(cart.Item{
		MenuItemID:   item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		UnitPrice:    item.Price,
		Quantity:     req.Quantity,
		Modifiers:    req.Modifiers,
	})
	dc.SetDeliveryFee(restaurant.DeliveryFee)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Added to delivery cart",
		"data": gin.H{
			"items":        dc.Items(),
			"total_items":  dc.TotalItems(),
			"delivery_fee": dc.DeliveryFee(),
		},
	})
}

func ClearDeliveryCart(c *gin.Context) {
	dc, ok := deliveryCartFor(c)
	if !ok {
		return
	}

	dc.Clear()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Delivery cart cleared",
	})
}
