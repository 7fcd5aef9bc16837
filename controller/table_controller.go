package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dinehub/database"
	"dinehub/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func AddTable(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	number := c.PostForm("number")
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Table number is required",
		})
		return
	}

	seats := 0
	if s := c.PostForm("seats"); s != "" {
		seats, _ = strconv.Atoi(s)
	}

	table := model.Table{
		RestaurantID: restaurant.ID,
		Number:       number,
		Seats:        seats,
		QRToken:      uuid.NewString(),
		IsActive:     true,
	}

	if err := database.DB.Create(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to create table: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Table added successfully",
		"data":    table,
	})
}

func GetMyTables(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	var tables []model.Table
	if err := database.DB.Where("restaurant_id = ?", restaurant.ID).Order("number").Find(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to fetch tables: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tables retrieved successfully",
		"data":    tables,
	})
}

func UpdateTable(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	var table model.Table
	if err := database.DB.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurant.ID).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Table not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to fetch table: %v", err),
			})
		}
		return
	}

	if number := c.PostForm("number"); number != "" {
		table.Number = number
	}
	if seats := c.PostForm("seats"); seats != "" {
		seatsInt, err := strconv.Atoi(seats)
		if err != nil || seatsInt < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid seats value",
			})
			return
		}
		table.Seats = seatsInt
	}
	if active := c.PostForm("is_active"); active != "" {
		table.IsActive = active == "true"
	}

	if err := database.DB.Save(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to update table: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Table updated successfully",
		"data":    table,
	})
}

// RotateTableQR mints a new QR token, invalidating printed codes for the
// table.
func RotateTableQR(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	var table model.Table
	if err := database.DB.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurant.ID).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Table not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to fetch table: %v", err),
			})
		}
		return
	}

	table.QRToken = uuid.NewString()
	if err := database.DB.Save(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to rotate QR token: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "QR token rotated",
		"data":    gin.H{"table_id": table.ID, "qr_token": table.QRToken},
	})
}

func DeleteTable(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	var table model.Table
	if err := database.DB.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurant.ID).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Table not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to fetch table: %v", err),
			})
		}
		return
	}

	if err := database.DB.Delete(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to delete table: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Table deleted successfully",
		"data":    gin.H{"table_id": table.ID},
	})
}

// ResolveQR is the storefront entry point: a scanned QR token maps to the
// (restaurant, table) pair the dine-in session will be scoped to.
func ResolveQR(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "QR token is required",
		})
		return
	}

	var table model.Table
	if err := database.DB.Where("qr_token = ? AND is_active = ?", token, true).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Unknown QR code",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to resolve QR code",
			})
		}
		return
	}

	var restaurant model.Restaurant
	if err := database.DB.First(&restaurant, table.RestaurantID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to resolve restaurant",
		})
		return
	}

	if !restaurant.SubscriptionActive(time.Now()) {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Restaurant is not accepting orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"restaurant_id":   restaurant.ID,
			"restaurant_name": restaurant.Name,
			"table_id":        table.ID,
			"table_number":    table.Number,
		},
	})
}
