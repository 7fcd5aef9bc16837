package controller

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"dinehub/database"
	"dinehub/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const uploadDir = "./uploads"

func GetRestaurants(c *gin.Context) {
	var restaurants []model.Restaurant
	if err := database.DB.Preload("PhoneNumbers").Where("is_active = ?", true).Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Fetched restaurants successfully",
		"data":    restaurants,
	})
}

func GetRestaurantByID(c *gin.Context) {
	restaurantID := c.Param("id")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Restaurant ID is required",
		})
		return
	}

	idUint, err := strconv.ParseUint(restaurantID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid restaurant ID format",
		})
		return
	}

	var restaurant model.Restaurant
	result := database.DB.Preload("PhoneNumbers").First(&restaurant, uint(idUint))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Restaurant not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to fetch restaurant",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    restaurant,
	})
}

func GetMyRestaurant(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":            restaurant.ID,
			"name":          restaurant.Name,
			"slug":          restaurant.Slug,
			"description":   restaurant.Description,
			"logo":          restaurant.Logo,
			"address":       restaurant.Address,
			"delivery_fee":  restaurant.DeliveryFee,
			"expiry_date":   restaurant.ExpiryDate,
			"is_active":     restaurant.IsActive,
			"phone_numbers": restaurant.PhoneNumbers,
		},
	})
}

func UpdateMyRestaurant(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
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

	if err := processLogoUpload(c, restaurant); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Logo upload failed: " + err.Error(),
		})
		return
	}

	if name := c.PostForm("name"); name != "" {
		restaurant.Name = name
	}
	if description := c.PostForm("description"); description != "" {
		restaurant.Description = description
	}
	if address := c.PostForm("address"); address != "" {
		restaurant.Address = address
	}
	if fee := c.PostForm("delivery_fee"); fee != "" {
		feeFloat, err := strconv.ParseFloat(fee, 64)
		if err != nil || feeFloat < 0 {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid delivery fee",
			})
			return
		}
		restaurant.DeliveryFee = feeFloat
	}

	if phoneNumbers := c.PostFormArray("phone_numbers"); len(phoneNumbers) > 0 {
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&model.RestaurantPhone{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to clear existing phone numbers: " + err.Error(),
			})
			return
		}

		var newPhones []model.RestaurantPhone
		for _, phone := range phoneNumbers {
			if phone == "" {
				continue
			}
			newPhones = append(newPhones, model.RestaurantPhone{
				RestaurantID: restaurant.ID,
				PhoneNumber:  phone,
			})
		}

		if len(newPhones) > 0 {
			if err := tx.Create(&newPhones).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "Failed to save new phone numbers: " + err.Error(),
				})
				return
			}
		}
		restaurant.PhoneNumbers = newPhones
	}

	if err := tx.Save(restaurant).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to update restaurant: " + err.Error(),
		})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Transaction failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Restaurant updated successfully",
		"data":    restaurant,
	})
}

// ExtendSubscription pushes the tenant's expiry date forward. Superadmin only.
func ExtendSubscription(c *gin.Context) {
	idUint, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid restaurant ID format",
		})
		return
	}

	days, err := strconv.Atoi(c.PostForm("days"))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid or missing days",
		})
		return
	}

	var restaurant model.Restaurant
	if err := database.DB.First(&restaurant, uint(idUint)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Restaurant not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to fetch restaurant",
			})
		}
		return
	}

	base := restaurant.ExpiryDate
	if base.Before(time.Now()) {
		base = time.Now()
	}
	restaurant.ExpiryDate = base.AddDate(0, 0, days)
	restaurant.IsActive = true

	if err := database.DB.Save(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to update subscription",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Subscription extended",
		"data":    gin.H{"id": restaurant.ID, "expiry_date": restaurant.ExpiryDate},
	})
}

// restaurantForUser loads the tenant owned by the authenticated user and
// writes the error response itself when that fails.
func restaurantForUser(c *gin.Context) (*model.Restaurant, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized access",
		})
		return nil, false
	}

	var restaurant model.Restaurant
	result := database.DB.Preload("PhoneNumbers").Where("owner_id = ?", userID.(uint)).First(&restaurant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Restaurant not found for this user",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to fetch restaurant: " + result.Error.Error(),
			})
		}
		return nil, false
	}
	return &restaurant, true
}

func processLogoUpload(c *gin.Context, restaurant *model.Restaurant) error {
	file, err := c.FormFile("logo")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil
		}
		return fmt.Errorf("failed to get uploaded file: %v", err)
	}

	if file.Size > 5<<20 {
		return fmt.Errorf("file too large (max 5MB)")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowedExts := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	}
	if !allowedExts[ext] {
		return fmt.Errorf("invalid file type, only JPG/JPEG/PNG allowed")
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %v", err)
	}

	newFileName := fmt.Sprintf("restaurant-%d-%d%s", restaurant.ID, time.Now().UnixNano(), ext)
	filePath := filepath.Join(uploadDir, newFileName)

	if restaurant.Logo != "" {
		if err := os.Remove(filepath.Join(uploadDir, restaurant.Logo)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete old logo: %v", err)
		}
	}

	if err := c.SaveUploadedFile(file, filePath); err != nil {
		return fmt.Errorf("failed to save file: %v", err)
	}

	restaurant.Logo = newFileName
	return nil
}
