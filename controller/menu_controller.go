package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"dinehub/database"
	"dinehub/model"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func AddCategory(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	var category model.MenuCategory
	category.RestaurantID = restaurant.ID
	category.Name = c.PostForm("name")

	if category.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Category name is required",
		})
		return
	}

	if sortOrder := c.PostForm("sort_order"); sortOrder != "" {
		order, err := strconv.Atoi(sortOrder)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid sort order",
			})
			return
		}
		category.SortOrder = order
	}

	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to create category: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category added successfully",
		"data":    category,
	})
}

func UpdateCategory(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	var category model.MenuCategory
	if err := database.DB.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurant.ID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Category not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to fetch category: %v", err),
			})
		}
		return
	}

	if name := c.PostForm("name"); name != "" {
		category.Name = name
	}
	if sortOrder := c.PostForm("sort_order"); sortOrder != "" {
		order, err := strconv.Atoi(sortOrder)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid sort order",
			})
			return
		}
		category.SortOrder = order
	}

	if err := database.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to update category: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category updated successfully",
		"data":    category,
	})
}

func DeleteCategory(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	var category model.MenuCategory
	if err := database.DB.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurant.ID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Category not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to fetch category: %v", err),
			})
		}
		return
	}

	var itemCount int64
	database.DB.Model(&model.MenuItem{}).Where("category_id = ?", category.ID).Count(&itemCount)
	if itemCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Category still has menu items",
		})
		return
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to delete category: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category deleted successfully",
		"data":    gin.H{"category_id": category.ID},
	})
}

func GetMyCategories(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	var categories []model.MenuCategory
	if err := database.DB.Where("restaurant_id = ?", restaurant.ID).Order("sort_order").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to fetch categories: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetMenuByRestaurant is the public storefront read: categories with their
// available items and modifier groups, in one payload.
func GetMenuByRestaurant(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid restaurant ID format",
		})
		return
	}

	var categories []model.MenuCategory
	if err := database.DB.Where("restaurant_id = ?", uint(restaurantID)).Order("sort_order").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch categories",
		})
		return
	}

	var items []model.MenuItem
	if err := database.DB.Preload("ModifierGroups.Options").
		Where("restaurant_id = ? AND is_available = ?", uint(restaurantID), true).
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch menu items",
		})
		return
	}

	itemsByCategory := make(map[uint][]model.MenuItem)
	for _, item := range items {
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], item)
	}

	menu := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		menu = append(menu, gin.H{
			"category": cat,
			"items":    itemsByCategory[cat.ID],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu retrieved successfully",
		"data":    menu,
	})
}

func GetMenuItemByID(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid menu item ID format",
		})
		return
	}

	var item model.MenuItem
	if err := database.DB.Preload("ModifierGroups.Options").First(&item, uint(itemID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Menu item not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to fetch menu item: %v", err),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu item retrieved successfully",
		"data":    item,
	})
}

func AddMenuItem(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid or missing price",
		})
		return
	}

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid category ID format",
		})
		return
	}

	var item model.MenuItem
	item.RestaurantID = restaurant.ID
	item.CategoryID = uint(categoryID)
	item.Price = price
	item.Name = c.PostForm("name")
	item.Description = c.PostForm("description")
	item.IsAvailable = true
	item.Image = c.PostForm("image")

	if item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Menu item name is required",
		})
		return
	}

	var category model.MenuCategory
	if err := database.DB.Where("id = ? AND restaurant_id = ?", categoryID, restaurant.ID).First(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid category or you don't have permission",
		})
		return
	}

	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to create menu item: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu item added successfully",
		"data":    item,
	})
}

func UpdateMenuItem(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	var item model.MenuItem
	if err := database.DB.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurant.ID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Menu item not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to fetch menu item: %v", err),
			})
		}
		return
	}

	if name := c.PostForm("name"); name != "" {
		item.Name = name
	}
	if description := c.PostForm("description"); description != "" {
		item.Description = description
	}
	if image := c.PostForm("image"); image != "" {
		item.Image = image
	}
	if price := c.PostForm("price"); price != "" {
		priceFloat, err := strconv.ParseFloat(price, 64)
		if err != nil || priceFloat <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid or negative price",
			})
			return
		}
		item.Price = priceFloat
	}
	if available := c.PostForm("is_available"); available != "" {
		item.IsAvailable = available == "true"
	}
	if categoryID := c.PostForm("category_id"); categoryID != "" {
		categoryIDUint, err := strconv.ParseUint(categoryID, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid category ID format",
			})
			return
		}
		var category model.MenuCategory
		if err := database.DB.Where("id = ? AND restaurant_id = ?", categoryIDUint, restaurant.ID).First(&category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid category or you don't have permission",
			})
			return
		}
		item.CategoryID = uint(categoryIDUint)
	}

	if err := database.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to update menu item: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu item updated successfully",
		"data":    item,
	})
}

func DeleteMenuItem(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	var item model.MenuItem
	if err := database.DB.Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurant.ID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Menu item not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to fetch menu item: %v", err),
			})
		}
		return
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to delete menu item: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu item deleted successfully",
		"data":    gin.H{"menu_item_id": item.ID},
	})
}

func GetMyMenuItems(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	searchQuery := c.Query("search")

	var items []model.MenuItem
	query := database.DB.Where("restaurant_id = ?", restaurant.ID)

	if searchQuery != "" {
		searchPattern := "%" + searchQuery + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	if err := query.Preload("ModifierGroups.Options").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to fetch menu items: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Menu items retrieved successfully",
		"data":    items,
	})
}

// BulkAddMenuItems imports menu items from an Excel sheet. Columns:
// category_id, price, name, description. Invalid rows are skipped.
func BulkAddMenuItems(c *gin.Context) {
	restaurant, ok := restaurantForUser(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to open Excel file"})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to parse Excel file"})
		return
	}

	rows, err := xl.GetRows("Sheet1")
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel must have at least one row of data"})
		return
	}

	var items []model.MenuItem
	for _, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}

		categoryID, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			continue
		}

		price, err := strconv.ParseFloat(row[1], 64)
		if err != nil || price <= 0 {
			continue
		}

		name := row[2]
		if name == "" {
			continue
		}

		description := ""
		if len(row) > 3 {
			description = row[3]
		}

		items = append(items, model.MenuItem{
			RestaurantID: restaurant.ID,
			CategoryID:   uint(categoryID),
			Price:        price,
			Name:         name,
			Description:  description,
			IsAvailable:  true,
		})
	}

	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No valid rows found"})
		return
	}

	if err := database.DB.Create(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to insert menu items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bulk menu upload successful",
		"count":   len(items),
	})
}
