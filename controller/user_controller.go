package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"dinehub/database"
	"dinehub/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// currentUser resolves the authenticated principal to its user record. The
// result distinguishes unauthenticated (no user_id in context) from a missing
// record, mirroring the gate's loading/absent/present handling.
func currentUser(c *gin.Context) (*model.User, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized access",
		})
		return nil, false
	}

	var user model.User
	if err := database.DB.First(&user, userID.(uint)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "User not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to fetch user",
			})
		}
		return nil, false
	}
	return &user, true
}

func GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// GetPendingUsersCount backs the admin sidebar badge. Admin roles only; the
// route never exists for anyone else.
func GetPendingUsersCount(c *gin.Context) {
	var count int64
	if err := database.DB.Model(&model.User{}).Where("status = ?", model.StatusPending).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to count pending users",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"count": count},
	})
}

func GetPendingUsers(c *gin.Context) {
	var users []model.User
	if err := database.DB.Where("status = ?", model.StatusPending).Order("created_at").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch pending users",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
	})
}

// ApproveUser approves a pending user, optionally assigning a role and a
// restaurant, and records who approved and when.
func ApproveUser(c *gin.Context) {
	approver, ok := currentUser(c)
	if !ok {
		return
	}

	var user model.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "User not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to fetch user: %v", err),
			})
		}
		return
	}

	if user.Status != model.StatusPending {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "User is not pending approval",
		})
		return
	}

	if role := c.PostForm("role"); role != "" {
		switch model.UserRole(role) {
		case model.RoleCEO, model.RoleWaiter, model.RoleUser:
			user.Role = model.UserRole(role)
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid role",
			})
			return
		}
	}

	now := time.Now()
	user.Status = model.StatusApproved
	user.ApprovedBy = &approver.ID
	user.ApprovedAt = &now
	user.RejectionReason = ""

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to approve user: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User approved",
		"data":    user,
	})
}

func RejectUser(c *gin.Context) {
	approver, ok := currentUser(c)
	if !ok {
		return
	}

	reason := c.PostForm("reason")
	if reason == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Rejection reason is required",
		})
		return
	}

	var user model.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "User not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   fmt.Sprintf("Failed to fetch user: %v", err),
			})
		}
		return
	}

	if user.Status != model.StatusPending {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "User is not pending approval",
		})
		return
	}

	now := time.Now()
	user.Status = model.StatusRejected
	user.ApprovedBy = &approver.ID
	user.ApprovedAt = &now
	user.RejectionReason = reason

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to reject user: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User rejected",
		"data":    user,
	})
}
