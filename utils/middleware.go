package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// IsAdminRole gates the admin dashboard. Only the exact strings "superadmin"
// and "ceo" pass; anything else, including an empty role, is denied.
func IsAdminRole(role string) bool {
	return role == "superadmin" || role == "ceo"
}

// IsStaffRole covers roles allowed to operate tables and orders.
func IsStaffRole(role string) bool {
	return IsAdminRole(role) || role == "waiter"
}

func requireRole(allowed func(string) bool, denial string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		role, err := ExtractRoleFromToken(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if !allowed(role) {
			c.JSON(http.StatusForbidden, gin.H{"error": denial})
			c.Abort()
			return
		}

		userID, err := ExtractIDFromToken(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token ID"})
			c.Abort()
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)

		c.Next()
	}
}

// AdminMiddleware protects the admin dashboard routes.
func AdminMiddleware() gin.HandlerFunc {
	return requireRole(IsAdminRole, "Forbidden: Admin access required")
}

// StaffMiddleware protects table and order operation routes.
func StaffMiddleware() gin.HandlerFunc {
	return requireRole(IsStaffRole, "Forbidden: Staff access required")
}

// AuthMiddleware only requires a valid token, any role.
func AuthMiddleware() gin.HandlerFunc {
	return requireRole(func(string) bool { return true }, "")
}

func ExtractRoleFromToken(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("invalid token format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	role, ok := claims["user_role"].(string)
	if !ok {
		return "", errors.New("role not found in token")
	}

	return role, nil
}

func ExtractIDFromToken(authHeader string) (uint, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, errors.New("invalid token format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return 0, err
	}

	idFloat, ok := claims["id"].(float64)
	if !ok {
		return 0, errors.New("id not found or invalid type")
	}

	return uint(idFloat), nil
}
