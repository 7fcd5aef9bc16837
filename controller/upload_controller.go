package controller

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"dinehub/uploads"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20

// Tickets backs the two-phase upload: the first phase issues a one-time
// write location, the second consumes it.
var Tickets = uploads.NewTicketStore(10 * time.Minute)

// GenerateUploadURL is phase one. The returned URL is valid for one PUT
// within the ticket TTL.
func GenerateUploadURL(c *gin.Context) {
	ticket := Tickets.Issue()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"upload_url": "/uploads/" + ticket},
	})
}

// ReceiveUpload is phase two: raw bytes PUT against the issued location. Any
// failure must surface as an error status, never a storage id.
func ReceiveUpload(c *gin.Context) {
	ticket := c.Param("ticket")
	if !Tickets.Redeem(ticket) {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Invalid or expired upload ticket",
		})
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to read upload body",
		})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Upload body is empty",
		})
		return
	}
	if len(data) > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Upload exceeds 10MB limit",
		})
		return
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to create upload directory: %v", err),
		})
		return
	}

	storageID := uuid.NewString()
	if err := os.WriteFile(filepath.Join(uploadDir, storageID), data, 0644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to store upload: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"storage_id": storageID},
	})
}
