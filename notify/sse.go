package notify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SSEHandler streams a session's notification events to the storefront, so a
// table's devices see order updates without polling.
func SSEHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Session ID is required"})
			return
		}

		w := c.Writer
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		subscriberID := uuid.New().String()
		events := hub.Subscribe(sessionID, subscriberID)
		defer hub.Unsubscribe(sessionID, subscriberID)

		fmt.Fprintf(w, ": connected\n\n")
		fmt.Fprintf(w, "retry: 2000\n\n")
		w.Flush()

		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-c.Request.Context().Done():
				return

			case <-ticker.C:
				fmt.Fprintf(w, ": keepalive\n\n")
				w.Flush()

			case evt, ok := <-events:
				if !ok {
					return
				}
				data, err := json.Marshal(evt)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "event: %s\n", evt.Kind)
				fmt.Fprintf(w, "data: %s\n\n", data)
				w.Flush()
			}
		}
	}
}
