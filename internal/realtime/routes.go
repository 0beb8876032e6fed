package realtime

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the WebSocket and SSE transports.
func (h *Hub) RegisterRoutes(r gin.IRoutes) {
	r.GET("/ws", h.ServeWS)
	r.GET("/api/events", h.ServeSSE)
}
