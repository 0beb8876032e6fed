package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Arun225295196/SIT725/internal/calculator"
)

// Register attaches calculator routes at the root of r.
func (h *Handler) Register(r gin.IRoutes) {
	for _, op := range calculator.Operations {
		r.GET("/"+string(op), h.operate(op))
	}
	r.POST("/calculate", h.calculate)
	r.GET("/api", h.index)
}
