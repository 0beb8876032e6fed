package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Store     string    `json:"store"`
	Backend   string    `json:"backend"`
	Listeners int       `json:"listeners"`
}

// Pinger is satisfied by every project store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ListenerCounter reports connected real-time listeners.
type ListenerCounter interface {
	Count() int
}

type HealthHandler struct {
	serviceName string
	version     string
	backend     string
	store       Pinger
	listeners   ListenerCounter
}

func NewHealthHandler(serviceName, version, backend string, store Pinger, listeners ListenerCounter) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		backend:     backend,
		store:       store,
		listeners:   listeners,
	}
}

// HealthCheck answers 200 when the store responds and 503 otherwise.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status, storeStatus, code := "healthy", "disabled", http.StatusOK
	if h.store != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.store.Ping(pingCtx); err != nil {
			status, storeStatus, code = "degraded", "down", http.StatusServiceUnavailable
		} else {
			storeStatus = "up"
		}
	}

	listeners := 0
	if h.listeners != nil {
		listeners = h.listeners.Count()
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Store:     storeStatus,
		Backend:   h.backend,
		Listeners: listeners,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
