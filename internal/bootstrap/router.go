package bootstrap

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/Arun225295196/SIT725/internal/api/http"
	"github.com/Arun225295196/SIT725/internal/api/http/middleware"
	"github.com/Arun225295196/SIT725/internal/api/http/routes"
	"github.com/Arun225295196/SIT725/internal/logging"
	"github.com/Arun225295196/SIT725/internal/projects/service"
	"github.com/Arun225295196/SIT725/internal/realtime"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Production  bool
	CORSOrigins []string
	Store       *Store
	Projects    *service.ProjectService
	Hub         *realtime.Hub
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(gin.CustomRecovery(recovery(dep.Production)))
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store.Backend, dep.Store, dep.Hub)
	healthHandler.RegisterRoutes(r)

	routes.Register(r, routes.Deps{
		Projects: dep.Projects,
		Hub:      dep.Hub,
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	return r
}

// recovery turns a handler panic into a 500 JSON body. The panic value is
// only echoed outside production.
func recovery(production bool) gin.RecoveryFunc {
	return func(c *gin.Context, err any) {
		logging.NewLogger(c.Request.Context()).LogError("panic", fmt.Errorf("%v", err))

		detail := "Internal server error"
		if !production {
			detail = fmt.Sprint(err)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Something went wrong!",
			"error":   detail,
		})
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
