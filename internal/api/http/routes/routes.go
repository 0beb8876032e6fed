package routes

import (
	"github.com/gin-gonic/gin"

	calchttp "github.com/Arun225295196/SIT725/internal/calculator/http"
	projecthttp "github.com/Arun225295196/SIT725/internal/projects/http"
	"github.com/Arun225295196/SIT725/internal/projects/service"
	"github.com/Arun225295196/SIT725/internal/realtime"
)

type Deps struct {
	Projects *service.ProjectService
	Hub      *realtime.Hub
}

// Register mounts the calculator, projects and real-time endpoints.
func Register(r *gin.Engine, dep Deps) {
	calchttp.New().Register(r)

	projectsGroup := r.Group("/api/projects")
	projecthttp.New(dep.Projects).Register(projectsGroup)

	dep.Hub.RegisterRoutes(r)
}
