package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Arun225295196/SIT725/internal/logging"
	"github.com/Arun225295196/SIT725/internal/projects/domain"
)

const (
	msgNotFound       = "Project not found"
	msgRequired       = "Title and description are required"
	msgInvalidBody    = "Invalid request body"
	msgCreateFailed   = "Error creating project"
	msgUpdateFailed   = "Error updating project"
	msgDeleteFailed   = "Error deleting project"
	msgListFailed     = "Error retrieving projects"
	msgGetFailed      = "Error retrieving project"
	msgCategoryFailed = "Error retrieving projects by category"
	msgStatsFailed    = "Error retrieving project statistics"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "projects.list", msgListFailed, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Success: true, Data: items, Message: "Projects retrieved successfully"})
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "projects.get", msgGetFailed, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Success: true, Data: p, Message: "Project retrieved successfully"})
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, envelope{Message: msgInvalidBody, Error: err.Error()})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		h.fail(c, "projects.create", msgCreateFailed, err)
		return
	}
	c.JSON(http.StatusCreated, envelope{Success: true, Data: p, Message: "Project created successfully"})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, envelope{Message: msgInvalidBody, Error: err.Error()})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		h.fail(c, "projects.update", msgUpdateFailed, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Success: true, Data: p, Message: "Project updated successfully"})
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "projects.delete", msgDeleteFailed, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Success: true, Message: "Project deleted successfully"})
}

func (h *Handler) byCategory(c *gin.Context) {
	category := c.Param("category")

	items, err := h.svc.ListByCategory(c.Request.Context(), category)
	if err != nil {
		h.fail(c, "projects.category", msgCategoryFailed, err)
		return
	}
	c.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    items,
		Message: fmt.Sprintf("Projects in category '%s' retrieved successfully", category),
	})
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, "projects.stats", msgStatsFailed, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Success: true, Data: stats, Message: "Project statistics retrieved successfully"})
}

// fail maps domain errors to 400/404 and everything else to 500.
func (h *Handler) fail(c *gin.Context, op, message string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, envelope{Message: msgNotFound})
	case errors.Is(err, domain.ErrTitleDescriptionRequired):
		c.JSON(http.StatusBadRequest, envelope{Message: msgRequired})
	default:
		logging.NewLogger(c.Request.Context()).LogError(op, err)
		c.JSON(http.StatusInternalServerError, envelope{Message: message, Error: err.Error()})
	}
}

// parseID reads :id. Anything that is not an integer cannot name a
// project, so it gets the same 404 as an unknown id.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, envelope{Message: msgNotFound})
		return 0, false
	}
	return id, true
}
