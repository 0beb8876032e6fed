package http

import (
	"github.com/Arun225295196/SIT725/internal/projects/domain"
	"github.com/Arun225295196/SIT725/internal/projects/service"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

// envelope is the response shape shared by every projects endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type createReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

func (r createReq) input() domain.CreateInput {
	return domain.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Image,
		Link:        r.Link,
	}
}

// updateReq leaves absent fields nil so they are not overwritten.
type updateReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
	Link        *string `json:"link"`
}

func (r updateReq) input() domain.UpdateInput {
	return domain.UpdateInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Image,
		Link:        r.Link,
	}
}
