package domain

import (
	"strings"
	"time"
)

// DefaultCategory is assigned to projects created without a category.
const DefaultCategory = "Uncategorized"

// Project is the single record kept by every store implementation.
// It is storage-agnostic and used across repository, service and HTTP layers.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	Link        string    `json:"link,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateInput carries the caller-supplied fields of a new project.
type CreateInput struct {
	Title       string
	Description string
	Category    string
	Image       string
	Link        string
}

// Normalize trims the required fields and applies the default category.
func (in CreateInput) Normalize() CreateInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	if in.Category == "" {
		in.Category = DefaultCategory
	}
	return in
}

// Validate reports ErrTitleDescriptionRequired when either required field is blank.
func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return ErrTitleDescriptionRequired
	}
	return nil
}

// NewProject builds a project from already validated input.
func NewProject(id int64, in CreateInput, now time.Time) Project {
	in = in.Normalize()
	return Project{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Image:       in.Image,
		Link:        in.Link,
		CreatedAt:   now.UTC(),
	}
}

// UpdateInput is a partial update; nil fields are left untouched.
// ID and CreatedAt are never part of an update.
type UpdateInput struct {
	Title       *string
	Description *string
	Category    *string
	Image       *string
	Link        *string
}

// Apply merges the non-nil fields of in into p.
func (in UpdateInput) Apply(p *Project) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Link != nil {
		p.Link = *in.Link
	}
}

// MatchesCategory is the case-insensitive exact match used by category filters.
func (p Project) MatchesCategory(category string) bool {
	return strings.EqualFold(p.Category, category)
}
