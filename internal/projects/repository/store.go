package repository

import (
	"context"

	"github.com/Arun225295196/SIT725/internal/projects/domain"
)

// Store is the record store behind the projects API. List and
// ListByCategory return projects in ascending id order.
type Store interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Create(ctx context.Context, in domain.CreateInput) (*domain.Project, error)
	Update(ctx context.Context, id int64, in domain.UpdateInput) (*domain.Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Project, error)

	// Reset replaces every record with samples. The id counter keeps
	// counting so identifiers are never handed out twice.
	Reset(ctx context.Context, samples []domain.CreateInput) error

	Ping(ctx context.Context) error
}
