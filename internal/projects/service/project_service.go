package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Arun225295196/SIT725/internal/logging"
	"github.com/Arun225295196/SIT725/internal/projects/domain"
	"github.com/Arun225295196/SIT725/internal/projects/repository"
)

// ProjectService handles project-related business logic and announces
// every successful operation on the broadcaster.
type ProjectService struct {
	store repository.Store
	bus   Broadcaster
	now   func() time.Time
}

// NewProjectService creates a new project service. A nil bus disables events.
func NewProjectService(store repository.Store, bus Broadcaster) *ProjectService {
	if bus == nil {
		bus = nopBroadcaster{}
	}
	return &ProjectService{
		store: store,
		bus:   bus,
		now:   time.Now,
	}
}

// List returns all projects in id order
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.List(ctx)
}

// Get returns one project and records the access.
func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.bus.Broadcast(EventProjectAccessed, ProjectAccessed{
		ProjectID:    p.ID,
		ProjectTitle: p.Title,
		Timestamp:    s.timestamp(),
	})
	return p, nil
}

func (s *ProjectService) Create(ctx context.Context, in domain.CreateInput) (*domain.Project, error) {
	p, err := s.store.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	logging.NewLogger(ctx).LogInfof("projects.create", "created project id=%d", p.ID)
	s.bus.Broadcast(EventProjectCreated, ProjectCreated{
		Project:   *p,
		Message:   fmt.Sprintf(`New project "%s" was created!`, p.Title),
		Timestamp: s.timestamp(),
	})
	return p, nil
}

// Update merges in into the project and broadcasts both versions.
func (s *ProjectService) Update(ctx context.Context, id int64, in domain.UpdateInput) (*domain.Project, error) {
	old, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := s.store.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	logging.NewLogger(ctx).LogInfof("projects.update", "updated project id=%d", p.ID)
	s.bus.Broadcast(EventProjectUpdated, ProjectUpdated{
		Project:    *p,
		OldProject: *old,
		Message:    fmt.Sprintf(`Project "%s" was updated!`, p.Title),
		Timestamp:  s.timestamp(),
	})
	return p, nil
}

// Delete removes the project. It returns domain.ErrNotFound when absent.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}

	logging.NewLogger(ctx).LogInfof("projects.delete", "deleted project id=%d", id)
	s.bus.Broadcast(EventProjectDeleted, ProjectDeleted{
		ProjectID:    p.ID,
		ProjectTitle: p.Title,
		Message:      fmt.Sprintf(`Project "%s" was deleted!`, p.Title),
		Timestamp:    s.timestamp(),
	})
	return nil
}

func (s *ProjectService) ListByCategory(ctx context.Context, category string) ([]domain.Project, error) {
	projects, err := s.store.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	s.bus.Broadcast(EventCategoryAccessed, CategoryAccessed{
		Category:     category,
		ProjectCount: len(projects),
		Timestamp:    s.timestamp(),
	})
	return projects, nil
}

func (s *ProjectService) Stats(ctx context.Context) (domain.Stats, error) {
	projects, err := s.store.List(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	stats := domain.ComputeStats(projects)
	s.bus.Broadcast(EventStatsAccessed, StatsAccessed{
		Stats:     stats,
		Timestamp: s.timestamp(),
	})
	return stats, nil
}

// Reseed replaces every project with samples and asks clients to refetch.
func (s *ProjectService) Reseed(ctx context.Context, samples []domain.CreateInput) error {
	if err := s.store.Reset(ctx, samples); err != nil {
		return fmt.Errorf("reseed: %w", err)
	}

	logging.NewLogger(ctx).LogInfof("projects.reseed", "reseeded %d projects", len(samples))
	s.bus.Broadcast(EventProjectSyncRequested, SyncRequested{
		Message:   "Projects were reset, please refresh",
		Timestamp: s.timestamp(),
	})
	return nil
}

func (s *ProjectService) timestamp() time.Time {
	return s.now().UTC()
}
