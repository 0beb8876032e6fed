package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Arun225295196/SIT725/internal/projects/domain"
)

// MemoryStore keeps projects in an ordered slice.
type MemoryStore struct {
	mu       sync.RWMutex
	projects []domain.Project
	nextID   int64
	now      func() time.Time
}

// NewMemoryStore creates a store whose first id is seed, preloaded with samples.
func NewMemoryStore(seed int64, samples []domain.CreateInput) (*MemoryStore, error) {
	s := &MemoryStore{
		nextID: seed,
		now:    time.Now,
	}
	if err := s.Reset(context.Background(), samples); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id int64) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	p := s.projects[i]
	return &p, nil
}

func (s *MemoryStore) Create(_ context.Context, in domain.CreateInput) (*domain.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.NewProject(s.nextID, in, s.now())
	s.nextID++
	s.projects = append(s.projects, p)
	return &p, nil
}

func (s *MemoryStore) Update(_ context.Context, id int64, in domain.UpdateInput) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	in.Apply(&s.projects[i])
	p := s.projects[i]
	return &p, nil
}

func (s *MemoryStore) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.projects = append(s.projects[:i], s.projects[i+1:]...)
	return true, nil
}

func (s *MemoryStore) ListByCategory(_ context.Context, category string) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0)
	for _, p := range s.projects {
		if p.MatchesCategory(category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) Reset(_ context.Context, samples []domain.CreateInput) error {
	for _, in := range samples {
		if err := in.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects := make([]domain.Project, 0, len(samples))
	for _, in := range samples {
		projects = append(projects, domain.NewProject(s.nextID, in, s.now()))
		s.nextID++
	}
	s.projects = projects
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// indexOf must be called with s.mu held.
func (s *MemoryStore) indexOf(id int64) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}
