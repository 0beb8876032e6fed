package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arun225295196/SIT725/internal/projects/domain"
	"github.com/Arun225295196/SIT725/internal/projects/repository"
)

type recorded struct {
	event string
	data  any
}

type recordingBus struct {
	mu     sync.Mutex
	events []recorded
}

func (b *recordingBus) Broadcast(event string, data any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, recorded{event, data})
}

func (b *recordingBus) last(t *testing.T) recorded {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(t, b.events)
	return b.events[len(b.events)-1]
}

func (b *recordingBus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

// failingStore returns err from every call.
type failingStore struct {
	repository.Store
	err error
}

func (f failingStore) List(context.Context) ([]domain.Project, error) { return nil, f.err }
func (f failingStore) Get(context.Context, int64) (*domain.Project, error) {
	return nil, f.err
}
func (f failingStore) Create(context.Context, domain.CreateInput) (*domain.Project, error) {
	return nil, f.err
}
func (f failingStore) ListByCategory(context.Context, string) ([]domain.Project, error) {
	return nil, f.err
}
func (f failingStore) Reset(context.Context, []domain.CreateInput) error { return f.err }

var fixedNow = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

func setupService(t *testing.T) (*ProjectService, *recordingBus) {
	store, err := repository.NewMemoryStore(1, []domain.CreateInput{
		{Title: "Sample Project 1", Description: "First", Category: "Web Development"},
		{Title: "Sample Project 2", Description: "Second", Category: "Mobile App"},
		{Title: "Sample Project 3", Description: "Third", Category: "Data Science"},
	})
	require.NoError(t, err)

	bus := &recordingBus{}
	svc := NewProjectService(store, bus)
	svc.now = func() time.Time { return fixedNow }
	return svc, bus
}

func TestProjectService_Get(t *testing.T) {
	ctx := context.Background()
	svc, bus := setupService(t)

	t.Run("found emits projectAccessed", func(t *testing.T) {
		p, err := svc.Get(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Sample Project 2", p.Title)

		ev := bus.last(t)
		assert.Equal(t, EventProjectAccessed, ev.event)
		assert.Equal(t, ProjectAccessed{ProjectID: 2, ProjectTitle: "Sample Project 2", Timestamp: fixedNow}, ev.data)
	})

	t.Run("missing emits nothing", func(t *testing.T) {
		before := bus.count()
		_, err := svc.Get(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, before, bus.count())
	})
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()
	svc, bus := setupService(t)

	p, err := svc.Create(ctx, domain.CreateInput{Title: "Portfolio", Description: "Site"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.ID)

	ev := bus.last(t)
	assert.Equal(t, EventProjectCreated, ev.event)
	payload := ev.data.(ProjectCreated)
	assert.Equal(t, `New project "Portfolio" was created!`, payload.Message)
	assert.Equal(t, *p, payload.Project)

	t.Run("validation failure emits nothing", func(t *testing.T) {
		before := bus.count()
		_, err := svc.Create(ctx, domain.CreateInput{Category: "Testing"})
		assert.ErrorIs(t, err, domain.ErrTitleDescriptionRequired)
		assert.Equal(t, before, bus.count())
	})
}

func TestProjectService_Update(t *testing.T) {
	ctx := context.Background()
	svc, bus := setupService(t)
	title := "Renamed"

	p, err := svc.Update(ctx, 1, domain.UpdateInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", p.Title)

	payload := bus.last(t).data.(ProjectUpdated)
	assert.Equal(t, "Sample Project 1", payload.OldProject.Title)
	assert.Equal(t, "Renamed", payload.Project.Title)
	assert.Equal(t, `Project "Renamed" was updated!`, payload.Message)

	_, err = svc.Update(ctx, 50, domain.UpdateInput{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, bus := setupService(t)

	require.NoError(t, svc.Delete(ctx, 3))
	ev := bus.last(t)
	assert.Equal(t, EventProjectDeleted, ev.event)
	assert.Equal(t, ProjectDeleted{
		ProjectID:    3,
		ProjectTitle: "Sample Project 3",
		Message:      `Project "Sample Project 3" was deleted!`,
		Timestamp:    fixedNow,
	}, ev.data)

	assert.ErrorIs(t, svc.Delete(ctx, 3), domain.ErrNotFound)
	_, err := svc.Get(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectService_ListByCategory(t *testing.T) {
	svc, bus := setupService(t)

	got, err := svc.ListByCategory(context.Background(), "MOBILE APP")
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, CategoryAccessed{Category: "MOBILE APP", ProjectCount: 1, Timestamp: fixedNow}, bus.last(t).data)
}

func TestProjectService_Stats(t *testing.T) {
	svc, bus := setupService(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProjects)
	assert.Equal(t, int64(3), stats.RecentProjects[0].ID)

	ev := bus.last(t)
	assert.Equal(t, EventStatsAccessed, ev.event)
	assert.Equal(t, stats, ev.data.(StatsAccessed).Stats)
}

func TestProjectService_Reseed(t *testing.T) {
	ctx := context.Background()
	svc, bus := setupService(t)

	require.NoError(t, svc.Reseed(ctx, []domain.CreateInput{{Title: "Only", Description: "One"}}))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(4), all[0].ID)
	assert.Equal(t, EventProjectSyncRequested, bus.last(t).event)
}

func TestProjectService_StoreErrorsDoNotEmit(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")
	bus := &recordingBus{}
	svc := NewProjectService(failingStore{err: boom}, bus)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, boom)
	_, err = svc.Create(ctx, domain.CreateInput{Title: "T", Description: "D"})
	assert.ErrorIs(t, err, boom)
	_, err = svc.ListByCategory(ctx, "Web")
	assert.ErrorIs(t, err, boom)
	_, err = svc.Stats(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, svc.Reseed(ctx, nil), boom)
	assert.ErrorIs(t, svc.Delete(ctx, 1), boom)

	assert.Zero(t, bus.count())
}

func TestNewProjectService_NilBus(t *testing.T) {
	store, err := repository.NewMemoryStore(1, nil)
	require.NoError(t, err)

	svc := NewProjectService(store, nil)
	_, err = svc.Create(context.Background(), domain.CreateInput{Title: "T", Description: "D"})
	assert.NoError(t, err)
}
